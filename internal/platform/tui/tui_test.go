package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordsnow/internal/config"
	"github.com/vovakirdan/wordsnow/internal/core"
	"github.com/vovakirdan/wordsnow/internal/games/wordsnow"
	"github.com/vovakirdan/wordsnow/internal/words"
)

func testCatalog() *words.Catalog {
	c := words.NewCatalog()
	c.Add("Naturaleza", "sol", "luna")
	c.Add("Frutas", "pera")
	return c
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	game, err := wordsnow.New(&cfg, testCatalog(), wordsnow.WithCategory("Naturaleza"))
	if err != nil {
		t.Fatalf("wordsnow.New() failed: %v", err)
	}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, false)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{runes("n"), core.ActionNextWord},
		{runes("r"), core.ActionResetCategory},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextCategory},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, core.ActionPrevCategory},
		{runes("d"), core.ActionCycleDifficulty},
		{runes("m"), core.ActionToggleMode},
		{runes("p"), core.ActionPause},
		{runes("?"), core.ActionNone},
		{runes("x"), core.ActionNone},
	}
	for _, tc := range tests {
		if got := keys.Action(tc.msg); got != tc.expected {
			t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestPointerFromMouse(t *testing.T) {
	tests := []struct {
		msg  tea.MouseMsg
		kind core.PointerKind
		ok   bool
	}{
		{tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.PointerDown, true},
		{tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, core.PointerMove, true},
		{tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, core.PointerUp, true},
		{tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, 0, false},
		{tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, 0, false},
	}
	for _, tc := range tests {
		ev, ok := PointerFromMouse(tc.msg)
		if ok != tc.ok {
			t.Errorf("PointerFromMouse(%v) ok = %v, expected %v", tc.msg, ok, tc.ok)
			continue
		}
		if !ok {
			continue
		}
		if ev.Kind != tc.kind {
			t.Errorf("kind = %v, expected %v", ev.Kind, tc.kind)
		}
		if ev.Pos != core.V(3.5, 4.5) {
			t.Errorf("pos = %+v, expected the cell centre", ev.Pos)
		}
	}
}

func TestModelTickAndKeys(t *testing.T) {
	m := newTestModel(t)
	s := m.game.Session()

	start := time.Now()
	m = update(t, m, TickMsg(start))
	if s.Clock().Frames() != 1 {
		t.Fatalf("first tick should step once, frames=%d", s.Clock().Frames())
	}

	m = update(t, m, runes("p"))
	m = update(t, m, TickMsg(start.Add(16*time.Millisecond)))
	if !m.State().Paused {
		t.Error("p should pause the game on the next tick")
	}
	if len(m.inputFrame.Actions) != 0 {
		t.Error("input should be cleared after a tick")
	}
}

func TestModelMouseQueuesPointerEvents(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if len(m.inputFrame.Pointer) != 1 {
		t.Fatalf("expected one queued pointer event, got %d", len(m.inputFrame.Pointer))
	}
	m = update(t, m, TickMsg(time.Now()))
	if len(m.inputFrame.Pointer) != 0 {
		t.Error("pointer events should be consumed by the tick")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	m := newTestModel(t)
	before := m.game.Snapshot().RoundID

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if got := m.game.Snapshot().RoundID; got != before {
		t.Errorf("resize started a new round: %d -> %d", before, got)
	}
	if m.screen.Width() != 120 || m.screen.Height() >= 40 {
		t.Errorf("screen should fill the width and leave room for help, got %dx%d",
			m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m := newTestModel(t)
	if got := update(t, m, runes("b")); got.BackToMenu() {
		t.Error("back must be disabled without a picker")
	}
	if got := update(t, m, runes("q")); !got.IsQuitting() {
		t.Error("q should quit")
	}

	cfg := config.Default()
	game, _ := wordsnow.New(&cfg, testCatalog())
	withPicker := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, true)
	withPicker.Init()
	if got := update(t, withPicker, tea.KeyMsg{Type: tea.KeyEsc}); !got.BackToMenu() {
		t.Error("esc should return to the picker")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "Naturaleza") {
		t.Error("view should include the HUD")
	}
	if !strings.Contains(view, "next word") {
		t.Error("view should include the help bar")
	}
}

func TestPickerSelect(t *testing.T) {
	p := NewPickerModel(testCatalog(), 80, 24, "Frutas")

	next, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = next.(PickerModel)
	if p.Selected() == nil || *p.Selected() != "Frutas" {
		t.Fatalf("expected Frutas selected, got %v", p.Selected())
	}

	q := NewPickerModel(testCatalog(), 80, 24, "")
	next, _ = q.Update(runes("q"))
	if !next.(PickerModel).IsQuitting() {
		t.Error("q should quit the picker")
	}
}

func TestPickerView(t *testing.T) {
	p := NewPickerModel(testCatalog(), 80, 24, "")
	view := p.View()
	for _, want := range []string{"Naturaleza", "Frutas", "Category"} {
		if !strings.Contains(view, want) {
			t.Errorf("picker view should contain %q", want)
		}
	}

	empty := NewPickerModel(words.NewCatalog(), 80, 24, "")
	if !strings.Contains(empty.View(), "No word categories") {
		t.Error("empty catalog should say so")
	}
}

func TestSessionModelFlow(t *testing.T) {
	cfg := config.Default()
	m := NewSessionModel(Options{
		Config:  &cfg,
		Catalog: testCatalog(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3},
	})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(SessionModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)
	if !m.inGame || m.gameModel.Category() != "Frutas" {
		t.Fatal("enter should start the game on the highlighted category")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)
	if m.inGame {
		t.Fatal("esc should return to the picker")
	}
	if m.picker.table.Cursor() != 1 {
		t.Error("picker should reopen on the last category")
	}

	next, _ = m.Update(runes("q"))
	if !next.(SessionModel).quitting {
		t.Error("q in the picker should end the session")
	}
}

func TestSessionModelDirectStart(t *testing.T) {
	cfg := config.Default()
	m := NewSessionModel(Options{
		Config:   &cfg,
		Catalog:  testCatalog(),
		Category: "Nope",
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3},
	})

	next, _ := m.Update(m.Init()())
	m = next.(SessionModel)
	if m.Err() == nil || !m.quitting {
		t.Error("unknown category should end the session with an error")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "SOL", core.ColorBrightGreen)
	s.DrawTextColored(4, 1, "ok", core.ColorSky)

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
	if !strings.Contains(out, "SOL") || !strings.Contains(out, "ok") {
		t.Errorf("rendered output lost text: %q", out)
	}
}
