package words

import (
	"errors"
	"fmt"
	"math/rand"
)

// Queue errors.
var (
	// ErrNoCategory means no category is selected and the catalog has none.
	ErrNoCategory = errors.New("words: no category configured")
	// ErrEmptyCategory means the active category has no playable words.
	ErrEmptyCategory = errors.New("words: category has no words")
	// ErrUnknownCategory means Select was given a name the catalog lacks.
	ErrUnknownCategory = errors.New("words: unknown category")
)

// Queue hands out the words of the active category in a shuffled,
// non-repeating order. Every word is returned once per cycle; a new cycle
// starts with a fresh shuffle when the working list runs out. Nothing
// prevents the last word of one cycle from opening the next.
type Queue struct {
	catalog *Catalog
	rng     *rand.Rand
	active  string
	working []string
}

// NewQueue creates a queue over the catalog. The first category, if any,
// becomes active, matching the order the catalog was authored in.
func NewQueue(c *Catalog, rng *rand.Rand) *Queue {
	q := &Queue{catalog: c, rng: rng}
	if cats := c.Categories(); len(cats) > 0 {
		q.active = cats[0]
	}
	return q
}

// Active returns the active category name, or "" if none.
func (q *Queue) Active() string {
	return q.active
}

// Catalog returns the catalog the queue draws from.
func (q *Queue) Catalog() *Catalog {
	return q.catalog
}

// Remaining returns how many words are left before the next reshuffle.
func (q *Queue) Remaining() int {
	return len(q.working)
}

// Select makes category the active one and reshuffles eagerly.
// An empty category is accepted; Next reports it as unplayable.
func (q *Queue) Select(category string) error {
	if !q.catalog.Has(category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	q.active = category
	q.working = q.working[:0]
	if err := q.Refill(); err != nil && !errors.Is(err, ErrEmptyCategory) {
		return err
	}
	return nil
}

// Cycle moves the active category by delta positions in catalog order,
// wrapping around, and returns the new active name.
func (q *Queue) Cycle(delta int) (string, error) {
	cats := q.catalog.Categories()
	if len(cats) == 0 {
		return "", ErrNoCategory
	}
	idx := 0
	for i, name := range cats {
		if name == q.active {
			idx = i
			break
		}
	}
	n := len(cats)
	next := cats[((idx+delta)%n+n)%n]
	return next, q.Select(next)
}

// Refill replaces the working list with a uniformly random permutation of
// the full category list.
func (q *Queue) Refill() error {
	if q.active == "" {
		return ErrNoCategory
	}
	list := q.catalog.Words(q.active)
	if len(list) == 0 {
		q.working = q.working[:0]
		return fmt.Errorf("%w: %q", ErrEmptyCategory, q.active)
	}
	q.rng.Shuffle(len(list), func(i, j int) {
		list[i], list[j] = list[j], list[i]
	})
	q.working = list
	return nil
}

// Next removes and returns the first word of the working list, refilling
// it first if it is empty. It never loops: an empty category is an error.
func (q *Queue) Next() (string, error) {
	if len(q.working) == 0 {
		if err := q.Refill(); err != nil {
			return "", err
		}
	}
	w := q.working[0]
	q.working = q.working[1:]
	return w, nil
}
