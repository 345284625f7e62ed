package words

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Folder extracts the letters of a word and upper-cases them with the
// rules of a locale. A Folder is not safe for concurrent use.
type Folder struct {
	tag   language.Tag
	upper cases.Caser
}

// NewFolder creates a Folder for the given BCP-47 locale tag.
// Unparseable tags fall back to language.Und (root casing rules).
func NewFolder(locale string) *Folder {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Folder{tag: tag, upper: cases.Upper(tag)}
}

// Locale returns the tag the folder cases with.
func (f *Folder) Locale() language.Tag {
	return f.tag
}

// Letters returns the upper-cased letters of word in reading order.
//
// The word is NFC-normalized first so that a base letter followed by a
// combining accent counts as one letter. Anything that is not a Unicode
// letter after normalization (spaces, hyphens, digits, stray marks) is
// dropped. A letter whose locale upper case expands to several runes
// (German ß -> SS) keeps its simple one-rune upper case instead, since each
// letter fills exactly one gap.
func (f *Folder) Letters(word string) []rune {
	nfc := norm.NFC.String(word)
	out := make([]rune, 0, utf8.RuneCountInString(nfc))
	for _, r := range nfc {
		if !unicode.IsLetter(r) {
			continue
		}
		out = append(out, f.upperRune(r))
	}
	return out
}

// CountLetters returns the number of letters Letters would return.
func (f *Folder) CountLetters(word string) int {
	n := 0
	for _, r := range norm.NFC.String(word) {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

func (f *Folder) upperRune(r rune) rune {
	up := f.upper.String(string(r))
	if utf8.RuneCountInString(up) == 1 {
		u, _ := utf8.DecodeRuneInString(up)
		return u
	}
	return unicode.ToUpper(r)
}
