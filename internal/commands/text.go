package commands

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultSummarizeLength is the number of characters kept by summarize.
const DefaultSummarizeLength = 50

// Stats holds the counts reported by the count command.
type Stats struct {
	Characters int
	Words      int
	Lines      int
}

// Analyze counts characters (runes), whitespace-delimited words and
// newline-delimited lines. Empty input has one line.
func Analyze(s string) Stats {
	return Stats{
		Characters: utf8.RuneCountInString(s),
		Words:      len(strings.Fields(s)),
		Lines:      strings.Count(s, "\n") + 1,
	}
}

// String renders the stats one per line.
func (s Stats) String() string {
	return fmt.Sprintf("characters: %d\nwords: %d\nlines: %d", s.Characters, s.Words, s.Lines)
}

// Count reports characters, words and lines.
func Count(s string) string {
	return Analyze(s).String()
}

// Length reports the number of characters.
func Length(s string) string {
	return fmt.Sprintf("length: %d", Analyze(s).Characters)
}

// Words reports the number of words.
func Words(s string) string {
	return fmt.Sprintf("words: %d", Analyze(s).Words)
}

// Lines reports the number of lines.
func Lines(s string) string {
	return fmt.Sprintf("lines: %d", Analyze(s).Lines)
}

// Reverse reverses the rune order of s.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Upper returns a shout handler for the given locale. A fresh Caser is
// built per call since Casers are stateful.
func Upper(tag language.Tag) func(string) string {
	return func(s string) string {
		return cases.Upper(tag).String(s)
	}
}

// Lower returns a whisper handler for the given locale.
func Lower(tag language.Tag) func(string) string {
	return func(s string) string {
		return cases.Lower(tag).String(s)
	}
}

// Capitalize uppercases the first rune of every whitespace-delimited word
// and leaves the rest untouched.
func Capitalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	atWordStart := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			atWordStart = true
			b.WriteRune(r)
			continue
		}
		if atWordStart {
			r = unicode.ToUpper(r)
			atWordStart = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Summarize returns a handler keeping the first n runes of its input.
func Summarize(n int) func(string) string {
	if n <= 0 {
		n = DefaultSummarizeLength
	}
	return func(s string) string {
		if utf8.RuneCountInString(s) <= n {
			return s
		}
		return string([]rune(s)[:n])
	}
}

// Compact collapses every run of whitespace to a single space.
func Compact(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}

	return b.String()
}

// Strip removes leading and trailing whitespace.
func Strip(s string) string {
	return strings.TrimSpace(s)
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	caseBoundary  = regexp.MustCompile(`([a-z])([A-Z])`)
	vowels        = regexp.MustCompile(`[aeiouAEIOU]`)
	nonVowels     = regexp.MustCompile(`[^aeiouAEIOU]`)
)

func delimit(s, sep string, tag language.Tag) string {
	s = whitespaceRun.ReplaceAllString(s, sep)
	s = caseBoundary.ReplaceAllString(s, "${1}"+sep+"${2}")
	return cases.Lower(tag).String(s)
}

// SnakeCase converts s to snake_case.
func SnakeCase(tag language.Tag) func(string) string {
	return func(s string) string { return delimit(s, "_", tag) }
}

// KebabCase converts s to kebab-case.
func KebabCase(tag language.Tag) func(string) string {
	return func(s string) string { return delimit(s, "-", tag) }
}

// capitalizeWord uppercases the first rune of w and lowercases the rest.
func capitalizeWord(w string, tag language.Tag) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + cases.Lower(tag).String(w[size:])
}

// CamelCase converts s to camelCase. Input without words is returned as is.
func CamelCase(tag language.Tag) func(string) string {
	return func(s string) string {
		words := strings.Fields(s)
		if len(words) == 0 {
			return s
		}

		var b strings.Builder
		b.WriteString(cases.Lower(tag).String(words[0]))
		for _, w := range words[1:] {
			b.WriteString(capitalizeWord(w, tag))
		}
		return b.String()
	}
}

// PascalCase converts s to PascalCase.
func PascalCase(tag language.Tag) func(string) string {
	return func(s string) string {
		var b strings.Builder
		for _, w := range strings.Fields(s) {
			b.WriteString(capitalizeWord(w, tag))
		}
		return b.String()
	}
}

// RemoveVowels drops ASCII vowels.
func RemoveVowels(s string) string {
	return vowels.ReplaceAllString(s, "")
}

// OnlyVowels keeps ASCII vowels only.
func OnlyVowels(s string) string {
	return nonVowels.ReplaceAllString(s, "")
}

// Rot13 rotates ASCII letters by 13 places.
func Rot13(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return 'a' + (r-'a'+13)%26
		case r >= 'A' && r <= 'Z':
			return 'A' + (r-'A'+13)%26
		default:
			return r
		}
	}, s)
}
