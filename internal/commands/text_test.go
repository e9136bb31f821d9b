package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Stats
	}{
		{"empty", "", Stats{Characters: 0, Words: 0, Lines: 1}},
		{"three words", "a b c", Stats{Characters: 5, Words: 3, Lines: 1}},
		{"multi line", "one\ntwo three\n", Stats{Characters: 14, Words: 3, Lines: 3}},
		{"only whitespace", " \t ", Stats{Characters: 3, Words: 0, Lines: 1}},
		{"unicode runes", "héllo wörld", Stats{Characters: 11, Words: 2, Lines: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.input))
		})
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, "characters: 5\nwords: 3\nlines: 1", Count("a b c"))
	assert.Equal(t, "characters: 0\nwords: 0\nlines: 1", Count(""))
}

func TestSingleCounters(t *testing.T) {
	assert.Equal(t, "length: 11", Length("hello world"))
	assert.Equal(t, "words: 2", Words("hello world"))
	assert.Equal(t, "lines: 2", Lines("hello\nworld"))
}

func TestReverse(t *testing.T) {
	assert.Equal(t, "olleh", Reverse("hello"))
	assert.Equal(t, "", Reverse(""))
	assert.Equal(t, "🎯ba", Reverse("ab🎯"))
	assert.Equal(t, "ölk", Reverse("klö"))
}

func TestShoutWhisper(t *testing.T) {
	shout := Upper(language.Und)
	whisper := Lower(language.Und)

	assert.Equal(t, "HELLO WORLD", shout("hello world"))
	assert.Equal(t, "hello world", whisper("HELLO World"))
	assert.Equal(t, "", shout(""))
}

func TestShoutWhisperNotInverseOutsideASCII(t *testing.T) {
	shout := Upper(language.Und)
	whisper := Lower(language.Und)

	// Final sigma has no uppercase of its own.
	assert.Equal(t, "ς", whisper("ς"))
	assert.Equal(t, "σ", whisper(shout("ς")))
}

func TestShoutTurkishLocale(t *testing.T) {
	shout := Upper(language.Turkish)
	whisper := Lower(language.Turkish)

	assert.Equal(t, "İSTANBUL", shout("istanbul"))
	assert.Equal(t, "ısparta", whisper("ISPARTA"))
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello world", "Hello World"},
		{"hELLO wORLD", "HELLO WORLD"},
		{"  leading\tand\nnewline", "  Leading\tAnd\nNewline"},
		{"don't stop-now", "Don't Stop-now"},
		{"", ""},
		{"élan vital", "Élan Vital"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Capitalize(tt.input))
		})
	}
}

func TestSummarize(t *testing.T) {
	summarize := Summarize(DefaultSummarizeLength)
	long := strings.Repeat("x", 80)

	assert.Equal(t, "short", summarize("short"))
	assert.Equal(t, strings.Repeat("x", 50), summarize(long))
	assert.Equal(t, strings.Repeat("é", 50), summarize(strings.Repeat("é", 60)))
	assert.Equal(t, "abc", Summarize(3)("abcdef"))
	assert.Equal(t, strings.Repeat("y", 50), Summarize(0)(strings.Repeat("y", 51)))
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "a b c", Compact("a   b\t\tc"))
	assert.Equal(t, " a b ", Compact("  a \n\n b  "))
	assert.Equal(t, "", Compact(""))
	assert.Equal(t, "no-change", Compact("no-change"))
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "a  b", Strip("\t a  b \n"))
}

func TestNamingConventions(t *testing.T) {
	tag := language.Und

	tests := []struct {
		name  string
		fn    func(string) string
		input string
		want  string
	}{
		{"snake spaces", SnakeCase(tag), "Hello World Example", "hello_world_example"},
		{"snake camel", SnakeCase(tag), "helloWorld", "hello_world"},
		{"kebab spaces", KebabCase(tag), "Hello  World", "hello-world"},
		{"kebab camel", KebabCase(tag), "myVarName", "my-var-name"},
		{"camel", CamelCase(tag), "Hello big WORLD", "helloBigWorld"},
		{"camel empty", CamelCase(tag), "   ", "   "},
		{"pascal", PascalCase(tag), "hello big world", "HelloBigWorld"},
		{"pascal empty", PascalCase(tag), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.input))
		})
	}
}

func TestVowels(t *testing.T) {
	assert.Equal(t, "Hll Wrld", RemoveVowels("Hello World"))
	assert.Equal(t, "eoo", OnlyVowels("Hello World"))
	assert.Equal(t, "", OnlyVowels("xyz"))
}

func TestRot13(t *testing.T) {
	assert.Equal(t, "Uryyb, Jbeyq!", Rot13("Hello, World!"))
	assert.Equal(t, "Hello, World!", Rot13(Rot13("Hello, World!")))
	assert.Equal(t, "ñ", Rot13("ñ"))
}
