package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Untag strips HTML markup and returns the text content with whitespace
// compacted. Script and style bodies are dropped.
func Untag(s string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(s))

	var b strings.Builder
	skipDepth := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("failed to tokenize html: %w", err)
			}
			return Strip(Compact(b.String())), nil
		case html.StartTagToken:
			if isRawText(z) {
				skipDepth++
			}
		case html.EndTagToken:
			if isRawText(z) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.WriteString(z.Token().Data)
			}
		}
	}
}

func isRawText(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch atom.Lookup(name) {
	case atom.Script, atom.Style:
		return true
	default:
		return false
	}
}
