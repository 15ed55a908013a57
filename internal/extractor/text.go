package extractor

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// flattenText joins every non-blank text node under sel with single spaces.
// Script and style bodies are skipped. Non-breaking and other Unicode space
// separators become plain spaces.
func flattenText(sel *goquery.Selection) string {
	parts := make([]string, 0, 16)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(strings.Map(plainSpace, n.Data)); s != "" {
				parts = append(parts, s)
			}
			return
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
				return
			}
		case html.CommentNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

func plainSpace(r rune) rune {
	if unicode.Is(unicode.Zs, r) {
		return ' '
	}
	return r
}
