// Package extract pulls the table cell text out of a published document.
//
// The published export wraps every table cell's text in a <span>. Spans
// returns the text of every span found under any <tr>, flattened into one
// sequence in document order; row and column membership is left to the
// caller, which recovers it from the position in that sequence.
package extract

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Spans parses markup and returns the text of each <span> that has a <tr>
// ancestor, in document order.
func Spans(markup string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	var spans []string
	var walk func(n *html.Node, inRow bool)
	walk = func(n *html.Node, inRow bool) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Tr:
				inRow = true
			case atom.Span:
				if inRow {
					spans = append(spans, text(n))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inRow)
		}
	}
	walk(doc, false)
	return spans, nil
}

// text concatenates every text node below n.
func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
