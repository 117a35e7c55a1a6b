package naver

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// droppedElements never carry review data.
const droppedElements = "head, script, style, noscript, link, meta, svg, iframe, template"

var keptAttributes = map[string]bool{
	"href": true,
	"src":  true,
	"alt":  true,
}

// CleanMarkup reduces browser markup to the bare tag structure the parser
// patterns are written against: no scripts or styles, no attributes other
// than href, src and alt, no comments and no whitespace-only text.
// It returns the inner markup of <body>.
func CleanMarkup(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse markup: %w", err)
	}

	doc.Find(droppedElements).Remove()

	body := doc.Find("body")
	for _, n := range body.Nodes {
		cleanNode(n)
	}

	ans, err := body.Html()
	if err != nil {
		return "", fmt.Errorf("failed to render cleaned markup: %w", err)
	}

	return ans, nil
}

func cleanNode(n *html.Node) {
	c := n.FirstChild
	for c != nil {
		next := c.NextSibling

		switch c.Type {
		case html.CommentNode:
			n.RemoveChild(c)
		case html.TextNode:
			if strings.TrimSpace(c.Data) == "" {
				n.RemoveChild(c)
			}
		case html.ElementNode:
			c.Attr = filterAttributes(c.Attr)
			cleanNode(c)
		}

		c = next
	}
}

func filterAttributes(attrs []html.Attribute) []html.Attribute {
	var ans []html.Attribute

	for _, a := range attrs {
		if a.Namespace == "" && keptAttributes[a.Key] {
			ans = append(ans, a)
		}
	}

	return ans
}
