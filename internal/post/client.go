package post

import (
	"strings"

	"golang.org/x/net/html"
)

// ClientName extracts the display name of the posting client from the
// export's source field, which holds an HTML anchor such as
// <a href="https://mobile.twitter.com" rel="nofollow">Twitter Web App</a>.
// Plain-text values are returned trimmed; unparsable markup yields "".
func ClientName(source string) string {
	source = strings.TrimSpace(source)
	if source == "" {
		return ""
	}
	if !strings.Contains(source, "<") {
		return source
	}

	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return ""
	}

	var builder strings.Builder
	collectText(doc, &builder)
	return strings.Join(strings.Fields(builder.String()), " ")
}

// collectText appends the text content of node and its descendants.
func collectText(node *html.Node, builder *strings.Builder) {
	if node.Type == html.TextNode {
		builder.WriteString(node.Data)
		builder.WriteString(" ")
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, builder)
	}
}
