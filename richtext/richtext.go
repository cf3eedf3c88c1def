// Package richtext renders CMS text to HTML as templ components: structured
// rich-text documents and markdown long-text fields.
package richtext

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// Node types.
const (
	Document       = "document"
	Paragraph      = "paragraph"
	Heading1       = "heading-1"
	Heading2       = "heading-2"
	Heading3       = "heading-3"
	Heading4       = "heading-4"
	Heading5       = "heading-5"
	Heading6       = "heading-6"
	UnorderedList  = "unordered-list"
	OrderedList    = "ordered-list"
	ListItem       = "list-item"
	Quote          = "blockquote"
	HR             = "hr"
	Hyperlink      = "hyperlink"
	Text           = "text"
	EmbeddedAsset  = "embedded-asset-block"
	EmbeddedEntry  = "embedded-entry-block"
	EntryHyperlink = "entry-hyperlink"
)

// Mark types.
const (
	MarkBold      = "bold"
	MarkItalic    = "italic"
	MarkUnderline = "underline"
	MarkCode      = "code"
)

// Node is one node of a rich-text document tree.
type Node struct {
	NodeType string         `json:"nodeType"`
	Value    string         `json:"value,omitempty"`
	Marks    []Mark         `json:"marks,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
	Content  []*Node        `json:"content,omitempty"`
}

// Mark is a text decoration.
type Mark struct {
	Type string `json:"type"`
}

var blockTags = map[string]string{
	Paragraph:     "p",
	Heading1:      "h1",
	Heading2:      "h2",
	Heading3:      "h3",
	Heading4:      "h4",
	Heading5:      "h5",
	Heading6:      "h6",
	UnorderedList: "ul",
	OrderedList:   "ol",
	ListItem:      "li",
	Quote:         "blockquote",
}

var markTags = map[string]string{
	MarkBold:      "strong",
	MarkItalic:    "em",
	MarkUnderline: "u",
	MarkCode:      "code",
}

// HTML returns a component rendering n. A nil document renders nothing.
func HTML(n *Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Render(w, n)
	})
}

// Render writes the HTML for n to w.
func Render(w io.Writer, n *Node) error {
	var buf bytes.Buffer
	renderNode(&buf, n)
	_, err := w.Write(buf.Bytes())
	return err
}

func renderNode(buf *bytes.Buffer, n *Node) {
	if n == nil {
		return
	}
	switch n.NodeType {
	case Document:
		renderChildren(buf, n)
	case Text:
		renderText(buf, n)
	case HR:
		buf.WriteString("<hr/>")
	case Hyperlink:
		href := SafeURL(n.uri())
		if href == "" {
			renderChildren(buf, n)
			return
		}
		buf.WriteString(`<a href="` + href + `" rel="noopener noreferrer">`)
		renderChildren(buf, n)
		buf.WriteString("</a>")
	case EmbeddedAsset, EmbeddedEntry:
		// Linked objects are not resolved here.
	default:
		tag, ok := blockTags[n.NodeType]
		if !ok {
			renderChildren(buf, n)
			return
		}
		buf.WriteString("<" + tag + ">")
		renderChildren(buf, n)
		buf.WriteString("</" + tag + ">")
	}
}

func renderChildren(buf *bytes.Buffer, n *Node) {
	for _, c := range n.Content {
		renderNode(buf, c)
	}
}

func renderText(buf *bytes.Buffer, n *Node) {
	var open, closeTags []string
	for _, m := range n.Marks {
		if tag, ok := markTags[m.Type]; ok {
			open = append(open, "<"+tag+">")
			closeTags = append([]string{"</" + tag + ">"}, closeTags...)
		}
	}
	buf.WriteString(strings.Join(open, ""))
	buf.WriteString(strings.ReplaceAll(html.EscapeString(n.Value), "\n", "<br/>"))
	buf.WriteString(strings.Join(closeTags, ""))
}

func (n *Node) uri() string {
	if n.Data == nil {
		return ""
	}
	s, _ := n.Data["uri"].(string)
	return s
}

// PlainText returns the concatenated text of n with blocks separated by a
// single space, for meta descriptions and previews.
func PlainText(n *Node) string {
	var parts []string
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.NodeType == Text {
			if v := strings.TrimSpace(n.Value); v != "" {
				parts = append(parts, v)
			}
			return
		}
		for _, c := range n.Content {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

// SafeURL returns raw escaped for an href attribute, or "" unless it is a
// relative, fragment, http(s), mailto or tel URL.
func SafeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
