package richtext

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

const sampleDoc = `{
  "nodeType": "document",
  "content": [
    {"nodeType": "heading-2", "content": [{"nodeType": "text", "value": "Results", "marks": []}]},
    {"nodeType": "paragraph", "content": [
      {"nodeType": "text", "value": "Cut load time ", "marks": []},
      {"nodeType": "text", "value": "by 40%", "marks": [{"type": "bold"}, {"type": "italic"}]},
      {"nodeType": "text", "value": " with ", "marks": []},
      {"nodeType": "hyperlink", "data": {"uri": "https://example.com/case"}, "content": [{"nodeType": "text", "value": "caching", "marks": []}]}
    ]},
    {"nodeType": "unordered-list", "content": [
      {"nodeType": "list-item", "content": [{"nodeType": "paragraph", "content": [{"nodeType": "text", "value": "Go <3", "marks": []}]}]}
    ]},
    {"nodeType": "hr", "content": []},
    {"nodeType": "embedded-asset-block", "data": {"target": {"sys": {"id": "a1", "type": "Link", "linkType": "Asset"}}}, "content": []}
  ]
}`

func decode(t *testing.T, s string) *Node {
	t.Helper()
	var n Node
	if err := json.Unmarshal([]byte(s), &n); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return &n
}

func TestRenderDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, decode(t, sampleDoc)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `<h2>Results</h2>` +
		`<p>Cut load time <strong><em>by 40%</em></strong> with <a href="https://example.com/case" rel="noopener noreferrer">caching</a></p>` +
		`<ul><li><p>Go &lt;3</p></li></ul>` +
		`<hr/>`
	if got := buf.String(); got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderUnsafeLinkDropsAnchor(t *testing.T) {
	n := &Node{NodeType: Hyperlink, Data: map[string]any{"uri": "javascript:alert(1)"}, Content: []*Node{{NodeType: Text, Value: "click"}}}
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := buf.String(); got != "click" {
		t.Errorf("Render = %q, want %q", got, "click")
	}
}

func TestRenderNil(t *testing.T) {
	var buf bytes.Buffer
	if err := HTML(nil).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected empty output, got %q", buf.String())
	}
}

func TestRenderLineBreaks(t *testing.T) {
	var buf bytes.Buffer
	_ = Render(&buf, &Node{NodeType: Text, Value: "a\nb", Marks: []Mark{{Type: MarkCode}}})
	if got := buf.String(); got != "<code>a<br/>b</code>" {
		t.Errorf("Render = %q", got)
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText(decode(t, sampleDoc))
	want := "Results Cut load time by 40% with caching Go <3"
	if got != want {
		t.Errorf("PlainText = %q, want %q", got, want)
	}
	if PlainText(nil) != "" {
		t.Error("PlainText(nil) should be empty")
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com", "https://example.com"},
		{"mailto:me@example.com", "mailto:me@example.com"},
		{"/projects/folio/", "/projects/folio/"},
		{"#top", "#top"},
		{"javascript:alert(1)", ""},
		{"example.com", ""},
		{"", ""},
		{"https://example.com/?a=1&b=2", "https://example.com/?a=1&amp;b=2"},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.input); got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown("Built with **Go**.\n\n<script>alert(1)</script>").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "<strong>Go</strong>") {
		t.Errorf("Markdown missing bold: %q", got)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("Markdown should drop raw HTML: %q", got)
	}
}

func TestMarkdownTable(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, "| a | b |\n|---|---|\n| 1 | 2 |"); err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	if !strings.Contains(buf.String(), "<table>") {
		t.Errorf("expected table, got %q", buf.String())
	}
}
