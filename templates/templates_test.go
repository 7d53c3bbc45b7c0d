package templates

import (
	"bytes"
	"strings"
	"testing"
)

func TestMarkdownDropsRawHTMLAndUnsafeLinks(t *testing.T) {
	out := string(renderMarkdown("Built with **Go**.\n\n<script>alert(1)</script>\n\n[click](javascript:alert(1)) [repo](https://github.com/x/y)"))

	if !strings.Contains(out, "<strong>Go</strong>") {
		t.Fatalf("expected markdown to render, got %q", out)
	}
	if strings.Contains(out, "<script") {
		t.Fatalf("raw html survived: %q", out)
	}
	if strings.Contains(out, "javascript:") {
		t.Fatalf("unsafe link survived: %q", out)
	}
	if !strings.Contains(out, `href="https://github.com/x/y"`) {
		t.Fatalf("expected safe link, got %q", out)
	}
}

func TestRenderDenied(t *testing.T) {
	type site struct {
		Theme   string
		Session *struct{}
	}
	data := struct {
		Site   site
		Title  string
		Brand  string
		Nav    []struct{ URL, Label string }
		Year   int
		Footer string
	}{Site: site{Theme: "light"}, Title: "Access Denied", Year: 2026}

	var buf bytes.Buffer
	if err := Parse().Render(&buf, "denied", data); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), `data-theme="light"`) || !strings.Contains(buf.String(), "Access Denied") {
		t.Fatalf("unexpected page %q", buf.String())
	}
}
