package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMarkdownProseExtraction(t *testing.T) {
	content := []byte(`# Results

We deliver results *fast* for clients.

` + "```go" + `
fmt.Println("boost revenue")
` + "```" + `

See [our work](https://example.com) for ` + "`details`" + ` today.
`)

	doc, err := ParseContent("page.md", content)
	if err != nil {
		t.Fatalf("ParseContent error: %v", err)
	}
	if doc.FileType != FileTypeMarkdown {
		t.Errorf("FileType = %v, want markdown", doc.FileType)
	}

	prose := doc.Prose
	for _, want := range []string{
		"Results",
		"We deliver results fast for clients.",
		"See our work for",
		"today.",
	} {
		if !strings.Contains(prose, want) {
			t.Errorf("prose missing %q\nprose: %q", want, prose)
		}
	}
	for _, reject := range []string{
		"fmt.Println",
		"boost revenue",
		"example.com",
		"details",
	} {
		if strings.Contains(prose, reject) {
			t.Errorf("prose should not contain %q\nprose: %q", reject, prose)
		}
	}
}

func TestMarkdownBlocksSeparated(t *testing.T) {
	content := []byte("# One\n\nFirst paragraph.\n\nSecond paragraph.\n")
	doc, err := ParseContent("doc.md", content)
	if err != nil {
		t.Fatalf("ParseContent error: %v", err)
	}
	want := "One\n\nFirst paragraph.\n\nSecond paragraph."
	if doc.Prose != want {
		t.Errorf("prose = %q, want %q", doc.Prose, want)
	}
}

func TestMarkdownListItems(t *testing.T) {
	content := []byte("- Boost revenue now\n- Proven results\n")
	doc, err := ParseContent("list.md", content)
	if err != nil {
		t.Fatalf("ParseContent error: %v", err)
	}
	if !strings.Contains(doc.Prose, "Boost revenue now") || !strings.Contains(doc.Prose, "Proven results") {
		t.Errorf("prose = %q, want both list items", doc.Prose)
	}
}

func TestMarkdownFrontmatter(t *testing.T) {
	content := []byte(`---
title: Landing page
audience: everyone
---

Real prose here.
`)
	doc, err := ParseContent("page.md", content)
	if err != nil {
		t.Fatalf("ParseContent error: %v", err)
	}
	if doc.Frontmatter["title"] != "Landing page" {
		t.Errorf("frontmatter title = %v, want Landing page", doc.Frontmatter["title"])
	}
	if !strings.Contains(doc.Prose, "Real prose here.") {
		t.Errorf("prose = %q, want body text", doc.Prose)
	}
	if strings.Contains(doc.Prose, "Landing page") {
		t.Errorf("prose = %q, frontmatter should be stripped", doc.Prose)
	}
}

func TestPlainPassthrough(t *testing.T) {
	content := []byte("We boost revenue. Guaranteed.\n")
	doc, err := ParseContent("copy.txt", content)
	if err != nil {
		t.Fatalf("ParseContent error: %v", err)
	}
	if doc.FileType != FileTypePlain {
		t.Errorf("FileType = %v, want plain", doc.FileType)
	}
	if doc.Prose != string(content) {
		t.Errorf("prose = %q, want content unchanged", doc.Prose)
	}
}

func TestParseReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("Plain words."), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if doc.Path != path || doc.Prose != "Plain words." {
		t.Errorf("doc = %+v", doc)
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantMeta bool
		wantBody string
	}{
		{
			name:     "no frontmatter",
			content:  "plain body",
			wantMeta: false,
			wantBody: "plain body",
		},
		{
			name:     "valid",
			content:  "---\ntitle: x\n---\nbody text",
			wantMeta: true,
			wantBody: "body text",
		},
		{
			name:     "unclosed",
			content:  "---\ntitle: x\n",
			wantMeta: false,
			wantBody: "---\ntitle: x\n",
		},
		{
			name:     "malformed yaml keeps content",
			content:  "---\n[unclosed\n---\nbody",
			wantMeta: false,
			wantBody: "---\n[unclosed\n---\nbody",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body := ParseFrontmatter([]byte(tt.content))
			if (meta != nil) != tt.wantMeta {
				t.Errorf("meta = %v, wantMeta = %v", meta, tt.wantMeta)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}
