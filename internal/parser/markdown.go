package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser extracts the prose from markdown files. Code blocks, code
// spans, raw HTML, and link destinations are not prose and are dropped so
// they never reach the scorer.
type MarkdownParser struct{}

// CanParse returns true if this parser can handle the file
func (p *MarkdownParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeMarkdown
}

// Parse parses markdown and collects its prose
func (p *MarkdownParser) Parse(path string, content []byte) (*Document, error) {
	frontmatter, body := ParseFrontmatter(content)

	md := goldmark.New()
	reader := text.NewReader(body)
	doc := md.Parser().Parse(reader)

	return &Document{
		Path:        path,
		Content:     content,
		FileType:    FileTypeMarkdown,
		Prose:       p.extractProse(doc, body),
		Frontmatter: frontmatter,
	}, nil
}

// extractProse walks the AST and concatenates text nodes, separating
// block-level elements with blank lines.
func (p *MarkdownParser) extractProse(doc ast.Node, source []byte) string {
	var b strings.Builder

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock, ast.KindHTMLBlock,
			ast.KindCodeSpan, ast.KindRawHTML:
			return ast.WalkSkipChildren, nil

		case ast.KindParagraph, ast.KindHeading, ast.KindTextBlock:
			if b.Len() > 0 {
				b.WriteString("\n\n")
			}

		case ast.KindText:
			node := n.(*ast.Text)
			seg := node.Segment
			b.Write(source[seg.Start:seg.Stop])
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteString("\n")
			}
		}

		return ast.WalkContinue, nil
	})

	return b.String()
}
