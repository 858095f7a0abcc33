package parser

import (
	"os"
	"path/filepath"
	"strings"
)

// Document is an input file reduced to the prose that should be scored.
type Document struct {
	Path        string
	Content     []byte
	FileType    FileType
	Prose       string
	Frontmatter map[string]interface{} // YAML frontmatter from markdown files
}

// FileType represents the type of input file
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeMarkdown
	FileTypePlain
)

func (t FileType) String() string {
	switch t {
	case FileTypeMarkdown:
		return "markdown"
	case FileTypePlain:
		return "plain"
	default:
		return "unknown"
	}
}

// Parser defines the interface for extracting prose from input files
type Parser interface {
	Parse(path string, content []byte) (*Document, error)
	CanParse(path string) bool
}

// Parse reads a file and extracts its prose using the appropriate parser
func Parse(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseContent(path, content)
}

// ParseContent extracts prose from already-read content. The path only
// selects the parser, so stdin can be parsed under a placeholder name.
func ParseContent(path string, content []byte) (*Document, error) {
	return getParser(path).Parse(path, content)
}

// getParser returns the appropriate parser for a file
func getParser(path string) Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown":
		return &MarkdownParser{}
	default:
		return &PlainParser{}
	}
}

// GetFileType returns the FileType for a given path
func GetFileType(path string) FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown":
		return FileTypeMarkdown
	case ".txt", ".text":
		return FileTypePlain
	default:
		return FileTypeUnknown
	}
}
