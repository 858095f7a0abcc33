package parser

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

var frontmatterDelim = []byte("---")

// ParseFrontmatter splits YAML frontmatter between --- delimiters from the
// body. On any parse problem the content is returned untouched, since a
// malformed header is still scoreable prose.
func ParseFrontmatter(content []byte) (map[string]interface{}, []byte) {
	if !bytes.HasPrefix(content, frontmatterDelim) {
		return nil, content
	}
	rest := content[len(frontmatterDelim):]
	end := bytes.Index(rest, []byte("\n---"))
	if end == -1 {
		return nil, content
	}

	var frontmatter map[string]interface{}
	if err := yaml.Unmarshal(bytes.TrimSpace(rest[:end]), &frontmatter); err != nil {
		return nil, content
	}

	body := rest[end+len("\n---"):]
	if bytes.HasPrefix(body, []byte("\n")) {
		body = body[1:]
	}
	return frontmatter, body
}
