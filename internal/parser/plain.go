package parser

// PlainParser treats the whole file as prose
type PlainParser struct{}

// CanParse returns true (fallback parser)
func (p *PlainParser) CanParse(path string) bool {
	return true
}

// Parse passes the content through unchanged
func (p *PlainParser) Parse(path string, content []byte) (*Document, error) {
	return &Document{
		Path:     path,
		Content:  content,
		FileType: FileTypePlain,
		Prose:    string(content),
	}, nil
}
