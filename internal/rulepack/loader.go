package rulepack

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed packs
var packFS embed.FS

// The four documents every pack directory must provide. Each may be JSON or
// YAML; JSON wins when both exist.
var documents = []string{"lexicons", "regex", "weights", "semantic_classes"}

// Load loads a builtin rule pack by name.
func Load(name string) (*Pack, error) {
	sub, err := fs.Sub(packFS, path.Join("packs", name))
	if err != nil {
		return nil, fmt.Errorf("unknown rule pack: %s", name)
	}
	if _, err := fs.Stat(sub, "."); err != nil {
		return nil, fmt.Errorf("unknown rule pack: %s", name)
	}
	pack, err := loadFS(sub, name)
	if err != nil {
		return nil, fmt.Errorf("rule pack %s: %w", name, err)
	}
	return pack, nil
}

// LoadDir loads a rule pack from a directory on disk. This is how users
// supply custom packs without rebuilding the binary.
func LoadDir(dir string) (*Pack, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("rule pack %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("rule pack %s: not a directory", dir)
	}
	name := filepath.Base(filepath.Clean(dir))
	pack, err := loadFS(os.DirFS(dir), name)
	if err != nil {
		return nil, fmt.Errorf("rule pack %s: %w", dir, err)
	}
	return pack, nil
}

// Available returns the names of all builtin rule packs, sorted.
func Available() []string {
	entries, err := packFS.ReadDir("packs")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

func loadFS(fsys fs.FS, name string) (*Pack, error) {
	pack := &Pack{Name: name}

	data, isYAML, err := readDocument(fsys, "lexicons")
	if err != nil {
		return nil, err
	}
	if err := decodeStrict(data, isYAML, &pack.Lexicons); err != nil {
		return nil, fmt.Errorf("lexicons: %w", err)
	}

	data, isYAML, err = readDocument(fsys, "regex")
	if err != nil {
		return nil, err
	}
	var raw map[string]string
	if err := decodeStrict(data, isYAML, &raw); err != nil {
		return nil, fmt.Errorf("regex: %w", err)
	}
	pack.Patterns = make(map[string]*regexp.Regexp, len(raw))
	for patName, expr := range raw {
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return nil, fmt.Errorf("regex %s: %w", patName, err)
		}
		pack.Patterns[patName] = re
	}

	data, isYAML, err = readDocument(fsys, "weights")
	if err != nil {
		return nil, err
	}
	var weights struct {
		Penalties map[string]int `json:"penalties" yaml:"penalties"`
		Bonuses   map[string]int `json:"bonuses" yaml:"bonuses"`
	}
	if err := decodeStrict(data, isYAML, &weights); err != nil {
		return nil, fmt.Errorf("weights: %w", err)
	}
	pack.Penalties = weights.Penalties
	pack.Bonuses = weights.Bonuses

	data, isYAML, err = readDocument(fsys, "semantic_classes")
	if err != nil {
		return nil, err
	}
	classes, err := decodeClasses(data, isYAML)
	if err != nil {
		return nil, fmt.Errorf("semantic_classes: %w", err)
	}
	pack.Classes = classes

	if err := pack.validate(); err != nil {
		return nil, err
	}
	return pack, nil
}

// readDocument finds one of the four pack documents by base name, trying
// .json, .yaml, then .yml.
func readDocument(fsys fs.FS, base string) (data []byte, isYAML bool, err error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		data, err := fs.ReadFile(fsys, base+ext)
		if err == nil {
			return data, ext != ".json", nil
		}
	}
	return nil, false, fmt.Errorf("%s: missing document (%s.json or %s.yaml)", base, base, base)
}

func decodeStrict(data []byte, isYAML bool, v any) error {
	if isYAML {
		return yaml.Unmarshal(data, v)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// decodeClasses preserves the declaration order of semantic classes, which
// the classifier depends on. Maps would lose it, so the object is walked
// key by key.
func decodeClasses(data []byte, isYAML bool) ([]SemanticClass, error) {
	if isYAML {
		return decodeClassesYAML(data)
	}
	return decodeClassesJSON(data)
}

type classBody struct {
	Requires []string `json:"requires" yaml:"requires"`
	Forbids  []string `json:"forbids" yaml:"forbids"`
}

func decodeClassesJSON(data []byte) ([]SemanticClass, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a top-level object")
	}
	classes := []SemanticClass{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected a class name, got %v", keyTok)
		}
		var body classBody
		if err := dec.Decode(&body); err != nil {
			return nil, fmt.Errorf("class %s: %w", name, err)
		}
		classes = append(classes, SemanticClass{Name: name, Requires: body.Requires, Forbids: body.Forbids})
	}
	return classes, nil
}

func decodeClassesYAML(data []byte) ([]SemanticClass, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return []SemanticClass{}, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a top-level mapping")
	}
	classes := []SemanticClass{}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		name := doc.Content[i].Value
		var body classBody
		if err := doc.Content[i+1].Decode(&body); err != nil {
			return nil, fmt.Errorf("class %s: %w", name, err)
		}
		classes = append(classes, SemanticClass{Name: name, Requires: body.Requires, Forbids: body.Forbids})
	}
	return classes, nil
}

// Describe returns a short human summary of the pack contents, used by the
// rules command.
func (p *Pack) Describe() string {
	return fmt.Sprintf("%d lexicons, %d patterns, %d penalty rules, %d bonuses, %d classes",
		len(p.Lexicons), len(p.Patterns), len(p.Penalties), len(p.Bonuses), len(p.Classes))
}
