package store

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/pier/foundation/core/error"
	"github.com/msto63/pier/foundation/core/log"
	"github.com/msto63/pier/internal/registry"
)

// fileHeader holds the top level settings of a config file
type fileHeader struct {
	DefaultShell string `toml:"default_shell,omitempty" yaml:"default_shell,omitempty"`
}

// fileDocument is the on-disk shape of a config file
type fileDocument struct {
	DefaultShell string                  `toml:"default_shell,omitempty" yaml:"default_shell,omitempty"`
	Scripts      map[string]scriptRecord `toml:"scripts" yaml:"scripts"`
}

// scriptRecord is the on-disk shape of a single script
type scriptRecord struct {
	Alias       string   `toml:"alias" yaml:"alias"`
	Command     string   `toml:"command" yaml:"command"`
	Description string   `toml:"description,omitempty" yaml:"description,omitempty"`
	Reference   string   `toml:"reference,omitempty" yaml:"reference,omitempty"`
	Tags        []string `toml:"tags,omitempty" yaml:"tags,omitempty"`
}

func recordFromScript(s registry.Script) scriptRecord {
	return scriptRecord{
		Alias:       s.Alias,
		Command:     s.Command,
		Description: s.Description,
		Reference:   s.Reference,
		Tags:        s.Tags,
	}
}

func (r scriptRecord) script() registry.Script {
	return registry.Script{
		Alias:       r.Alias,
		Command:     r.Command,
		Description: r.Description,
		Reference:   r.Reference,
		Tags:        r.Tags,
	}
}

// Decode parses config file content. Empty content and content without a
// scripts table yield an empty document.
func Decode(data []byte, format Format) (*Document, error) {
	return decode(data, format.resolve(""), log.Discard())
}

// Encode serializes doc, keeping the registry's alias order
func Encode(doc *Document, format Format) ([]byte, error) {
	return encode(doc, format.resolve(""))
}

func decode(data []byte, format Format, logger *log.Logger) (*Document, error) {
	var (
		file  fileDocument
		order []string
		err   error
	)

	switch format {
	case FormatYAML:
		order, err = decodeYAML(data, &file)
	default:
		order, err = decodeTOML(data, &file, logger)
	}
	if err != nil {
		return nil, err
	}

	doc := &Document{
		DefaultShell: file.DefaultShell,
		Scripts:      registry.New(registry.Options{Logger: logger}),
	}

	for _, key := range order {
		rec := file.Scripts[key]
		if err := validateRecord(key, rec); err != nil {
			return nil, err
		}
		if err := doc.Scripts.Add(rec.script(), false); err != nil {
			return nil, parseError(err, "invalid script entry").WithDetail("alias", key)
		}
	}

	return doc, nil
}

func decodeTOML(data []byte, file *fileDocument, logger *log.Logger) ([]string, error) {
	md, err := toml.Decode(string(data), file)
	if err != nil {
		perr := parseError(err, "TOML parse error")
		var tomlErr toml.ParseError
		if errors.As(err, &tomlErr) {
			perr = perr.WithDetail("line", tomlErr.Position.Line)
		}
		return nil, perr
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Debug("ignoring unknown config keys", log.Fields{"keys": strings.Join(keys, ",")})
	}

	// MetaData keys come in document order. Tables give ["scripts", alias],
	// dotted keys only give longer paths, so any key below "scripts" counts.
	var order []string
	seen := make(map[string]bool, len(file.Scripts))
	for _, key := range md.Keys() {
		if len(key) < 2 || key[0] != "scripts" || seen[key[1]] {
			continue
		}
		if _, ok := file.Scripts[key[1]]; ok {
			seen[key[1]] = true
			order = append(order, key[1])
		}
	}

	// Every decoded record must reach the registry, otherwise the next
	// write drops it.
	var rest []string
	for alias := range file.Scripts {
		if !seen[alias] {
			rest = append(rest, alias)
		}
	}
	sort.Strings(rest)
	return append(order, rest...), nil
}

func decodeYAML(data []byte, file *fileDocument) ([]string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, parseError(err, "YAML parse error")
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	var order []string
	top := root.Content[0]
	for i := 0; top.Kind == yaml.MappingNode && i+1 < len(top.Content); i += 2 {
		if top.Content[i].Value != "scripts" {
			continue
		}
		scripts := top.Content[i+1]
		if scripts.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j+1 < len(scripts.Content); j += 2 {
			key := scripts.Content[j]
			if key.ShortTag() == "!!merge" {
				return nil, parseError(nil, "merge keys (<<) are not supported under scripts").
					WithDetail("line", key.Line)
			}
			order = append(order, key.Value)
		}
	}

	if err := root.Decode(file); err != nil {
		return nil, parseError(err, "YAML parse error")
	}
	return order, nil
}

func validateRecord(key string, rec scriptRecord) error {
	switch {
	case rec.Alias == "":
		return parseError(nil, fmt.Sprintf("script %q is missing the alias field", key)).WithDetail("alias", key)
	case rec.Command == "":
		return parseError(nil, fmt.Sprintf("script %q is missing the command field", key)).WithDetail("alias", key)
	case rec.Alias != key:
		return parseError(nil, fmt.Sprintf("script %q declares alias %q", key, rec.Alias)).WithDetail("alias", key)
	}
	return nil
}

func encode(doc *Document, format Format) ([]byte, error) {
	if doc == nil {
		doc = NewDocument()
	}

	switch format {
	case FormatYAML:
		return encodeYAML(doc)
	default:
		return encodeTOML(doc)
	}
}

// encodeTOML writes one [scripts.<alias>] table per script. The encoder sorts
// map keys, so tables are emitted by hand to keep registry order.
func encodeTOML(doc *Document) ([]byte, error) {
	var buf bytes.Buffer

	if doc.DefaultShell != "" {
		if err := toml.NewEncoder(&buf).Encode(fileHeader{DefaultShell: doc.DefaultShell}); err != nil {
			return nil, err
		}
	}

	for _, s := range doc.Scripts.Scripts() {
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "[scripts.%s]\n", tomlKey(s.Alias))
		if err := toml.NewEncoder(&buf).Encode(recordFromScript(s)); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

func encodeYAML(doc *Document) ([]byte, error) {
	scripts := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range doc.Scripts.Scripts() {
		value := &yaml.Node{}
		if err := value.Encode(recordFromScript(s)); err != nil {
			return nil, err
		}
		scripts.Content = append(scripts.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Alias},
			value,
		)
	}

	top := &yaml.Node{Kind: yaml.MappingNode}
	if doc.DefaultShell != "" {
		top.Content = append(top.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "default_shell"},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: doc.DefaultShell},
		)
	}
	top.Content = append(top.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "scripts"},
		scripts,
	)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(top); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// tomlKey returns key as a bare key when possible, else as a quoted key
func tomlKey(key string) string {
	bare := key != ""
	for _, r := range key {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-') {
			bare = false
			break
		}
	}
	if bare {
		return key
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, r := range key {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\u%04X`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func parseError(cause error, message string) *mdwerror.Error {
	var err *mdwerror.Error
	if cause != nil {
		err = mdwerror.Wrap(cause, message)
	} else {
		err = mdwerror.New(message)
	}
	return err.WithCode(mdwerror.CodeTomlParse).WithOperation("store.Decode")
}
