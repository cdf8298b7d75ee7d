// Package config loads and writes the YAML time-period configuration.
package config

import (
	"bytes"
	_ "embed"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hpungsan/nametimeperiod/internal/errors"
	"github.com/hpungsan/nametimeperiod/internal/period"
)

// SystemPath is the system-wide configuration file. It is only ever read.
const SystemPath = "/etc/NameTimePeriod/time_periods.yaml"

// userRelPath is the per-user configuration file, relative to the home directory.
const userRelPath = ".config/NameTimePeriod/time_periods.yaml"

// rootKey is the top-level key holding the period sequence.
const rootKey = "TimePeriods"

// DefaultYAML is the bundled default configuration written by --init and
// on first run.
//
//go:embed default.yaml
var DefaultYAML []byte

// Paths locates the configuration sources.
type Paths struct {
	// System is the read-only, machine-wide file.
	System string

	// User is the per-user file. Empty when the home directory is unknown.
	User string
}

// UserPath returns the per-user configuration path under home.
func UserPath(home string) string {
	return filepath.Join(home, userRelPath)
}

// DefaultPaths returns the system path and the current user's path.
// If the home directory cannot be determined, User is empty and an error is
// returned alongside the usable Paths.
func DefaultPaths() (Paths, error) {
	paths := Paths{System: SystemPath}
	home, err := os.UserHomeDir()
	if err != nil {
		return paths, fmt.Errorf("could not determine home directory: %w", err)
	}
	paths.User = UserPath(home)
	return paths, nil
}

// entry is the serialized form of a single period.
// Pointers distinguish missing fields from zero values.
type entry struct {
	Date       string `yaml:"Date"`
	DaysBefore *int   `yaml:"DaysBefore"`
	DaysAfter  *int   `yaml:"DaysAfter"`
	Comment    string `yaml:"Comment,omitempty"`
}

// LoadFile reads periods from path in document order.
// A missing file yields an empty list and no error.
func LoadFile(path string) (period.List, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.NewConfigRead(path, err)
	}

	list, err := Decode(data)
	if err != nil {
		return nil, errors.NewConfigRead(path, err)
	}
	return list, nil
}

// LoadMerged concatenates the user periods followed by the system periods.
// Since the first matching period wins, user entries override system ones.
// Unreadable sources are logged and treated as empty.
func LoadMerged(paths Paths) period.List {
	var merged period.List
	for _, path := range []string{paths.User, paths.System} {
		list, err := LoadFile(path)
		if err != nil {
			slog.Debug("ignoring config file", slog.String("path", path), slog.Any("error", err))
			continue
		}
		slog.Debug("loaded config file", slog.String("path", path), slog.Int("periods", len(list)))
		merged = append(merged, list...)
	}
	return merged
}

// Decode parses a configuration document. Entries that are not well-formed
// are skipped; an error is returned only when the document itself cannot be
// parsed or TimePeriods is not a sequence.
func Decode(data []byte) (period.List, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping at document root, got %s", kindName(root.Kind))
	}

	seq := lookup(root, rootKey)
	if seq == nil || seq.Tag == "!!null" {
		return nil, nil
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%s must be a sequence, got %s", rootKey, kindName(seq.Kind))
	}

	list := make(period.List, 0, len(seq.Content))
	for i, item := range seq.Content {
		p, err := decodeEntry(item)
		if err != nil {
			slog.Debug("skipping malformed period", slog.Int("index", i), slog.Int("line", item.Line), slog.Any("error", err))
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

// decodeEntry converts a `- Name: {Date, DaysBefore, DaysAfter}` item.
func decodeEntry(item *yaml.Node) (period.Named, error) {
	if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
		return period.Named{}, fmt.Errorf("entry must be a mapping with exactly one name")
	}

	key, value := item.Content[0], item.Content[1]
	name := strings.TrimSpace(key.Value)
	if key.Kind != yaml.ScalarNode || name == "" {
		return period.Named{}, fmt.Errorf("entry name must be a non-empty string")
	}
	if value.Kind != yaml.MappingNode {
		return period.Named{}, fmt.Errorf("period %q must be a mapping", name)
	}

	var e entry
	if err := value.Decode(&e); err != nil {
		return period.Named{}, fmt.Errorf("period %q: %w", name, err)
	}

	anchor := strings.TrimSpace(e.Date)
	switch {
	case anchor == "":
		return period.Named{}, fmt.Errorf("period %q: Date is required", name)
	case e.DaysBefore == nil:
		return period.Named{}, fmt.Errorf("period %q: DaysBefore is required", name)
	case e.DaysAfter == nil:
		return period.Named{}, fmt.Errorf("period %q: DaysAfter is required", name)
	case *e.DaysBefore < 0 || *e.DaysAfter < 0:
		return period.Named{}, fmt.Errorf("period %q: DaysBefore and DaysAfter must be non-negative", name)
	}

	return period.Named{
		Name: name,
		Spec: period.Spec{
			Anchor:     anchor,
			DaysBefore: *e.DaysBefore,
			DaysAfter:  *e.DaysAfter,
			Comment:    e.Comment,
		},
	}, nil
}

// Encode renders list as a configuration document that Decode reads back
// to the same list.
func Encode(list period.List) ([]byte, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, p := range list {
		before, after := p.Spec.DaysBefore, p.Spec.DaysAfter
		value := &yaml.Node{}
		if err := value.Encode(entry{
			Date:       p.Spec.Anchor,
			DaysBefore: &before,
			DaysAfter:  &after,
			Comment:    p.Spec.Comment,
		}); err != nil {
			return nil, fmt.Errorf("encode period %q: %w", p.Name, err)
		}
		seq.Content = append(seq.Content, &yaml.Node{
			Kind: yaml.MappingNode,
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Name},
				value,
			},
		})
	}

	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: rootKey},
			seq,
		},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDefault writes DefaultYAML to path, creating parent directories.
// Unless force is set, an existing file is left untouched and written is false.
func WriteDefault(path string, force bool) (written bool, err error) {
	if path == "" {
		return false, errors.NewConfigWrite(path, fmt.Errorf("no user config path"))
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, errors.NewConfigWrite(path, err)
	}
	if err := os.WriteFile(path, DefaultYAML, 0644); err != nil {
		return false, errors.NewConfigWrite(path, err)
	}
	return true, nil
}

// lookup returns the value for key in a mapping node, or nil.
func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
