package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents a hasher.yaml configuration file. Keys are dotted,
// flat names rather than nested mappings.
type Config struct {
	Extensions List   `yaml:"file.extensions,omitempty"`
	Mode       string `yaml:"digest.mode,omitempty"` // "generate", "validate", anything else = both
	Types      List   `yaml:"digest.types,omitempty"`
}

// List is a string list written either as a comma-separated scalar
// (".txt,.zip") or as a YAML sequence. Entries are trimmed and blank
// entries dropped.
type List []string

// ParseList splits a comma-separated string into a List.
func ParseList(s string) List {
	var l List
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			l = append(l, item)
		}
	}
	return l
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *List) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*l = ParseList(value.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = ParseList(strings.Join(items, ","))
		return nil
	default:
		return fmt.Errorf("line %d: expected a comma-separated string or a list", value.Line)
	}
}

// String returns the comma-separated form.
func (l List) String() string {
	return strings.Join(l, ",")
}
