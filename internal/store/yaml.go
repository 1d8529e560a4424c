package store

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/winexplorer/backend/internal/domain/item"
)

// yamlDocument is the top-level shape of a YAML catalog file:
//
//	items:
//	  - id: root
//	    name: This PC
//	    type: folder
//	    modified: 2024-12-01T09:00:00Z
type yamlDocument struct {
	Items []item.Item `yaml:"items"`
}

// YAMLFile reads and writes a catalog as a YAML document.
type YAMLFile struct {
	path string
}

func NewYAMLFile(path string) *YAMLFile {
	return &YAMLFile{path: path}
}

func (f *YAMLFile) Load(context.Context) ([]item.Item, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return doc.Items, nil
}

func (f *YAMLFile) Save(_ context.Context, items []item.Item) error {
	out := make([]item.Item, len(items))
	for i, it := range items {
		out[i] = *it.Clone()
		out[i].Path = ""
	}
	data, err := yaml.Marshal(yamlDocument{Items: out})
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}
	return os.WriteFile(f.path, data, 0o644)
}
