package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// NodeRecord is one node of a snapshot file. It mirrors the export format of
// the hierarchy source: node_key carries the dotted code, hier_id and
// parent_id the source's numeric identifiers.
type NodeRecord struct {
	ID       string        `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string        `json:"name" yaml:"name"`
	Type     string        `json:"type" yaml:"type"`
	HierID   *int          `json:"hier_id" yaml:"hier_id"`
	Depth    *int          `json:"depth" yaml:"depth"`
	NodeKey  *string       `json:"node_key" yaml:"node_key"`
	Code     string        `json:"code,omitempty" yaml:"code,omitempty"`
	ParentID *int          `json:"parent_id" yaml:"parent_id"`
	Children []*NodeRecord `json:"children,omitempty" yaml:"children,omitempty"`
}

// envelope accepts both a bare root object and one wrapped as {"tree": ...}.
type envelope struct {
	Tree       *NodeRecord `json:"tree,omitempty" yaml:"tree,omitempty"`
	NodeRecord `yaml:",inline"`
}

// Format selects the snapshot encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for snapshot paths with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown snapshot format")

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w (expected .json, .yaml or .yml)", path, ErrUnknownFormat)
	}
}

// Decode reads one snapshot document.
func Decode(r io.Reader, format Format) (*NodeRecord, error) {
	var env envelope
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&env); err != nil {
			return nil, fmt.Errorf("parsing snapshot: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&env); err != nil {
			return nil, fmt.Errorf("parsing snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if env.Tree != nil {
		return env.Tree, nil
	}
	return &env.NodeRecord, nil
}

// Load reads and parses a snapshot file.
func Load(path string) (*NodeRecord, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, format)
}

// Encode writes rec as an indented document.
func Encode(w io.Writer, rec *NodeRecord, format Format) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding snapshot: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding snapshot: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// Save writes rec to path, creating parent directories as needed.
func Save(path string, rec *NodeRecord) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	if err := Encode(f, rec, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
