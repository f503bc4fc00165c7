package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Format is a history export encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts json, yaml/yml and toml
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", s)
	}
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatTOML:
		return "application/toml"
	default:
		return "application/json"
	}
}

// Document is the exported form of the history log
type Document struct {
	Exported string   `json:"exported" yaml:"exported" toml:"exported"`
	Count    int      `json:"count" yaml:"count" toml:"count"`
	Entries  []Record `json:"entries" yaml:"entries" toml:"entries"`
}

// Record is one exported entry
type Record struct {
	ID         string  `json:"id" yaml:"id" toml:"id"`
	Expression string  `json:"expression" yaml:"expression" toml:"expression"`
	Unit       string  `json:"unit" yaml:"unit" toml:"unit"`
	Precision  int     `json:"precision" yaml:"precision" toml:"precision"`
	Result     float64 `json:"result" yaml:"result" toml:"result"`
	Text       string  `json:"text" yaml:"text" toml:"text"`
	CreatedAt  string  `json:"created_at" yaml:"created_at" toml:"created_at"`
}

// Export serializes the whole log in the requested format
func (s *Store) Export(ctx context.Context, format Format) ([]byte, error) {
	entries, err := s.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	return Encode(entries, format, time.Now().UTC())
}

// Encode serializes entries as a Document stamped with now
func Encode(entries []Entry, format Format, now time.Time) ([]byte, error) {
	doc := Document{
		Exported: now.Format(time.RFC3339),
		Count:    len(entries),
		Entries:  make([]Record, 0, len(entries)),
	}
	for _, e := range entries {
		doc.Entries = append(doc.Entries, Record{
			ID:         e.ID,
			Expression: e.Expression,
			Unit:       e.Unit,
			Precision:  e.Precision,
			Result:     e.Result,
			Text:       e.String(),
			CreatedAt:  e.CreatedAt.Format(time.RFC3339Nano),
		})
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = sonic.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	case FormatTOML:
		data, err = toml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return data, nil
}
