// Package batch accumulates encoded key pair records in generation order and
// persists them as a single document.
package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/smallyu/go-grumpkin-keygen/pkg/keypair"
)

// Format is the on-disk document format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. The empty string means "infer from path".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "":
		return "", nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q (must be json or yaml)", s)
}

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Batch is an ordered sequence of records owned by a single generation pass.
// It is not safe for concurrent use.
type Batch struct {
	records []keypair.Record
}

// New creates an empty batch with room for capacity records.
func New(capacity int) *Batch {
	return &Batch{records: make([]keypair.Record, 0, capacity)}
}

// Append adds r after every record already in the batch.
func (b *Batch) Append(r keypair.Record) {
	b.records = append(b.records, r)
}

// Len returns the number of records accumulated so far.
func (b *Batch) Len() int {
	return len(b.records)
}

// Records returns a copy of the records in generation order.
func (b *Batch) Records() []keypair.Record {
	out := make([]keypair.Record, len(b.records))
	copy(out, b.records)
	return out
}

// Marshal serializes records as a pretty-printed array.
func Marshal(records []keypair.Record, format Format) ([]byte, error) {
	if records == nil {
		records = []keypair.Record{}
	}
	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", keypair.ErrSerialization, err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return nil, fmt.Errorf("%w: %v", keypair.ErrSerialization, err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("%w: %v", keypair.ErrSerialization, err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: unsupported format %q", keypair.ErrSerialization, format)
}

// Unmarshal parses a document produced by Marshal.
func Unmarshal(data []byte, format Format) ([]keypair.Record, error) {
	var records []keypair.Record
	var err error
	switch format {
	case FormatJSON, "":
		err = json.Unmarshal(data, &records)
	case FormatYAML:
		err = yaml.Unmarshal(data, &records)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", keypair.ErrSerialization, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keypair.ErrMalformedRecord, err)
	}
	return records, nil
}

// WriteFile serializes the batch and writes it to path. The file is created
// or truncated; a failed write leaves no valid output.
// An empty format is inferred from the path.
func (b *Batch) WriteFile(path string, format Format) error {
	if format == "" {
		format = FormatFromPath(path)
	}
	data, err := Marshal(b.records, format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", keypair.ErrIO, path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %v", keypair.ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", keypair.ErrIO, path, err)
	}
	return nil
}

// ReadFile loads records written by WriteFile.
// An empty format is inferred from the path.
func ReadFile(path string, format Format) ([]keypair.Record, error) {
	if format == "" {
		format = FormatFromPath(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", keypair.ErrIO, path, err)
	}
	return Unmarshal(data, format)
}
