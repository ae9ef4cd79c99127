package baseline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fedretire/extract-baseline/pkg/baseline/models"
)

// LoadDocument reads the baseline at path. A missing file yields the
// default document; a file that is not a valid baseline is an error.
func LoadDocument(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return models.NewDocument(), nil
	}
	if err != nil {
		return nil, err
	}

	if err := ValidateDocument(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrInvalidBaseline, err)
	}
	if doc.Scenarios == nil {
		doc.Scenarios = make(map[string]json.RawMessage)
	}
	return &doc, nil
}

// MarshalIndented renders v as two-space indented JSON with a trailing
// newline and without HTML escaping.
func MarshalIndented(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveDocument validates doc and writes it to path, creating parent
// directories. The file is replaced atomically via a sibling temp file.
func SaveDocument(path string, doc *models.Document) error {
	data, err := MarshalIndented(doc)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if err := ValidateDocument(data); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Merge stores record under name in the baseline at path, keeping every
// other scenario entry as it was.
func Merge(path, name string, record *models.ScenarioRecord) error {
	doc, err := LoadDocument(path)
	if err != nil {
		return err
	}
	if err := doc.Put(name, record); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return SaveDocument(path, doc)
}
