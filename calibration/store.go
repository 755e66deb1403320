package calibration

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrProfileNotFound reports that no calibration exists for the
// requested (printer, paper) key. It is an expected condition, not a
// failure; callers typically proceed uncalibrated and surface the
// fact.
var ErrProfileNotFound = errors.New("calibration profile not found")

// Store loads calibration profiles by (printer, paper) key.
type Store interface {
	Load(printerID, paperType string) (Profile, error)
}

// FileStore persists one JSON profile file per (printer, paper) key
// inside a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// profilePath builds the file path for a key. Key components are
// flattened so they cannot escape the store directory.
func (s *FileStore) profilePath(printerID, paperType string) string {
	clean := func(v string) string {
		v = strings.ReplaceAll(v, string(os.PathSeparator), "-")
		return strings.ReplaceAll(v, "/", "-")
	}
	name := fmt.Sprintf("%s__%s.json", clean(printerID), clean(paperType))
	return filepath.Join(s.dir, name)
}

// Load implements Store. A missing file maps to ErrProfileNotFound.
func (s *FileStore) Load(printerID, paperType string) (Profile, error) {
	data, err := os.ReadFile(s.profilePath(printerID, paperType))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Profile{}, fmt.Errorf("%w: %s/%s", ErrProfileNotFound, printerID, paperType)
		}
		return Profile{}, fmt.Errorf("failed to read calibration profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to parse calibration profile %s/%s: %w", printerID, paperType, err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// Save writes the profile to its key's file, creating the store
// directory if needed.
func (s *FileStore) Save(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create calibration store: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode calibration profile: %w", err)
	}

	path := s.profilePath(p.PrinterID, p.PaperType)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write calibration profile: %w", err)
	}
	return nil
}
