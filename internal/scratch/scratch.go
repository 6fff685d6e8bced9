// Package scratch persists the small JSON files that hand state between
// independently launched suites: the created project's identifiers and
// the last visited URL. Each file is written once by a producer suite
// and read once by a consumer suite; the consumer validates the schema
// on read instead of assuming an earlier run completed.
package scratch

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SchemaVersion is bumped whenever a scratch file's shape changes, so a
// consumer from a newer build fails loudly instead of misreading stale data.
const SchemaVersion = 1

const (
	projectDataFile = "projectData.json"
	lastVisitedFile = "lastVisitedUrl.json"
)

// ErrMissingHandoff reports that a prerequisite scratch file was never
// produced, which aborts the dependent suite before any scenario runs.
var ErrMissingHandoff = errors.New("scratch handoff file not found")

// ProjectRecord is the handoff written by the project-creation suite and
// consumed by the job suite to locate the project by name.
type ProjectRecord struct {
	SchemaVersion int       `json:"schemaVersion" validate:"eq=1"`
	RunID         string    `json:"runId" validate:"required,uuid4"`
	ProjectName   string    `json:"projectName" validate:"required"`
	Description   string    `json:"description" validate:"required"`
	CreatedAt     time.Time `json:"createdAt" validate:"required"`
}

// LastVisited is the handoff written at the end of the job suite so the
// award suite can resume deep in the application without re-navigating.
type LastVisited struct {
	SchemaVersion int    `json:"schemaVersion" validate:"eq=1"`
	RunID         string `json:"runId" validate:"required,uuid4"`
	LastURL       string `json:"lastUrl" validate:"required,url"`
}

// Store reads and writes scratch files under a single data directory.
type Store struct {
	dir      string
	validate *validator.Validate
}

// NewStore creates a scratch store rooted at dir. The directory is
// created lazily on first write.
func NewStore(dir string) *Store {
	return &Store{
		dir:      dir,
		validate: validator.New(),
	}
}

// ProjectDataPath returns the path of the project handoff file.
func (s *Store) ProjectDataPath() string {
	return filepath.Join(s.dir, projectDataFile)
}

// LastVisitedPath returns the path of the last-visited-URL handoff file.
func (s *Store) LastVisitedPath() string {
	return filepath.Join(s.dir, lastVisitedFile)
}

// SaveProject persists the created project's identifiers. The schema
// version, run ID and creation timestamp are stamped here so producers
// only supply the business fields.
func (s *Store) SaveProject(projectName, description string) (*ProjectRecord, error) {
	record := &ProjectRecord{
		SchemaVersion: SchemaVersion,
		RunID:         uuid.NewString(),
		ProjectName:   projectName,
		Description:   description,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.validate.Struct(record); err != nil {
		return nil, fmt.Errorf("project record is not a valid handoff: %w", err)
	}
	if err := s.write(s.ProjectDataPath(), record); err != nil {
		return nil, err
	}

	return record, nil
}

// LoadProject reads and validates the project handoff written by an
// earlier run. A missing file is reported as ErrMissingHandoff.
func (s *Store) LoadProject() (*ProjectRecord, error) {
	var record ProjectRecord
	if err := s.read(s.ProjectDataPath(), &record); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(&record); err != nil {
		return nil, fmt.Errorf("project handoff %s failed validation: %w", s.ProjectDataPath(), err)
	}
	return &record, nil
}

// SaveLastVisited persists the URL the next suite should resume from.
func (s *Store) SaveLastVisited(url string) (*LastVisited, error) {
	record := &LastVisited{
		SchemaVersion: SchemaVersion,
		RunID:         uuid.NewString(),
		LastURL:       url,
	}

	if err := s.validate.Struct(record); err != nil {
		return nil, fmt.Errorf("last-visited record is not a valid handoff: %w", err)
	}
	if err := s.write(s.LastVisitedPath(), record); err != nil {
		return nil, err
	}

	return record, nil
}

// LoadLastVisited reads and validates the last-visited-URL handoff.
func (s *Store) LoadLastVisited() (*LastVisited, error) {
	var record LastVisited
	if err := s.read(s.LastVisitedPath(), &record); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(&record); err != nil {
		return nil, fmt.Errorf("last-visited handoff %s failed validation: %w", s.LastVisitedPath(), err)
	}
	return &record, nil
}

// Clean removes all scratch files, leaving the directory in place.
func (s *Store) Clean() error {
	for _, path := range []string{s.ProjectDataPath(), s.LastVisitedPath()} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}

func (s *Store) write(path string, record any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create scratch directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scratch record: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scratch file %s: %w", path, err)
	}
	return nil
}

func (s *Store) read(path string, record any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s (did the producing suite run?)", ErrMissingHandoff, path)
	}
	if err != nil {
		return fmt.Errorf("failed to read scratch file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, record); err != nil {
		return fmt.Errorf("failed to parse scratch file %s: %w", path, err)
	}
	return nil
}
