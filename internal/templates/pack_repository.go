package templates

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofloorplan/editor/internal/utilities"
)

// PackData is the on-disk, versioned form of a template pack: a named
// set of room templates and furniture library entries a team can share
// and evolve via ordinary git history, stored as a JSON document with
// name, version, templates, library and metadata fields.
type PackData struct {
	Name      string               `json:"name"`
	Version   string               `json:"version"`
	Templates []TemplateDefinition `json:"templates"`
	Library   []LibraryItem        `json:"library"`
	Metadata  map[string]string    `json:"metadata"`
}

// PackRepository persists named template packs as JSON files inside a
// git-backed repository, committing each Store as its own revision so
// a pack's history can be inspected or rolled back.
type PackRepository struct {
	repo utilities.Repository
}

// OpenPackRepository initializes (or opens) a git repository at path
// for versioned template pack storage.
func OpenPackRepository(path string, author utilities.AuthorConfiguration) (*PackRepository, error) {
	repo, err := utilities.InitializeRepositoryWithConfig(path, &author)
	if err != nil {
		return nil, fmt.Errorf("pack_repository: failed to open repository at %s: %w", path, err)
	}

	validation, err := repo.ValidateRepositoryAndPaths(utilities.RepositoryValidationRequest{})
	if err != nil || !validation.RepositoryValid {
		return nil, fmt.Errorf("pack_repository: repository at %s failed validation: %s", path, validation.ErrorMessage)
	}

	return &PackRepository{repo: repo}, nil
}

func packPath(repo utilities.Repository, name string) (dir, file string) {
	dir = filepath.Join(repo.Path(), ".floorplan", "packs")
	file = filepath.Join(dir, name+".json")
	return
}

// Load reads the named pack, or returns an error if it has never been
// stored.
func (r *PackRepository) Load(name string) (PackData, error) {
	_, file := packPath(r.repo, name)

	content, err := os.ReadFile(file)
	if err != nil {
		return PackData{}, fmt.Errorf("pack_repository: failed to read pack %s: %w", name, err)
	}

	var data PackData
	if err := json.Unmarshal(content, &data); err != nil {
		return PackData{}, fmt.Errorf("pack_repository: failed to parse pack %s: %w", name, err)
	}
	return data, nil
}

// Store writes pack to disk, stages it, and commits it under the
// repository's configured author.
func (r *PackRepository) Store(pack PackData) error {
	if pack.Name == "" {
		return fmt.Errorf("pack_repository: pack name cannot be empty")
	}

	if pack.Metadata == nil {
		pack.Metadata = make(map[string]string)
	}
	pack.Metadata["last_updated"] = time.Now().UTC().Format(time.RFC3339)

	content, err := json.MarshalIndent(pack, "", "  ")
	if err != nil {
		return fmt.Errorf("pack_repository: failed to serialize pack %s: %w", pack.Name, err)
	}

	dir, file := packPath(r.repo, pack.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("pack_repository: failed to create pack directory: %w", err)
	}
	if err := os.WriteFile(file, content, 0644); err != nil {
		return fmt.Errorf("pack_repository: failed to write pack %s: %w", pack.Name, err)
	}

	relative, err := filepath.Rel(r.repo.Path(), file)
	if err != nil {
		return fmt.Errorf("pack_repository: failed to resolve pack path: %w", err)
	}
	if err := r.repo.Stage([]string{relative}); err != nil {
		return fmt.Errorf("pack_repository: failed to stage pack %s: %w", pack.Name, err)
	}

	if _, err := r.repo.Commit(fmt.Sprintf("Update template pack: %s", pack.Name)); err != nil {
		return fmt.Errorf("pack_repository: failed to commit pack %s: %w", pack.Name, err)
	}
	return nil
}

// History returns up to limit commits that touched the named pack,
// most recent first (limit<=0 means unlimited).
func (r *PackRepository) History(name string, limit int) ([]utilities.CommitInfo, error) {
	_, file := packPath(r.repo, name)
	relative, err := filepath.Rel(r.repo.Path(), file)
	if err != nil {
		return nil, fmt.Errorf("pack_repository: failed to resolve pack path: %w", err)
	}
	return r.repo.GetFileHistory(relative, limit)
}

// Close releases the underlying repository handle.
func (r *PackRepository) Close() error {
	return r.repo.Close()
}
