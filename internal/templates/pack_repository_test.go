package templates

import (
	"path/filepath"
	"testing"

	"github.com/gofloorplan/editor/internal/utilities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthor() utilities.AuthorConfiguration {
	return utilities.AuthorConfiguration{User: "Test Author", Email: "test@example.com"}
}

func TestPackRepositoryStoreAndLoad(t *testing.T) {
	repoPath := filepath.Join(t.TempDir(), "packs")
	repo, err := OpenPackRepository(repoPath, testAuthor())
	require.NoError(t, err)
	defer repo.Close()

	pack := PackData{
		Name:      "starter",
		Version:   "1.0",
		Templates: DefaultCatalog(),
		Library:   FurnitureLibrary(),
	}
	require.NoError(t, repo.Store(pack))

	loaded, err := repo.Load("starter")
	require.NoError(t, err)
	assert.Equal(t, "starter", loaded.Name)
	assert.Len(t, loaded.Templates, len(pack.Templates))
	assert.Len(t, loaded.Library, len(pack.Library))
	assert.NotEmpty(t, loaded.Metadata["last_updated"])
}

func TestPackRepositoryLoadMissingPackFails(t *testing.T) {
	repoPath := filepath.Join(t.TempDir(), "packs")
	repo, err := OpenPackRepository(repoPath, testAuthor())
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.Load("does-not-exist")
	assert.Error(t, err)
}

func TestPackRepositoryHistoryGrowsWithUpdates(t *testing.T) {
	repoPath := filepath.Join(t.TempDir(), "packs")
	repo, err := OpenPackRepository(repoPath, testAuthor())
	require.NoError(t, err)
	defer repo.Close()

	pack := PackData{Name: "evolving", Version: "1.0", Templates: DefaultCatalog()}
	require.NoError(t, repo.Store(pack))

	pack.Version = "1.1"
	pack.Templates = append(pack.Templates, TemplateDefinition{Name: "Custom", Shape: ShapeRectangle, Params: Params{Width: 10, Depth: 10, WallThickness: 0.5}})
	require.NoError(t, repo.Store(pack))

	history, err := repo.History("evolving", 0)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
