package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blinkdeploys/tokenscope/pkg/config"
)

func commitFile(t *testing.T, name, content string) *gogit.Repository {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	full := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(name)
	require.NoError(t, err)
	_, err = wt.Commit("add prices", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return repo
}

func TestReadHeadFile(t *testing.T) {
	repo := commitFile(t, "prices/catalog.yaml", yamlDoc)

	data, err := readHeadFile(repo, "prices/catalog.yaml")
	require.NoError(t, err)

	c, err := Parse(data, ".yaml")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	_, err = readHeadFile(repo, "/prices/catalog.yaml")
	assert.NoError(t, err)

	_, err = readHeadFile(repo, "prices/missing.yaml")
	assert.ErrorContains(t, err, "prices/missing.yaml")
}

func TestLoadGit_Validation(t *testing.T) {
	_, err := LoadGit(context.Background(), GitSource{Path: "prices.yaml"})
	assert.ErrorContains(t, err, "repository URL cannot be empty")

	_, err = LoadGit(context.Background(), GitSource{Repository: "https://example.com/prices.git"})
	assert.ErrorContains(t, err, "path cannot be empty")
}

func TestOpen_GitNeedsConfig(t *testing.T) {
	_, err := Open(context.Background(), SourceGit, "prices.yaml")
	assert.Error(t, err)
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()

	c, err := FromConfig(context.Background(), &cfg.Catalog)
	require.NoError(t, err)
	assert.Equal(t, Default().Len(), c.Len())

	cfg.Catalog.Source = SourceGit
	_, err = FromConfig(context.Background(), &cfg.Catalog)
	assert.ErrorContains(t, err, "repository URL cannot be empty")
}
