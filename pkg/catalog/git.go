package catalog

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/memory"
)

// GitSource locates a catalog document in a Git repository.
type GitSource struct {
	// Repository is the clone URL.
	Repository string

	// Branch is the branch to read. Empty means "main".
	Branch string

	// Path is the document's slash-separated path inside the repository.
	Path string

	// Token authenticates HTTPS clones. Empty clones anonymously.
	Token string

	// Timeout bounds the clone. Zero means no extra bound beyond ctx.
	Timeout time.Duration
}

// LoadGit shallow-clones the branch into memory and parses the document at
// src.Path from its head commit. Nothing is written to disk.
func LoadGit(ctx context.Context, src GitSource) (*Catalog, error) {
	if src.Repository == "" {
		return nil, errors.New("git catalog: repository URL cannot be empty")
	}
	if src.Path == "" {
		return nil, errors.New("git catalog: path cannot be empty")
	}

	branch := src.Branch
	if branch == "" {
		branch = "main"
	}

	opts := &gogit.CloneOptions{
		URL:           src.Repository,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
		SingleBranch:  true,
		Depth:         1,
		Tags:          gogit.NoTags,
	}
	if src.Token != "" {
		// GitHub and GitLab accept any non-empty username with a token
		opts.Auth = &http.BasicAuth{Username: "tokenscope", Password: src.Token}
	}

	if src.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, src.Timeout)
		defer cancel()
	}

	repo, err := gogit.CloneContext(ctx, memory.NewStorage(), nil, opts)
	if err != nil {
		return nil, fmt.Errorf("git catalog: failed to clone %s@%s: %w", src.Repository, branch, err)
	}

	data, err := readHeadFile(repo, src.Path)
	if err != nil {
		return nil, fmt.Errorf("git catalog: %w", err)
	}

	c, err := Parse(data, path.Ext(src.Path))
	if err != nil {
		return nil, fmt.Errorf("git catalog %s: %w", src.Path, err)
	}
	return c, nil
}

// readHeadFile returns the contents of name in the HEAD commit of repo.
func readHeadFile(repo *gogit.Repository, name string) ([]byte, error) {
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to read commit %s: %w", head.Hash(), err)
	}

	file, err := commit.File(strings.TrimPrefix(name, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to find %s in commit %s: %w", name, head.Hash(), err)
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return []byte(contents), nil
}
