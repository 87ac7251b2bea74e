package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// SyncSuite clones (or updates) a conformance suite repository into
// cacheDir/suites and returns the checked-out directory. An empty rev tracks
// the remote default branch; otherwise the named revision (commit hash, tag,
// or branch) is resolved and checked out, giving reproducible suite runs.
func SyncSuite(cacheDir, url, rev string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("suite sync: empty repository URL")
	}
	dest := filepath.Join(cacheDir, "suites", sanitizeURL(url))

	repo, err := git.PlainOpen(dest)
	switch {
	case err == nil:
		worktree, wtErr := repo.Worktree()
		if wtErr != nil {
			return "", fmt.Errorf("suite sync: worktree %s: %w", dest, wtErr)
		}
		pullErr := worktree.Pull(&git.PullOptions{RemoteName: "origin"})
		if pullErr != nil && !errors.Is(pullErr, git.NoErrAlreadyUpToDate) && !errors.Is(pullErr, git.ErrNonFastForwardUpdate) {
			return "", fmt.Errorf("suite sync: pull %s: %w", url, pullErr)
		}
	case errors.Is(err, git.ErrRepositoryNotExists):
		if mkErr := os.MkdirAll(filepath.Dir(dest), 0o755); mkErr != nil {
			return "", fmt.Errorf("suite sync: create cache dir: %w", mkErr)
		}
		repo, err = git.PlainClone(dest, false, &git.CloneOptions{URL: url})
		if err != nil {
			return "", fmt.Errorf("suite sync: clone %s: %w", url, err)
		}
	default:
		return "", fmt.Errorf("suite sync: open %s: %w", dest, err)
	}

	if rev != "" {
		if err := checkoutRevision(repo, rev); err != nil {
			return "", fmt.Errorf("suite sync: checkout %s@%s: %w", url, rev, err)
		}
	}
	return dest, nil
}

func checkoutRevision(repo *git.Repository, rev string) error {
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return err
	}
	return worktree.Checkout(&git.CheckoutOptions{Hash: *hash})
}

// sanitizeURL flattens a repository URL into a cache directory name.
func sanitizeURL(url string) string {
	trimmed := strings.TrimSuffix(url, ".git")
	for _, prefix := range []string{"https://", "http://", "ssh://", "git://", "file://"} {
		trimmed = strings.TrimPrefix(trimmed, prefix)
	}
	var b strings.Builder
	for _, r := range trimmed {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
