package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHashFromPath(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	// no HEAD before the first commit
	assert.Equal(t, "", computeHashFromPath(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("bench\n"), 0644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README")
	require.NoError(t, err)
	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "bench", Email: "bench@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	assert.Equal(t, hash.String(), computeHashFromPath(dir))

	sub := filepath.Join(dir, "cmd")
	require.NoError(t, os.Mkdir(sub, 0755))
	assert.Equal(t, hash.String(), computeHashFromPath(sub), "DetectDotGit should walk up")
}

func TestShortHash(t *testing.T) {
	assert.Equal(t, "0123abcd", shortHash("0123abcdef0123"))
	assert.Equal(t, "abc", shortHash("abc"))
}

func TestGetCommitHashNeverEmpty(t *testing.T) {
	assert.NotEmpty(t, GetCommitHash())
}

func TestColorize(t *testing.T) {
	defer EnableColors()

	EnableColors()
	assert.Equal(t, ColorRed+"x"+ColorReset, Colorize(ColorRed, "x"))
	assert.Equal(t, "x", Colorize("", "x"))

	DisableColors()
	assert.False(t, ColorsEnabled())
	assert.Equal(t, "x", Colorize(ColorRed, "x"))
}
