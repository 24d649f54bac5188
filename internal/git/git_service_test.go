package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/commitscope/internal/errors"
	"github.com/thomas-vilte/commitscope/internal/models"
)

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func setupTestRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "commit.gpgsign", "false")
	return dir
}

func commitAll(t *testing.T, dir string) {
	t.Helper()
	runGit(t, dir, "add", "-A")
	runGit(t, dir, "commit", "-m", "chore: initial")
}

func TestGitService_GetStatus(t *testing.T) {
	t.Run("should return empty output for a clean tree", func(t *testing.T) {
		// Arrange
		dir := setupTestRepo(t)
		writeFile(t, dir, "README.md", "hello")
		commitAll(t, dir)
		service := NewGitServiceAt(dir)

		// Act
		status, err := service.GetStatus(context.Background())

		// Assert
		require.NoError(t, err)
		assert.Empty(t, status)
	})

	t.Run("should keep the leading status column", func(t *testing.T) {
		// Arrange
		dir := setupTestRepo(t)
		writeFile(t, dir, "src/foo.ts", "a")
		commitAll(t, dir)
		writeFile(t, dir, "src/foo.ts", "b")
		service := NewGitServiceAt(dir)

		// Act
		status, err := service.GetStatus(context.Background())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, " M src/foo.ts\n", status)
	})

	t.Run("should fail outside a repository", func(t *testing.T) {
		// Arrange
		if _, err := exec.LookPath("git"); err != nil {
			t.Skip("git not installed")
		}
		dir := t.TempDir()
		t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
		service := NewGitServiceAt(dir)

		// Act
		status, err := service.GetStatus(context.Background())

		// Assert
		assert.Empty(t, status)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrGetStatus))

		var appErr *domainErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Contains(t, appErr.Context["stderr"], "not a git repository")
	})
}

func TestParseStatus_FromRepository(t *testing.T) {
	// Arrange
	dir := setupTestRepo(t)
	writeFile(t, dir, "src/foo.ts", "a")
	writeFile(t, dir, "_internal/bar.go", "package bar")
	commitAll(t, dir)

	writeFile(t, dir, "_internal/bar.go", "package bar\n")
	runGit(t, dir, "add", "_internal/bar.go")
	writeFile(t, dir, "src/foo.ts", "b")
	writeFile(t, dir, "new.txt", "untracked")
	service := NewGitServiceAt(dir)

	// Act
	output, err := service.GetStatus(context.Background())
	require.NoError(t, err)
	entries := ParseStatus(output)

	// Assert
	assert.Equal(t, []models.StatusEntry{
		{Code: "M ", Path: "_internal/bar.go"},
		{Code: " M", Path: "src/foo.ts"},
		{Code: "??", Path: "new.txt"},
	}, entries)
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []models.StatusEntry
	}{
		{
			name:   "empty output",
			output: "",
			want:   []models.StatusEntry{},
		},
		{
			name:   "worktree and index modifications",
			output: " M src/foo.ts\nMM _internal/bar.go\n",
			want: []models.StatusEntry{
				{Code: " M", Path: "src/foo.ts"},
				{Code: "MM", Path: "_internal/bar.go"},
			},
		},
		{
			name:   "windows line endings",
			output: "M  docs/a.md\r\n?? b\r\n",
			want: []models.StatusEntry{
				{Code: "M ", Path: "docs/a.md"},
				{Code: "??", Path: "b"},
			},
		},
		{
			name:   "code without path",
			output: " M",
			want:   []models.StatusEntry{{Code: " M", Path: ""}},
		},
		{
			name:   "short garbage lines are skipped",
			output: "x\n\n",
			want:   []models.StatusEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStatus(tt.output))
		})
	}
}

func TestGitService_RepoChecks(t *testing.T) {
	t.Run("should detect a work tree and its root", func(t *testing.T) {
		dir := setupTestRepo(t)
		service := NewGitServiceAt(dir)

		assert.True(t, service.IsInsideWorkTree(context.Background()))

		root, err := service.GetRepoRoot(context.Background())
		require.NoError(t, err)
		want, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(root)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("should report missing work tree", func(t *testing.T) {
		if _, err := exec.LookPath("git"); err != nil {
			t.Skip("git not installed")
		}
		dir := t.TempDir()
		t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
		service := NewGitServiceAt(dir)

		assert.False(t, service.IsInsideWorkTree(context.Background()))

		_, err := service.GetRepoRoot(context.Background())
		assert.True(t, errors.Is(err, domainErrors.ErrGetRepoRoot))
	})

	t.Run("should report the git version", func(t *testing.T) {
		if _, err := exec.LookPath("git"); err != nil {
			t.Skip("git not installed")
		}
		version, err := NewGitService().Version(context.Background())
		require.NoError(t, err)
		assert.Contains(t, version, "git version")
	})
}
