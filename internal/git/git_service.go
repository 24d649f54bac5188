package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/thomas-vilte/commitscope/internal/errors"
	"github.com/thomas-vilte/commitscope/internal/models"
)

type GitService struct {
	// dir is the working directory for git commands; empty means the process cwd.
	dir string
}

func NewGitService() *GitService {
	return &GitService{}
}

// NewGitServiceAt returns a service that runs git inside dir.
func NewGitServiceAt(dir string) *GitService {
	return &GitService{dir: dir}
}

func (s *GitService) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.dir
	return cmd
}

// GetStatus returns the raw `git status --porcelain` output. The output is
// returned untrimmed because the leading status column is significant.
func (s *GitService) GetStatus(ctx context.Context) (string, error) {
	cmd := s.command(ctx, "status", "--porcelain")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return "", errors.ErrGetStatus.
			WithError(err).
			WithContext("stderr", strings.TrimSpace(stderr.String()))
	}
	return string(output), nil
}

// ParseStatus splits porcelain output into entries. Lines too short to carry
// a status code are skipped.
func ParseStatus(output string) []models.StatusEntry {
	entries := make([]models.StatusEntry, 0)
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) < 2 {
			continue
		}
		path := ""
		if len(line) > 3 {
			path = strings.TrimSpace(line[3:])
		}
		entries = append(entries, models.StatusEntry{Code: line[:2], Path: path})
	}
	return entries
}

// IsInsideWorkTree reports whether the service directory is inside a git work tree.
func (s *GitService) IsInsideWorkTree(ctx context.Context) bool {
	output, err := s.command(ctx, "rev-parse", "--is-inside-work-tree").Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) == "true"
}

// GetRepoRoot gets the absolute path to the root of the git repository
func (s *GitService) GetRepoRoot(ctx context.Context) (string, error) {
	output, err := s.command(ctx, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", errors.ErrGetRepoRoot.WithError(err)
	}
	return strings.TrimSpace(string(output)), nil
}

// Version returns the output of `git --version`.
func (s *GitService) Version(ctx context.Context) (string, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return "", errors.ErrGitNotInstalled.WithError(err)
	}
	output, err := s.command(ctx, "--version").Output()
	if err != nil {
		return "", errors.ErrGitNotInstalled.WithError(err)
	}
	return strings.TrimSpace(string(output)), nil
}
