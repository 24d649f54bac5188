// Package scope infers a default conventional-commit scope from the
// working tree: the top-level path segment of the first modified file.
package scope

import (
	"context"
	"strings"

	"github.com/thomas-vilte/commitscope/internal/git"
	"github.com/thomas-vilte/commitscope/internal/logger"
	"github.com/thomas-vilte/commitscope/internal/models"
)

// statusReader is the part of the git service the detector needs.
type statusReader interface {
	GetStatus(ctx context.Context) (string, error)
}

type Detector struct {
	git statusReader
}

func NewDetector(git statusReader) *Detector {
	return &Detector{git: git}
}

// DetectDefaultScope never fails: a status query error is logged and the
// empty scope is returned.
func (d *Detector) DetectDefaultScope(ctx context.Context) string {
	output, err := d.git.GetStatus(ctx)
	if err != nil {
		logger.Error(ctx, "error detecting scope", err)
		return ""
	}
	logger.Debug(ctx, "git status", "output", output)

	modified := ModifiedFiles(output)
	logger.Debug(ctx, "modified files", "count", len(modified), "files", modified)
	if len(modified) == 0 {
		return ""
	}

	scope := FromPath(modified[0].Path)
	logger.Debug(ctx, "detected scope", "scope", scope)
	return scope
}

// FromStatus returns the scope for raw porcelain output, or "" when no file
// is modified.
func FromStatus(output string) string {
	modified := ModifiedFiles(output)
	if len(modified) == 0 {
		return ""
	}
	return FromPath(modified[0].Path)
}

// ModifiedFiles keeps the entries whose status code is " M", "M " or "MM",
// preserving git's order.
func ModifiedFiles(output string) []models.StatusEntry {
	files := make([]models.StatusEntry, 0)
	for _, entry := range git.ParseStatus(output) {
		if entry.IsModified() {
			files = append(files, entry)
		}
	}
	return files
}

// FromPath normalizes the first segment of a repository-relative path.
// Files at the repository root use the whole file name.
func FromPath(path string) string {
	path = strings.TrimPrefix(path, "./")
	segment, _, _ := strings.Cut(path, "/")
	return Normalize(segment)
}

// Normalize strips one leading "." then one leading "_" and lowercases.
func Normalize(segment string) string {
	segment = strings.TrimPrefix(segment, ".")
	segment = strings.TrimPrefix(segment, "_")
	return strings.ToLower(segment)
}
