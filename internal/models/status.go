package models

// StatusEntry is one record of `git status --porcelain`: a two-character
// change-state code (index column, worktree column) and a repository-relative path.
type StatusEntry struct {
	Code string
	Path string
}

// IsModified reports whether the entry is modified in the worktree, the index, or both.
func (e StatusEntry) IsModified() bool {
	switch e.Code {
	case " M", "M ", "MM":
		return true
	default:
		return false
	}
}
