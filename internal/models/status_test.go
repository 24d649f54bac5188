package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusEntry_IsModified(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{" M", true},
		{"M ", true},
		{"MM", true},
		{"A ", false},
		{"AM", false},
		{" D", false},
		{"R ", false},
		{"??", false},
		{"UU", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("code "+tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusEntry{Code: tt.code, Path: "x"}.IsModified())
		})
	}
}

func TestDefaultCommitTypes(t *testing.T) {
	types := DefaultCommitTypes()

	assert.Len(t, types, 11)
	assert.Equal(t, "feat", types[0].Value)
	assert.Equal(t, ":sparkles:", types[0].Emoji)
	assert.Equal(t, "revert", types[len(types)-1].Value)

	types[0].Value = "mutated"
	assert.Equal(t, "feat", DefaultCommitTypes()[0].Value, "catalog must be a fresh copy")
}

func TestIsKnownCommitType(t *testing.T) {
	assert.True(t, IsKnownCommitType("feat"))
	assert.True(t, IsKnownCommitType("ci"))
	assert.False(t, IsKnownCommitType("feature"))
	assert.False(t, IsKnownCommitType(""))
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, []any{2, "never"}, rules["subject-empty"])
}
