package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		// Valid ids
		{"single letter", "a", nil},
		{"simple", "todo", nil},
		{"with numbers", "card-123", nil},
		{"maximum length", strings.Repeat("a", 63), nil},

		{"empty", "", ErrMissingID},
		{"too long", strings.Repeat("a", 64), ErrIDTooLong},
		{"starts with number", "1card", ErrIDInvalidStart},
		{"starts with hyphen", "-card", ErrIDInvalidStart},
		{"starts with uppercase", "Card", ErrIDInvalidStart},
		{"ends with hyphen", "card-", ErrIDInvalidEnd},
		{"consecutive hyphens", "in--review", ErrIDConsecutiveHyphens},
		{"underscore", "in_review", ErrIDInvalidChars},
		{"space", "in review", ErrIDInvalidChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIDFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"To do", "to-do"},
		{"In_Progress", "in-progress"},
		{"  Ship   it!  ", "ship-it"},
		{"2024 roadmap", "roadmap"},
		{"Q3 -- goals", "q3-goals"},
		{"!!!", ""},
		{"", ""},
		{strings.Repeat("ab ", 40), strings.TrimRight(strings.Repeat("ab-", 21), "-")},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := IDFromTitle(tt.title)
			assert.Equal(t, tt.want, got)
			if got != "" {
				assert.NoError(t, ValidateID(got))
			}
		})
	}
}

func TestIDSet_Derive(t *testing.T) {
	s := idSet{"todo": true}

	assert.Equal(t, "todo-2", s.derive("Todo"))
	assert.Equal(t, "todo-3", s.derive("todo"))
	assert.Equal(t, "done", s.derive("Done"))
	assert.Equal(t, "", s.derive("***"))

	long := strings.Repeat("a", 70)
	first := s.derive(long)
	second := s.derive(long)
	assert.Len(t, first, 63)
	assert.Len(t, second, 63)
	assert.True(t, strings.HasSuffix(second, "-2"))
}
