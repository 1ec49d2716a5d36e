package board

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ID validation errors
var (
	ErrIDTooLong            = errors.New("id must be at most 63 characters")
	ErrIDInvalidChars       = errors.New("id must contain only lowercase letters, numbers, and hyphens")
	ErrIDInvalidStart       = errors.New("id must start with a lowercase letter")
	ErrIDInvalidEnd         = errors.New("id must end with a lowercase letter or number")
	ErrIDConsecutiveHyphens = errors.New("id cannot contain consecutive hyphens")
)

const maxIDLength = 63

// idRegex validates a properly formatted id:
// - Starts with lowercase letter
// - Ends with lowercase letter or digit
// - Contains only lowercase letters, digits, and hyphens
var idRegex = regexp.MustCompile(`^[a-z]([a-z0-9-]*[a-z0-9])?$`)

// ValidateID checks that id is usable as a data attribute value and in a
// URL without escaping. Empty ids are reported as ErrMissingID.
func ValidateID(id string) error {
	if id == "" {
		return ErrMissingID
	}
	if len(id) > maxIDLength {
		return ErrIDTooLong
	}

	// Check for consecutive hyphens first
	if strings.Contains(id, "--") {
		return ErrIDConsecutiveHyphens
	}

	if !idRegex.MatchString(id) {
		first := rune(id[0])
		if !unicode.IsLower(first) || !unicode.IsLetter(first) {
			return ErrIDInvalidStart
		}

		last := rune(id[len(id)-1])
		if !unicode.IsLower(last) && !unicode.IsDigit(last) {
			return ErrIDInvalidEnd
		}

		return ErrIDInvalidChars
	}

	return nil
}

// IDFromTitle derives an id from a title: lowercase, spaces and
// underscores become hyphens, other characters are dropped, and it is
// trimmed to start with a letter and fit maxIDLength. It returns "" when
// nothing usable is left.
func IDFromTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ' || r == '_':
			b.WriteByte('-')
		}
	}
	id := b.String()

	for strings.Contains(id, "--") {
		id = strings.ReplaceAll(id, "--", "-")
	}

	// Must start with a letter
	id = strings.TrimLeftFunc(id, func(r rune) bool { return r < 'a' || r > 'z' })

	if len(id) > maxIDLength {
		id = id[:maxIDLength]
	}
	return strings.TrimRight(id, "-")
}

// idSet hands out ids that are unique within one board.
type idSet map[string]bool

// derive returns IDFromTitle(title), suffixed with -2, -3, ... when the id
// is already taken. The result is "" when the title has no usable
// characters.
func (s idSet) derive(title string) string {
	base := IDFromTitle(title)
	if base == "" {
		return ""
	}
	id := base
	for n := 2; s[id]; n++ {
		suffix := "-" + strconv.Itoa(n)
		id = strings.TrimRight(base[:min(len(base), maxIDLength-len(suffix))], "-") + suffix
	}
	s[id] = true
	return id
}
