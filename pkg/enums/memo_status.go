package enums

import "fmt"

// MemoStatus tracks the lock lifecycle of a memo. OPEN -> LOCKED is the only
// legal transition.
type MemoStatus string

const (
	MemoStatusOpen   MemoStatus = "OPEN"
	MemoStatusLocked MemoStatus = "LOCKED"
)

var validMemoStatuses = []MemoStatus{
	MemoStatusOpen,
	MemoStatusLocked,
}

// String implements fmt.Stringer.
func (s MemoStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known MemoStatus.
func (s MemoStatus) IsValid() bool {
	for _, candidate := range validMemoStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsLocked reports whether the memo reached its terminal state.
func (s MemoStatus) IsLocked() bool {
	return s == MemoStatusLocked
}

// ParseMemoStatus converts raw input into a MemoStatus.
func ParseMemoStatus(value string) (MemoStatus, error) {
	for _, candidate := range validMemoStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid memo status %q", value)
}
