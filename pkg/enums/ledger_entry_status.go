package enums

import "fmt"

// LedgerEntryStatus tracks a cashbook entry. OPEN -> POSTED is terminal.
type LedgerEntryStatus string

const (
	LedgerEntryStatusOpen   LedgerEntryStatus = "OPEN"
	LedgerEntryStatusPosted LedgerEntryStatus = "POSTED"
)

var validLedgerEntryStatuses = []LedgerEntryStatus{
	LedgerEntryStatusOpen,
	LedgerEntryStatusPosted,
}

// String implements fmt.Stringer.
func (s LedgerEntryStatus) String() string {
	return string(s)
}

// IsValid reports whether the value matches the canonical ledger status.
func (s LedgerEntryStatus) IsValid() bool {
	for _, candidate := range validLedgerEntryStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseLedgerEntryStatus converts raw input into LedgerEntryStatus.
func ParseLedgerEntryStatus(value string) (LedgerEntryStatus, error) {
	for _, candidate := range validLedgerEntryStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid ledger entry status %q", value)
}
