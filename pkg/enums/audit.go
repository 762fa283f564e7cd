package enums

import "fmt"

// AuditEntityType names the table an audit entry refers to.
type AuditEntityType string

const (
	AuditEntityMemos            AuditEntityType = "memos"
	AuditEntityLedgerEntries    AuditEntityType = "ledger_entries"
	AuditEntityInventoryRecords AuditEntityType = "inventory_records"
	AuditEntitySellRecords      AuditEntityType = "sell_records"
	AuditEntityInvoices         AuditEntityType = "invoices"
	AuditEntityLotStageEvents   AuditEntityType = "lot_stage_events"
)

// AuditAction names the operation recorded in the audit trail.
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionClose  AuditAction = "close"
	AuditActionPost   AuditAction = "post"
)

func (t AuditEntityType) IsValid() bool {
	switch t {
	case AuditEntityMemos, AuditEntityLedgerEntries, AuditEntityInventoryRecords, AuditEntitySellRecords,
		AuditEntityInvoices, AuditEntityLotStageEvents:
		return true
	default:
		return false
	}
}

// ParseAuditEntityType converts raw input into an AuditEntityType.
func ParseAuditEntityType(value string) (AuditEntityType, error) {
	for _, candidate := range []AuditEntityType{
		AuditEntityMemos,
		AuditEntityLedgerEntries,
		AuditEntityInventoryRecords,
		AuditEntitySellRecords,
		AuditEntityInvoices,
		AuditEntityLotStageEvents,
	} {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid audit entity type %q", value)
}
