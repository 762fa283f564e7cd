package models

// All lists every persisted model, in dependency order, for schema bootstrap.
func All() []any {
	return []any{
		&Memo{},
		&MemoItem{},
		&AuditLogEntry{},
		&LedgerEntry{},
		&InventoryRecord{},
		&SellRecord{},
		&Invoice{},
		&InvoiceItem{},
		&LotStageEvent{},
	}
}
