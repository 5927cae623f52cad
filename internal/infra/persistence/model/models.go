// Package model holds the GORM table mappings.
package model

// All lists every table model in dependency order: referenced tables come first.
func All() []any {
	return []any{
		&UserModel{},
		&NotificationModel{},
		&NotificationReadModel{},
		&BloodPriorityMessageModel{},
		&BloodPriorityReadModel{},
		&InventoryGroupModel{},
		&InventoryItemModel{},
		&InventoryHistoryModel{},
		&EventModel{},
		&DocumentModel{},
	}
}
