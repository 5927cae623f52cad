package repository

import "context"

// TransactionManager runs multi-step writes atomically, such as an item change
// together with its history row and low-stock notification.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory returns repositories bound to the running transaction.
type RepositoryFactory interface {
	NewInventoryRepository() InventoryRepository
	NewNotificationRepository() NotificationRepository
	NewBloodPriorityRepository() BloodPriorityRepository
	NewUserRepository() UserRepository
}
