package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// BusinessRepo returns a BusinessRepository bound to the current transaction.
	BusinessRepo() BusinessRepository

	// ServiceRepo returns a ServiceRepository bound to the current transaction.
	ServiceRepo() ServiceRepository

	// CouponRepo returns a CouponRepository bound to the current transaction.
	CouponRepo() CouponRepository

	// MediaRepo returns a MediaRepository bound to the current transaction.
	MediaRepo() MediaRepository

	// OperationalInfoRepo returns an OperationalInfoRepository bound to the current transaction.
	OperationalInfoRepo() OperationalInfoRepository

	// AiMetadataRepo returns an AiMetadataRepository bound to the current transaction.
	AiMetadataRepo() AiMetadataRepository

	// JsonLDRepo returns a JsonLDFeedRepository bound to the current transaction.
	JsonLDRepo() JsonLDFeedRepository

	// VisibilityRepo returns a VisibilityRepository bound to the current transaction.
	VisibilityRepo() VisibilityRepository
}
