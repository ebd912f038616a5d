package services

import (
	"time"

	"expensia/internal/models"
	"expensia/internal/pagination"
)

// UserServicer defines the contract for credential-store business logic.
type UserServicer interface {
	CreateUser(name, email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	UpdatePassword(user *models.User, newPassword string) error
}

// PasswordResetServicer defines the contract for the password reset flow.
type PasswordResetServicer interface {
	// RequestReset issues a reset token and dispatches the reset email.
	// A nil error for an unknown email is intentional: the caller-visible
	// outcome must not reveal whether an account exists.
	RequestReset(email string) error
	// ConsumeReset returns the user whose password was replaced so callers
	// can attribute the event.
	ConsumeReset(token, newPassword string) (*models.User, error)
}

// TransactionServicer defines the contract for transaction-store business logic.
type TransactionServicer interface {
	CreateTransaction(userID uint, amount int64, category models.Category, txType models.TransactionType, description string, date time.Time) (*models.Transaction, error)
	ListTransactions(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	ListAllTransactions(userID uint) ([]models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
