package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"expensia/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
// The plaintext password is "password123".
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a transaction with the given category and
// amount (in cents). The type is derived from the category group.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, category models.Category, amount int64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionOnDate(t, db, userID, category, amount, time.Now())
}

// CreateTestTransactionOnDate creates a transaction with an explicit date.
func CreateTestTransactionOnDate(t *testing.T, db *gorm.DB, userID uint, category models.Category, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Type:        category.Type(),
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// SetResetToken stores a reset token hash and expiry directly on a user.
func SetResetToken(t *testing.T, db *gorm.DB, user *models.User, tokenHash string, expiry time.Time) {
	t.Helper()

	updates := map[string]interface{}{
		"reset_token_hash":       tokenHash,
		"reset_token_expires_at": expiry,
	}
	if err := db.Model(user).Updates(updates).Error; err != nil {
		t.Fatalf("failed to set reset token: %v", err)
	}
}
