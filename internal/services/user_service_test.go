package services

import (
	"testing"
	"time"

	"expensia/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("creates_user_with_hashed_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("Alice", "alice@example.com", "secret123")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.Password == "secret123" {
			t.Error("stored password must never equal the plaintext")
		}
		if !svc.VerifyPassword(user, "secret123") {
			t.Error("expected original plaintext to verify against stored hash")
		}
	})

	t.Run("lowercases_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("Bob", "Bob@Example.COM", "secret123")
		testutil.AssertNoError(t, err)
		if user.Email != "bob@example.com" {
			t.Errorf("expected lowercased email, got %q", user.Email)
		}
	})

	t.Run("rejects_duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("Alice", "dup@example.com", "secret123")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("Mallory", "dup@example.com", "secret456")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("duplicate_check_is_case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("Alice", "case@example.com", "secret123")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("Mallory", "CASE@example.com", "secret456")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("rejects_short_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("Alice", "short@example.com", "12345")
		testutil.AssertAppError(t, err, "WEAK_PASSWORD")
	})

	t.Run("rejects_blank_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("   ", "noname@example.com", "secret123")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("finds_existing_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		testutil.CreateTestUserWithEmail(t, db, "find@example.com")

		user, err := svc.GetUserByEmail("find@example.com")
		testutil.AssertNoError(t, err)
		if user.Email != "find@example.com" {
			t.Errorf("expected find@example.com, got %q", user.Email)
		}
	})

	t.Run("lookup_is_case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		testutil.CreateTestUserWithEmail(t, db, "mixed@example.com")

		_, err := svc.GetUserByEmail("MIXED@example.com")
		testutil.AssertNoError(t, err)
	})

	t.Run("unknown_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByEmail("nobody@example.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)
	user := testutil.CreateTestUser(t, db)

	if !svc.VerifyPassword(user, "password123") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "wrongpassword") {
		t.Error("expected wrong password to fail verification")
	}
}

func TestUpdatePassword(t *testing.T) {
	t.Run("replaces_hash_and_clears_reset_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.SetResetToken(t, db, user, "somehash", time.Now().Add(time.Hour))

		err := svc.UpdatePassword(user, "newsecret")
		testutil.AssertNoError(t, err)

		reloaded, err := svc.GetUserByID(user.ID)
		testutil.AssertNoError(t, err)
		if !svc.VerifyPassword(reloaded, "newsecret") {
			t.Error("expected new password to verify after update")
		}
		if svc.VerifyPassword(reloaded, "password123") {
			t.Error("expected old password to stop verifying")
		}
		if reloaded.ResetTokenHash != "" || reloaded.ResetTokenExpiresAt != nil {
			t.Error("expected reset token fields to be cleared")
		}
	})

	t.Run("rejects_short_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.UpdatePassword(user, "12345")
		testutil.AssertAppError(t, err, "WEAK_PASSWORD")
	})
}
