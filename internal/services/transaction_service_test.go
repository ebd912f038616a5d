package services

import (
	"testing"
	"time"

	"expensia/internal/models"
	"expensia/internal/pagination"
	"expensia/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	t.Run("creates_income_transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		tx, err := svc.CreateTransaction(user.ID, 250000, models.CategorySalary, models.TransactionTypeIncome, "August salary", time.Now())
		testutil.AssertNoError(t, err)

		if tx.ID == 0 {
			t.Fatal("expected non-zero transaction ID")
		}
		if tx.UserID != user.ID {
			t.Errorf("expected owner %d, got %d", user.ID, tx.UserID)
		}
		if tx.Amount != 250000 {
			t.Errorf("expected amount 250000, got %d", tx.Amount)
		}
	})

	t.Run("creates_expense_transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		tx, err := svc.CreateTransaction(user.ID, 9500, models.CategoryGroceries, models.TransactionTypeExpense, "Weekly groceries", time.Now())
		testutil.AssertNoError(t, err)
		if tx.Type != models.TransactionTypeExpense {
			t.Errorf("expected expense type, got %q", tx.Type)
		}
	})

	t.Run("defaults_zero_date_to_now", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		tx, err := svc.CreateTransaction(user.ID, 1000, models.CategoryOtherExpense, models.TransactionTypeExpense, "Misc", time.Time{})
		testutil.AssertNoError(t, err)
		if time.Since(tx.Date) > time.Minute {
			t.Errorf("expected date defaulted to now, got %v", tx.Date)
		}
	})

	t.Run("rejects_non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		for _, amount := range []int64{0, -500} {
			_, err := svc.CreateTransaction(user.ID, amount, models.CategorySalary, models.TransactionTypeIncome, "Bad amount", time.Now())
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		}
	})

	t.Run("rejects_unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateTransaction(user.ID, 1000, models.Category("lottery"), models.TransactionTypeIncome, "Winnings", time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_unknown_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateTransaction(user.ID, 1000, models.CategorySalary, models.TransactionType("transfer"), "Move money", time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_category_type_mismatch", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		// rent is an expense category; declaring it as income must fail.
		_, err := svc.CreateTransaction(user.ID, 1000, models.CategoryRent, models.TransactionTypeIncome, "Rent refund", time.Now())
		testutil.AssertAppError(t, err, "CATEGORY_MISMATCH")

		_, err = svc.CreateTransaction(user.ID, 1000, models.CategorySalary, models.TransactionTypeExpense, "Salary clawback", time.Now())
		testutil.AssertAppError(t, err, "CATEGORY_MISMATCH")
	})

	t.Run("rejects_blank_description", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateTransaction(user.ID, 1000, models.CategorySalary, models.TransactionTypeIncome, "   ", time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListTransactions(t *testing.T) {
	t.Run("returns_newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		first := testutil.CreateTestTransaction(t, db, user.ID, models.CategorySalary, 10000)
		second := testutil.CreateTestTransaction(t, db, user.ID, models.CategoryRent, 5000)
		third := testutil.CreateTestTransaction(t, db, user.ID, models.CategoryGroceries, 3000)

		result, err := svc.ListTransactions(user.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if len(result.Data) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(result.Data))
		}
		if result.Data[0].ID != third.ID || result.Data[1].ID != second.ID || result.Data[2].ID != first.ID {
			t.Errorf("expected newest-first order, got IDs %d, %d, %d",
				result.Data[0].ID, result.Data[1].ID, result.Data[2].ID)
		}
	})

	t.Run("scopes_to_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)

		testutil.CreateTestTransaction(t, db, owner.ID, models.CategorySalary, 10000)
		testutil.CreateTestTransaction(t, db, other.ID, models.CategoryRent, 5000)

		result, err := svc.ListTransactions(owner.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 1 {
			t.Fatalf("expected only the owner's transaction, got %d", len(result.Data))
		}
		if result.Data[0].UserID != owner.ID {
			t.Errorf("expected owner %d, got %d", owner.ID, result.Data[0].UserID)
		}
	})

	t.Run("paginates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		for i := 0; i < 5; i++ {
			testutil.CreateTestTransaction(t, db, user.ID, models.CategoryGroceries, int64(100*(i+1)))
		}

		result, err := svc.ListTransactions(user.ID, pagination.PageRequest{Page: 2, PageSize: 2})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 2 {
			t.Errorf("expected 2 items on page 2, got %d", len(result.Data))
		}
		if result.TotalItems != 5 {
			t.Errorf("expected 5 total items, got %d", result.TotalItems)
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", result.TotalPages)
		}
	})

	t.Run("empty_store", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		result, err := svc.ListTransactions(user.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 0 || result.TotalItems != 0 {
			t.Errorf("expected empty result, got %d items (%d total)", len(result.Data), result.TotalItems)
		}
	})
}

func TestListAllTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	testutil.CreateTestTransaction(t, db, user.ID, models.CategorySalary, 10000)
	testutil.CreateTestTransaction(t, db, user.ID, models.CategoryRent, 5000)
	testutil.CreateTestTransaction(t, db, other.ID, models.CategoryFreelance, 7000)

	all, err := svc.ListAllTransactions(user.ID)
	testutil.AssertNoError(t, err)
	if len(all) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(all))
	}
	for _, tx := range all {
		if tx.UserID != user.ID {
			t.Errorf("expected only owner's transactions, got one for user %d", tx.UserID)
		}
	}
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("deletes_owned_transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		tx := testutil.CreateTestTransaction(t, db, user.ID, models.CategoryRent, 5000)

		err := svc.DeleteTransaction(user.ID, tx.ID)
		testutil.AssertNoError(t, err)

		all, err := svc.ListAllTransactions(user.ID)
		testutil.AssertNoError(t, err)
		if len(all) != 0 {
			t.Errorf("expected no transactions after delete, got %d", len(all))
		}
	})

	t.Run("foreign_transaction_reads_as_missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		owner := testutil.CreateTestUser(t, db)
		attacker := testutil.CreateTestUser(t, db)
		tx := testutil.CreateTestTransaction(t, db, owner.ID, models.CategorySalary, 10000)

		err := svc.DeleteTransaction(attacker.ID, tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")

		// The owner's transaction must survive the attempt.
		all, err := svc.ListAllTransactions(owner.ID)
		testutil.AssertNoError(t, err)
		if len(all) != 1 {
			t.Errorf("expected the transaction to survive, got %d left", len(all))
		}
	})

	t.Run("unknown_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteTransaction(user.ID, 9999)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}
