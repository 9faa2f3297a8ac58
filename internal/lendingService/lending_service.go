package lending

import (
	"fmt"

	"shelfshare/internal/lenderrors"
	"shelfshare/internal/models"
	"shelfshare/internal/repository"
	"shelfshare/utils"
)

// LendingService defines the business logic for borrow requests
type LendingService struct {
	store repository.LendingStore
}

// NewLendingService creates a new LendingService instance
func NewLendingService(store repository.LendingStore) *LendingService {
	return &LendingService{store: store}
}

// BorrowInput carries the fields of a borrow request. Cost and deposit are
// computed by the caller and stored as-is.
type BorrowInput struct {
	BookID    string
	StartDate string
	EndDate   string
	TotalCost float64
	Deposit   float64
}

// TransactionPatch is the shallow-merge patch the admin screen applies
type TransactionPatch struct {
	Status    *string
	StartDate *string
	EndDate   *string
	TotalCost *float64
	Deposit   *float64
}

// Borrow creates a pending transaction for the session user. The store
// rejects the request when the book is unknown or already borrowed and flips
// availability atomically with the append.
func (s *LendingService) Borrow(input BorrowInput) (models.Transaction, error) {
	if input.BookID == "" {
		return models.Transaction{}, fmt.Errorf("service: %w - missing bookId", lenderrors.ErrInvalidInput)
	}

	borrower, err := s.store.SessionUser()
	if err != nil {
		return models.Transaction{}, fmt.Errorf("service: borrow: %w", err)
	}

	tx := models.Transaction{
		TransactionID: utils.NewEntityID("tx"),
		BookID:        input.BookID,
		BorrowerID:    borrower.UserID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Status:        models.StatusPending,
		TotalCost:     input.TotalCost,
		Deposit:       input.Deposit,
	}

	recorded, err := s.store.RecordTransaction(tx)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("service: failed to record borrow of book %s by user %s: %w", input.BookID, borrower.UserID, err)
	}
	return recorded, nil
}

// MyTransactions returns the session user's borrow requests
func (s *LendingService) MyTransactions() ([]models.Transaction, error) {
	borrower, err := s.store.SessionUser()
	if err != nil {
		return nil, fmt.Errorf("service: my transactions: %w", err)
	}
	return s.store.TransactionsByBorrower(borrower.UserID), nil
}

// AdminListTransactions returns the full transaction collection
func (s *LendingService) AdminListTransactions() []models.Transaction {
	return s.store.ListTransactions()
}

// AdminPatchTransaction shallow-merges the provided fields into the
// transaction record. Patching the status does not touch the referenced
// book's availability; no return flow exists.
func (s *LendingService) AdminPatchTransaction(txID string, patch TransactionPatch) (models.Transaction, error) {
	updated, err := s.store.UpdateTransaction(txID, func(tx *models.Transaction) {
		if patch.Status != nil {
			tx.Status = *patch.Status
		}
		if patch.StartDate != nil {
			tx.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			tx.EndDate = *patch.EndDate
		}
		if patch.TotalCost != nil {
			tx.TotalCost = *patch.TotalCost
		}
		if patch.Deposit != nil {
			tx.Deposit = *patch.Deposit
		}
	})
	if err != nil {
		return models.Transaction{}, fmt.Errorf("service: admin patch transaction %s: %w", txID, err)
	}
	return updated, nil
}
