package repository

import (
	"fmt"
	"strings"
	"sync"

	"shelfshare/internal/lenderrors"
	model "shelfshare/internal/models"
)

// LendingStore defines the storage surface for the marketplace simulator
type LendingStore interface {
	ListBooks(query string) []model.Book
	GetBook(bookID string) (model.Book, error)
	AddBook(book model.Book)
	AvailableBooks() []model.Book

	ListUsers() []model.User
	GetUser(userID string) (model.User, error)
	AddUser(user model.User)
	UpdateUser(userID string, apply func(*model.User)) (model.User, error)
	FindUserByEmail(email string) (model.User, bool)
	FindUserByPhone(phone string) (model.User, bool)

	ListTransactions() []model.Transaction
	TransactionsByBorrower(userID string) []model.Transaction
	RecordTransaction(tx model.Transaction) (model.Transaction, error)
	UpdateTransaction(txID string, apply func(*model.Transaction)) (model.Transaction, error)

	SessionUser() (model.User, error)
	SetSessionUser(userID string)
	ClearSession()
}

// MemoryStore is a concurrency-safe in-memory implementation of LendingStore.
// It owns the three collections plus the session pointer explicitly; state
// lives for the process lifetime only.
type MemoryStore struct {
	mu            sync.RWMutex
	books         []model.Book
	users         []model.User
	transactions  []model.Transaction
	sessionUserID string
}

// NewMemoryStore creates an empty in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Seed replaces the collections with the given snapshot and points the session
// at the first seeded user, mirroring the "default logged in" dev behavior.
// Reset between tests is the same operation.
func (s *MemoryStore) Seed(books []model.Book, users []model.User, transactions []model.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = append([]model.Book(nil), books...)
	s.users = append([]model.User(nil), users...)
	s.transactions = append([]model.Transaction(nil), transactions...)

	s.sessionUserID = ""
	if len(s.users) > 0 {
		s.sessionUserID = s.users[0].UserID
	}
}

// ListBooks returns all books, or those whose title or author contains the
// query (case-insensitive). No pagination is applied at this layer.
func (s *MemoryStore) ListBooks(query string) []model.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if query == "" {
		return append([]model.Book(nil), s.books...)
	}

	q := strings.ToLower(query)
	filtered := make([]model.Book, 0)
	for _, b := range s.books {
		if strings.Contains(strings.ToLower(b.Title), q) || strings.Contains(strings.ToLower(b.Author), q) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// GetBook returns the book with the given ID
func (s *MemoryStore) GetBook(bookID string) (model.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.books {
		if b.BookID == bookID {
			return b, nil
		}
	}
	return model.Book{}, fmt.Errorf("get book %s: %w", bookID, lenderrors.ErrBookNotFound)
}

// AddBook appends a book to the catalog
func (s *MemoryStore) AddBook(book model.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = append(s.books, book)
}

// AvailableBooks returns the books currently marked available
func (s *MemoryStore) AvailableBooks() []model.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	available := make([]model.Book, 0)
	for _, b := range s.books {
		if b.Available {
			available = append(available, b)
		}
	}
	return available
}

// ListUsers returns a copy of the user collection
func (s *MemoryStore) ListUsers() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...)
}

// GetUser returns the user with the given ID
func (s *MemoryStore) GetUser(userID string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.UserID == userID {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("get user %s: %w", userID, lenderrors.ErrUserNotFound)
}

// AddUser appends a user to the collection
func (s *MemoryStore) AddUser(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
}

// UpdateUser applies a shallow mutation to the stored user record under the
// write lock and returns the updated copy.
func (s *MemoryStore) UpdateUser(userID string, apply func(*model.User)) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].UserID == userID {
			apply(&s.users[i])
			return s.users[i], nil
		}
	}
	return model.User{}, fmt.Errorf("update user %s: %w", userID, lenderrors.ErrUserNotFound)
}

// FindUserByEmail looks a user up by email, case-insensitively
func (s *MemoryStore) FindUserByEmail(email string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target := strings.ToLower(email)
	for _, u := range s.users {
		if strings.ToLower(u.Email) == target {
			return u, true
		}
	}
	return model.User{}, false
}

// FindUserByPhone looks a user up by phone number
func (s *MemoryStore) FindUserByPhone(phone string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target := strings.ToLower(phone)
	for _, u := range s.users {
		if u.Phone != "" && strings.ToLower(u.Phone) == target {
			return u, true
		}
	}
	return model.User{}, false
}

// ListTransactions returns a copy of the transaction collection
func (s *MemoryStore) ListTransactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Transaction(nil), s.transactions...)
}

// TransactionsByBorrower returns the transactions where the given user is the borrower
func (s *MemoryStore) TransactionsByBorrower(userID string) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]model.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.BorrowerID == userID {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// RecordTransaction stores a borrow request and flips the referenced book to
// unavailable under a single lock acquisition, so the append and the flip are
// atomic relative to every other store operation. The lender is resolved from
// the book's owner here for the same reason. Nothing ever flips availability
// back; no return flow exists.
func (s *MemoryStore) RecordTransaction(tx model.Transaction) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.books {
		if s.books[i].BookID == tx.BookID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.Transaction{}, fmt.Errorf("record transaction for book %s: %w", tx.BookID, lenderrors.ErrBookNotFound)
	}
	if !s.books[idx].Available {
		return model.Transaction{}, fmt.Errorf("record transaction for book %s: %w", tx.BookID, lenderrors.ErrBookUnavailable)
	}

	tx.LenderID = s.books[idx].OwnerID
	s.books[idx].Available = false
	s.transactions = append(s.transactions, tx)

	return tx, nil
}

// UpdateTransaction applies a shallow mutation to the stored transaction
// record under the write lock and returns the updated copy.
func (s *MemoryStore) UpdateTransaction(txID string, apply func(*model.Transaction)) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].TransactionID == txID {
			apply(&s.transactions[i])
			return s.transactions[i], nil
		}
	}
	return model.Transaction{}, fmt.Errorf("update transaction %s: %w", txID, lenderrors.ErrTransactionNotFound)
}

// SessionUser returns the currently authenticated user, or ErrUnauthorized
// when nobody is logged in. Authorization in the simulator is the presence of
// this pointer, not token validation.
func (s *MemoryStore) SessionUser() (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.sessionUserID == "" {
		return model.User{}, lenderrors.ErrUnauthorized
	}
	for _, u := range s.users {
		if u.UserID == s.sessionUserID {
			return u, nil
		}
	}
	return model.User{}, lenderrors.ErrUnauthorized
}

// SetSessionUser points the session at the given user ID
func (s *MemoryStore) SetSessionUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionUserID = userID
}

// ClearSession logs the current user out
func (s *MemoryStore) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionUserID = ""
}
