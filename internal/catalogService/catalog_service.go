package catalog

import (
	"fmt"
	"math/rand"

	"shelfshare/internal/lenderrors"
	"shelfshare/internal/metadata"
	"shelfshare/internal/models"
	"shelfshare/internal/repository"
	"shelfshare/utils"
)

// Default values applied when the create request omits optional fields
const (
	defaultDailyRate      = 30
	defaultDeposit        = 300
	defaultCondition      = "Good"
	defaultConditionScore = 85
)

// CatalogService defines the business logic for browsing and listing books
type CatalogService struct {
	store repository.LendingStore
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(store repository.LendingStore) *CatalogService {
	return &CatalogService{store: store}
}

// CreateBookInput carries the fields a caller may supply when listing a book.
// Title and author are required at the HTTP boundary; everything else is
// defaulted here.
type CreateBookInput struct {
	Title          string
	Author         string
	Edition        string
	Publisher      string
	ISBN           string
	Description    string
	Images         []string
	DailyRate      float64
	Deposit        float64
	Condition      string
	ConditionScore int
}

// ComparisonResult is the placeholder condition-comparison outcome
type ComparisonResult struct {
	Similarity  int      `json:"similarity"`
	Differences []string `json:"differences"`
}

// ListBooks returns the catalog, filtered by the optional free-text query
func (s *CatalogService) ListBooks(query string) []models.Book {
	return s.store.ListBooks(query)
}

// GetBook returns a single book by identifier
func (s *CatalogService) GetBook(bookID string) (models.Book, error) {
	if bookID == "" {
		return models.Book{}, fmt.Errorf("service: %w - empty book ID", lenderrors.ErrInvalidInput)
	}
	book, err := s.store.GetBook(bookID)
	if err != nil {
		return models.Book{}, fmt.Errorf("service: failed to get book %s: %w", bookID, err)
	}
	return book, nil
}

// CreateBook fills absent optional fields with fixed defaults, stamps a fresh
// identifier and fingerprint, attributes ownership to the session user, marks
// the book available and stores it.
func (s *CatalogService) CreateBook(input CreateBookInput) (models.Book, error) {
	owner, err := s.store.SessionUser()
	if err != nil {
		return models.Book{}, fmt.Errorf("service: create book: %w", err)
	}

	book := models.Book{
		BookID:         utils.NewEntityID("book"),
		Title:          input.Title,
		Author:         input.Author,
		Edition:        input.Edition,
		Publisher:      input.Publisher,
		ISBN:           input.ISBN,
		Description:    input.Description,
		Images:         input.Images,
		OwnerID:        owner.UserID,
		OwnerName:      owner.Name,
		DailyRate:      input.DailyRate,
		Deposit:        input.Deposit,
		Condition:      input.Condition,
		ConditionScore: input.ConditionScore,
		Available:      true,
	}
	if book.Images == nil {
		book.Images = []string{}
	}
	if book.DailyRate == 0 {
		book.DailyRate = defaultDailyRate
	}
	if book.Deposit == 0 {
		book.Deposit = defaultDeposit
	}
	if book.Condition == "" {
		book.Condition = defaultCondition
	}
	if book.ConditionScore == 0 {
		book.ConditionScore = defaultConditionScore
	}

	source := book.Title
	if len(book.Images) > 0 {
		source = book.Images[0]
	}
	book.Fingerprint = utils.Fingerprint(source)

	s.store.AddBook(book)
	return book, nil
}

// CompareCondition returns a similarity percentage drawn from a fixed random
// range with a canned difference list chosen by threshold. Placeholder for a
// real vision-based comparison; the current image is accepted and ignored.
func (s *CatalogService) CompareCondition(bookID, currentImage string) (ComparisonResult, error) {
	if _, err := s.store.GetBook(bookID); err != nil {
		return ComparisonResult{}, fmt.Errorf("service: compare condition for book %s: %w", bookID, err)
	}

	similarity := rand.Intn(20) + 75 // 75-94%
	differences := []string{"No significant changes detected"}
	if similarity < 85 {
		differences = []string{"Minor edge wear detected", "Slight color fading on spine"}
	}

	return ComparisonResult{Similarity: similarity, Differences: differences}, nil
}

// Recommendations returns a random sample of currently available books. Not a
// ranking.
func (s *CatalogService) Recommendations() []models.Book {
	available := s.store.AvailableBooks()
	rand.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	if len(available) > 3 {
		available = available[:3]
	}
	return available
}

// ExtractMetadata runs the OCR heuristics over raw recognized text
func (s *CatalogService) ExtractMetadata(text string) metadata.Metadata {
	return metadata.Extract(text)
}
