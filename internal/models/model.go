package models

// User represents an account in the lending marketplace. The shape mirrors
// what the real backend returns so the front end cannot tell the difference.
type User struct {
	UserID                string   `json:"id"`
	Name                  string   `json:"name"`
	Email                 string   `json:"email"`
	Phone                 string   `json:"phone,omitempty"`
	PasswordHash          string   `json:"-"`
	ProfileImageURL       string   `json:"profileImageUrl,omitempty"`
	Bio                   string   `json:"bio,omitempty"`
	Address               string   `json:"address,omitempty"`
	City                  string   `json:"city,omitempty"`
	District              string   `json:"district,omitempty"`
	PostalCode            string   `json:"postalCode,omitempty"`
	Latitude              float64  `json:"latitude,omitempty"`
	Longitude             float64  `json:"longitude,omitempty"`
	TrustScore            float64  `json:"trustScore"`
	TotalBooksListed      int      `json:"totalBooksListed"`
	TotalBooksBorrowed    int      `json:"totalBooksBorrowed"`
	TotalBooksLent        int      `json:"totalBooksLent"`
	CompletedTransactions int      `json:"completedTransactions"`
	CancelledTransactions int      `json:"cancelledTransactions"`
	OverdueTransactions   int      `json:"overdueTransactions"`
	AverageRating         float64  `json:"averageRating"`
	TotalRatings          int      `json:"totalRatings"`
	Role                  string   `json:"role"`
	Status                string   `json:"status"`
	EmailVerified         bool     `json:"emailVerified"`
	PhoneVerified         bool     `json:"phoneVerified"`
	LastLoginAt           string   `json:"lastLoginAt,omitempty"`
	CreatedAt             string   `json:"createdAt"`
	Reputation            float64  `json:"reputation"`
	Avatar                string   `json:"avatar,omitempty"`
	IsActive              bool     `json:"isActive"`
	BooksShared           int      `json:"booksShared"`
	IsAdmin               bool     `json:"isAdmin"`
	Roles                 []string `json:"roles"`
}

// Book represents a lendable item with ownership, pricing and condition metadata
type Book struct {
	BookID         string   `json:"id"`
	Title          string   `json:"title"`
	Author         string   `json:"author"`
	Edition        string   `json:"edition,omitempty"`
	Publisher      string   `json:"publisher,omitempty"`
	ISBN           string   `json:"isbn,omitempty"`
	Description    string   `json:"description,omitempty"`
	Images         []string `json:"images"`
	OwnerID        string   `json:"ownerId"`
	OwnerName      string   `json:"ownerName"`
	DailyRate      float64  `json:"dailyRate"`
	Deposit        float64  `json:"deposit"`
	Condition      string   `json:"condition"`
	ConditionScore int      `json:"conditionScore"`
	Fingerprint    string   `json:"fingerprint"`
	Available      bool     `json:"available"`
}

// Transaction lifecycle statuses. The simulator only ever assigns
// StatusPending; the remaining values exist for admin patches.
const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Transaction represents a borrow request linking a borrower, a lender and a
// book over a date range. Cost and deposit are computed by the caller and
// passed in, never recomputed here.
type Transaction struct {
	TransactionID string  `json:"id"`
	BookID        string  `json:"bookId"`
	BorrowerID    string  `json:"borrowerId"`
	LenderID      string  `json:"lenderId"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Status        string  `json:"status"`
	TotalCost     float64 `json:"totalCost"`
	Deposit       float64 `json:"deposit"`
}
