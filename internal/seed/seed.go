// Package seed holds the static snapshot loaded into the store at startup.
// It is the only data the simulator starts with; everything else is created
// through the API and discarded when the process exits.
package seed

import model "shelfshare/internal/models"

// Users returns the seeded accounts. The first entry becomes the default
// session user. None carry a password hash, so any password logs them in.
func Users() []model.User {
	return []model.User{
		{
			UserID:           "user-1",
			Name:             "Ayesha Rahman",
			Email:            "ayesha@example.com",
			Phone:            "+8801711000001",
			TrustScore:       82,
			TotalBooksListed: 3,
			TotalBooksLent:   2,
			AverageRating:    4.6,
			TotalRatings:     12,
			Role:             "USER",
			Status:           "ACTIVE",
			EmailVerified:    true,
			CreatedAt:        "2024-03-12T09:30:00Z",
			Reputation:       4.6,
			Avatar:           "https://api.dicebear.com/7.x/avataaars/svg?seed=Ayesha",
			IsActive:         true,
			BooksShared:      3,
			Roles:            []string{"USER"},
		},
		{
			UserID:             "user-2",
			Name:               "Tanvir Ahmed",
			Email:              "tanvir@example.com",
			Phone:              "+8801711000002",
			TrustScore:         67,
			TotalBooksListed:   2,
			TotalBooksBorrowed: 4,
			AverageRating:      4.1,
			TotalRatings:       8,
			Role:               "USER",
			Status:             "ACTIVE",
			CreatedAt:          "2024-05-02T14:10:00Z",
			Reputation:         4.1,
			Avatar:             "https://api.dicebear.com/7.x/avataaars/svg?seed=Tanvir",
			IsActive:           true,
			BooksShared:        2,
			Roles:              []string{"USER"},
		},
		{
			UserID:        "user-3",
			Name:          "Nadia Islam",
			Email:         "nadia@example.com",
			TrustScore:    91,
			Role:          "ADMIN",
			Status:        "ACTIVE",
			EmailVerified: true,
			PhoneVerified: true,
			CreatedAt:     "2024-01-20T08:00:00Z",
			Reputation:    4.9,
			Avatar:        "https://api.dicebear.com/7.x/avataaars/svg?seed=Nadia",
			IsActive:      true,
			IsAdmin:       true,
			Roles:         []string{"USER", "ADMIN"},
		},
	}
}

// Books returns the seeded catalog. "book-5" is already borrowed by the
// seeded transaction and therefore unavailable.
func Books() []model.Book {
	return []model.Book{
		{
			BookID:         "book-1",
			Title:          "1984",
			Author:         "George Orwell",
			Publisher:      "Secker & Warburg",
			ISBN:           "9780451524935",
			Description:    "A dystopian classic about surveillance and control.",
			Images:         []string{"https://covers.example.com/1984.jpg"},
			OwnerID:        "user-1",
			OwnerName:      "Ayesha Rahman",
			DailyRate:      25,
			Deposit:        250,
			Condition:      "Good",
			ConditionScore: 82,
			Fingerprint:    "hash-5c1f9a02",
			Available:      true,
		},
		{
			BookID:         "book-2",
			Title:          "The Alchemist",
			Author:         "Paulo Coelho",
			Publisher:      "HarperOne",
			ISBN:           "9780061122415",
			Description:    "A fable about following your dreams.",
			Images:         []string{"https://covers.example.com/alchemist.jpg"},
			OwnerID:        "user-1",
			OwnerName:      "Ayesha Rahman",
			DailyRate:      30,
			Deposit:        300,
			Condition:      "Like New",
			ConditionScore: 93,
			Fingerprint:    "hash-11b4e6d7",
			Available:      true,
		},
		{
			BookID:         "book-3",
			Title:          "পথের পাঁচালী",
			Author:         "Bibhutibhushan Bandyopadhyay",
			Description:    "The story of Apu's childhood in rural Bengal.",
			Images:         []string{"https://covers.example.com/pather-panchali.jpg"},
			OwnerID:        "user-2",
			OwnerName:      "Tanvir Ahmed",
			DailyRate:      20,
			Deposit:        200,
			Condition:      "Fair",
			ConditionScore: 68,
			Fingerprint:    "hash-73aa0c41",
			Available:      true,
		},
		{
			BookID:         "book-4",
			Title:          "Clean Code",
			Author:         "Robert C. Martin",
			Edition:        "1st edition",
			Publisher:      "Prentice Hall",
			ISBN:           "9780132350884",
			Description:    "A handbook of agile software craftsmanship.",
			Images:         []string{"https://covers.example.com/clean-code.jpg"},
			OwnerID:        "user-2",
			OwnerName:      "Tanvir Ahmed",
			DailyRate:      40,
			Deposit:        500,
			Condition:      "Good",
			ConditionScore: 85,
			Fingerprint:    "hash-2f08d913",
			Available:      true,
		},
		{
			BookID:         "book-5",
			Title:          "To Kill a Mockingbird",
			Author:         "Harper Lee",
			Publisher:      "J. B. Lippincott & Co.",
			ISBN:           "9780060935467",
			Description:    "A story of racial injustice in the American South.",
			Images:         []string{"https://covers.example.com/mockingbird.jpg"},
			OwnerID:        "user-1",
			OwnerName:      "Ayesha Rahman",
			DailyRate:      25,
			Deposit:        250,
			Condition:      "Good",
			ConditionScore: 80,
			Fingerprint:    "hash-64c21be5",
			Available:      false,
		},
		{
			BookID:         "book-6",
			Title:          "A Brief History of Time",
			Author:         "Stephen Hawking",
			Publisher:      "Bantam Books",
			ISBN:           "9780553380163",
			Description:    "From the Big Bang to black holes.",
			Images:         []string{"https://covers.example.com/brief-history.jpg"},
			OwnerID:        "user-3",
			OwnerName:      "Nadia Islam",
			DailyRate:      35,
			Deposit:        400,
			Condition:      "Like New",
			ConditionScore: 95,
			Fingerprint:    "hash-0d97f3a8",
			Available:      true,
		},
	}
}

// Transactions returns the seeded borrow requests
func Transactions() []model.Transaction {
	return []model.Transaction{
		{
			TransactionID: "tx-1",
			BookID:        "book-5",
			BorrowerID:    "user-2",
			LenderID:      "user-1",
			StartDate:     "2025-08-01",
			EndDate:       "2025-08-15",
			Status:        model.StatusPending,
			TotalCost:     350,
			Deposit:       250,
		},
	}
}
