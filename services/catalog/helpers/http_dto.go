package helpers

// Request/Response DTOs
type CreateBookRequest struct {
	Title          string   `json:"title" binding:"required"`
	Author         string   `json:"author" binding:"required"`
	Edition        string   `json:"edition"`
	Publisher      string   `json:"publisher"`
	ISBN           string   `json:"isbn"`
	Description    string   `json:"description"`
	Images         []string `json:"images"`
	DailyRate      float64  `json:"dailyRate"`
	Deposit        float64  `json:"deposit"`
	Condition      string   `json:"condition"`
	ConditionScore int      `json:"conditionScore"`
}

type CompareConditionRequest struct {
	CurrentImage string `json:"currentImage" binding:"required"`
}

type ExtractMetadataRequest struct {
	Text string `json:"text" binding:"required"`
}
