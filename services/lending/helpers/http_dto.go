package helpers

import (
	lending "shelfshare/internal/lendingService"
)

// Request/Response DTOs
type BorrowRequest struct {
	BookID    string  `json:"bookId" binding:"required"`
	StartDate string  `json:"startDate" binding:"required"`
	EndDate   string  `json:"endDate" binding:"required"`
	TotalCost float64 `json:"totalCost"`
	Deposit   float64 `json:"deposit"`
}

type AdminPatchTransactionRequest struct {
	Status    *string  `json:"status"`
	StartDate *string  `json:"startDate"`
	EndDate   *string  `json:"endDate"`
	TotalCost *float64 `json:"totalCost"`
	Deposit   *float64 `json:"deposit"`
}

// ToPatch converts the request into the service-level patch
func (r AdminPatchTransactionRequest) ToPatch() lending.TransactionPatch {
	return lending.TransactionPatch{
		Status:    r.Status,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		TotalCost: r.TotalCost,
		Deposit:   r.Deposit,
	}
}
