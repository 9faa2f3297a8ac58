package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"shelfshare/internal/lenderrors"
	lending "shelfshare/internal/lendingService"
	model "shelfshare/internal/models"
	"shelfshare/services/lending/helpers"
	"shelfshare/utils"
)

type LendingServiceInterface interface {
	Borrow(input lending.BorrowInput) (model.Transaction, error)
	MyTransactions() ([]model.Transaction, error)
	AdminListTransactions() []model.Transaction
	AdminPatchTransaction(txID string, patch lending.TransactionPatch) (model.Transaction, error)
}

type LendingHandler struct {
	service LendingServiceInterface
}

func NewLendingHandler(service LendingServiceInterface) *LendingHandler {
	return &LendingHandler{service: service}
}

// BorrowHandler handles POST /transactions
func (h *LendingHandler) BorrowHandler(c *gin.Context) {
	var req helpers.BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "BorrowHandler", err)
		return
	}

	tx, err := h.service.Borrow(lending.BorrowInput{
		BookID:    req.BookID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		TotalCost: req.TotalCost,
		Deposit:   req.Deposit,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("BorrowHandler: failed to create transaction", map[string]any{
			"handler": "BorrowHandler",
			"book_id": req.BookID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, tx, "borrow request created successfully")
	utils.LogSuccess("BorrowHandler", "borrow request created successfully", map[string]any{
		"transaction_id": tx.TransactionID,
		"book_id":        tx.BookID,
		"borrower_id":    tx.BorrowerID,
		"lender_id":      tx.LenderID,
	})
}

// MyTransactionsHandler handles GET /transactions/my
func (h *LendingHandler) MyTransactionsHandler(c *gin.Context) {
	txs, err := h.service.MyTransactions()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Info("MyTransactionsHandler: no session", map[string]any{"error": err.Error()})
		return
	}

	if txs == nil {
		txs = []model.Transaction{}
	}

	utils.JSONResponse(c, http.StatusOK, txs, "transactions retrieved successfully")
	utils.LogSuccess("MyTransactionsHandler", "transactions retrieved successfully", map[string]any{
		"count": len(txs),
	})
}

// AdminListTransactionsHandler handles GET /admin/transactions
func (h *LendingHandler) AdminListTransactionsHandler(c *gin.Context) {
	txs := h.service.AdminListTransactions()

	utils.JSONResponse(c, http.StatusOK, txs, "transactions retrieved successfully")
	utils.LogSuccess("AdminListTransactionsHandler", "transactions retrieved successfully", map[string]any{
		"count": len(txs),
	})
}

// AdminPatchTransactionHandler handles PATCH /admin/transactions/:id
func (h *LendingHandler) AdminPatchTransactionHandler(c *gin.Context) {
	txID := c.Param("id")

	var req helpers.AdminPatchTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "AdminPatchTransactionHandler", err)
		return
	}

	tx, err := h.service.AdminPatchTransaction(txID, req.ToPatch())
	if err != nil {
		if errors.Is(err, lenderrors.ErrTransactionNotFound) {
			c.Status(http.StatusNotFound)
			utils.Info("AdminPatchTransactionHandler: transaction not found", map[string]any{"transaction_id": txID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AdminPatchTransactionHandler: patch failed", map[string]any{"transaction_id": txID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, tx, "transaction updated successfully")
	utils.LogSuccess("AdminPatchTransactionHandler", "transaction updated successfully", map[string]any{
		"transaction_id": txID,
	})
}
