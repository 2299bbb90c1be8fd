package handlers

import (
	"net/http"
	"time"

	"glamor-shop/internal/models"

	"github.com/gin-gonic/gin"
)

// --- GET: Ledger entries with optional ?from= ?to= ?type= filters ---
func (h *Handler) GetFinancialEntries(c *gin.Context) {
	from, to, ok := parseDateRange(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be YYYY-MM-DD"})
		return
	}

	entries := h.Shop.FinancialEntriesBetween(from, to)

	if t := c.Query("type"); t != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if string(e.Type) == t {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	c.JSON(http.StatusOK, entries)
}

// --- GET: Bank accounts for the finance forms ---
func (h *Handler) GetBankAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Shop.BankAccounts())
}

// DailyReportRequest is the end-of-day in-person sales form: an itemized
// sales list plus the split of how the money came in.
type DailyReportRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD

	Items []struct {
		Description string  `json:"description" binding:"required"`
		Amount      float64 `json:"amount" binding:"required"`
	} `json:"items" binding:"required"`
	CashAmount    float64 `json:"cash_amount"`
	CardAmount    float64 `json:"card_amount"`
	CreditAmount  float64 `json:"credit_amount"`
	BankAccountID int64   `json:"bank_account_id"` // where card payments landed
}

// --- POST: Record a day of in-person sales (admin) ---
// The split must balance: cash + card + credit has to equal the itemized
// total. Each non-zero bucket becomes its own ledger entry.
func (h *Handler) SubmitDailyReport(c *gin.Context) {
	var req DailyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be YYYY-MM-DD"})
		return
	}

	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one sale item is required"})
		return
	}

	var totalSales float64
	for _, item := range req.Items {
		if item.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Sale amounts must be positive"})
			return
		}
		totalSales += item.Amount
	}

	if req.CashAmount < 0 || req.CardAmount < 0 || req.CreditAmount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Split amounts cannot be negative"})
		return
	}
	totalPaid := req.CashAmount + req.CardAmount + req.CreditAmount
	if totalPaid != totalSales {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Cash, card and credit must add up to the itemized sales total",
			"total":     totalSales,
			"allocated": totalPaid,
		})
		return
	}

	var created []models.FinancialEntry
	if req.CashAmount > 0 {
		created = append(created, h.Shop.AddFinancialEntry(models.FinancialEntry{
			Date: day, Type: models.EntryInPerson, Description: "In-person sales - cash",
			TotalAmount: req.CashAmount, PaymentMethod: models.PayCash,
		}))
	}
	if req.CardAmount > 0 {
		created = append(created, h.Shop.AddFinancialEntry(models.FinancialEntry{
			Date: day, Type: models.EntryInPerson, Description: "In-person sales - card",
			TotalAmount: req.CardAmount, PaymentMethod: models.PayCard,
			BankAccountID: req.BankAccountID,
		}))
	}
	if req.CreditAmount > 0 {
		created = append(created, h.Shop.AddFinancialEntry(models.FinancialEntry{
			Date: day, Type: models.EntryInPerson, Description: "In-person sales - credit",
			TotalAmount: req.CreditAmount, PaymentMethod: models.PayCredit,
		}))
	}

	c.JSON(http.StatusCreated, gin.H{"entries": created})
}

// --- GET: SQL finance summary (admin) ---
func (h *Handler) GetFinanceSummary(c *gin.Context) {
	if h.Ledger == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Reporting backend is not configured"})
		return
	}

	from, to, ok := parseDateRange(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be YYYY-MM-DD"})
		return
	}

	summary, err := h.Ledger.GetSummary(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate summary"})
		return
	}
	methods, err := h.Ledger.GetMethodTotals(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to break down payment methods"})
		return
	}
	months, err := h.Ledger.GetMonthlyNet(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate monthly totals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":   summary,
		"by_method": methods,
		"by_month":  months,
	})
}
