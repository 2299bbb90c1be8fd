package database

import (
	"time"

	"gorm.io/gorm"
)

// Summary holds the headline finance numbers for a date range.
type Summary struct {
	TotalSales     float64 `json:"total_sales"` // pre-discount
	TotalDiscounts float64 `json:"total_discounts"`
	NetRevenue     float64 `json:"net_revenue"`
	EntryCount     int64   `json:"entry_count"`
}

// MethodTotal is net revenue broken down by payment method.
type MethodTotal struct {
	PaymentMethod string  `json:"payment_method"`
	Net           float64 `json:"net"`
	Count         int64   `json:"count"`
}

// MonthTotal is net revenue per calendar month.
type MonthTotal struct {
	Month string  `json:"month"` // YYYY-MM
	Net   float64 `json:"net"`
}

// ProductTotal is units and revenue per product across all orders.
type ProductTotal struct {
	ProductName string  `json:"product_name"`
	Sold        int     `json:"sold"`
	Revenue     float64 `json:"revenue"`
}

// entriesInRange scopes entry queries to a date window; zero bounds are
// open ends.
func (l *Ledger) entriesInRange(from, to time.Time) *gorm.DB {
	tx := l.db.Model(&EntryRow{})
	if !from.IsZero() {
		tx = tx.Where("date >= ?", from)
	}
	if !to.IsZero() {
		tx = tx.Where("date <= ?", to)
	}
	return tx
}

// GetSummary calculates sales, discounts and net revenue within the range.
// COALESCE keeps the result at 0 instead of NULL when no entries exist.
func (l *Ledger) GetSummary(from, to time.Time) (*Summary, error) {
	var out Summary

	err := l.entriesInRange(from, to).Select(
		"COALESCE(SUM(total_amount), 0) AS total_sales, " +
			"COALESCE(SUM(discount_amount), 0) AS total_discounts, " +
			"COALESCE(SUM(final_amount), 0) AS net_revenue, " +
			"COUNT(*) AS entry_count").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMethodTotals breaks net revenue down by payment method.
func (l *Ledger) GetMethodTotals(from, to time.Time) ([]MethodTotal, error) {
	var out []MethodTotal

	err := l.entriesInRange(from, to).
		Select("payment_method, COALESCE(SUM(final_amount), 0) AS net, COUNT(*) AS count").
		Group("payment_method").
		Order("net desc").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetMonthlyNet sums net revenue per calendar month within the range.
func (l *Ledger) GetMonthlyNet(from, to time.Time) ([]MonthTotal, error) {
	var out []MonthTotal

	err := l.entriesInRange(from, to).
		Select("strftime('%Y-%m', date) AS month, COALESCE(SUM(final_amount), 0) AS net").
		Group("strftime('%Y-%m', date)").
		Order("month desc").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetTopSelling lists the best selling products across all mirrored orders.
func (l *Ledger) GetTopSelling(limit int) ([]ProductTotal, error) {
	var out []ProductTotal

	err := l.db.Model(&SoldItemRow{}).
		Select("product_name, SUM(quantity) AS sold, SUM(quantity * unit_price) AS revenue").
		Group("product_name").
		Order("sold desc").
		Limit(limit).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetRecentOrders returns the last placed orders, newest first.
func (l *Ledger) GetRecentOrders(limit int) ([]OrderRow, error) {
	var out []OrderRow
	err := l.db.Order("date desc").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
