package handlers

import (
	"net/http"

	"glamor-shop/internal/database"

	"github.com/gin-gonic/gin"
)

// ReportData is the admin dashboard payload.
type ReportData struct {
	TotalRevenue float64                 `json:"total_revenue"` // net, post-discount
	TotalEntries int64                   `json:"total_entries"`
	TopSelling   []database.ProductTotal `json:"top_selling"`
	RecentOrders []database.OrderRow     `json:"recent_orders"`
	ByMethod     []database.MethodTotal  `json:"by_method"`
}

// --- GET: /api/admin/reports ---
func (h *Handler) GetSalesReport(c *gin.Context) {
	if h.Ledger == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Reporting backend is not configured"})
		return
	}

	from, to, ok := parseDateRange(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be YYYY-MM-DD"})
		return
	}

	var data ReportData

	summary, err := h.Ledger.GetSummary(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate revenue"})
		return
	}
	data.TotalRevenue = summary.NetRevenue
	data.TotalEntries = summary.EntryCount

	data.TopSelling, err = h.Ledger.GetTopSelling(5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top selling items"})
		return
	}

	data.RecentOrders, err = h.Ledger.GetRecentOrders(10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent orders"})
		return
	}

	data.ByMethod, err = h.Ledger.GetMethodTotals(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to break down payment methods"})
		return
	}

	c.JSON(http.StatusOK, data)
}

// --- DATA STRUCTURES FOR THE STOCK REPORT ---

// StockItem is one product row in the stock report.
type StockItem struct {
	Name              string `json:"name"`
	VariantCount      int    `json:"variant_count"`
	OutOfStockCount   int    `json:"out_of_stock_count"`
	TotallyOutOfStock bool   `json:"totally_out_of_stock"`
}

// StockCategoryGroup is one category's table in the report.
type StockCategoryGroup struct {
	CategoryName string      `json:"category_name"`
	Items        []StockItem `json:"items"`
	TotallyOut   int         `json:"totally_out"`
}

// StockReportResponse is the final payload.
type StockReportResponse struct {
	Categories      []StockCategoryGroup `json:"categories"`
	TotalProducts   int                  `json:"total_products"`
	TotalTotallyOut int                  `json:"total_totally_out"`
}

// --- GET: /api/admin/reports/stock ---
// GetStockReport walks the catalog and groups variant availability by
// category so restocking gaps are visible at a glance.
func (h *Handler) GetStockReport(c *gin.Context) {
	products := h.Shop.Products()

	groupedMap := make(map[string]*StockCategoryGroup)
	var response StockReportResponse

	for _, p := range products {
		catName := string(p.Category)
		if catName == "" {
			catName = "uncategorized"
		}

		if _, exists := groupedMap[catName]; !exists {
			groupedMap[catName] = &StockCategoryGroup{CategoryName: catName}
		}
		group := groupedMap[catName]

		outCount := 0
		for _, v := range p.Variants {
			if v.IsOutOfStock {
				outCount++
			}
		}

		item := StockItem{
			Name:              p.Name,
			VariantCount:      len(p.Variants),
			OutOfStockCount:   outCount,
			TotallyOutOfStock: p.IsTotallyOutOfStock(),
		}
		group.Items = append(group.Items, item)

		response.TotalProducts++
		if item.TotallyOutOfStock {
			group.TotallyOut++
			response.TotalTotallyOut++
		}
	}

	for _, group := range groupedMap {
		response.Categories = append(response.Categories, *group)
	}

	c.JSON(http.StatusOK, response)
}
