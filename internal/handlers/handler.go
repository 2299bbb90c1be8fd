package handlers

import (
	"strconv"
	"time"

	"glamor-shop/internal/database"
	"glamor-shop/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler carries the session state every route works against. One Handler
// is built per server process; nothing here is a package global.
type Handler struct {
	Shop   *store.Shop
	Ledger *database.Ledger // nil when SQL reporting is disabled
}

func New(shop *store.Shop, ledger *database.Ledger) *Handler {
	return &Handler{Shop: shop, Ledger: ledger}
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// parseDateRange reads optional from/to query params (YYYY-MM-DD). The
// upper bound is pushed to the end of its day so the whole day is included.
func parseDateRange(c *gin.Context) (from, to time.Time, ok bool) {
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, false
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, false
		}
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, true
}
