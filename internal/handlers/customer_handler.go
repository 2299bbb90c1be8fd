package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// --- POST: Customer login by phone ---
// A miss creates nothing and returns not-found.
func (h *Handler) CustomerLogin(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if !h.Shop.CustomerLogin(req.Phone) {
		c.JSON(http.StatusNotFound, gin.H{"result": "not-found"})
		return
	}

	customer, _ := h.Shop.CurrentCustomer()
	c.JSON(http.StatusOK, gin.H{"result": "found", "customer": customer})
}

// --- POST: Customer registration ---
// An already-registered phone keeps its existing record; either way the
// customer becomes current.
func (h *Handler) CustomerRegister(c *gin.Context) {
	var req struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Phone     string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if strings.TrimSpace(req.Phone) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone is required"})
		return
	}

	h.Shop.CustomerRegister(req.FirstName, req.LastName, req.Phone)
	customer, _ := h.Shop.CurrentCustomer()
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// --- POST: Customer logout ---
func (h *Handler) CustomerLogout(c *gin.Context) {
	h.Shop.CustomerLogout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// --- GET: The current customer's orders, newest first ---
func (h *Handler) MyOrders(c *gin.Context) {
	customer, ok := h.Shop.CurrentCustomer()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No customer is logged in"})
		return
	}
	c.JSON(http.StatusOK, h.Shop.OrdersByPhone(customer.Phone))
}

// --- GET: All customers (admin) ---
func (h *Handler) GetCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Shop.Customers())
}
