package handlers

import (
	"net/http"
	"strings"

	"glamor-shop/internal/models"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest carries the delivery details for the cart being bought.
type CheckoutRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address" binding:"required"`
	PostalCode string `json:"postal_code"`
}

// --- POST: Checkout the current cart ---
// The payable total is computed server side from the sale prices in the
// cart; the gap to the list-price total becomes the discount on the
// order's ledger line. Placing the order clears the cart.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	items := h.Shop.Cart()
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	// stock can run out between adding to cart and paying
	for _, item := range items {
		if item.SelectedVariant.IsOutOfStock {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Out of stock: " + item.Product.Name + " (" + item.SelectedVariant.Color + "/" + string(item.SelectedVariant.Size) + ")",
			})
			return
		}
	}

	var totalPrice float64
	for _, item := range items {
		totalPrice += item.Product.EffectivePrice() * float64(item.Quantity)
	}

	customer := models.Customer{
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Phone:      strings.TrimSpace(req.Phone),
		Address:    strings.TrimSpace(req.Address),
		PostalCode: strings.TrimSpace(req.PostalCode),
	}

	order := h.Shop.AddOrder(customer, items, totalPrice)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed",
		"order":   order,
	})
}

// --- GET: All orders (admin) ---
func (h *Handler) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.Shop.Orders())
}

// --- PUT: Overwrite an order's status (admin) ---
// Any of the four states is accepted in any sequence.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	if _, found := h.Shop.OrderByID(id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	h.Shop.UpdateOrderStatus(id, req.Status)
	order, _ := h.Shop.OrderByID(id)
	c.JSON(http.StatusOK, order)
}
