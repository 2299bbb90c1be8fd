package handlers

import (
	"net/http"
	"strconv"

	"glamor-shop/internal/models"

	"github.com/gin-gonic/gin"
)

// CartItemRequest identifies one cart line by its merge key.
type CartItemRequest struct {
	ProductID int64       `json:"product_id" binding:"required"`
	Color     string      `json:"color" binding:"required"`
	Size      models.Size `json:"size" binding:"required"`
}

// --- GET: Cart contents ---
func (h *Handler) GetCart(c *gin.Context) {
	items := h.Shop.Cart()

	var total float64
	for _, item := range items {
		total += item.Product.EffectivePrice() * float64(item.Quantity)
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
	})
}

// --- POST: Add one unit of a variant to the cart ---
// Stock and variant existence are checked here; the store itself trusts
// its callers.
func (h *Handler) AddToCart(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product, found := h.Shop.ProductByID(req.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	variant, ok := product.FindVariant(req.Color, req.Size)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No such color/size for this product"})
		return
	}
	if variant.IsOutOfStock {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This variant is out of stock"})
		return
	}

	var color models.Color
	for _, col := range product.Colors {
		if col.Name == variant.Color {
			color = col
			break
		}
	}

	h.Shop.AddToCart(models.CartItem{
		Product:         product,
		SelectedVariant: variant,
		SelectedColor:   color,
	})

	c.JSON(http.StatusOK, gin.H{"items": h.Shop.Cart()})
}

// --- PATCH: Set the quantity of a cart line ---
// Zero or negative quantity removes the line.
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	var req struct {
		CartItemRequest
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	h.Shop.UpdateCartQuantity(req.ProductID, req.Color, req.Size, req.Quantity)
	c.JSON(http.StatusOK, gin.H{"items": h.Shop.Cart()})
}

// --- DELETE: Remove a cart line by its merge key (query params) ---
func (h *Handler) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Query("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
		return
	}
	color := c.Query("color")
	size := models.Size(c.Query("size"))
	if color == "" || size == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "color and size are required"})
		return
	}

	h.Shop.RemoveFromCart(productID, color, size)
	c.JSON(http.StatusOK, gin.H{"items": h.Shop.Cart()})
}
