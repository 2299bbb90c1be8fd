package handlers

import (
	"net/http"
	"strings"

	"glamor-shop/internal/models"

	"github.com/gin-gonic/gin"
)

// --- GET: List all products ---
func (h *Handler) GetProducts(c *gin.Context) {
	products := h.Shop.Products()

	// optional ?category= filter for the storefront tabs
	if cat := c.Query("category"); cat != "" {
		filtered := products[:0]
		for _, p := range products {
			if string(p.Category) == cat {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	// optional ?q= substring search over names
	if q := strings.ToLower(c.Query("q")); q != "" {
		filtered := products[:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), q) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	c.JSON(http.StatusOK, products)
}

// --- GET: One product ---
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, found := h.Shop.ProductByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// validateProduct applies the form-level rules the store itself does not
// enforce: required fields, known enums, and the three-image cap.
func validateProduct(p models.Product) string {
	if strings.TrimSpace(p.Name) == "" {
		return "Product name is required"
	}
	switch p.Category {
	case models.CategoryShirt, models.CategoryTShirt, models.CategoryPants, models.CategoryAccessory:
	default:
		return "Unknown category"
	}
	if p.Price <= 0 {
		return "Price must be positive"
	}
	if p.SalePrice < 0 || (p.SalePrice > 0 && p.SalePrice >= p.Price) {
		return "Sale price must be below the regular price"
	}
	if len(p.Images) > 3 {
		return "A product can have at most 3 images"
	}
	for _, v := range p.Variants {
		switch v.Size {
		case models.SizeL, models.SizeXL, models.SizeXXL:
		default:
			return "Unknown size: " + string(v.Size)
		}
	}
	return ""
}

// --- POST: Add a new product (admin) ---
func (h *Handler) AddProduct(c *gin.Context) {
	var newProduct models.Product
	if err := c.ShouldBindJSON(&newProduct); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if msg := validateProduct(newProduct); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	created := h.Shop.AddProduct(newProduct)
	c.JSON(http.StatusCreated, created)
}

// --- PUT: Replace a product (admin) ---
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if _, found := h.Shop.ProductByID(id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var updated models.Product
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	updated.ID = id

	if msg := validateProduct(updated); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	h.Shop.UpdateProduct(updated)
	product, _ := h.Shop.ProductByID(id)
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

// --- DELETE: Remove a product (admin) ---
// Cart and wishlist entries for it go away in the same step.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	h.Shop.DeleteProduct(id)
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
