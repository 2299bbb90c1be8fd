package store

import (
	"glamor-shop/internal/models"
)

// SeedProducts is the catalog the shop opens with.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:        1,
			Name:      "Classic Linen Shirt",
			Category:  models.CategoryShirt,
			Price:     1250000,
			SalePrice: 990000,
			Colors: []models.Color{
				{Name: "White", Hex: "#FFFFFF"},
				{Name: "Navy", Hex: "#1F2A44"},
			},
			Variants: []models.ProductVariant{
				{Color: "White", Size: models.SizeL},
				{Color: "White", Size: models.SizeXL},
				{Color: "Navy", Size: models.SizeL},
				{Color: "Navy", Size: models.SizeXXL, IsOutOfStock: true},
			},
			Images: []string{"/images/linen-shirt-1.jpg", "/images/linen-shirt-2.jpg"},
		},
		{
			ID:       2,
			Name:     "Graphic Crew Tee",
			Category: models.CategoryTShirt,
			Price:    480000,
			Colors: []models.Color{
				{Name: "Black", Hex: "#111111"},
				{Name: "Cream", Hex: "#F4EFE6"},
			},
			Variants: []models.ProductVariant{
				{Color: "Black", Size: models.SizeL},
				{Color: "Black", Size: models.SizeXL},
				{Color: "Cream", Size: models.SizeL},
			},
			Images: []string{"/images/crew-tee-1.jpg"},
		},
		{
			ID:       3,
			Name:     "Tapered Wool Trousers",
			Category: models.CategoryPants,
			Price:    1850000,
			Colors: []models.Color{
				{Name: "Charcoal", Hex: "#3C3C3C"},
			},
			Variants: []models.ProductVariant{
				{Color: "Charcoal", Size: models.SizeL},
				{Color: "Charcoal", Size: models.SizeXL, IsOutOfStock: true},
			},
			Images: []string{"/images/wool-trousers-1.jpg", "/images/wool-trousers-2.jpg"},
		},
		{
			ID:       4,
			Name:     "Leather Card Holder",
			Category: models.CategoryAccessory,
			Price:    620000,
			Colors: []models.Color{
				{Name: "Tan", Hex: "#B48A5A"},
			},
			Variants: []models.ProductVariant{
				{Color: "Tan", Size: models.SizeL},
			},
			Images: []string{"/images/card-holder-1.jpg"},
		},
	}
}

// SeedBankAccounts is the static bank account reference data. The first
// account is the default target for online order payments.
func SeedBankAccounts() []models.BankAccount {
	return []models.BankAccount{
		{ID: 1, Name: "Mellat - Shop", AccountNumber: "6104-3378-1200-4455"},
		{ID: 2, Name: "Saman - Savings", AccountNumber: "6219-8610-0451-9023"},
	}
}
