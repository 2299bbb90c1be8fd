package models

import (
	"time"
)

// Category - what kind of clothing a product is
type Category string

const (
	CategoryShirt     Category = "shirt"
	CategoryTShirt    Category = "tshirt"
	CategoryPants     Category = "pants"
	CategoryAccessory Category = "accessory"
)

// Size - the sizes the boutique stocks
type Size string

const (
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "2X"
)

// Color - a named color with its hex code, unique by name within a product
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// ProductVariant - a (color, size) stock-keeping unit
type ProductVariant struct {
	Color        string `json:"color"` // references Color.Name on the owning product
	Size         Size   `json:"size"`
	IsOutOfStock bool   `json:"is_out_of_stock"`
}

// Product - one catalog entry
type Product struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Category  Category         `json:"category"`
	Price     float64          `json:"price"`
	SalePrice float64          `json:"sale_price,omitempty"` // 0 means not on sale
	Colors    []Color          `json:"colors"`
	Variants  []ProductVariant `json:"variants"`
	Images    []string         `json:"images"`
}

// IsOnSale reports whether the sale price is set and actually lower.
func (p Product) IsOnSale() bool {
	return p.SalePrice > 0 && p.SalePrice < p.Price
}

// EffectivePrice is the price a buyer pays right now.
func (p Product) EffectivePrice() float64 {
	if p.IsOnSale() {
		return p.SalePrice
	}
	return p.Price
}

// IsTotallyOutOfStock is true when the product has variants and every one is out of stock.
func (p Product) IsTotallyOutOfStock() bool {
	if len(p.Variants) == 0 {
		return false
	}
	for _, v := range p.Variants {
		if !v.IsOutOfStock {
			return false
		}
	}
	return true
}

// FindVariant looks up a variant by its (color, size) pair.
func (p Product) FindVariant(color string, size Size) (ProductVariant, bool) {
	for _, v := range p.Variants {
		if v.Color == color && v.Size == size {
			return v, true
		}
	}
	return ProductVariant{}, false
}

// CartItem - a product snapshot in the cart.
// The embedded Product is a value copy taken at add time; the store
// refreshes it when the catalog entry is edited and purges it when the
// catalog entry is deleted.
type CartItem struct {
	Product         Product        `json:"product"`
	Quantity        int            `json:"quantity"`
	SelectedVariant ProductVariant `json:"selected_variant"`
	SelectedColor   Color          `json:"selected_color"`
}

// WishlistItem - a product snapshot, unique by product id
type WishlistItem struct {
	Product Product `json:"product"`
}

// Customer - the phone number is the natural key
type Customer struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
}

// OrderStatus - lifecycle of a placed order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipping  OrderStatus = "shipping"
	OrderDelivered OrderStatus = "delivered"
)

// ValidOrderStatus reports whether s is one of the four known states.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipping, OrderDelivered:
		return true
	}
	return false
}

// Order - a placed order. Customer and Items are snapshots: later edits to
// the catalog or the customer record never rewrite order history.
type Order struct {
	ID         int64       `json:"id"`
	Customer   Customer    `json:"customer"`
	Items      []CartItem  `json:"items"`
	TotalPrice float64     `json:"total_price"` // post-discount
	Date       time.Time   `json:"date"`
	Status     OrderStatus `json:"status"`
}

// PaymentMethod - how a sale was paid
type PaymentMethod string

const (
	PayCard   PaymentMethod = "card"
	PayCash   PaymentMethod = "cash"
	PayCredit PaymentMethod = "credit"
)

// EntryType - where a ledger line came from
type EntryType string

const (
	EntryOnline   EntryType = "online"
	EntryInPerson EntryType = "in-person"
)

// FinancialEntry - one ledger line. FinalAmount is always derived as
// TotalAmount - DiscountAmount.
type FinancialEntry struct {
	ID             int64         `json:"id"`
	Date           time.Time     `json:"date"`
	Type           EntryType     `json:"type"`
	Description    string        `json:"description"`
	TotalAmount    float64       `json:"total_amount"` // pre-discount
	DiscountAmount float64       `json:"discount_amount"`
	FinalAmount    float64       `json:"final_amount"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	BankAccountID  int64         `json:"bank_account_id,omitempty"`
	OrderID        int64         `json:"order_id,omitempty"`
}

// BankAccount - static reference data for the finance views
type BankAccount struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
}
