package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glamor-shop/internal/auth"
	"glamor-shop/internal/models"
)

func newTestShop(t *testing.T) *Shop {
	t.Helper()
	authn, err := auth.NewStaticAuthenticator("nima", "1234")
	require.NoError(t, err)
	return New(authn, nil)
}

func sampleProduct() models.Product {
	return models.Product{
		ID:        1,
		Name:      "Classic Linen Shirt",
		Category:  models.CategoryShirt,
		Price:     100000,
		SalePrice: 80000,
		Colors:    []models.Color{{Name: "Black", Hex: "#111111"}},
		Variants:  []models.ProductVariant{{Color: "Black", Size: models.SizeL}},
		Images:    []string{"/images/shirt.jpg"},
	}
}

func cartItemFor(p models.Product) models.CartItem {
	return models.CartItem{
		Product:         p,
		Quantity:        1,
		SelectedVariant: p.Variants[0],
		SelectedColor:   p.Colors[0],
	}
}

func TestAddProductAssignsUniqueIDs(t *testing.T) {
	s := newTestShop(t)

	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		p := s.AddProduct(models.Product{Name: "Tee", Category: models.CategoryTShirt, Price: 1})
		assert.False(t, seen[p.ID], "id %d assigned twice", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, s.Products(), 50)
}

func TestAddToCartMergesSameVariant(t *testing.T) {
	s := newTestShop(t)
	p := sampleProduct()
	s.LoadCatalog([]models.Product{p})

	s.AddToCart(cartItemFor(p))
	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)

	s.AddToCart(cartItemFor(p))
	cart = s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestAddToCartDifferentVariantIsSeparateEntry(t *testing.T) {
	s := newTestShop(t)
	p := sampleProduct()
	p.Variants = append(p.Variants, models.ProductVariant{Color: "Black", Size: models.SizeXL})
	s.LoadCatalog([]models.Product{p})

	s.AddToCart(cartItemFor(p))

	other := cartItemFor(p)
	other.SelectedVariant = p.Variants[1]
	s.AddToCart(other)

	assert.Len(t, s.Cart(), 2)
}

func TestUpdateCartQuantity(t *testing.T) {
	s := newTestShop(t)
	p := sampleProduct()
	s.AddToCart(cartItemFor(p))

	s.UpdateCartQuantity(p.ID, "Black", models.SizeL, 5)
	require.Len(t, s.Cart(), 1)
	assert.Equal(t, 5, s.Cart()[0].Quantity)

	s.UpdateCartQuantity(p.ID, "Black", models.SizeL, 0)
	assert.Empty(t, s.Cart())

	s.AddToCart(cartItemFor(p))
	s.UpdateCartQuantity(p.ID, "Black", models.SizeL, -1)
	assert.Empty(t, s.Cart())
}

func TestRemoveFromCartUnknownKeyIsNoop(t *testing.T) {
	s := newTestShop(t)
	p := sampleProduct()
	s.AddToCart(cartItemFor(p))

	s.RemoveFromCart(p.ID, "Red", models.SizeL)
	assert.Len(t, s.Cart(), 1)

	s.RemoveFromCart(p.ID, "Black", models.SizeL)
	assert.Empty(t, s.Cart())
}

func TestDeleteProductPurgesCartAndWishlist(t *testing.T) {
	s := newTestShop(t)
	p := sampleProduct()
	s.LoadCatalog([]models.Product{p})
	s.AddToCart(cartItemFor(p))
	s.AddToWishlist(models.WishlistItem{Product: p})

	s.DeleteProduct(p.ID)

	assert.Empty(t, s.Products())
	assert.Empty(t, s.Cart())
	assert.Empty(t, s.Wishlist())
}

func TestUpdateProductRefreshesCartAndWishlist(t *testing.T) {
	s := newTestShop(t)
	p := sampleProduct()
	s.LoadCatalog([]models.Product{p})
	s.AddToCart(cartItemFor(p))
	s.AddToWishlist(models.WishlistItem{Product: p})

	updated := p
	updated.Name = "Renamed Shirt"
	updated.Price = 120000
	updated.Variants = []models.ProductVariant{{Color: "Black", Size: models.SizeL, IsOutOfStock: true}}
	s.UpdateProduct(updated)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "Renamed Shirt", cart[0].Product.Name)
	assert.True(t, cart[0].SelectedVariant.IsOutOfStock, "variant should re-match by color and size")

	wish := s.Wishlist()
	require.Len(t, wish, 1)
	assert.Equal(t, float64(120000), wish[0].Product.Price)
}

func TestUpdateProductKeepsStaleVariantWhenNoMatch(t *testing.T) {
	s := newTestShop(t)
	p := sampleProduct()
	s.LoadCatalog([]models.Product{p})
	s.AddToCart(cartItemFor(p))

	updated := p
	updated.Colors = []models.Color{{Name: "Red", Hex: "#AA0000"}}
	updated.Variants = []models.ProductVariant{{Color: "Red", Size: models.SizeXL}}
	s.UpdateProduct(updated)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "Black", cart[0].SelectedVariant.Color)
	assert.Equal(t, models.SizeL, cart[0].SelectedVariant.Size)
}

func TestRemovingColorCascadesIntoVariants(t *testing.T) {
	s := newTestShop(t)
	p := models.Product{
		ID:       1,
		Name:     "Two-Color Tee",
		Category: models.CategoryTShirt,
		Price:    50000,
		Colors: []models.Color{
			{Name: "Black", Hex: "#111111"},
			{Name: "Cream", Hex: "#F4EFE6"},
		},
		Variants: []models.ProductVariant{
			{Color: "Black", Size: models.SizeL},
			{Color: "Cream", Size: models.SizeL},
			{Color: "Cream", Size: models.SizeXL},
		},
	}
	s.LoadCatalog([]models.Product{p})

	updated := p
	updated.Colors = []models.Color{{Name: "Black", Hex: "#111111"}}
	s.UpdateProduct(updated)

	got, ok := s.ProductByID(1)
	require.True(t, ok)
	require.Len(t, got.Variants, 1)
	assert.Equal(t, "Black", got.Variants[0].Color)
}

func TestWishlistIsIdempotent(t *testing.T) {
	s := newTestShop(t)
	p := sampleProduct()

	s.AddToWishlist(models.WishlistItem{Product: p})
	s.AddToWishlist(models.WishlistItem{Product: p})

	assert.Len(t, s.Wishlist(), 1)
	assert.True(t, s.IsInWishlist(p.ID))
	assert.False(t, s.IsInWishlist(999))

	s.RemoveFromWishlist(p.ID)
	assert.False(t, s.IsInWishlist(p.ID))
}

func TestLogin(t *testing.T) {
	s := newTestShop(t)

	assert.True(t, s.Login("nima", "1234"))
	assert.True(t, s.IsLoggedIn())

	s.Logout()
	assert.False(t, s.IsLoggedIn())

	assert.False(t, s.Login("nima", "wrong"))
	assert.False(t, s.IsLoggedIn(), "failed login must not flip the session flag")
	assert.False(t, s.Login("someone", "1234"))
}

func TestAddOrderWritesOneLedgerLineAndClearsCart(t *testing.T) {
	s := newTestShop(t)
	s.LoadBankAccounts(SeedBankAccounts())
	p := sampleProduct()
	s.LoadCatalog([]models.Product{p})

	s.AddToCart(cartItemFor(p))
	s.AddToCart(cartItemFor(p)) // quantity 2, raw total 200000

	customer := models.Customer{
		FirstName: "Ali", LastName: "Rezaei", Phone: "09120000000",
		Address: "Valiasr St.", PostalCode: "1966733851",
	}
	order := s.AddOrder(customer, s.Cart(), 160000)

	assert.Empty(t, s.Cart(), "placing an order clears the cart")
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, float64(160000), order.TotalPrice)

	entries := s.FinancialEntries()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, models.EntryOnline, e.Type)
	assert.Equal(t, models.PayCard, e.PaymentMethod)
	assert.Equal(t, order.ID, e.OrderID)
	assert.Equal(t, int64(1), e.BankAccountID, "first configured account takes online payments")
	assert.Equal(t, float64(200000), e.TotalAmount)
	assert.Equal(t, float64(40000), e.DiscountAmount)
	assert.Equal(t, float64(160000), e.FinalAmount)

	// the customer was upserted by phone
	require.Len(t, s.Customers(), 1)
	assert.Equal(t, "Ali", s.Customers()[0].FirstName)
}

func TestAddOrderUpsertsCustomerByPhone(t *testing.T) {
	s := newTestShop(t)
	p := sampleProduct()

	first := models.Customer{FirstName: "Ali", LastName: "Rezaei", Phone: "09120000000"}
	s.AddOrder(first, []models.CartItem{cartItemFor(p)}, 100000)

	moved := first
	moved.Address = "New address 12"
	s.AddOrder(moved, []models.CartItem{cartItemFor(p)}, 100000)

	require.Len(t, s.Customers(), 1)
	assert.Equal(t, "New address 12", s.Customers()[0].Address)
	assert.Len(t, s.Orders(), 2)
}

func TestOrderIDsAreUnique(t *testing.T) {
	s := newTestShop(t)
	p := sampleProduct()
	c := models.Customer{FirstName: "A", LastName: "B", Phone: "0912"}

	seen := make(map[int64]bool)
	for i := 0; i < 20; i++ {
		o := s.AddOrder(c, []models.CartItem{cartItemFor(p)}, 100000)
		assert.False(t, seen[o.ID])
		seen[o.ID] = true
	}
}

func TestOrderStatusHasNoTransitionGuard(t *testing.T) {
	s := newTestShop(t)
	p := sampleProduct()
	c := models.Customer{FirstName: "A", LastName: "B", Phone: "0912"}
	order := s.AddOrder(c, []models.CartItem{cartItemFor(p)}, 100000)

	s.UpdateOrderStatus(order.ID, models.OrderDelivered)
	got, ok := s.OrderByID(order.ID)
	require.True(t, ok)
	assert.Equal(t, models.OrderDelivered, got.Status)

	s.UpdateOrderStatus(order.ID, models.OrderPending)
	got, _ = s.OrderByID(order.ID)
	assert.Equal(t, models.OrderPending, got.Status)

	// unknown order id is a no-op
	s.UpdateOrderStatus(999999, models.OrderShipping)
}

func TestOrderHistoryIsNotRewrittenByProductEdits(t *testing.T) {
	s := newTestShop(t)
	p := sampleProduct()
	s.LoadCatalog([]models.Product{p})
	c := models.Customer{FirstName: "A", LastName: "B", Phone: "0912"}
	order := s.AddOrder(c, []models.CartItem{cartItemFor(p)}, 100000)

	updated := p
	updated.Name = "Edited After Sale"
	updated.Price = 999999
	s.UpdateProduct(updated)

	got, ok := s.OrderByID(order.ID)
	require.True(t, ok)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Classic Linen Shirt", got.Items[0].Product.Name)
	assert.Equal(t, float64(100000), got.Items[0].Product.Price)
}

func TestCustomerRegisterThenLogin(t *testing.T) {
	s := newTestShop(t)

	s.CustomerRegister("Ali", "Rezaei", "09120000000")
	cur, ok := s.CurrentCustomer()
	require.True(t, ok)
	assert.Equal(t, "Ali", cur.FirstName)
	assert.Empty(t, cur.Address)

	s.CustomerLogout()
	_, ok = s.CurrentCustomer()
	assert.False(t, ok)

	assert.True(t, s.CustomerLogin("09120000000"))
	cur, ok = s.CurrentCustomer()
	require.True(t, ok)
	assert.Equal(t, "Rezaei", cur.LastName)
}

func TestCustomerLoginMissCreatesNothing(t *testing.T) {
	s := newTestShop(t)

	assert.False(t, s.CustomerLogin("09999999999"))
	assert.Empty(t, s.Customers())
	_, ok := s.CurrentCustomer()
	assert.False(t, ok)
}

func TestCustomerRegisterExistingPhoneKeepsRecord(t *testing.T) {
	s := newTestShop(t)

	s.CustomerRegister("Ali", "Rezaei", "09120000000")
	s.CustomerRegister("Someone", "Else", "09120000000")

	require.Len(t, s.Customers(), 1)
	cur, ok := s.CurrentCustomer()
	require.True(t, ok)
	assert.Equal(t, "Ali", cur.FirstName)
}

func TestFinancialEntriesSortedNewestFirst(t *testing.T) {
	s := newTestShop(t)
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	s.AddFinancialEntry(models.FinancialEntry{
		Date: base, Type: models.EntryInPerson, Description: "cash sale",
		TotalAmount: 100, PaymentMethod: models.PayCash,
	})
	s.AddFinancialEntry(models.FinancialEntry{
		Date: base.Add(48 * time.Hour), Type: models.EntryInPerson, Description: "card sale",
		TotalAmount: 200, PaymentMethod: models.PayCard,
	})
	s.AddFinancialEntry(models.FinancialEntry{
		Date: base.Add(24 * time.Hour), Type: models.EntryInPerson, Description: "credit sale",
		TotalAmount: 300, PaymentMethod: models.PayCredit,
	})

	entries := s.FinancialEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "card sale", entries[0].Description)
	assert.Equal(t, "credit sale", entries[1].Description)
	assert.Equal(t, "cash sale", entries[2].Description)
}

func TestFinancialEntryDerivesFinalAmount(t *testing.T) {
	s := newTestShop(t)

	e := s.AddFinancialEntry(models.FinancialEntry{
		Type: models.EntryInPerson, Description: "discounted sale",
		TotalAmount: 500000, DiscountAmount: 50000,
		FinalAmount:   123, // ignored, always derived
		PaymentMethod: models.PayCash,
	})
	assert.Equal(t, float64(450000), e.FinalAmount)
	assert.NotZero(t, e.ID)
	assert.False(t, e.Date.IsZero())
}

func TestFinancialEntriesBetween(t *testing.T) {
	s := newTestShop(t)
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		s.AddFinancialEntry(models.FinancialEntry{
			Date: base.AddDate(0, 0, i), Type: models.EntryInPerson,
			TotalAmount: 100, PaymentMethod: models.PayCash,
		})
	}

	got := s.FinancialEntriesBetween(base.AddDate(0, 0, 1), base.AddDate(0, 0, 2))
	assert.Len(t, got, 2)

	got = s.FinancialEntriesBetween(time.Time{}, time.Time{})
	assert.Len(t, got, 4)
}

type fakeRecorder struct {
	orders  []models.Order
	entries []models.FinancialEntry
}

func (r *fakeRecorder) RecordOrder(o models.Order)          { r.orders = append(r.orders, o) }
func (r *fakeRecorder) RecordEntry(e models.FinancialEntry) { r.entries = append(r.entries, e) }

func TestRecorderReceivesOrdersAndEntries(t *testing.T) {
	rec := &fakeRecorder{}
	s := New(nil, rec)
	p := sampleProduct()

	s.AddOrder(models.Customer{Phone: "0912"}, []models.CartItem{cartItemFor(p)}, 100000)

	require.Len(t, rec.orders, 1)
	require.Len(t, rec.entries, 1)
	assert.Equal(t, rec.orders[0].ID, rec.entries[0].OrderID)
}

func TestSeedCatalogInvariants(t *testing.T) {
	s := newTestShop(t)
	s.LoadCatalog(SeedProducts())

	products := s.Products()
	require.NotEmpty(t, products)

	seen := make(map[int64]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
		for _, v := range p.Variants {
			_, ok := findColor(p.Colors, v.Color)
			assert.True(t, ok, "variant %s/%s of %s references a missing color", v.Color, v.Size, p.Name)
		}
	}

	// adding after seeding must not collide with seeded ids
	added := s.AddProduct(models.Product{Name: "New", Category: models.CategoryShirt, Price: 1})
	assert.False(t, seen[added.ID])
}

func findColor(colors []models.Color, name string) (models.Color, bool) {
	for _, c := range colors {
		if c.Name == name {
			return c, true
		}
	}
	return models.Color{}, false
}
