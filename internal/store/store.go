package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"glamor-shop/internal/models"
)

// Authenticator decides whether an admin credential pair is valid.
// The store never learns why a login failed, only that it did.
type Authenticator interface {
	Authenticate(username, password string) bool
}

// Recorder receives a copy of every placed order and ledger entry so a
// reporting backend can index them. A nil Recorder disables mirroring.
type Recorder interface {
	RecordOrder(models.Order)
	RecordEntry(models.FinancialEntry)
}

// Shop is the single source of truth for one storefront session. Every
// mutation goes through a named operation; none of them can fail for
// well-typed input - unknown ids and keys degrade to no-ops.
//
// The session model is one logical writer at a time. Because the HTTP
// layer serves requests on multiple goroutines, a single mutex serializes
// all operations, which keeps the original event-at-a-time semantics.
type Shop struct {
	mu sync.Mutex

	products     []models.Product
	cart         []models.CartItem
	wishlist     []models.WishlistItem
	orders       []models.Order
	customers    []models.Customer
	entries      []models.FinancialEntry
	bankAccounts []models.BankAccount

	adminLoggedIn bool
	currentPhone  string // phone of the logged-in customer, "" when none

	lastID int64

	auth     Authenticator
	recorder Recorder
}

// New builds an empty shop. Both arguments may be nil: a nil Authenticator
// rejects every admin login, a nil Recorder skips ledger mirroring.
func New(auth Authenticator, recorder Recorder) *Shop {
	return &Shop{auth: auth, recorder: recorder}
}

// nextID returns a fresh time-derived id. Two events on the same
// millisecond get consecutive ids so uniqueness always holds.
func (s *Shop) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// --- Catalog ---

// LoadCatalog seeds the product collection with pre-assigned ids.
func (s *Shop) LoadCatalog(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range products {
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
		s.products = append(s.products, normalizeProduct(cloneProduct(p)))
	}
}

// LoadBankAccounts seeds the static bank account reference data.
func (s *Shop) LoadBankAccounts(accounts []models.BankAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bankAccounts = append([]models.BankAccount(nil), accounts...)
}

// AddProduct assigns a fresh id and appends the product to the catalog.
func (s *Shop) AddProduct(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p = normalizeProduct(cloneProduct(p))
	p.ID = s.nextID()
	s.products = append(s.products, p)
	return cloneProduct(p)
}

// UpdateProduct replaces a catalog entry by id and refreshes every live
// cart and wishlist snapshot of it. Cart items re-match their selected
// variant by (color, size) on the new product and keep the stale variant
// when no match exists. Order history is never touched.
func (s *Shop) UpdateProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p = normalizeProduct(cloneProduct(p))

	found := false
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			found = true
			break
		}
	}
	if !found {
		return
	}

	for i := range s.cart {
		item := &s.cart[i]
		if item.Product.ID != p.ID {
			continue
		}
		item.Product = cloneProduct(p)
		if v, ok := p.FindVariant(item.SelectedVariant.Color, item.SelectedVariant.Size); ok {
			item.SelectedVariant = v
		}
	}

	for i := range s.wishlist {
		if s.wishlist[i].Product.ID == p.ID {
			s.wishlist[i].Product = cloneProduct(p)
		}
	}
}

// DeleteProduct removes a catalog entry and purges its cart and wishlist
// snapshots in the same step.
func (s *Shop) DeleteProduct(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept

	keptCart := s.cart[:0]
	for _, item := range s.cart {
		if item.Product.ID != id {
			keptCart = append(keptCart, item)
		}
	}
	s.cart = keptCart

	keptWish := s.wishlist[:0]
	for _, item := range s.wishlist {
		if item.Product.ID != id {
			keptWish = append(keptWish, item)
		}
	}
	s.wishlist = keptWish
}

// Products returns a copy of the catalog.
func (s *Shop) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, cloneProduct(p))
	}
	return out
}

// ProductByID looks up one catalog entry.
func (s *Shop) ProductByID(id int64) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return cloneProduct(p), true
		}
	}
	return models.Product{}, false
}

// --- Cart ---

// AddToCart merges by (product id, variant color, variant size): a match
// bumps the quantity by one, anything else is inserted with quantity 1.
func (s *Shop) AddToCart(item models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if sameCartKey(s.cart[i], item.Product.ID, item.SelectedVariant.Color, item.SelectedVariant.Size) {
			s.cart[i].Quantity++
			return
		}
	}

	item.Product = cloneProduct(item.Product)
	item.Quantity = 1
	s.cart = append(s.cart, item)
}

// RemoveFromCart drops the matching entry, no-op when absent.
func (s *Shop) RemoveFromCart(productID int64, color string, size models.Size) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromCartLocked(productID, color, size)
}

func (s *Shop) removeFromCartLocked(productID int64, color string, size models.Size) {
	kept := s.cart[:0]
	for _, item := range s.cart {
		if !sameCartKey(item, productID, color, size) {
			kept = append(kept, item)
		}
	}
	s.cart = kept
}

// UpdateCartQuantity sets the quantity exactly; zero or less removes the
// entry instead.
func (s *Shop) UpdateCartQuantity(productID int64, color string, size models.Size, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeFromCartLocked(productID, color, size)
		return
	}
	for i := range s.cart {
		if sameCartKey(s.cart[i], productID, color, size) {
			s.cart[i].Quantity = quantity
			return
		}
	}
}

// Cart returns a copy of the cart contents.
func (s *Shop) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCart(s.cart)
}

// --- Wishlist ---

// AddToWishlist appends the item unless the product id is already present.
func (s *Shop) AddToWishlist(item models.WishlistItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.wishlist {
		if w.Product.ID == item.Product.ID {
			return
		}
	}
	item.Product = cloneProduct(item.Product)
	s.wishlist = append(s.wishlist, item)
}

// RemoveFromWishlist drops the entry with the given product id.
func (s *Shop) RemoveFromWishlist(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.wishlist[:0]
	for _, item := range s.wishlist {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	s.wishlist = kept
}

// IsInWishlist reports wishlist membership by product id.
func (s *Shop) IsInWishlist(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.wishlist {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

// Wishlist returns a copy of the wishlist.
func (s *Shop) Wishlist() []models.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.WishlistItem, 0, len(s.wishlist))
	for _, item := range s.wishlist {
		out = append(out, models.WishlistItem{Product: cloneProduct(item.Product)})
	}
	return out
}

// --- Admin session ---

// Login checks the credential pair and flips the admin session flag on
// success. The caller only learns success or failure.
func (s *Shop) Login(username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.auth == nil || !s.auth.Authenticate(username, password) {
		return false
	}
	s.adminLoggedIn = true
	return true
}

// Logout clears the admin session flag.
func (s *Shop) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminLoggedIn = false
}

// IsLoggedIn reports the admin session flag.
func (s *Shop) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adminLoggedIn
}

// --- Orders ---

// AddOrder places an order: upserts the customer by phone, creates a
// pending order from the item snapshots, writes exactly one "online"
// ledger entry tied to it, and clears the cart. The discount on the ledger
// line is the gap between the items' list-price total and totalPrice.
func (s *Shop) AddOrder(customer models.Customer, items []models.CartItem, totalPrice float64) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.upsertCustomerLocked(customer)

	order := models.Order{
		ID:         s.nextID(),
		Customer:   customer,
		Items:      cloneCart(items),
		TotalPrice: totalPrice,
		Date:       time.Now(),
		Status:     models.OrderPending,
	}
	s.orders = append(s.orders, order)

	var rawTotal float64
	for _, item := range items {
		rawTotal += item.Product.Price * float64(item.Quantity)
	}

	entry := models.FinancialEntry{
		Date:           order.Date,
		Type:           models.EntryOnline,
		Description:    fmt.Sprintf("Order #%d", order.ID),
		TotalAmount:    rawTotal,
		DiscountAmount: rawTotal - totalPrice,
		PaymentMethod:  models.PayCard,
		OrderID:        order.ID,
	}
	if len(s.bankAccounts) > 0 {
		entry.BankAccountID = s.bankAccounts[0].ID
	}
	s.addEntryLocked(entry)

	s.cart = nil

	if s.recorder != nil {
		s.recorder.RecordOrder(order)
	}
	return order
}

// UpdateOrderStatus overwrites the status of an order. Any of the four
// states is accepted in any sequence; there is deliberately no transition
// guard.
func (s *Shop) UpdateOrderStatus(orderID int64, status models.OrderStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			return
		}
	}
}

// Orders returns a copy of all orders in placement order.
func (s *Shop) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, cloneOrder(o))
	}
	return out
}

// OrderByID looks up one order.
func (s *Shop) OrderByID(id int64) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return models.Order{}, false
}

// OrdersByPhone returns a customer's orders, newest first.
func (s *Shop) OrdersByPhone(phone string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Order
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].Customer.Phone == phone {
			out = append(out, cloneOrder(s.orders[i]))
		}
	}
	return out
}

// --- Customers ---

func (s *Shop) upsertCustomerLocked(c models.Customer) {
	for i := range s.customers {
		if s.customers[i].Phone == c.Phone {
			s.customers[i] = c
			return
		}
	}
	s.customers = append(s.customers, c)
}

// CustomerLogin looks a customer up by phone. A hit sets the current
// customer and returns true; a miss creates nothing.
func (s *Shop) CustomerLogin(phone string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.customers {
		if c.Phone == phone {
			s.currentPhone = phone
			return true
		}
	}
	return false
}

// CustomerRegister inserts a new customer unless the phone is already
// registered, then makes that customer (new or pre-existing) current.
func (s *Shop) CustomerRegister(firstName, lastName, phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.customers {
		if c.Phone == phone {
			s.currentPhone = phone
			return
		}
	}
	s.customers = append(s.customers, models.Customer{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	})
	s.currentPhone = phone
}

// CustomerLogout clears the current-customer pointer.
func (s *Shop) CustomerLogout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPhone = ""
}

// CurrentCustomer returns the customer record the session is browsing as.
func (s *Shop) CurrentCustomer() (models.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentPhone == "" {
		return models.Customer{}, false
	}
	for _, c := range s.customers {
		if c.Phone == s.currentPhone {
			return c, true
		}
	}
	return models.Customer{}, false
}

// Customers returns a copy of all known customers.
func (s *Shop) Customers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Customer(nil), s.customers...)
}

// --- Finance ---

// AddFinancialEntry assigns a fresh id, derives the final amount, inserts
// the entry and keeps the ledger sorted by date descending.
func (s *Shop) AddFinancialEntry(e models.FinancialEntry) models.FinancialEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addEntryLocked(e)
}

func (s *Shop) addEntryLocked(e models.FinancialEntry) models.FinancialEntry {
	e.ID = s.nextID()
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	e.FinalAmount = e.TotalAmount - e.DiscountAmount

	s.entries = append(s.entries, e)
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].Date.After(s.entries[j].Date)
	})

	if s.recorder != nil {
		s.recorder.RecordEntry(e)
	}
	return e
}

// FinancialEntries returns the ledger, newest first.
func (s *Shop) FinancialEntries() []models.FinancialEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.FinancialEntry(nil), s.entries...)
}

// FinancialEntriesBetween filters the ledger by date. Zero bounds are
// open; the upper bound is inclusive.
func (s *Shop) FinancialEntriesBetween(from, to time.Time) []models.FinancialEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.FinancialEntry
	for _, e := range s.entries {
		if !from.IsZero() && e.Date.Before(from) {
			continue
		}
		if !to.IsZero() && e.Date.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// BankAccounts returns the configured bank accounts.
func (s *Shop) BankAccounts() []models.BankAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.BankAccount(nil), s.bankAccounts...)
}

// --- Helpers ---

func sameCartKey(item models.CartItem, productID int64, color string, size models.Size) bool {
	return item.Product.ID == productID &&
		item.SelectedVariant.Color == color &&
		item.SelectedVariant.Size == size
}

func cloneProduct(p models.Product) models.Product {
	p.Colors = append([]models.Color(nil), p.Colors...)
	p.Variants = append([]models.ProductVariant(nil), p.Variants...)
	p.Images = append([]string(nil), p.Images...)
	return p
}

func cloneCart(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		item.Product = cloneProduct(item.Product)
		out = append(out, item)
	}
	return out
}

func cloneOrder(o models.Order) models.Order {
	o.Items = cloneCart(o.Items)
	return o
}

// normalizeProduct enforces the per-product invariants: color names are
// unique, variants are unique by (color, size), and a variant whose color
// was removed is removed with it.
func normalizeProduct(p models.Product) models.Product {
	colorSeen := make(map[string]bool, len(p.Colors))
	colors := p.Colors[:0]
	for _, c := range p.Colors {
		if colorSeen[c.Name] {
			continue
		}
		colorSeen[c.Name] = true
		colors = append(colors, c)
	}
	p.Colors = colors

	type key struct {
		color string
		size  models.Size
	}
	variantSeen := make(map[key]bool, len(p.Variants))
	variants := p.Variants[:0]
	for _, v := range p.Variants {
		k := key{v.Color, v.Size}
		if variantSeen[k] || !colorSeen[v.Color] {
			continue
		}
		variantSeen[k] = true
		variants = append(variants, v)
	}
	p.Variants = variants
	return p
}
