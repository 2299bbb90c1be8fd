package database

import (
	"log"
	"time"

	"glamor-shop/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Ledger mirrors every placed order and financial entry into an in-memory
// sqlite database so the back-office reports can run real SQL aggregates.
// The database lives exactly as long as the session: nothing is persisted.
type Ledger struct {
	db *gorm.DB
}

// EntryRow is one mirrored ledger line.
type EntryRow struct {
	ID             int64 `gorm:"primaryKey"`
	Date           time.Time
	Type           string
	Description    string
	TotalAmount    float64
	DiscountAmount float64
	FinalAmount    float64
	PaymentMethod  string
	BankAccountID  int64
	OrderID        int64
}

// OrderRow is the placement record of one order. It is a journal entry:
// later status changes never rewrite it.
type OrderRow struct {
	ID            int64 `gorm:"primaryKey"`
	CustomerPhone string
	CustomerName  string
	ItemCount     int
	TotalPrice    float64
	Date          time.Time
}

// SoldItemRow is one order line, denormalized so product edits after the
// sale cannot change what was sold.
type SoldItemRow struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index"`
	ProductID   int64
	ProductName string
	Color       string
	Size        string
	Quantity    int
	UnitPrice   float64 // list price at sale time
}

// Open creates the session ledger and syncs its schema.
func Open() (*Ledger, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// a :memory: database exists per connection, so the pool must stay at one
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&EntryRow{}, &OrderRow{}, &SoldItemRow{}); err != nil {
		return nil, err
	}
	return &Ledger{db: db}, nil
}

// RecordOrder mirrors a placed order. Mirroring failures are logged and
// swallowed so they can never leak into store semantics.
func (l *Ledger) RecordOrder(o models.Order) {
	row := OrderRow{
		ID:            o.ID,
		CustomerPhone: o.Customer.Phone,
		CustomerName:  o.Customer.FirstName + " " + o.Customer.LastName,
		ItemCount:     len(o.Items),
		TotalPrice:    o.TotalPrice,
		Date:          o.Date,
	}
	if err := l.db.Create(&row).Error; err != nil {
		log.Println("ledger: failed to record order:", err)
		return
	}

	for _, item := range o.Items {
		itemRow := SoldItemRow{
			OrderID:     o.ID,
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Color:       item.SelectedVariant.Color,
			Size:        string(item.SelectedVariant.Size),
			Quantity:    item.Quantity,
			UnitPrice:   item.Product.Price,
		}
		if err := l.db.Create(&itemRow).Error; err != nil {
			log.Println("ledger: failed to record sold item:", err)
		}
	}
}

// RecordEntry mirrors one financial entry.
func (l *Ledger) RecordEntry(e models.FinancialEntry) {
	row := EntryRow{
		ID:             e.ID,
		Date:           e.Date,
		Type:           string(e.Type),
		Description:    e.Description,
		TotalAmount:    e.TotalAmount,
		DiscountAmount: e.DiscountAmount,
		FinalAmount:    e.FinalAmount,
		PaymentMethod:  string(e.PaymentMethod),
		BankAccountID:  e.BankAccountID,
		OrderID:        e.OrderID,
	}
	if err := l.db.Create(&row).Error; err != nil {
		log.Println("ledger: failed to record entry:", err)
	}
}
