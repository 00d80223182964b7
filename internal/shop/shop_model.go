package shop

import "gorm.io/gorm"

// Order statuses
const (
	OrderStatusCreated         = "created"
	OrderStatusAwaitingPayment = "awaiting_payment"
	OrderStatusPaid            = "paid"
	OrderStatusCancelled       = "cancelled"
)

// Product represents a merch item sold through the shop
type Product struct {
	gorm.Model
	Name        string `gorm:"size:150;not null" json:"name"`
	Slug        string `gorm:"size:170;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	PriceCents  int64  `gorm:"not null" json:"price_cents"`
	Active      bool   `gorm:"default:true" json:"active"`
}

// Order represents a manual bank-transfer purchase of a product
type Order struct {
	gorm.Model
	OrderNumber         string `gorm:"size:64;uniqueIndex;not null" json:"order_number"`
	UserID              uint   `gorm:"index;not null" json:"user_id"`
	ProductID           uint   `gorm:"not null" json:"product_id"`
	Quantity            int    `gorm:"not null" json:"quantity"`
	TotalCents          int64  `gorm:"not null" json:"total_cents"`
	Status              string `gorm:"size:30;default:'created'" json:"status"`
	PaymentInstructions string `gorm:"type:text" json:"payment_instructions"`
}
