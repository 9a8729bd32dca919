package sales

import "time"

type Payment struct {
	PaymentID uint      `gorm:"column:payment_id;primaryKey;autoIncrement" json:"payment_id,omitempty"`
	OrderID   uint      `gorm:"column:order_id;index;not null" json:"order_id"`
	Method    string    `gorm:"column:method;type:varchar(16);not null" json:"method"`
	Amount    float64   `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`
	PaidAt    time.Time `gorm:"column:paid_at;not null" json:"paid_at"`
	AuthRef   *string   `gorm:"column:auth_ref;type:varchar(64)" json:"auth_ref,omitempty"`
}

func (Payment) TableName() string {
	return "payment"
}
