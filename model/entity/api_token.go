package entity

import "time"

// ApiToken is a long-lived API token issued to an employee (terminals, kiosk).
type ApiToken struct {
	TokenID    uint      `gorm:"column:token_id;primaryKey;autoIncrement"`
	EmployeeID uint      `gorm:"column:employee_id;index;not null"`
	Token      string    `gorm:"column:token;type:varchar(64);not null;uniqueIndex"`
	Label      string    `gorm:"column:label;type:varchar(64)"`
	Revoked    uint16    `gorm:"column:revoked;not null;default:0"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ApiToken) TableName() string {
	return "api_token"
}
