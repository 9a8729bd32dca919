package entity

import "time"

type Employee struct {
	EmployeeID   uint      `gorm:"column:employee_id;primaryKey;autoIncrement" json:"employee_id,omitempty"`
	Name         string    `gorm:"column:name;type:varchar(64);not null" json:"name"`
	Role         string    `gorm:"column:role;type:varchar(16);not null;default:'cashier'" json:"role"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(128);not null" json:"-"`
	IsActive     uint16    `gorm:"column:is_active;not null;default:1" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Employee) TableName() string {
	return "employee"
}

type Shift struct {
	ShiftID    uint       `gorm:"column:shift_id;primaryKey;autoIncrement" json:"shift_id,omitempty"`
	EmployeeID uint       `gorm:"column:employee_id;index;not null" json:"employee_id"`
	StartsAt   time.Time  `gorm:"column:starts_at;not null" json:"starts_at"`
	EndsAt     *time.Time `gorm:"column:ends_at" json:"ends_at,omitempty"`
}

func (Shift) TableName() string {
	return "shift"
}
