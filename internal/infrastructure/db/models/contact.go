package models

import "time"

type Contact struct {
	ID        int64   `gorm:"primaryKey"`
	Username  string  `gorm:"size:100;index;not null"`
	FirstName *string `gorm:"size:100"`
	LastName  *string `gorm:"size:100"`
	Email     *string `gorm:"size:100"`
	Phone     *string `gorm:"size:20"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Contact) TableName() string {
	return "contacts"
}
