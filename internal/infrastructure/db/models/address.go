package models

import "time"

type Address struct {
	ID         int64   `gorm:"primaryKey"`
	ContactID  int64   `gorm:"index;not null"`
	Street     *string `gorm:"size:255"`
	City       *string `gorm:"size:100"`
	Province   *string `gorm:"size:100"`
	Country    string  `gorm:"size:100;not null"`
	PostalCode string  `gorm:"size:10;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Address) TableName() string {
	return "addresses"
}
