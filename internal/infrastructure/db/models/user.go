package models

import "time"

type User struct {
	Username  string  `gorm:"size:100;primaryKey"`
	Password  string  `gorm:"size:100;not null"`
	Name      string  `gorm:"size:100;not null"`
	Token     *string `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
