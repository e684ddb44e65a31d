package model

import "time"

type Category struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string `gorm:"size:100;uniqueIndex;not null"`
	Slug      string `gorm:"size:100;uniqueIndex;not null"`
}
