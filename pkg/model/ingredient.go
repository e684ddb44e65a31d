package model

import "time"

type Ingredient struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string  `gorm:"size:250;not null"`
	Quantity  *string `gorm:"size:250"`
	RecipeID  uint    `gorm:"not null;index"`
}
