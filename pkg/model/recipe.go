package model

import (
	"time"
)

const DefaultImage = "default.jpg"

type Difficulty int

const (
	VeryEasy Difficulty = iota + 1
	Easy
	Medium
	Hard
	VeryHard
)

var Difficulties = []Difficulty{VeryEasy, Easy, Medium, Hard, VeryHard}

var difficultyLabels = map[Difficulty]string{
	VeryEasy: "Very Easy",
	Easy:     "Easy",
	Medium:   "Medium",
	Hard:     "Hard",
	VeryHard: "Very Hard",
}

func (d Difficulty) Valid() bool {
	_, ok := difficultyLabels[d]

	return ok
}

func (d Difficulty) String() string {
	if label, ok := difficultyLabels[d]; ok {
		return label
	}

	return "Unknown"
}

// Recipe rows are hard deleted so a freed slug can be reused.
type Recipe struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Image       string `gorm:"size:255;not null"`
	Title       string `gorm:"size:100;not null"`
	Description string `gorm:"not null"`
	Content     string `gorm:"not null"`
	DatePosted  time.Time
	AuthorID    uint       `gorm:"not null;index"`
	Difficulty  Difficulty `gorm:"not null"`
	Portions    int        `gorm:"not null"`
	CookingTime int        `gorm:"not null"`
	Slug        string     `gorm:"size:100;uniqueIndex;not null"`

	Author      User       `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
	Categories  []Category `gorm:"many2many:recipe_categories;"`
	Ingredients []Ingredient
	Likes       []User `gorm:"many2many:recipe_likes;"`
}

// RecipeLike is the join table behind Recipe.Likes.
type RecipeLike struct {
	RecipeID  uint `gorm:"primaryKey"`
	UserID    uint `gorm:"primaryKey"`
	CreatedAt time.Time
}

// RecipeSummary is the listing view of a recipe annotated with its like count.
type RecipeSummary struct {
	ID          uint
	Title       string
	Slug        string
	Image       string
	Description string
	DatePosted  time.Time
	AuthorID    uint
	Difficulty  Difficulty
	LikeCount   int64
}

// RecipeCategory is the join table behind Recipe.Categories.
type RecipeCategory struct {
	RecipeID   uint `gorm:"primaryKey"`
	CategoryID uint `gorm:"primaryKey"`
}
