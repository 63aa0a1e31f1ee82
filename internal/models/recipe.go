package models

import "gorm.io/gorm"

type Recipe struct {
	gorm.Model

	Title       string `gorm:"not null"`
	Ingredients string `gorm:"type:text;not null"`
	Steps       string `gorm:"type:text;not null"`
	ImageURL    string
	Category    string
	UserID      uint `gorm:"not null;index"`

	// Relationships
	Author  User     `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Reviews []Review `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
