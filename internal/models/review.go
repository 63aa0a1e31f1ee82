package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model

	Rating   int    `gorm:"not null"`
	Comment  string `gorm:"type:text;not null"`
	UserID   uint   `gorm:"not null;index"`
	RecipeID uint   `gorm:"not null;index"`

	// Relationships
	Reviewer User   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Recipe   Recipe `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
