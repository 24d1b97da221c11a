package model

import "time"

// RecipeModel mirrors the 'recipes' table. UserID references users.id.
type RecipeModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"index;not null"`
	Title     string `gorm:"type:varchar(255);not null"`
	ImageURL  string `gorm:"column:image_url;type:text;not null"`
	SourceURL string `gorm:"column:source_url;type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
