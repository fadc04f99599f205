package models

import "time"

type MenuItem struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"type:varchar(100);not null"`
	Description  string  `gorm:"type:text"`
	Price        float64 `gorm:"type:decimal(10,2);not null"`
	CategoryID   uint    `gorm:"not null"`
	Available    bool
	IsSpicy      bool
	IsVegetarian bool
	PrepTime     string  `gorm:"type:varchar(20)"`
	ImageURL     string  `gorm:"type:varchar(200)"`
	CreatedAt    time.Time
}

// Tags returns the descriptive labels shown under an item, in display order:
// spicy, vegetarian, then the prep-time label when set.
func (m MenuItem) Tags() []string {
	var tags []string
	if m.IsSpicy {
		tags = append(tags, "Spicy")
	}
	if m.IsVegetarian {
		tags = append(tags, "Vegetarian")
	}
	if m.PrepTime != "" {
		tags = append(tags, m.PrepTime)
	}
	return tags
}
