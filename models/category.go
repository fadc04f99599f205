package models

// Category groups menu items on the public menu, e.g. "Soups & Stews".
type Category struct {
	ID          uint       `gorm:"primaryKey"`
	Name        string     `gorm:"type:varchar(50);not null;unique"`
	Description string     `gorm:"type:text"`
	Icon        string     `gorm:"type:varchar(50)"`
	Items       []MenuItem `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
