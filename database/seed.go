package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/adaobi/naija-menu/models"
)

// Seed inserts the starter menu once, when the category table is empty.
// Re-running it against a populated store is a no-op.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		categories := []models.Category{
			{Name: "Soups & Stews", Description: "Traditional Nigerian soups rich in flavor", Icon: "🍲"},
			{Name: "Rice & Grains", Description: "Rice dishes and grain-based meals", Icon: "🍚"},
			{Name: "Proteins & Sides", Description: "Grilled meats and accompaniments", Icon: "🍖"},
			{Name: "Swallow & Fufu", Description: "Staple Nigerian swallows", Icon: "🥘"},
			{Name: "Snacks & Small Chops", Description: "Nigerian appetizers and street food", Icon: "🍢"},
			{Name: "Beverages", Description: "Refreshing Nigerian drinks", Icon: "🥤"},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		soups := categories[0].ID
		rice := categories[1].ID
		proteins := categories[2].ID
		swallow := categories[3].ID
		snacks := categories[4].ID
		drinks := categories[5].ID

		now := time.Now().UTC()
		items := []models.MenuItem{
			{Name: "Egusi Soup", Description: "Ground melon seed soup with assorted meat, stockfish, and vegetables. A rich, hearty classic.", Price: 3500, CategoryID: soups, IsSpicy: true, PrepTime: "25-30 min"},
			{Name: "Ogbono Soup", Description: "Draw soup made from wild mango seeds, served with your choice of protein.", Price: 3200, CategoryID: soups, PrepTime: "20-25 min"},
			{Name: "Efo Riro", Description: "Yoruba-style vegetable soup with spinach, locust beans, and peppers. Packed with nutrients.", Price: 2800, CategoryID: soups, IsSpicy: true, PrepTime: "20 min"},
			{Name: "Banga Soup", Description: "Delta-style palm nut soup with fresh fish and traditional spices.", Price: 3800, CategoryID: soups, IsSpicy: true, PrepTime: "30-35 min"},
			{Name: "Afang Soup", Description: "Nutritious vegetable soup with waterleaf, afang leaves, and assorted proteins.", Price: 4000, CategoryID: soups, PrepTime: "25 min"},

			{Name: "Jollof Rice", Description: "The iconic Nigerian party rice cooked in a rich tomato base with aromatic spices. Served with plantain and coleslaw.", Price: 2500, CategoryID: rice, IsSpicy: true, PrepTime: "15 min"},
			{Name: "Fried Rice", Description: "Colorful mixed vegetable rice with liver, shrimp, and chicken. A celebration favorite.", Price: 2800, CategoryID: rice, PrepTime: "15 min"},
			{Name: "Coconut Rice", Description: "Fragrant rice cooked in coconut milk with vegetables and spices.", Price: 2200, CategoryID: rice, PrepTime: "15 min"},
			{Name: "Ofada Rice with Ayamase", Description: "Local unpolished rice served with spicy green pepper sauce and assorted meat.", Price: 3500, CategoryID: rice, IsSpicy: true, PrepTime: "20 min"},
			{Name: "Native Jollof (Iwuk Edesi)", Description: "Traditional palm oil jollof rice from the South-South region.", Price: 2800, CategoryID: rice, IsSpicy: true, PrepTime: "18 min"},

			{Name: "Suya", Description: "Spicy grilled beef skewers marinated in groundnut spice mix (yaji). A Northern delicacy.", Price: 1800, CategoryID: proteins, IsSpicy: true, PrepTime: "10 min"},
			{Name: "Asun", Description: "Spicy grilled goat meat chopped and peppered to perfection. Yoruba specialty.", Price: 3500, CategoryID: proteins, IsSpicy: true, PrepTime: "12 min"},
			{Name: "Gizdodo", Description: "Gizzard and plantain in a spicy pepper sauce. Crowd favorite!", Price: 2200, CategoryID: proteins, IsSpicy: true, PrepTime: "15 min"},
			{Name: "Fried Plantain (Dodo)", Description: "Sweet ripe plantain sliced and fried to golden perfection.", Price: 800, CategoryID: proteins, IsVegetarian: true, PrepTime: "10 min"},
			{Name: "Grilled Chicken", Description: "Whole chicken marinated and grilled with Nigerian spices.", Price: 4500, CategoryID: proteins, IsSpicy: true, PrepTime: "15 min"},

			{Name: "Pounded Yam", Description: "Smooth, stretchy yam swallow. The king of all swallows!", Price: 1200, CategoryID: swallow, IsVegetarian: true, PrepTime: "5 min"},
			{Name: "Eba (Garri)", Description: "Classic cassava swallow, perfect with any soup.", Price: 500, CategoryID: swallow, IsVegetarian: true, PrepTime: "5 min"},
			{Name: "Fufu (Akpu)", Description: "Fermented cassava swallow with a distinctive tangy flavor.", Price: 800, CategoryID: swallow, IsVegetarian: true, PrepTime: "5 min"},
			{Name: "Amala", Description: "Dark yam flour swallow, perfectly pairs with ewedu and gbegiri.", Price: 700, CategoryID: swallow, IsVegetarian: true, PrepTime: "5 min"},
			{Name: "Semovita", Description: "Smooth wheat swallow, lighter alternative to pounded yam.", Price: 600, CategoryID: swallow, IsVegetarian: true, PrepTime: "5 min"},

			{Name: "Puff Puff", Description: "Sweet deep-fried dough balls, fluffy and golden. Nigerian donuts!", Price: 500, CategoryID: snacks, IsVegetarian: true, PrepTime: "5 min"},
			{Name: "Chin Chin", Description: "Crunchy fried pastry snack, perfect with any drink.", Price: 800, CategoryID: snacks, IsVegetarian: true, PrepTime: "5 min"},
			{Name: "Akara (Bean Cake)", Description: "Fried bean fritters, crispy outside, soft inside. Street food classic!", Price: 600, CategoryID: snacks, IsSpicy: true, IsVegetarian: true, PrepTime: "10 min"},
			{Name: "Spring Rolls", Description: "Crispy vegetable-filled rolls served with sweet chili sauce.", Price: 1200, CategoryID: snacks, IsVegetarian: true, PrepTime: "8 min"},
			{Name: "Samosa", Description: "Spiced meat or vegetable-filled pastry pockets.", Price: 1000, CategoryID: snacks, IsSpicy: true, PrepTime: "8 min"},

			{Name: "Chapman", Description: "Sparkling Nigerian cocktail with grenadine, lime, and cucumber. Non-alcoholic.", Price: 1000, CategoryID: drinks, IsVegetarian: true, PrepTime: "5 min"},
			{Name: "Zobo", Description: "Refreshing hibiscus tea infused with ginger and pineapple.", Price: 800, CategoryID: drinks, IsVegetarian: true, PrepTime: "2 min"},
			{Name: "Palm Wine", Description: "Fresh, naturally fermented palm tree sap. Traditional village drink.", Price: 1500, CategoryID: drinks, IsVegetarian: true, PrepTime: "2 min"},
			{Name: "Kunnu", Description: "Spiced millet drink from the North, served chilled.", Price: 700, CategoryID: drinks, IsVegetarian: true, PrepTime: "2 min"},
			{Name: "Fresh Fruit Juice", Description: "Choice of orange, pineapple, watermelon, or mixed.", Price: 1200, CategoryID: drinks, IsVegetarian: true, PrepTime: "5 min"},
		}
		for i := range items {
			items[i].Available = true
			items[i].CreatedAt = now
		}
		return tx.Create(&items).Error
	})
}
