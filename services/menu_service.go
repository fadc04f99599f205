package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/adaobi/naija-menu/models"
)

// MenuService performs all category and menu-item operations. Every mutation
// runs inside a single transaction and commits immediately; there is no
// versioning, so concurrent admin edits are last-write-wins.
type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// ItemInput carries the raw form values for an add or edit. Price and
// CategoryID stay strings until the service parses them, so a malformed
// value is reported by the operation rather than the HTTP layer.
type ItemInput struct {
	Name         string
	Description  string
	Price        string
	CategoryID   string
	PrepTime     string
	IsSpicy      bool
	IsVegetarian bool
	ImageURL     string
}

// CategorySection is one rendered block of the public menu: a category and
// its available items. Categories with no available items are skipped.
type CategorySection struct {
	Category models.Category
	Items    []models.MenuItem
}

func (s *MenuService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("id").Find(&categories).Error
	return categories, err
}

// ListItems returns every item, or only the available ones.
func (s *MenuService) ListItems(onlyAvailable bool) ([]models.MenuItem, error) {
	var items []models.MenuItem
	q := s.db.Order("id")
	if onlyAvailable {
		q = q.Where("available = ?", true)
	}
	err := q.Find(&items).Error
	return items, err
}

// MenuByCategory returns the public menu grouped by category, in storage
// order, omitting categories whose items are all unavailable.
func (s *MenuService) MenuByCategory() ([]CategorySection, error) {
	var categories []models.Category
	err := s.db.Order("id").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Where("available = ?", true).Order("id")
		}).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	var sections []CategorySection
	for _, cat := range categories {
		if len(cat.Items) == 0 {
			continue
		}
		sections = append(sections, CategorySection{Category: cat, Items: cat.Items})
	}
	return sections, nil
}

// AddCategory inserts a category. An empty name is silently dropped (no row,
// no error) to mirror the admin form contract; a duplicate name surfaces as
// the store's uniqueness error.
func (s *MenuService) AddCategory(name, description, icon string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, nil
	}

	category := models.Category{
		Name:        name,
		Description: description,
		Icon:        icon,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&category).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteCategory removes a category and all of its items in one transaction.
func (s *MenuService) DeleteCategory(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		// Child rows go first so no orphaned item can survive the parent.
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}

// AddItem inserts a menu item. Missing name, price, or category is silently
// dropped; a present but non-numeric price or category id is a validation
// failure and leaves the store untouched.
func (s *MenuService) AddItem(in ItemInput) (bool, error) {
	if strings.TrimSpace(in.Name) == "" || in.Price == "" || in.CategoryID == "" {
		return false, nil
	}

	price, err := parsePrice(in.Price)
	if err != nil {
		return false, err
	}
	categoryID, err := parseCategoryID(in.CategoryID)
	if err != nil {
		return false, err
	}

	item := models.MenuItem{
		Name:         in.Name,
		Description:  in.Description,
		Price:        price,
		CategoryID:   categoryID,
		Available:    true,
		IsSpicy:      in.IsSpicy,
		IsVegetarian: in.IsVegetarian,
		PrepTime:     in.PrepTime,
		ImageURL:     in.ImageURL,
		CreatedAt:    time.Now().UTC(),
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Category{}, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ValidationError{Field: "category_id", Reason: "no such category"}
			}
			return err
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// EditItem overwrites every mutable field of an item. There is no partial
// update; callers resubmit the whole form. Availability is untouched.
func (s *MenuService) EditItem(id uint, in ItemInput) error {
	price, err := parsePrice(in.Price)
	if err != nil {
		return err
	}
	categoryID, err := parseCategoryID(in.CategoryID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var item models.MenuItem
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		item.Name = in.Name
		item.Description = in.Description
		item.Price = price
		item.CategoryID = categoryID
		item.PrepTime = in.PrepTime
		item.IsSpicy = in.IsSpicy
		item.IsVegetarian = in.IsVegetarian
		item.ImageURL = in.ImageURL
		return tx.Save(&item).Error
	})
}

// ToggleItem flips an item's availability and returns the new state.
func (s *MenuService) ToggleItem(id uint) (bool, error) {
	var available bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item models.MenuItem
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		available = !item.Available
		return tx.Model(&item).Update("available", available).Error
	})
	return available, err
}

func (s *MenuService) DeleteItem(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var item models.MenuItem
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Delete(&item).Error
	})
}

// CategoryCount backs the health endpoint.
func (s *MenuService) CategoryCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.Category{}).Count(&count).Error
	return count, err
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &ValidationError{Field: "price", Reason: "must be a number"}
	}
	if price < 0 {
		return 0, &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return price, nil
}

func parseCategoryID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, &ValidationError{Field: "category_id", Reason: "must be an integer"}
	}
	return uint(id), nil
}
