package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adaobi/naija-menu/services"
	"github.com/adaobi/naija-menu/utils"
)

type ItemController struct {
	Menu *services.MenuService
}

func NewItemController(menu *services.MenuService) *ItemController {
	return &ItemController{Menu: menu}
}

func itemInputFromForm(c *gin.Context) services.ItemInput {
	return services.ItemInput{
		Name:         c.PostForm("name"),
		Description:  c.PostForm("description"),
		Price:        c.PostForm("price"),
		CategoryID:   c.PostForm("category_id"),
		PrepTime:     c.PostForm("prep_time"),
		IsSpicy:      c.PostForm("is_spicy") == "on",
		IsVegetarian: c.PostForm("is_vegetarian") == "on",
		ImageURL:     c.PostForm("image_url"),
	}
}

// AddItem handles the admin "add item" form. Missing required fields are
// dropped without feedback; a malformed price or category is reported.
func (ic *ItemController) AddItem(c *gin.Context) {
	created, err := ic.Menu.AddItem(itemInputFromForm(c))
	if err != nil {
		if services.IsValidation(err) {
			utils.SetFlash(c, "Could not add item: "+err.Error())
		} else {
			utils.ErrorLogger.Printf("add item: %v", err)
			utils.SetFlash(c, "Could not add item.")
		}
	} else if created {
		utils.SetFlash(c, "Menu item added successfully!")
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// EditItem overwrites every field of an item from the resubmitted form.
func (ic *ItemController) EditItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "item not found")
		return
	}

	if err := ic.Menu.EditItem(uint(id), itemInputFromForm(c)); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.String(http.StatusNotFound, "item not found")
			return
		case services.IsValidation(err):
			utils.SetFlash(c, "Could not update item: "+err.Error())
		default:
			utils.ErrorLogger.Printf("edit item %d: %v", id, err)
			utils.SetFlash(c, "Could not update item.")
		}
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	utils.SetFlash(c, "Item updated successfully!")
	c.Redirect(http.StatusSeeOther, "/admin")
}

// ToggleItem flips availability and reports the new state.
func (ic *ItemController) ToggleItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "item not found")
		return
	}

	available, err := ic.Menu.ToggleItem(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.String(http.StatusNotFound, "item not found")
			return
		}
		utils.ErrorLogger.Printf("toggle item %d: %v", id, err)
		utils.SetFlash(c, "Could not update item.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	if available {
		utils.SetFlash(c, "Item enabled successfully!")
	} else {
		utils.SetFlash(c, "Item disabled successfully!")
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// DeleteItem removes a single item.
func (ic *ItemController) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "item not found")
		return
	}

	if err := ic.Menu.DeleteItem(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.String(http.StatusNotFound, "item not found")
			return
		}
		utils.ErrorLogger.Printf("delete item %d: %v", id, err)
		utils.SetFlash(c, "Could not delete item.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	utils.SetFlash(c, "Item deleted successfully!")
	c.Redirect(http.StatusSeeOther, "/admin")
}
