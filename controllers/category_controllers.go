package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adaobi/naija-menu/services"
	"github.com/adaobi/naija-menu/utils"
)

type CategoryController struct {
	Menu *services.MenuService
}

func NewCategoryController(menu *services.MenuService) *CategoryController {
	return &CategoryController{Menu: menu}
}

// AddCategory handles the admin "add category" form. A missing name is
// dropped without feedback; anything else that fails becomes a flash message.
func (cc *CategoryController) AddCategory(c *gin.Context) {
	created, err := cc.Menu.AddCategory(
		c.PostForm("name"),
		c.PostForm("description"),
		c.PostForm("icon"),
	)
	if err != nil {
		utils.ErrorLogger.Printf("add category: %v", err)
		utils.SetFlash(c, "Could not add category. The name may already exist.")
	} else if created {
		utils.SetFlash(c, "Category added successfully!")
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// DeleteCategory removes a category and, through the cascade, its items.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "category not found")
		return
	}

	if err := cc.Menu.DeleteCategory(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.String(http.StatusNotFound, "category not found")
			return
		}
		utils.ErrorLogger.Printf("delete category %d: %v", id, err)
		utils.SetFlash(c, "Could not delete category.")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	utils.SetFlash(c, "Category deleted successfully!")
	c.Redirect(http.StatusSeeOther, "/admin")
}
