package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adaobi/naija-menu/database"
	"github.com/adaobi/naija-menu/services"
	"github.com/adaobi/naija-menu/utils"
)

// SystemController covers the operational endpoints: health and the manual
// schema/seed reset.
type SystemController struct {
	DB   *gorm.DB
	Menu *services.MenuService
}

func NewSystemController(db *gorm.DB, menu *services.MenuService) *SystemController {
	return &SystemController{DB: db, Menu: menu}
}

// Health reports whether the store is reachable, with the category count.
func (sc *SystemController) Health(c *gin.Context) {
	count, err := sc.Menu.CategoryCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"categories": count,
	})
}

// InitDB re-runs migration and seeding. Seeding only fires on an empty
// category table, so calling this on a populated store is harmless.
func (sc *SystemController) InitDB(c *gin.Context) {
	if err := database.Migrate(sc.DB); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := database.Seed(sc.DB); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "database initialized", nil)
}
