package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adaobi/naija-menu/services"
	"github.com/adaobi/naija-menu/utils"
)

// PageController renders the HTML pages: storefront, public menu, admin
// dashboard, and the QR display page.
type PageController struct {
	Menu *services.MenuService
	QR   *services.QRService
}

func NewPageController(menu *services.MenuService, qr *services.QRService) *PageController {
	return &PageController{Menu: menu, QR: qr}
}

// Index renders the storefront with the available menu grouped by category.
func (pc *PageController) Index(c *gin.Context) {
	sections, err := pc.Menu.MenuByCategory()
	if err != nil {
		utils.ErrorLogger.Printf("storefront: %v", err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Sections": sections,
		"Flash":    utils.Flash(c),
	})
}

// PublicMenu renders the menu page customers reach via the QR code.
func (pc *PageController) PublicMenu(c *gin.Context) {
	sections, err := pc.Menu.MenuByCategory()
	if err != nil {
		utils.ErrorLogger.Printf("menu page: %v", err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.HTML(http.StatusOK, "menu.html", gin.H{
		"Sections": sections,
	})
}

// Admin renders the management view with every category and item, available
// or not.
func (pc *PageController) Admin(c *gin.Context) {
	categories, err := pc.Menu.ListCategories()
	if err != nil {
		utils.ErrorLogger.Printf("admin page: %v", err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	items, err := pc.Menu.ListItems(false)
	if err != nil {
		utils.ErrorLogger.Printf("admin page: %v", err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Categories": categories,
		"Items":      items,
		"Flash":      utils.Flash(c),
	})
}

// QRPage shows the QR image with the URL it encodes.
func (pc *PageController) QRPage(c *gin.Context) {
	c.HTML(http.StatusOK, "qr_page.html", gin.H{
		"MenuURL": pc.QR.MenuURL(),
	})
}
