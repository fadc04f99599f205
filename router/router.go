package router

import (
	"html/template"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adaobi/naija-menu/config"
	"github.com/adaobi/naija-menu/controllers"
	"github.com/adaobi/naija-menu/middlewares"
	"github.com/adaobi/naija-menu/services"
	"github.com/adaobi/naija-menu/utils"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{cfg.BaseURL},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(middlewares.LoggerMiddleware())

	r.SetFuncMap(template.FuncMap{
		"naira": utils.FormatNaira,
		"join":  strings.Join,
	})
	r.LoadHTMLGlob("templates/*.html")

	menuSvc := services.NewMenuService(db)
	qrSvc := services.NewQRService(cfg.BaseURL)
	pdfSvc := services.NewPDFService(menuSvc)

	pageCtrl := controllers.NewPageController(menuSvc, qrSvc)
	categoryCtrl := controllers.NewCategoryController(menuSvc)
	itemCtrl := controllers.NewItemController(menuSvc)
	exportCtrl := controllers.NewExportController(pdfSvc, qrSvc)
	systemCtrl := controllers.NewSystemController(db, menuSvc)

	// Pages
	r.GET("/", pageCtrl.Index)
	r.GET("/menu", pageCtrl.PublicMenu)
	r.GET("/admin", pageCtrl.Admin)
	r.GET("/qr", pageCtrl.QRPage)

	// Admin mutations (form posts and link actions)
	r.POST("/category/add", categoryCtrl.AddCategory)
	r.GET("/category/delete/:id", categoryCtrl.DeleteCategory)
	r.POST("/item/add", itemCtrl.AddItem)
	r.POST("/item/edit/:id", itemCtrl.EditItem)
	r.GET("/item/toggle/:id", itemCtrl.ToggleItem)
	r.GET("/item/delete/:id", itemCtrl.DeleteItem)

	// Generated artifacts
	r.GET("/qr-code", exportCtrl.QRCode)
	r.GET("/download-menu-pdf", exportCtrl.DownloadPDF)
	r.GET("/qr-pdf", exportCtrl.DownloadPDF)

	// Operational
	r.GET("/health", systemCtrl.Health)
	r.GET("/init-db", systemCtrl.InitDB)

	return r
}
