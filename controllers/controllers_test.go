package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adaobi/naija-menu/controllers"
	"github.com/adaobi/naija-menu/models"
	"github.com/adaobi/naija-menu/services"
	"github.com/adaobi/naija-menu/utils"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.MenuItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// setupTestRouter registers the non-HTML routes against a fresh service
// stack, mirroring router.SetupRouter without the template pages.
func setupTestRouter(db *gorm.DB) *gin.Engine {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	menuSvc := services.NewMenuService(db)
	qrSvc := services.NewQRService("http://localhost:8080")
	pdfSvc := services.NewPDFService(menuSvc)

	categoryCtrl := controllers.NewCategoryController(menuSvc)
	itemCtrl := controllers.NewItemController(menuSvc)
	exportCtrl := controllers.NewExportController(pdfSvc, qrSvc)
	systemCtrl := controllers.NewSystemController(db, menuSvc)

	r.POST("/category/add", categoryCtrl.AddCategory)
	r.GET("/category/delete/:id", categoryCtrl.DeleteCategory)
	r.POST("/item/add", itemCtrl.AddItem)
	r.POST("/item/edit/:id", itemCtrl.EditItem)
	r.GET("/item/toggle/:id", itemCtrl.ToggleItem)
	r.GET("/item/delete/:id", itemCtrl.DeleteItem)
	r.GET("/qr-code", exportCtrl.QRCode)
	r.GET("/download-menu-pdf", exportCtrl.DownloadPDF)
	r.GET("/health", systemCtrl.Health)
	r.GET("/init-db", systemCtrl.InitDB)

	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddCategoryRoute(t *testing.T) {
	db := setupTestDB(t, "ctl_add_cat")
	r := setupTestRouter(db)

	// Empty name: silent drop, still redirected back to admin.
	w := postForm(r, "/category/add", url.Values{"name": {""}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(0), count)

	w = postForm(r, "/category/add", url.Values{
		"name":        {"Drinks"},
		"description": {"Refreshing Nigerian drinks"},
		"icon":        {"🥤"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteCategoryRouteCascades(t *testing.T) {
	db := setupTestDB(t, "ctl_del_cat")
	r := setupTestRouter(db)

	cat := models.Category{Name: "Drinks"}
	assert.NoError(t, db.Create(&cat).Error)
	assert.NoError(t, db.Create(&models.MenuItem{Name: "Zobo", Price: 800, CategoryID: cat.ID, Available: true}).Error)

	w := get(r, fmt.Sprintf("/category/delete/%d", cat.ID))
	assert.Equal(t, http.StatusSeeOther, w.Code)

	var items int64
	db.Model(&models.MenuItem{}).Count(&items)
	assert.Equal(t, int64(0), items)

	w = get(r, "/category/delete/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemRoutes(t *testing.T) {
	db := setupTestDB(t, "ctl_items")
	r := setupTestRouter(db)

	cat := models.Category{Name: "Drinks"}
	assert.NoError(t, db.Create(&cat).Error)

	w := postForm(r, "/item/add", url.Values{
		"name":          {"Zobo"},
		"price":         {"800"},
		"category_id":   {fmt.Sprint(cat.ID)},
		"prep_time":     {"2 min"},
		"is_vegetarian": {"on"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	var item models.MenuItem
	assert.NoError(t, db.First(&item, "name = ?", "Zobo").Error)
	assert.True(t, item.Available)
	assert.True(t, item.IsVegetarian)
	assert.Equal(t, float64(800), item.Price)

	// Toggle off, then back on.
	w = get(r, fmt.Sprintf("/item/toggle/%d", item.ID))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	db.First(&item, item.ID)
	assert.False(t, item.Available)

	w = get(r, fmt.Sprintf("/item/toggle/%d", item.ID))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	db.First(&item, item.ID)
	assert.True(t, item.Available)

	w = get(r, "/item/toggle/999")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// A bad price on edit reports the failure and leaves the row alone.
	w = postForm(r, fmt.Sprintf("/item/edit/%d", item.ID), url.Values{
		"name":        {"Changed"},
		"price":       {"not-a-number"},
		"category_id": {fmt.Sprint(cat.ID)},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	db.First(&item, item.ID)
	assert.Equal(t, "Zobo", item.Name)

	w = get(r, fmt.Sprintf("/item/delete/%d", item.ID))
	assert.Equal(t, http.StatusSeeOther, w.Code)

	var count int64
	db.Model(&models.MenuItem{}).Count(&count)
	assert.Equal(t, int64(0), count)

	w = get(r, fmt.Sprintf("/item/delete/%d", item.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthRoute(t *testing.T) {
	db := setupTestDB(t, "ctl_health")
	r := setupTestRouter(db)

	w := get(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"categories":0`)
}

func TestQRCodeRoute(t *testing.T) {
	db := setupTestDB(t, "ctl_qr")
	r := setupTestRouter(db)

	w := get(r, "/qr-code")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestDownloadPDFRoute(t *testing.T) {
	db := setupTestDB(t, "ctl_pdf")
	r := setupTestRouter(db)

	w := get(r, "/download-menu-pdf")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestInitDBRouteSeeds(t *testing.T) {
	db := setupTestDB(t, "ctl_init")
	r := setupTestRouter(db)

	w := get(r, "/init-db")
	assert.Equal(t, http.StatusOK, w.Code)

	var categories int64
	db.Model(&models.Category{}).Count(&categories)
	assert.Equal(t, int64(6), categories)

	// Re-running must not duplicate the seed.
	w = get(r, "/init-db")
	assert.Equal(t, http.StatusOK, w.Code)
	db.Model(&models.Category{}).Count(&categories)
	assert.Equal(t, int64(6), categories)
}
