package admin

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fotografica/common"
	"fotografica/content"
	"fotografica/models"
	"fotografica/site"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal("failed to connect database")
	}

	db.AutoMigrate(
		&models.User{},
		&models.AboutContent{},
		&models.Event{},
		&models.GalleryItem{},
		&models.HomeContent{},
		&models.TeamMember{},
		&models.ContactInfo{},
	)
	return db
}

func testConfig(t *testing.T) *common.Config {
	return &common.Config{
		SessionSecret: "test-secret",
		AdminUsername: "admin",
		AdminPassword: "admin123",
		AdminEmail:    "admin@fotografica.com",
		Port:          "8080",
		UploadDir:     t.TempDir(),
	}
}

func setupTestRouter(db *gorm.DB, cfg *common.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	router.Use(sessions.Sessions("test-session", store))
	router.LoadHTMLGlob("../*/views/*.html")

	contentStore := content.NewStore(db)
	site.NewSiteModule(contentStore).RegisterRoutes(router)
	NewAdminModule(contentStore, cfg).RegisterRoutes(router)
	return router
}

func createAdminUser(db *gorm.DB, username, password string) *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &models.User{
		Username:     username,
		Email:        username + "@fotografica.com",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	db.Create(user)
	return user
}

func postForm(router *gin.Engine, path string, values url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// login performs a real login POST and returns the session cookies.
func login(t *testing.T, router *gin.Engine, username, password string) []*http.Cookie {
	w := postForm(router, "/login", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	return w.Result().Cookies()
}

func TestCreateEvent(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, testConfig(t))
	createAdminUser(db, "admin", "admin123")
	cookies := login(t, router, "admin", "admin123")

	w := postForm(router, "/admin/events", url.Values{
		"title":       {"Photography Workshop"},
		"description": {"Learn new techniques."},
		"date":        {"2026-12-15"},
		"location":    {"Community Center"},
	}, cookies)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/events", w.Header().Get("Location"))

	var event models.Event
	assert.NoError(t, db.First(&event).Error)
	assert.Equal(t, "Photography Workshop", event.Title)
	assert.Equal(t, 2026, event.Date.Year())
}

func TestCreateEventInvalidLeavesStoreUnchanged(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, testConfig(t))
	createAdminUser(db, "admin", "admin123")
	cookies := login(t, router, "admin", "admin123")

	w := postForm(router, "/admin/events", url.Values{
		"description": {"No title supplied."},
		"date":        {"2026-12-15"},
	}, cookies)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Event{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestEditEventNotFound(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, testConfig(t))
	createAdminUser(db, "admin", "admin123")
	cookies := login(t, router, "admin", "admin123")

	w := get(router, "/admin/events/edit/999", cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteEvent(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, testConfig(t))
	createAdminUser(db, "admin", "admin123")
	cookies := login(t, router, "admin", "admin123")

	db.Create(&models.Event{Title: "Doomed", Description: "d"})
	var event models.Event
	db.First(&event)

	w := postForm(router, "/admin/events/delete/"+itoa(event.ID), nil, cookies)
	assert.Equal(t, http.StatusFound, w.Code)

	var count int64
	db.Model(&models.Event{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteEventNotFound(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, testConfig(t))
	createAdminUser(db, "admin", "admin123")
	cookies := login(t, router, "admin", "admin123")

	db.Create(&models.Event{Title: "Kept", Description: "d"})

	w := postForm(router, "/admin/events/delete/999", nil, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	db.Model(&models.Event{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestManageAboutUpsert(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, testConfig(t))
	createAdminUser(db, "admin", "admin123")
	cookies := login(t, router, "admin", "admin123")

	w := postForm(router, "/admin/about", url.Values{
		"title":   {"Our Story"},
		"content": {"Founded by friends with cameras."},
	}, cookies)
	assert.Equal(t, http.StatusFound, w.Code)

	var about models.AboutContent
	assert.NoError(t, db.First(&about).Error)
	assert.Equal(t, "Our Story", about.Title)
}

func TestManageHomeRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, testConfig(t))
	createAdminUser(db, "admin", "admin123")
	cookies := login(t, router, "admin", "admin123")

	w := postForm(router, "/admin/home", url.Values{
		"hero_subtitle":       {"Capturing moments"},
		"cta_text":            {"Join us today"},
		"feature_title":       {"One", "Two"},
		"feature_description": {"First", "Second"},
	}, cookies)
	assert.Equal(t, http.StatusFound, w.Code)

	var home models.HomeContent
	assert.NoError(t, db.First(&home).Error)
	assert.Len(t, home.Features, 2)
	assert.Equal(t, "Two", home.Features[1].Title)

	// read-after-write: the admin form shows the just-written rows
	w = get(router, "/admin/home", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Capturing moments")
	assert.Contains(t, w.Body.String(), "Second")
}

func TestGalleryUploadScenario(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, testConfig(t))
	createAdminUser(db, "admin", "admin123")
	cookies := login(t, router, "admin", "admin123")

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	mw.WriteField("title", "Sunset")
	mw.WriteField("description", "Golden hour.")
	mw.WriteField("category", "portrait")
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="my photo.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	part, _ := mw.CreatePart(header)
	part.Write([]byte("fake-jpeg-bytes"))
	mw.Close()

	req, _ := http.NewRequest("POST", "/admin/gallery", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)

	var item models.GalleryItem
	assert.NoError(t, db.First(&item).Error)
	assert.Equal(t, "portrait", item.Category)
	assert.True(t, strings.HasPrefix(item.ImagePath, "/static/images/my_photo_"), item.ImagePath)
	assert.True(t, strings.HasSuffix(item.ImagePath, ".jpg"), item.ImagePath)

	// the public gallery now lists the new item
	public := get(router, "/gallery", nil)
	assert.Equal(t, http.StatusOK, public.Code)
	assert.Contains(t, public.Body.String(), "Sunset")
}

func TestGalleryCreateWithoutImageRejected(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, testConfig(t))
	createAdminUser(db, "admin", "admin123")
	cookies := login(t, router, "admin", "admin123")

	w := postForm(router, "/admin/gallery", url.Values{
		"title":    {"Sunset"},
		"category": {"portrait"},
	}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.GalleryItem{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateTeamMember(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, testConfig(t))
	createAdminUser(db, "admin", "admin123")
	cookies := login(t, router, "admin", "admin123")

	w := postForm(router, "/admin/team", url.Values{
		"name":         {"Alex Rodriguez"},
		"role":         {"Club President"},
		"specialty":    {"Portrait"},
		"bio":          {"Leading the club."},
		"image":        {"https://example.com/alex.jpg"},
		"achievements": {"Best Portrait 2024", ""},
		"instagram":    {"https://instagram.com/alex"},
		"is_core":      {"on"},
	}, cookies)
	assert.Equal(t, http.StatusFound, w.Code)

	var member models.TeamMember
	assert.NoError(t, db.First(&member).Error)
	assert.True(t, member.IsCore)
	assert.Equal(t, models.StringList{"Best Portrait 2024"}, member.Achievements)
	assert.Equal(t, "https://instagram.com/alex", member.Social["instagram"])
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := ""
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	return digits
}
