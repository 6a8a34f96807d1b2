package forms

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func formContext(values url.Values) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest("POST", "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func TestLoginFormRequiresBothFields(t *testing.T) {
	form := BindLoginForm(formContext(url.Values{"username": {"admin"}}))

	assert.False(t, form.Validate())
	assert.Contains(t, form.Errors, "password")
	assert.NotContains(t, form.Errors, "username")
}

func TestAboutFormValid(t *testing.T) {
	form := BindAboutForm(formContext(url.Values{
		"title":   {"Our Mission"},
		"content": {"We photograph things."},
	}))

	assert.True(t, form.Validate())
	assert.Empty(t, form.Errors)
}

func TestAboutFormTitleTooLong(t *testing.T) {
	form := BindAboutForm(formContext(url.Values{
		"title":   {strings.Repeat("x", 101)},
		"content": {"body"},
	}))

	assert.False(t, form.Validate())
	assert.Contains(t, form.Errors, "title")
}

func TestEventFormParsesDate(t *testing.T) {
	form := BindEventForm(formContext(url.Values{
		"title":       {"Workshop"},
		"description": {"Learn things"},
		"date":        {"2026-03-14"},
		"location":    {"Studio"},
	}))

	assert.True(t, form.Validate())
	assert.Equal(t, 2026, form.ParsedDate.Year())
	assert.Equal(t, 14, form.ParsedDate.Day())
}

func TestEventFormRejectsBadDate(t *testing.T) {
	form := BindEventForm(formContext(url.Values{
		"title":       {"Workshop"},
		"description": {"Learn things"},
		"date":        {"14/03/2026"},
	}))

	assert.False(t, form.Validate())
	assert.Contains(t, form.Errors["date"], "YYYY-MM-DD")
}

func TestEventFormMissingRequired(t *testing.T) {
	form := BindEventForm(formContext(url.Values{}))

	assert.False(t, form.Validate())
	assert.Contains(t, form.Errors, "title")
	assert.Contains(t, form.Errors, "description")
	assert.Contains(t, form.Errors, "date")
}

func TestGalleryFormCategoryChoices(t *testing.T) {
	form := BindGalleryForm(formContext(url.Values{
		"title":    {"Sunset"},
		"category": {"portrait"},
	}), false)
	assert.True(t, form.Validate())

	form = BindGalleryForm(formContext(url.Values{
		"title":    {"Sunset"},
		"category": {"selfies"},
	}), false)
	assert.False(t, form.Validate())
	assert.Contains(t, form.Errors, "category")
}

func TestGalleryFormRequiresImageOnCreate(t *testing.T) {
	form := BindGalleryForm(formContext(url.Values{
		"title":    {"Sunset"},
		"category": {"portrait"},
	}), true)

	assert.False(t, form.Validate())
	assert.Contains(t, form.Errors, "image")
}

func TestHomeFormBindsFeatureRows(t *testing.T) {
	form := BindHomeForm(formContext(url.Values{
		"hero_subtitle":       {"Capturing moments"},
		"cta_text":            {"Join us"},
		"feature_title":       {"One", "Two"},
		"feature_description": {"First", "Second"},
	}))

	assert.True(t, form.Validate())
	assert.Len(t, form.Features, 2)
	assert.Equal(t, "Two", form.Features[1].Title)
	assert.Equal(t, "Second", form.Features[1].Description)
}

func TestHomeFormRequiresAtLeastOneFeature(t *testing.T) {
	form := BindHomeForm(formContext(url.Values{
		"hero_subtitle": {"Capturing moments"},
		"cta_text":      {"Join us"},
	}))

	assert.False(t, form.Validate())
	assert.Contains(t, form.Errors, "features")
}

func TestHomeFormRejectsBlankFeatureRow(t *testing.T) {
	form := BindHomeForm(formContext(url.Values{
		"hero_subtitle":       {"Capturing moments"},
		"cta_text":            {"Join us"},
		"feature_title":       {"One", ""},
		"feature_description": {"First", "Second"},
	}))

	assert.False(t, form.Validate())
	assert.Contains(t, form.Errors, "features")
}

func TestTeamMemberFormSkipsBlankAchievements(t *testing.T) {
	form := BindTeamMemberForm(formContext(url.Values{
		"name":         {"Alex"},
		"role":         {"President"},
		"specialty":    {"Portrait"},
		"bio":          {"bio"},
		"image":        {"https://example.com/alex.jpg"},
		"achievements": {"Best Portrait 2024", "", "  ", "Runner Up"},
		"instagram":    {"https://instagram.com/alex"},
		"is_core":      {"on"},
	}))

	assert.True(t, form.Validate())
	assert.Equal(t, []string{"Best Portrait 2024", "Runner Up"}, []string(form.Achievements))
	assert.True(t, form.IsCore)

	social := form.SocialMap()
	assert.Equal(t, "https://instagram.com/alex", social["instagram"])
	assert.Equal(t, "", social["facebook"])
}

func TestTeamMemberFormUncheckedCoreBox(t *testing.T) {
	form := BindTeamMemberForm(formContext(url.Values{
		"name":      {"Alex"},
		"role":      {"Member"},
		"specialty": {"Street"},
		"bio":       {"bio"},
		"image":     {"img"},
	}))

	assert.True(t, form.Validate())
	assert.False(t, form.IsCore)
}

func TestContactFormDropsIncompleteFAQRows(t *testing.T) {
	form := BindContactForm(formContext(url.Values{
		"email":        {"club@example.com"},
		"phone":        {"+1 555"},
		"phone_hours":  {"9-5"},
		"line1":        {"Creative Arts Center"},
		"city":         {"San Francisco"},
		"state":        {"CA"},
		"zip_code":     {"94102"},
		"weekdays":     {"Mon-Fri 9-6"},
		"weekend":      {"Sat 10-4"},
		"closed":       {"Sunday"},
		"faq_question": {"How do I join?", "", "Orphan question"},
		"faq_answer":   {"Email us.", "Orphan answer", ""},
	}))

	assert.True(t, form.Validate())
	assert.Len(t, form.FAQ, 1)
	assert.Equal(t, "How do I join?", form.FAQ[0].Question)
}

func TestContactFormMissingRequiredField(t *testing.T) {
	form := BindContactForm(formContext(url.Values{
		"email": {"club@example.com"},
	}))

	assert.False(t, form.Validate())
	assert.Contains(t, form.Errors, "phone")
	assert.Contains(t, form.Errors, "line1")
	assert.Contains(t, form.Errors, "weekdays")
}

func TestContactFormMaps(t *testing.T) {
	form := BindContactForm(formContext(url.Values{
		"line1":            {"Creative Arts Center"},
		"line2":            {""},
		"city":             {"San Francisco"},
		"state":            {"CA"},
		"zip_code":         {"94102"},
		"weekdays":         {"Mon-Fri 9-6"},
		"instagram_handle": {"@fotografica"},
	}))

	address := form.AddressMap()
	assert.Equal(t, "Creative Arts Center", address["line1"])
	assert.Equal(t, "94102", address["zip"])

	social := form.SocialLinksMap()
	assert.Equal(t, "@fotografica", social["instagram_handle"])
}
