package forms

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fotografica/models"
)

// Server-side validation for the admin forms. Each form binds from POST data,
// and Validate fills Errors keyed by field name; a form with a non-empty
// Errors map must never reach the store.

type Errors map[string]string

func (e Errors) require(field, value, label string) {
	if strings.TrimSpace(value) == "" {
		e[field] = label + " is required"
	}
}

func (e Errors) maxLen(field, value string, max int, label string) {
	if _, taken := e[field]; taken {
		return
	}
	if len(value) > max {
		e[field] = label + " must be at most " + itoa(max) + " characters"
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

type LoginForm struct {
	Username string
	Password string
	Errors   Errors
}

func BindLoginForm(c *gin.Context) *LoginForm {
	return &LoginForm{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
		Errors:   Errors{},
	}
}

func (f *LoginForm) Validate() bool {
	f.Errors.require("username", f.Username, "Username")
	f.Errors.require("password", f.Password, "Password")
	return len(f.Errors) == 0
}

type ResetForm struct {
	Username string
	Errors   Errors
}

func BindResetForm(c *gin.Context) *ResetForm {
	return &ResetForm{Username: c.PostForm("username"), Errors: Errors{}}
}

func (f *ResetForm) Validate() bool {
	f.Errors.require("username", f.Username, "Username")
	return len(f.Errors) == 0
}

type AboutForm struct {
	Title   string
	Content string
	Errors  Errors
}

func BindAboutForm(c *gin.Context) *AboutForm {
	return &AboutForm{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
		Errors:  Errors{},
	}
}

func (f *AboutForm) Validate() bool {
	f.Errors.require("title", f.Title, "Title")
	f.Errors.maxLen("title", f.Title, 100, "Title")
	f.Errors.require("content", f.Content, "Content")
	return len(f.Errors) == 0
}

type EventForm struct {
	Title       string
	Description string
	Date        string
	Location    string
	Image       *multipart.FileHeader
	ParsedDate  time.Time
	Errors      Errors
}

func BindEventForm(c *gin.Context) *EventForm {
	image, _ := c.FormFile("image")
	return &EventForm{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Date:        c.PostForm("date"),
		Location:    c.PostForm("location"),
		Image:       image,
		Errors:      Errors{},
	}
}

func (f *EventForm) Validate() bool {
	f.Errors.require("title", f.Title, "Title")
	f.Errors.maxLen("title", f.Title, 100, "Title")
	f.Errors.require("description", f.Description, "Description")
	f.Errors.require("date", f.Date, "Date")
	f.Errors.maxLen("location", f.Location, 100, "Location")
	if _, taken := f.Errors["date"]; !taken {
		parsed, err := time.Parse("2006-01-02", f.Date)
		if err != nil {
			f.Errors["date"] = "Date must be in YYYY-MM-DD format"
		} else {
			f.ParsedDate = parsed
		}
	}
	return len(f.Errors) == 0
}

// GalleryCategories is the enumerated choice set for gallery items.
var GalleryCategories = []string{"all", "portrait", "landscape", "street", "nature", "events"}

type GalleryForm struct {
	Title       string
	Description string
	Category    string
	Image       *multipart.FileHeader

	// RequireImage is set on create: an item cannot exist without an image.
	// On edit the stored image is kept when no file is supplied.
	RequireImage bool
	Errors       Errors
}

func BindGalleryForm(c *gin.Context, requireImage bool) *GalleryForm {
	image, _ := c.FormFile("image")
	return &GalleryForm{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Category:     c.PostForm("category"),
		Image:        image,
		RequireImage: requireImage,
		Errors:       Errors{},
	}
}

func (f *GalleryForm) Validate() bool {
	f.Errors.require("title", f.Title, "Title")
	f.Errors.maxLen("title", f.Title, 100, "Title")
	if f.RequireImage && f.Image == nil {
		f.Errors["image"] = "Image is required"
	}
	valid := false
	for _, cat := range GalleryCategories {
		if f.Category == cat {
			valid = true
			break
		}
	}
	if !valid {
		f.Errors["category"] = "Category must be one of the listed choices"
	}
	return len(f.Errors) == 0
}

type HomeForm struct {
	HeroSubtitle string
	Features     models.FeatureList
	CTAText      string
	Errors       Errors
}

func BindHomeForm(c *gin.Context) *HomeForm {
	titles := c.PostFormArray("feature_title")
	descriptions := c.PostFormArray("feature_description")

	var features models.FeatureList
	for i := range titles {
		feature := models.Feature{Title: titles[i]}
		if i < len(descriptions) {
			feature.Description = descriptions[i]
		}
		features = append(features, feature)
	}

	return &HomeForm{
		HeroSubtitle: c.PostForm("hero_subtitle"),
		Features:     features,
		CTAText:      c.PostForm("cta_text"),
		Errors:       Errors{},
	}
}

func (f *HomeForm) Validate() bool {
	f.Errors.require("hero_subtitle", f.HeroSubtitle, "Hero subtitle")
	f.Errors.require("cta_text", f.CTAText, "CTA text")
	if len(f.Features) == 0 {
		f.Errors["features"] = "At least one feature is required"
	}
	for _, feature := range f.Features {
		if strings.TrimSpace(feature.Title) == "" || strings.TrimSpace(feature.Description) == "" {
			f.Errors["features"] = "Every feature needs a title and a description"
			break
		}
	}
	return len(f.Errors) == 0
}

type TeamMemberForm struct {
	Name         string
	Role         string
	Specialty    string
	Bio          string
	Achievements models.StringList
	Image        string
	Instagram    string
	Facebook     string
	Twitter      string
	Email        string
	IsCore       bool
	Errors       Errors
}

func BindTeamMemberForm(c *gin.Context) *TeamMemberForm {
	var achievements models.StringList
	for _, a := range c.PostFormArray("achievements") {
		if strings.TrimSpace(a) != "" {
			achievements = append(achievements, a)
		}
	}

	return &TeamMemberForm{
		Name:         c.PostForm("name"),
		Role:         c.PostForm("role"),
		Specialty:    c.PostForm("specialty"),
		Bio:          c.PostForm("bio"),
		Achievements: achievements,
		Image:        c.PostForm("image"),
		Instagram:    c.PostForm("instagram"),
		Facebook:     c.PostForm("facebook"),
		Twitter:      c.PostForm("twitter"),
		Email:        c.PostForm("email"),
		IsCore:       c.PostForm("is_core") != "",
		Errors:       Errors{},
	}
}

func (f *TeamMemberForm) Validate() bool {
	f.Errors.require("name", f.Name, "Name")
	f.Errors.maxLen("name", f.Name, 100, "Name")
	f.Errors.require("role", f.Role, "Role")
	f.Errors.maxLen("role", f.Role, 50, "Role")
	f.Errors.require("specialty", f.Specialty, "Specialty")
	f.Errors.maxLen("specialty", f.Specialty, 100, "Specialty")
	f.Errors.require("bio", f.Bio, "Bio")
	f.Errors.require("image", f.Image, "Image URL")
	return len(f.Errors) == 0
}

func (f *TeamMemberForm) SocialMap() models.StringMap {
	return models.StringMap{
		"instagram": f.Instagram,
		"facebook":  f.Facebook,
		"twitter":   f.Twitter,
		"email":     f.Email,
	}
}

type ContactForm struct {
	Email      string
	Phone      string
	PhoneHours string

	Line1   string
	Line2   string
	City    string
	State   string
	ZipCode string

	Weekdays string
	Weekend  string
	Closed   string

	Instagram       string
	Facebook        string
	Twitter         string
	InstagramHandle string

	FAQ    models.FAQList
	Errors Errors
}

func BindContactForm(c *gin.Context) *ContactForm {
	questions := c.PostFormArray("faq_question")
	answers := c.PostFormArray("faq_answer")

	// Rows missing either half are dropped rather than rejected.
	var faq models.FAQList
	for i := range questions {
		if i >= len(answers) {
			break
		}
		if strings.TrimSpace(questions[i]) == "" || strings.TrimSpace(answers[i]) == "" {
			continue
		}
		faq = append(faq, models.FAQEntry{Question: questions[i], Answer: answers[i]})
	}

	return &ContactForm{
		Email:           c.PostForm("email"),
		Phone:           c.PostForm("phone"),
		PhoneHours:      c.PostForm("phone_hours"),
		Line1:           c.PostForm("line1"),
		Line2:           c.PostForm("line2"),
		City:            c.PostForm("city"),
		State:           c.PostForm("state"),
		ZipCode:         c.PostForm("zip_code"),
		Weekdays:        c.PostForm("weekdays"),
		Weekend:         c.PostForm("weekend"),
		Closed:          c.PostForm("closed"),
		Instagram:       c.PostForm("instagram"),
		Facebook:        c.PostForm("facebook"),
		Twitter:         c.PostForm("twitter"),
		InstagramHandle: c.PostForm("instagram_handle"),
		FAQ:             faq,
		Errors:          Errors{},
	}
}

func (f *ContactForm) Validate() bool {
	f.Errors.require("email", f.Email, "Email")
	f.Errors.maxLen("email", f.Email, 120, "Email")
	f.Errors.require("phone", f.Phone, "Phone")
	f.Errors.maxLen("phone", f.Phone, 50, "Phone")
	f.Errors.require("phone_hours", f.PhoneHours, "Phone hours")
	f.Errors.maxLen("phone_hours", f.PhoneHours, 100, "Phone hours")
	f.Errors.require("line1", f.Line1, "Address line 1")
	f.Errors.require("city", f.City, "City")
	f.Errors.require("state", f.State, "State")
	f.Errors.require("zip_code", f.ZipCode, "ZIP code")
	f.Errors.require("weekdays", f.Weekdays, "Weekday hours")
	f.Errors.require("weekend", f.Weekend, "Weekend hours")
	f.Errors.require("closed", f.Closed, "Closed days")
	return len(f.Errors) == 0
}

func (f *ContactForm) AddressMap() models.StringMap {
	return models.StringMap{
		"line1": f.Line1,
		"line2": f.Line2,
		"city":  f.City,
		"state": f.State,
		"zip":   f.ZipCode,
	}
}

func (f *ContactForm) OfficeHoursMap() models.StringMap {
	return models.StringMap{
		"weekdays": f.Weekdays,
		"weekend":  f.Weekend,
		"closed":   f.Closed,
	}
}

func (f *ContactForm) SocialLinksMap() models.StringMap {
	return models.StringMap{
		"instagram":        f.Instagram,
		"facebook":         f.Facebook,
		"twitter":          f.Twitter,
		"instagram_handle": f.InstagramHandle,
	}
}
