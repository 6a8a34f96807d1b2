package site

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"fotografica/content"
)

// markdown renderer configured with Goldmark and useful extensions
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(),
	),
)

type SiteModule struct {
	store *content.Store
}

func NewSiteModule(store *content.Store) *SiteModule {
	return &SiteModule{store: store}
}

func (s *SiteModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/", s.index)
	router.GET("/about", s.about)
	router.GET("/events", s.events)
	router.GET("/team", s.team)
	router.GET("/gallery", s.gallery)
	router.GET("/contact", s.contact)
}

func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(buf.String())
}

func (s *SiteModule) index(c *gin.Context) {
	home := s.store.Home()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"heroSubtitle": home.HeroSubtitle,
		"features":     home.Features,
		"ctaText":      home.CTAText,
	})
}

func (s *SiteModule) about(c *gin.Context) {
	about := s.store.About()
	c.HTML(http.StatusOK, "about.html", gin.H{
		"title":       about.Title,
		"contentHTML": renderMarkdown(about.Content),
	})
}

func (s *SiteModule) events(c *gin.Context) {
	events, err := s.store.Events()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "site_error.html", gin.H{
			"error": "Error loading events",
		})
		return
	}
	c.HTML(http.StatusOK, "events.html", gin.H{
		"events": events,
		"now":    time.Now(),
	})
}

func (s *SiteModule) team(c *gin.Context) {
	coreTeam, err := s.store.CoreTeam()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "site_error.html", gin.H{
			"error": "Error loading team",
		})
		return
	}
	activeMembers, err := s.store.ActiveMembers()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "site_error.html", gin.H{
			"error": "Error loading team",
		})
		return
	}
	c.HTML(http.StatusOK, "team.html", gin.H{
		"coreTeam":      coreTeam,
		"activeMembers": activeMembers,
	})
}

func (s *SiteModule) gallery(c *gin.Context) {
	items, err := s.store.GalleryItems()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "site_error.html", gin.H{
			"error": "Error loading gallery",
		})
		return
	}
	c.HTML(http.StatusOK, "gallery.html", gin.H{
		"items": items,
	})
}

func (s *SiteModule) contact(c *gin.Context) {
	info := s.store.Contact()
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"info": info,
	})
}
