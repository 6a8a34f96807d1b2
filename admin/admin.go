package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fotografica/common"
	"fotografica/content"
	"fotografica/forms"
	"fotografica/models"
)

type AdminModule struct {
	store     *content.Store
	cfg       *common.Config
	uploadDir string
}

func NewAdminModule(store *content.Store, cfg *common.Config) *AdminModule {
	return &AdminModule{
		store:     store,
		cfg:       cfg,
		uploadDir: cfg.UploadDir,
	}
}

func (a *AdminModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/login", a.loginPage)
	router.POST("/login", a.loginPost)
	router.GET("/forgot-password", a.forgotPasswordPage)
	router.POST("/forgot-password", a.forgotPasswordPost)
	router.GET("/logout", a.logout)

	adminGroup := router.Group("/admin")
	adminGroup.Use(a.requireAuth)
	{
		adminGroup.GET("", a.dashboard)

		adminGroup.GET("/home", a.manageHomePage)
		adminGroup.POST("/home", a.manageHomePost)
		adminGroup.GET("/about", a.manageAboutPage)
		adminGroup.POST("/about", a.manageAboutPost)
		adminGroup.GET("/contact", a.manageContactPage)
		adminGroup.POST("/contact", a.manageContactPost)

		adminGroup.GET("/events", a.manageEventsPage)
		adminGroup.POST("/events", a.createEvent)
		adminGroup.GET("/events/edit/:id", a.editEventPage)
		adminGroup.POST("/events/edit/:id", a.updateEvent)
		adminGroup.POST("/events/delete/:id", a.deleteEvent)

		adminGroup.GET("/team", a.manageTeamPage)
		adminGroup.POST("/team", a.createTeamMember)
		adminGroup.GET("/team/edit/:id", a.editTeamMemberPage)
		adminGroup.POST("/team/edit/:id", a.updateTeamMember)
		adminGroup.POST("/team/delete/:id", a.deleteTeamMember)

		adminGroup.GET("/gallery", a.manageGalleryPage)
		adminGroup.POST("/gallery", a.createGalleryItem)
		adminGroup.GET("/gallery/edit/:id", a.editGalleryItemPage)
		adminGroup.POST("/gallery/edit/:id", a.updateGalleryItem)
		adminGroup.POST("/gallery/delete/:id", a.deleteGalleryItem)
	}
}

func (a *AdminModule) serverError(c *gin.Context, message string) {
	c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{"error": message})
}

func (a *AdminModule) notFound(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, "admin_error.html", gin.H{"error": message})
}

func (a *AdminModule) dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"flashes": popFlashes(c),
	})
}

// Home content

func (a *AdminModule) manageHomePage(c *gin.Context) {
	home := a.store.Home()
	form := &forms.HomeForm{
		HeroSubtitle: home.HeroSubtitle,
		Features:     home.Features,
		CTAText:      home.CTAText,
	}
	c.HTML(http.StatusOK, "manage_home.html", gin.H{
		"form":    form,
		"flashes": popFlashes(c),
	})
}

func (a *AdminModule) manageHomePost(c *gin.Context) {
	form := forms.BindHomeForm(c)
	if !form.Validate() {
		c.HTML(http.StatusBadRequest, "manage_home.html", gin.H{
			"form":   form,
			"errors": form.Errors,
		})
		return
	}

	if err := a.store.SaveHome(form.HeroSubtitle, form.Features, form.CTAText); err != nil {
		a.serverError(c, "Error saving home content")
		return
	}

	addFlash(c, "Home content updated successfully!")
	c.Redirect(http.StatusFound, "/admin/home")
}

// About content

func (a *AdminModule) manageAboutPage(c *gin.Context) {
	about := a.store.About()
	form := &forms.AboutForm{Title: about.Title, Content: about.Content}
	c.HTML(http.StatusOK, "manage_about.html", gin.H{
		"form":    form,
		"flashes": popFlashes(c),
	})
}

func (a *AdminModule) manageAboutPost(c *gin.Context) {
	form := forms.BindAboutForm(c)
	if !form.Validate() {
		c.HTML(http.StatusBadRequest, "manage_about.html", gin.H{
			"form":   form,
			"errors": form.Errors,
		})
		return
	}

	if err := a.store.SaveAbout(form.Title, form.Content); err != nil {
		a.serverError(c, "Error saving about content")
		return
	}

	addFlash(c, "About content updated successfully!")
	c.Redirect(http.StatusFound, "/admin/about")
}

// Contact info

func (a *AdminModule) manageContactPage(c *gin.Context) {
	info := a.store.Contact()
	form := &forms.ContactForm{
		Email:           info.Email,
		Phone:           info.Phone,
		PhoneHours:      info.PhoneHours,
		Line1:           info.Address["line1"],
		Line2:           info.Address["line2"],
		City:            info.Address["city"],
		State:           info.Address["state"],
		ZipCode:         info.Address["zip"],
		Weekdays:        info.OfficeHours["weekdays"],
		Weekend:         info.OfficeHours["weekend"],
		Closed:          info.OfficeHours["closed"],
		Instagram:       info.SocialLinks["instagram"],
		Facebook:        info.SocialLinks["facebook"],
		Twitter:         info.SocialLinks["twitter"],
		InstagramHandle: info.SocialLinks["instagram_handle"],
		FAQ:             info.FAQ,
	}
	c.HTML(http.StatusOK, "manage_contact.html", gin.H{
		"form":    form,
		"flashes": popFlashes(c),
	})
}

func (a *AdminModule) manageContactPost(c *gin.Context) {
	form := forms.BindContactForm(c)
	if !form.Validate() {
		c.HTML(http.StatusBadRequest, "manage_contact.html", gin.H{
			"form":   form,
			"errors": form.Errors,
		})
		return
	}

	info := models.ContactInfo{
		Email:       form.Email,
		Phone:       form.Phone,
		PhoneHours:  form.PhoneHours,
		Address:     form.AddressMap(),
		OfficeHours: form.OfficeHoursMap(),
		SocialLinks: form.SocialLinksMap(),
		FAQ:         form.FAQ,
	}
	if err := a.store.SaveContact(info); err != nil {
		a.serverError(c, "Error saving contact info")
		return
	}

	addFlash(c, "Contact info updated successfully!")
	c.Redirect(http.StatusFound, "/admin/contact")
}

// Events

func (a *AdminModule) manageEventsPage(c *gin.Context) {
	events, err := a.store.Events()
	if err != nil {
		a.serverError(c, "Error loading events")
		return
	}
	c.HTML(http.StatusOK, "manage_events.html", gin.H{
		"events":  events,
		"now":     time.Now(),
		"flashes": popFlashes(c),
	})
}

func (a *AdminModule) createEvent(c *gin.Context) {
	form := forms.BindEventForm(c)
	events, _ := a.store.Events()
	if !form.Validate() {
		c.HTML(http.StatusBadRequest, "manage_events.html", gin.H{
			"form":   form,
			"errors": form.Errors,
			"events": events,
			"now":    time.Now(),
		})
		return
	}

	event := models.Event{
		Title:       form.Title,
		Description: form.Description,
		Date:        form.ParsedDate,
		Location:    form.Location,
	}
	if form.Image != nil {
		imagePath, err := a.saveUpload(c, form.Image, "events")
		if err != nil {
			if isUploadValidationError(err) {
				form.Errors["image"] = err.Error()
				c.HTML(http.StatusBadRequest, "manage_events.html", gin.H{
					"form":   form,
					"errors": form.Errors,
					"events": events,
					"now":    time.Now(),
				})
				return
			}
			a.serverError(c, "Error saving event image")
			return
		}
		event.ImagePath = imagePath
	}

	if err := a.store.CreateEvent(&event); err != nil {
		a.serverError(c, "Error creating event")
		return
	}

	addFlash(c, "Event added successfully!")
	c.Redirect(http.StatusFound, "/admin/events")
}

func (a *AdminModule) editEventPage(c *gin.Context) {
	event, err := a.store.EventByID(paramID(c))
	if err != nil {
		a.notFound(c, "Event not found")
		return
	}
	form := &forms.EventForm{
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date.Format("2006-01-02"),
		Location:    event.Location,
	}
	c.HTML(http.StatusOK, "edit_event.html", gin.H{
		"form":    form,
		"event":   event,
		"flashes": popFlashes(c),
	})
}

func (a *AdminModule) updateEvent(c *gin.Context) {
	event, err := a.store.EventByID(paramID(c))
	if err != nil {
		a.notFound(c, "Event not found")
		return
	}

	form := forms.BindEventForm(c)
	if !form.Validate() {
		c.HTML(http.StatusBadRequest, "edit_event.html", gin.H{
			"form":   form,
			"event":  event,
			"errors": form.Errors,
		})
		return
	}

	event.Title = form.Title
	event.Description = form.Description
	event.Date = form.ParsedDate
	event.Location = form.Location
	if form.Image != nil {
		imagePath, err := a.saveUpload(c, form.Image, "events")
		if err != nil {
			if isUploadValidationError(err) {
				form.Errors["image"] = err.Error()
				c.HTML(http.StatusBadRequest, "edit_event.html", gin.H{
					"form":   form,
					"event":  event,
					"errors": form.Errors,
				})
				return
			}
			a.serverError(c, "Error saving event image")
			return
		}
		event.ImagePath = imagePath
	}

	if err := a.store.UpdateEvent(event); err != nil {
		a.serverError(c, "Error updating event")
		return
	}

	addFlash(c, "Event updated successfully!")
	c.Redirect(http.StatusFound, "/admin/events")
}

func (a *AdminModule) deleteEvent(c *gin.Context) {
	if err := a.store.DeleteEvent(paramID(c)); err != nil {
		if err == gorm.ErrRecordNotFound {
			a.notFound(c, "Event not found")
			return
		}
		a.serverError(c, "Error deleting event")
		return
	}
	addFlash(c, "Event deleted successfully!")
	c.Redirect(http.StatusFound, "/admin/events")
}

// Team

func (a *AdminModule) manageTeamPage(c *gin.Context) {
	coreTeam, err := a.store.CoreTeam()
	if err != nil {
		a.serverError(c, "Error loading team members")
		return
	}
	activeMembers, err := a.store.ActiveMembers()
	if err != nil {
		a.serverError(c, "Error loading team members")
		return
	}
	c.HTML(http.StatusOK, "manage_team.html", gin.H{
		"coreTeam":      coreTeam,
		"activeMembers": activeMembers,
		"flashes":       popFlashes(c),
	})
}

func (a *AdminModule) createTeamMember(c *gin.Context) {
	form := forms.BindTeamMemberForm(c)
	if !form.Validate() {
		coreTeam, _ := a.store.CoreTeam()
		activeMembers, _ := a.store.ActiveMembers()
		c.HTML(http.StatusBadRequest, "manage_team.html", gin.H{
			"form":          form,
			"errors":        form.Errors,
			"coreTeam":      coreTeam,
			"activeMembers": activeMembers,
		})
		return
	}

	member := models.TeamMember{
		Name:         form.Name,
		Role:         form.Role,
		Specialty:    form.Specialty,
		Bio:          form.Bio,
		Achievements: form.Achievements,
		Image:        form.Image,
		Social:       form.SocialMap(),
		IsCore:       form.IsCore,
	}
	if err := a.store.CreateTeamMember(&member); err != nil {
		a.serverError(c, "Error creating team member")
		return
	}

	addFlash(c, "Team member added successfully!")
	c.Redirect(http.StatusFound, "/admin/team")
}

func (a *AdminModule) editTeamMemberPage(c *gin.Context) {
	member, err := a.store.TeamMemberByID(paramID(c))
	if err != nil {
		a.notFound(c, "Team member not found")
		return
	}
	form := &forms.TeamMemberForm{
		Name:         member.Name,
		Role:         member.Role,
		Specialty:    member.Specialty,
		Bio:          member.Bio,
		Achievements: member.Achievements,
		Image:        member.Image,
		Instagram:    member.Social["instagram"],
		Facebook:     member.Social["facebook"],
		Twitter:      member.Social["twitter"],
		Email:        member.Social["email"],
		IsCore:       member.IsCore,
	}
	c.HTML(http.StatusOK, "edit_team_member.html", gin.H{
		"form":    form,
		"member":  member,
		"flashes": popFlashes(c),
	})
}

func (a *AdminModule) updateTeamMember(c *gin.Context) {
	member, err := a.store.TeamMemberByID(paramID(c))
	if err != nil {
		a.notFound(c, "Team member not found")
		return
	}

	form := forms.BindTeamMemberForm(c)
	if !form.Validate() {
		c.HTML(http.StatusBadRequest, "edit_team_member.html", gin.H{
			"form":   form,
			"member": member,
			"errors": form.Errors,
		})
		return
	}

	member.Name = form.Name
	member.Role = form.Role
	member.Specialty = form.Specialty
	member.Bio = form.Bio
	member.Achievements = form.Achievements
	member.Image = form.Image
	member.Social = form.SocialMap()
	member.IsCore = form.IsCore

	if err := a.store.UpdateTeamMember(member); err != nil {
		a.serverError(c, "Error updating team member")
		return
	}

	addFlash(c, "Team member updated successfully!")
	c.Redirect(http.StatusFound, "/admin/team")
}

func (a *AdminModule) deleteTeamMember(c *gin.Context) {
	if err := a.store.DeleteTeamMember(paramID(c)); err != nil {
		if err == gorm.ErrRecordNotFound {
			a.notFound(c, "Team member not found")
			return
		}
		a.serverError(c, "Error deleting team member")
		return
	}
	addFlash(c, "Team member deleted successfully!")
	c.Redirect(http.StatusFound, "/admin/team")
}

// Gallery

func (a *AdminModule) manageGalleryPage(c *gin.Context) {
	items, err := a.store.GalleryItems()
	if err != nil {
		a.serverError(c, "Error loading gallery")
		return
	}
	c.HTML(http.StatusOK, "manage_gallery.html", gin.H{
		"items":      items,
		"categories": forms.GalleryCategories,
		"flashes":    popFlashes(c),
	})
}

func (a *AdminModule) createGalleryItem(c *gin.Context) {
	form := forms.BindGalleryForm(c, true)
	items, _ := a.store.GalleryItems()
	if !form.Validate() {
		c.HTML(http.StatusBadRequest, "manage_gallery.html", gin.H{
			"form":       form,
			"errors":     form.Errors,
			"items":      items,
			"categories": forms.GalleryCategories,
		})
		return
	}

	imagePath, err := a.saveUpload(c, form.Image, "")
	if err != nil {
		if isUploadValidationError(err) {
			form.Errors["image"] = err.Error()
			c.HTML(http.StatusBadRequest, "manage_gallery.html", gin.H{
				"form":       form,
				"errors":     form.Errors,
				"items":      items,
				"categories": forms.GalleryCategories,
			})
			return
		}
		a.serverError(c, "Error saving gallery image")
		return
	}

	item := models.GalleryItem{
		Title:       form.Title,
		Description: form.Description,
		ImagePath:   imagePath,
		Category:    form.Category,
	}
	if err := a.store.CreateGalleryItem(&item); err != nil {
		a.serverError(c, "Error creating gallery item")
		return
	}

	addFlash(c, "Gallery item added successfully!")
	c.Redirect(http.StatusFound, "/admin/gallery")
}

func (a *AdminModule) editGalleryItemPage(c *gin.Context) {
	item, err := a.store.GalleryItemByID(paramID(c))
	if err != nil {
		a.notFound(c, "Gallery item not found")
		return
	}
	form := &forms.GalleryForm{
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
	}
	c.HTML(http.StatusOK, "edit_gallery.html", gin.H{
		"form":       form,
		"item":       item,
		"categories": forms.GalleryCategories,
		"flashes":    popFlashes(c),
	})
}

func (a *AdminModule) updateGalleryItem(c *gin.Context) {
	item, err := a.store.GalleryItemByID(paramID(c))
	if err != nil {
		a.notFound(c, "Gallery item not found")
		return
	}

	form := forms.BindGalleryForm(c, false)
	if !form.Validate() {
		c.HTML(http.StatusBadRequest, "edit_gallery.html", gin.H{
			"form":       form,
			"item":       item,
			"errors":     form.Errors,
			"categories": forms.GalleryCategories,
		})
		return
	}

	if form.Image != nil {
		imagePath, err := a.saveUpload(c, form.Image, "")
		if err != nil {
			if isUploadValidationError(err) {
				form.Errors["image"] = err.Error()
				c.HTML(http.StatusBadRequest, "edit_gallery.html", gin.H{
					"form":       form,
					"item":       item,
					"errors":     form.Errors,
					"categories": forms.GalleryCategories,
				})
				return
			}
			a.serverError(c, "Error saving gallery image")
			return
		}
		item.ImagePath = imagePath
	}

	item.Title = form.Title
	item.Description = form.Description
	item.Category = form.Category

	if err := a.store.UpdateGalleryItem(item); err != nil {
		a.serverError(c, "Error updating gallery item")
		return
	}

	addFlash(c, "Gallery item updated successfully!")
	c.Redirect(http.StatusFound, "/admin/gallery")
}

func (a *AdminModule) deleteGalleryItem(c *gin.Context) {
	if err := a.store.DeleteGalleryItem(paramID(c)); err != nil {
		if err == gorm.ErrRecordNotFound {
			a.notFound(c, "Gallery item not found")
			return
		}
		a.serverError(c, "Error deleting gallery item")
		return
	}
	addFlash(c, "Gallery item deleted successfully!")
	c.Redirect(http.StatusFound, "/admin/gallery")
}

func paramID(c *gin.Context) int {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0
	}
	return id
}
