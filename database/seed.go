package database

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fotografica/common"
	"fotografica/content"
	"fotografica/loggers"
	"fotografica/models"
)

// Seed inserts the admin account and sample content, skipping every record
// type that already has rows. It never drops or rewrites existing data, so it
// can be re-run safely; it only runs when asked for explicitly (the -seed
// flag).
func Seed(db *gorm.DB, cfg *common.Config) error {
	loggers.Logger.Info("Seeding database...")

	if err := seedAdminUser(db, cfg); err != nil {
		return err
	}
	if err := seedSingletons(db); err != nil {
		return err
	}
	if err := seedSampleEvent(db); err != nil {
		return err
	}
	if err := seedSampleGallery(db); err != nil {
		return err
	}
	if err := seedTeam(db); err != nil {
		return err
	}

	loggers.Logger.Info("Seeding completed")
	return nil
}

func seedAdminUser(db *gorm.DB, cfg *common.Config) error {
	var user models.User
	err := db.Where("username = ?", cfg.AdminUsername).First(&user).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), 14)
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}).Error
}

func seedSingletons(db *gorm.DB) error {
	var about models.AboutContent
	if errors.Is(db.First(&about).Error, gorm.ErrRecordNotFound) {
		record := content.DefaultAbout()
		if err := db.Create(&record).Error; err != nil {
			return err
		}
	}

	var home models.HomeContent
	if errors.Is(db.First(&home).Error, gorm.ErrRecordNotFound) {
		record := content.DefaultHome()
		if err := db.Create(&record).Error; err != nil {
			return err
		}
	}

	var info models.ContactInfo
	if errors.Is(db.First(&info).Error, gorm.ErrRecordNotFound) {
		record := content.DefaultContact()
		if err := db.Create(&record).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedSampleEvent(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Event{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&models.Event{
		Title:       "Photography Workshop",
		Description: "Join us for an exciting photography workshop where you can learn new techniques and improve your skills.",
		Date:        date(2024, 12, 15),
		Location:    "Community Center",
		ImagePath:   "https://images.unsplash.com/photo-1554048612-b6a1b612b786?w=400&h=250&fit=crop",
	}).Error
}

func seedSampleGallery(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.GalleryItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&models.GalleryItem{
		Title:       "Sunset Portrait",
		Description: "A beautiful sunset portrait captured during our last event.",
		ImagePath:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop",
		Category:    "portrait",
	}).Error
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func seedTeam(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.TeamMember{}).Where("is_core = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		core := []models.TeamMember{
			{Name: "Alex Rodriguez", Role: "Club President", Specialty: "Portrait & Event Photography", Bio: "Leading the club with 5+ years of photography experience. Specializes in capturing emotions and storytelling through portraits.", Achievements: models.StringList{"Best Portrait 2024", "Event Photographer of the Year"}, Image: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=300&fit=crop&crop=face", Social: models.StringMap{"instagram": "https://instagram.com/alex", "email": "alex@fotografica.com"}, IsCore: true},
			{Name: "Maya Chen", Role: "Creative Director", Specialty: "Digital Art & Design", Bio: "Passionate about blending photography with digital art. Creates stunning visual compositions and manages our creative projects.", Achievements: models.StringList{"Digital Artist Award 2024", "Creative Innovation Prize"}, Image: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=300&h=300&fit=crop&crop=face", Social: models.StringMap{"instagram": "https://instagram.com/maya", "email": "maya@fotografica.com"}, IsCore: true},
			{Name: "James Wilson", Role: "Technical Lead", Specialty: "Equipment & Post-Processing", Bio: "Expert in camera equipment and advanced post-processing techniques. Conducts technical workshops and equipment training.", Achievements: models.StringList{"Technical Excellence Award", "Workshop Leader 2024"}, Image: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=300&h=300&fit=crop&crop=face", Social: models.StringMap{"instagram": "https://instagram.com/james", "email": "james@fotografica.com"}, IsCore: true},
			{Name: "Sofia Martinez", Role: "Events Coordinator", Specialty: "Event Management & Documentation", Bio: "Organizes all club events and ensures seamless execution. Expert in event photography and community building.", Achievements: models.StringList{"Event Excellence Award", "Community Builder 2024"}, Image: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=300&h=300&fit=crop&crop=face", Social: models.StringMap{"instagram": "https://instagram.com/sofia", "email": "sofia@fotografica.com"}, IsCore: true},
		}
		if err := db.Create(&core).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&models.TeamMember{}).Where("is_core = ?", false).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		active := []models.TeamMember{
			{Name: "David Kim", Role: "Senior Member", Specialty: "Landscape Photography", Bio: "Passionate landscape photographer capturing nature's beauty.", Achievements: models.StringList{}, Image: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=200&h=200&fit=crop&crop=face", Social: models.StringMap{"instagram": "https://instagram.com/david", "email": "david@fotografica.com"}},
			{Name: "Emma Thompson", Role: "Senior Member", Specialty: "Fashion Photography", Bio: "Specializes in fashion and portrait photography.", Achievements: models.StringList{}, Image: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=200&h=200&fit=crop&crop=face", Social: models.StringMap{"instagram": "https://instagram.com/emma", "email": "emma@fotografica.com"}},
			{Name: "Ryan Patel", Role: "Active Member", Specialty: "Street Photography", Bio: "Capturing urban life and candid moments.", Achievements: models.StringList{}, Image: "https://images.unsplash.com/photo-1507591064344-4c6ce005b128?w=200&h=200&fit=crop&crop=face", Social: models.StringMap{"instagram": "https://instagram.com/ryan", "email": "ryan@fotografica.com"}},
			{Name: "Lisa Zhang", Role: "Active Member", Specialty: "Macro Photography", Bio: "Exploring the tiny details in nature and everyday objects.", Achievements: models.StringList{}, Image: "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=200&h=200&fit=crop&crop=face", Social: models.StringMap{"instagram": "https://instagram.com/lisa", "email": "lisa@fotografica.com"}},
			{Name: "Michael Brown", Role: "Active Member", Specialty: "Documentary Photography", Bio: "Telling stories through visual narratives.", Achievements: models.StringList{}, Image: "https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=200&h=200&fit=crop&crop=face", Social: models.StringMap{"instagram": "https://instagram.com/michael", "email": "michael@fotografica.com"}},
			{Name: "Aria Johnson", Role: "Active Member", Specialty: "Abstract Art", Bio: "Creating artistic interpretations through photography.", Achievements: models.StringList{}, Image: "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=200&h=200&fit=crop&crop=face", Social: models.StringMap{"instagram": "https://instagram.com/aria", "email": "aria@fotografica.com"}},
		}
		if err := db.Create(&active).Error; err != nil {
			return err
		}
	}

	return nil
}
