package content

import (
	"errors"

	"gorm.io/gorm"

	"fotografica/models"
)

// Store is the content-access layer: typed reads and writes per record type,
// a thin wrapper over gorm. Singleton getters fall back to the package
// defaults when no row exists; the corresponding Save methods insert the row
// if absent and mutate it in place otherwise.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// About

func (s *Store) About() models.AboutContent {
	var about models.AboutContent
	if err := s.db.First(&about).Error; err != nil {
		return DefaultAbout()
	}
	return about
}

func (s *Store) SaveAbout(title, body string) error {
	var about models.AboutContent
	err := s.db.First(&about).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	about.Title = title
	about.Content = body
	return s.db.Save(&about).Error
}

// Home

func (s *Store) Home() models.HomeContent {
	var home models.HomeContent
	if err := s.db.First(&home).Error; err != nil {
		return DefaultHome()
	}
	return home
}

func (s *Store) SaveHome(heroSubtitle string, features models.FeatureList, ctaText string) error {
	var home models.HomeContent
	err := s.db.First(&home).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	home.HeroSubtitle = heroSubtitle
	home.Features = features
	home.CTAText = ctaText
	return s.db.Save(&home).Error
}

// Contact

func (s *Store) Contact() models.ContactInfo {
	var info models.ContactInfo
	if err := s.db.First(&info).Error; err != nil {
		return DefaultContact()
	}
	return info
}

func (s *Store) SaveContact(updated models.ContactInfo) error {
	var info models.ContactInfo
	err := s.db.First(&info).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	info.Email = updated.Email
	info.Phone = updated.Phone
	info.PhoneHours = updated.PhoneHours
	info.Address = updated.Address
	info.OfficeHours = updated.OfficeHours
	info.SocialLinks = updated.SocialLinks
	info.FAQ = updated.FAQ
	return s.db.Save(&info).Error
}

// Events

func (s *Store) Events() ([]models.Event, error) {
	var events []models.Event
	err := s.db.Order("date ASC").Find(&events).Error
	return events, err
}

func (s *Store) EventByID(id int) (*models.Event, error) {
	var event models.Event
	err := s.db.First(&event, id).Error
	return &event, err
}

func (s *Store) CreateEvent(event *models.Event) error {
	return s.db.Create(event).Error
}

func (s *Store) UpdateEvent(event *models.Event) error {
	return s.db.Save(event).Error
}

func (s *Store) DeleteEvent(id int) error {
	return deleteByID(s.db, &models.Event{}, id)
}

// Gallery

func (s *Store) GalleryItems() ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	err := s.db.Order("uploaded_at DESC").Find(&items).Error
	return items, err
}

func (s *Store) GalleryItemByID(id int) (*models.GalleryItem, error) {
	var item models.GalleryItem
	err := s.db.First(&item, id).Error
	return &item, err
}

func (s *Store) CreateGalleryItem(item *models.GalleryItem) error {
	return s.db.Create(item).Error
}

func (s *Store) UpdateGalleryItem(item *models.GalleryItem) error {
	return s.db.Save(item).Error
}

func (s *Store) DeleteGalleryItem(id int) error {
	return deleteByID(s.db, &models.GalleryItem{}, id)
}

// Team

func (s *Store) CoreTeam() ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := s.db.Where("is_core = ?", true).Find(&members).Error
	return members, err
}

func (s *Store) ActiveMembers() ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := s.db.Where("is_core = ?", false).Find(&members).Error
	return members, err
}

func (s *Store) TeamMemberByID(id int) (*models.TeamMember, error) {
	var member models.TeamMember
	err := s.db.First(&member, id).Error
	return &member, err
}

func (s *Store) CreateTeamMember(member *models.TeamMember) error {
	return s.db.Create(member).Error
}

func (s *Store) UpdateTeamMember(member *models.TeamMember) error {
	return s.db.Save(member).Error
}

func (s *Store) DeleteTeamMember(id int) error {
	return deleteByID(s.db, &models.TeamMember{}, id)
}

// Users

func (s *Store) UserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (s *Store) UpdateUser(user *models.User) error {
	return s.db.Save(user).Error
}

func deleteByID(db *gorm.DB, model interface{}, id int) error {
	result := db.Delete(model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
