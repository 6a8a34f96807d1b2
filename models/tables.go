package models

import "time"

type User struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"size:20;unique;not null" json:"username"`
	Email        string `gorm:"size:120;unique;not null" json:"email"`
	PasswordHash string `gorm:"size:256;not null" json:"-"` // json:"-" prevents password from being exposed in API
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`
}

// AboutContent is a singleton: the first row is authoritative.
type AboutContent struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Event struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"` // required for chronological display
	Location    string    `gorm:"size:100" json:"location"`
	ImagePath   string    `gorm:"size:200" json:"image_path"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type GalleryItem struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImagePath   string    `gorm:"size:200;not null" json:"image_path"`
	Category    string    `gorm:"size:50;default:all" json:"category"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

// HomeContent is a singleton.
type HomeContent struct {
	ID           int         `gorm:"primaryKey" json:"id"`
	HeroSubtitle string      `gorm:"type:text;not null" json:"hero_subtitle"`
	Features     FeatureList `gorm:"type:text;not null" json:"features"`
	CTAText      string      `gorm:"type:text;not null;column:cta_text" json:"cta_text"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type TeamMember struct {
	ID           int        `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Role         string     `gorm:"size:50;not null" json:"role"`
	Specialty    string     `gorm:"size:100;not null" json:"specialty"`
	Bio          string     `gorm:"type:text;not null" json:"bio"`
	Achievements StringList `gorm:"type:text;not null" json:"achievements"`
	Image        string     `gorm:"size:200;not null" json:"image"`
	Social       StringMap  `gorm:"type:text;not null" json:"social"`
	IsCore       bool       `gorm:"default:false;index" json:"is_core"` // core team vs active member partition
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ContactInfo is a singleton.
type ContactInfo struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"size:120;not null" json:"email"`
	Phone       string    `gorm:"size:50;not null" json:"phone"`
	PhoneHours  string    `gorm:"size:100;not null" json:"phone_hours"`
	Address     StringMap `gorm:"type:text;not null" json:"address"`
	OfficeHours StringMap `gorm:"type:text;not null" json:"office_hours"`
	SocialLinks StringMap `gorm:"type:text;not null" json:"social_links"`
	FAQ         FAQList   `gorm:"type:text;not null" json:"faq"`
	UpdatedAt   time.Time `json:"updated_at"`
}
