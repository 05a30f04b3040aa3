package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin     UserRole = "admin"     // Quản trị hệ thống
	RolePodcaster UserRole = "podcaster" // Người tạo podcast
	RoleUser      UserRole = "user"      // Người nghe
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName    string    `gorm:"size:150;not null" json:"full_name"`
	Email       string    `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	Role        UserRole  `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	DateOfBirth time.Time `gorm:"not null" json:"date_of_birth"` // Dùng để tính tuổi thính giả
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Quan hệ
	Podcasts []Podcast       `gorm:"foreignKey:PodcasterID" json:"podcasts,omitempty"`
	Ratings  []PodcastRating `gorm:"foreignKey:UserID" json:"ratings,omitempty"`
}
