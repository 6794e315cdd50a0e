package models

import "time"

// AmazonSESSettings holds a user's SES SMTP credentials. One row per user;
// the SMTP endpoint host comes from process configuration.
type AmazonSESSettings struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"type:char(36);not null;uniqueIndex" json:"user_id"`
	SMTPUsername string    `gorm:"not null" json:"smtp_username"`
	SMTPPassword string    `gorm:"not null" json:"-"`
	SMTPPort     int       `gorm:"default:587" json:"smtp_port"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (AmazonSESSettings) TableName() string { return "amazon_ses_settings" }

// GoogleSMTPEmail holds a Gmail sender identity with its app password.
// Keyed by user and exact from address; a user may register several.
type GoogleSMTPEmail struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"type:char(36);not null;index:idx_google_user_address" json:"user_id"`
	Address     string    `gorm:"not null;index:idx_google_user_address" json:"address"`
	AppPassword string    `gorm:"not null" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (GoogleSMTPEmail) TableName() string { return "google_smtp_emails" }
