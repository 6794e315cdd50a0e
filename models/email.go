package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmailStatus string

const (
	StatusPending EmailStatus = "pending"
	StatusSending EmailStatus = "sending"
	StatusSent    EmailStatus = "sent"
	StatusFailed  EmailStatus = "failed"
)

// EmailOutbox is a pending outbound email. Rows are created by anything
// that wants to send mail, mutated only by the dispatcher, and removed
// once delivered. Failed rows stay for inspection until requeued.
type EmailOutbox struct {
	ID           string      `gorm:"type:char(36);primaryKey" json:"id"`
	UserID       string      `gorm:"type:char(36);not null;index" json:"user_id"`
	ToEmail      string      `gorm:"not null" json:"to_email"` // comma-joined recipient list
	FromEmail    string      `gorm:"not null" json:"from_email"`
	Subject      string      `json:"subject"`
	Body         string      `gorm:"type:text" json:"body"` // HTML
	ReplyToID    *string     `gorm:"type:char(36)" json:"reply_to_id,omitempty"`
	Attachments  string      `gorm:"type:text" json:"attachments"` // JSON array of object-storage URLs
	Status       EmailStatus `gorm:"type:varchar(16);index;default:pending" json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (EmailOutbox) TableName() string { return "email_outbox" }

func (e *EmailOutbox) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// SentEmail is the append-only delivery log. Its ID reuses the outbox row
// id so that promoting the same row twice cannot produce two sent rows.
type SentEmail struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID      string    `gorm:"type:char(36);not null;index" json:"user_id"`
	ToEmail     string    `gorm:"not null" json:"to_email"`
	FromEmail   string    `gorm:"not null" json:"from_email"`
	Subject     string    `json:"subject"`
	Body        string    `gorm:"type:text" json:"body"`
	ReplyToID   *string   `gorm:"type:char(36)" json:"reply_to_id,omitempty"`
	Attachments string    `gorm:"type:text" json:"attachments"`
	SentAt      time.Time `gorm:"index" json:"sent_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func (SentEmail) TableName() string { return "email_sent" }

func (e *SentEmail) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// EmailReply links a sent email to the inbound email that replied to it.
// The unique index makes the at-most-one-edge-per-pair rule a storage
// guarantee instead of a check-then-insert hope.
type EmailReply struct {
	ID              string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID          string    `gorm:"type:char(36);not null;index" json:"user_id"`
	SentEmailID     string    `gorm:"type:char(36);not null;uniqueIndex:idx_reply_pair" json:"sent_email_id"`
	ReceivedEmailID string    `gorm:"type:char(36);not null;uniqueIndex:idx_reply_pair" json:"received_email_id"`
	FromEmail       string    `json:"from_email"`
	Subject         string    `json:"subject"`
	CreatedAt       time.Time `json:"created_at"`
}

func (EmailReply) TableName() string { return "email_replies" }

func (r *EmailReply) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
