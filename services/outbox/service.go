package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"loireply/mailer"
	"loireply/models"

	"gorm.io/gorm"
)

var (
	ErrNoRecipients = errors.New("at least one recipient is required")
	ErrNoSender     = errors.New("from address is required")
	ErrNotFound     = errors.New("outbox entry not found")
	ErrNotFailed    = errors.New("only failed entries can be requeued")
)

type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{db: db} }

type QueueRequest struct {
	UserID      string
	ToEmail     string
	FromEmail   string
	Subject     string
	Body        string
	ReplyToID   *string
	Attachments []string
}

// Queue creates a pending outbox row. Attachments are stored as opaque
// object-storage URLs; this pipeline never fetches them.
func (s *Service) Queue(ctx context.Context, req QueueRequest) (*models.EmailOutbox, error) {
	if len(mailer.ParseRecipients(req.ToEmail)) == 0 {
		return nil, ErrNoRecipients
	}
	if req.FromEmail == "" {
		return nil, ErrNoSender
	}

	attachments, err := json.Marshal(req.Attachments)
	if err != nil {
		return nil, fmt.Errorf("encode attachments: %w", err)
	}

	entry := models.EmailOutbox{
		UserID:      req.UserID,
		ToEmail:     req.ToEmail,
		FromEmail:   req.FromEmail,
		Subject:     req.Subject,
		Body:        req.Body,
		ReplyToID:   req.ReplyToID,
		Attachments: string(attachments),
		Status:      models.StatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.EmailOutbox, error) {
	var entry models.EmailOutbox
	if err := s.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (s *Service) ListOutbox(ctx context.Context, userID string, limit, offset int) ([]models.EmailOutbox, error) {
	var list []models.EmailOutbox
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) ListSent(ctx context.Context, userID string, limit, offset int) ([]models.SentEmail, error) {
	var list []models.SentEmail
	q := s.db.WithContext(ctx).Order("sent_at DESC")
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Requeue resets a failed entry to pending so the dispatcher picks it up
// again. Failed entries are never retried automatically; this is the
// operator path.
func (s *Service) Requeue(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Model(&models.EmailOutbox{}).
		Where("id = ? AND status = ?", id, models.StatusFailed).
		Updates(map[string]any{
			"status":        models.StatusPending,
			"error_message": "",
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := s.Get(ctx, id); err != nil {
			return err
		}
		return ErrNotFailed
	}
	return nil
}
