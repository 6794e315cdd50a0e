package dispatcher

import (
	"context"
	"errors"
	"strings"
	"time"

	"loireply/mailer"
	"loireply/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultBatchSize caps how many pending entries one drain pass takes.
const DefaultBatchSize = 10

const errNoProvider = "No email provider configured"

// SESFactory builds a mailer from a user's SES settings row.
type SESFactory func(models.AmazonSESSettings) mailer.Mailer

// GmailFactory builds a mailer from a Gmail sender identity row.
type GmailFactory func(models.GoogleSMTPEmail) mailer.Mailer

type Service struct {
	db       *gorm.DB
	newSES   SESFactory
	newGmail GmailFactory
	log      *zap.Logger
}

func New(db *gorm.DB, newSES SESFactory, newGmail GmailFactory, log *zap.Logger) *Service {
	return &Service{db: db, newSES: newSES, newGmail: newGmail, log: log}
}

// DrainOutbox processes pending outbox entries oldest first, strictly
// sequentially. With emailID set it processes only that entry; otherwise
// up to DefaultBatchSize. A failure on one entry is recorded in its result
// and never aborts the rest of the batch.
func (s *Service) DrainOutbox(ctx context.Context, emailID string) ([]models.SendResult, error) {
	var entries []models.EmailOutbox
	q := s.db.WithContext(ctx).
		Where("status = ?", models.StatusPending).
		Order("created_at ASC")
	if emailID != "" {
		q = q.Where("id = ?", emailID).Limit(1)
	} else {
		q = q.Limit(DefaultBatchSize)
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}

	results := make([]models.SendResult, 0, len(entries))
	for _, entry := range entries {
		claimed, err := s.claim(ctx, entry.ID)
		if err != nil {
			s.markFailed(ctx, entry.ID, err.Error())
			results = append(results, models.SendResult{ID: entry.ID, Status: "failed", Error: err.Error()})
			continue
		}
		if !claimed {
			// another invocation took the row between select and claim
			s.log.Debug("outbox entry already claimed", zap.String("id", entry.ID))
			continue
		}
		results = append(results, s.dispatch(ctx, entry))
	}
	return results, nil
}

// claim flips pending to sending with a conditional update so that two
// overlapping invocations cannot both deliver the same row.
func (s *Service) claim(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.EmailOutbox{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]any{"status": models.StatusSending, "updated_at": time.Now()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Service) dispatch(ctx context.Context, entry models.EmailOutbox) models.SendResult {
	sent, errMsg := s.attempt(ctx, entry)
	if !sent {
		if errMsg == "" {
			errMsg = errNoProvider
		}
		s.markFailed(ctx, entry.ID, errMsg)
		s.log.Warn("email delivery failed",
			zap.String("id", entry.ID),
			zap.String("error", errMsg))
		return models.SendResult{ID: entry.ID, Status: "failed", Error: errMsg}
	}

	if err := s.promote(ctx, entry); err != nil {
		s.markFailed(ctx, entry.ID, err.Error())
		s.log.Error("delivered but failed to record sent email",
			zap.String("id", entry.ID), zap.Error(err))
		return models.SendResult{ID: entry.ID, Status: "failed", Error: err.Error()}
	}
	s.log.Info("email sent", zap.String("id", entry.ID), zap.String("from", entry.FromEmail))
	return models.SendResult{ID: entry.ID, Status: "sent"}
}

// attempt resolves the user's provider settings and tries SES first, then
// Gmail. Provider errors are concatenated for the failure message; errors
// from a losing attempt are not surfaced when a later attempt succeeds.
func (s *Service) attempt(ctx context.Context, entry models.EmailOutbox) (bool, string) {
	recipients := mailer.ParseRecipients(entry.ToEmail)
	if len(recipients) == 0 {
		return false, "no valid recipients"
	}
	msg := &mailer.Message{
		From:     entry.FromEmail,
		To:       recipients,
		Subject:  entry.Subject,
		HTMLBody: entry.Body,
		TextBody: mailer.PlainText(entry.Body),
	}

	var errs []string

	var ses models.AmazonSESSettings
	sesConfigured := s.db.WithContext(ctx).
		Where("user_id = ?", entry.UserID).
		First(&ses).Error == nil
	if sesConfigured {
		err := s.newSES(ses).Send(ctx, msg)
		if err == nil {
			return true, ""
		}
		errs = append(errs, "SES: "+err.Error())
	}

	var gmail models.GoogleSMTPEmail
	gmailConfigured := s.db.WithContext(ctx).
		Where("user_id = ? AND address = ?", entry.UserID, entry.FromEmail).
		First(&gmail).Error == nil
	if gmailConfigured {
		err := s.newGmail(gmail).Send(ctx, msg)
		if err == nil {
			return true, ""
		}
		errs = append(errs, "Gmail: "+err.Error())
	}

	return false, strings.Join(errs, ", ")
}

// promote copies the entry into the sent log and removes it from the
// outbox in one transaction. The sent row reuses the outbox id, so a
// replay after a partial failure lands on the existing row instead of
// duplicating it.
func (s *Service) promote(ctx context.Context, entry models.EmailOutbox) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sent := models.SentEmail{
			ID:          entry.ID,
			UserID:      entry.UserID,
			ToEmail:     entry.ToEmail,
			FromEmail:   entry.FromEmail,
			Subject:     entry.Subject,
			Body:        entry.Body,
			ReplyToID:   entry.ReplyToID,
			Attachments: entry.Attachments,
			SentAt:      time.Now(),
			CreatedAt:   entry.CreatedAt,
		}
		if err := tx.Create(&sent).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return tx.Delete(&models.EmailOutbox{}, "id = ?", entry.ID).Error
	})
}

func (s *Service) markFailed(ctx context.Context, id, message string) {
	err := s.db.WithContext(ctx).Model(&models.EmailOutbox{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        models.StatusFailed,
			"error_message": message,
			"updated_at":    time.Now(),
		}).Error
	if err != nil {
		s.log.Error("failed to mark outbox entry failed", zap.String("id", id), zap.Error(err))
	}
}
