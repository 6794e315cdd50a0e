package replies

import (
	"context"
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"loireply/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoMatch means no sent email could be correlated with the inbound
// message. A normal outcome for unsolicited mail, not a failure.
var ErrNoMatch = errors.New("no sent email matched")

// InboundEmail is a freshly received message handed over by the
// mail-receiving side.
type InboundEmail struct {
	ID         string    `json:"id"`
	From       string    `json:"from"`
	Subject    string    `json:"subject"`
	To         []string  `json:"to"`
	ReceivedAt time.Time `json:"received_at"`
}

// Correlation is the recorded (or re-found) reply edge.
type Correlation struct {
	ReplyID         string
	SentEmailID     string
	Sender          string
	AlreadyRecorded bool
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// ExtractAddress pulls the bare address out of a From header value like
// "Jane Doe <jane@acme.com>", lower-cased and trimmed.
func ExtractAddress(from string) string {
	if addr, err := mail.ParseAddress(from); err == nil {
		return strings.ToLower(strings.TrimSpace(addr.Address))
	}
	if i := strings.LastIndex(from, "<"); i >= 0 {
		if j := strings.Index(from[i:], ">"); j > 0 {
			return strings.ToLower(strings.TrimSpace(from[i+1 : i+j]))
		}
	}
	return strings.ToLower(strings.TrimSpace(from))
}

var replyMarkers = regexp.MustCompile(`^(?i:(re|fw|fwd):\s*)+`)

// NormalizeSubject strips leading reply/forward markers, repeated ones
// included, and lower-cases the remainder.
func NormalizeSubject(subject string) string {
	return strings.ToLower(strings.TrimSpace(replyMarkers.ReplaceAllString(subject, "")))
}

func subjectsEquivalent(inbound, original string) bool {
	if inbound == "" || original == "" {
		return false
	}
	return NormalizeSubject(inbound) == NormalizeSubject(original)
}

// Correlate matches an inbound email to a previously sent one and records
// the reply edge at most once. Recipient matching is deliberately loose: a
// case-insensitive substring match against the stored comma-joined
// recipient list, same as the data the dashboard already depends on.
func (s *Service) Correlate(ctx context.Context, inbound InboundEmail) (*Correlation, error) {
	sender := ExtractAddress(inbound.From)

	var sentEmails []models.SentEmail
	pattern := "%" + sender + "%"
	err := s.db.WithContext(ctx).
		Where("LOWER(to_email) LIKE ?", pattern).
		Find(&sentEmails).Error
	if err != nil {
		return nil, err
	}
	if len(sentEmails) == 0 {
		return nil, ErrNoMatch
	}

	// Prefer the latest entry whose subject matches after normalization.
	// Failing that, fall back to the most recently sent entry overall,
	// which may mis-attribute but is the best available guess.
	var matched *models.SentEmail
	for i := range sentEmails {
		se := &sentEmails[i]
		if subjectsEquivalent(inbound.Subject, se.Subject) {
			if matched == nil || se.SentAt.After(matched.SentAt) {
				matched = se
			}
		}
	}
	if matched == nil {
		for i := range sentEmails {
			se := &sentEmails[i]
			if matched == nil || se.SentAt.After(matched.SentAt) {
				matched = se
			}
		}
	}

	var existing models.EmailReply
	err = s.db.WithContext(ctx).
		Where("sent_email_id = ? AND received_email_id = ?", matched.ID, inbound.ID).
		First(&existing).Error
	if err == nil {
		return &Correlation{
			ReplyID:         existing.ID,
			SentEmailID:     matched.ID,
			Sender:          sender,
			AlreadyRecorded: true,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	createdAt := inbound.ReceivedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	reply := models.EmailReply{
		UserID:          matched.UserID,
		SentEmailID:     matched.ID,
		ReceivedEmailID: inbound.ID,
		FromEmail:       sender,
		Subject:         inbound.Subject,
		CreatedAt:       createdAt,
	}
	if err := s.db.WithContext(ctx).Create(&reply).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the race to a concurrent invocation; return its edge
			if ferr := s.db.WithContext(ctx).
				Where("sent_email_id = ? AND received_email_id = ?", matched.ID, inbound.ID).
				First(&existing).Error; ferr == nil {
				return &Correlation{
					ReplyID:         existing.ID,
					SentEmailID:     matched.ID,
					Sender:          sender,
					AlreadyRecorded: true,
				}, nil
			}
		}
		return nil, err
	}

	s.log.Info("reply recorded",
		zap.String("reply_id", reply.ID),
		zap.String("sent_email_id", matched.ID),
		zap.String("sender", sender))
	return &Correlation{ReplyID: reply.ID, SentEmailID: matched.ID, Sender: sender}, nil
}
