package replies

import (
	"context"
	"fmt"
	"testing"
	"time"

	"loireply/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	db, err := gorm.Open(dsn, &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SentEmail{}, &models.EmailReply{}))
	return db
}

func seedSent(t *testing.T, db *gorm.DB, toEmail, subject string, sentAt time.Time) models.SentEmail {
	t.Helper()
	sent := models.SentEmail{
		UserID:    "user-1",
		ToEmail:   toEmail,
		FromEmail: "me@mydomain.com",
		Subject:   subject,
		Body:      "<p>original</p>",
		SentAt:    sentAt,
	}
	require.NoError(t, db.Create(&sent).Error)
	return sent
}

func TestExtractAddress(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Jane Doe <jane@acme.com>", "jane@acme.com"},
		{"<jane@acme.com>", "jane@acme.com"},
		{"  JANE@ACME.COM ", "jane@acme.com"},
		{"jane@acme.com", "jane@acme.com"},
		{`"Doe, Jane" <Jane@Acme.Com>`, "jane@acme.com"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractAddress(tc.input), "input %q", tc.input)
	}
}

func TestNormalizeSubject(t *testing.T) {
	assert.Equal(t, NormalizeSubject("Budget Review"), NormalizeSubject("Re: Re: Budget Review"))
	assert.Equal(t, NormalizeSubject("Budget Review"), NormalizeSubject("Fwd: Budget Review"))
	assert.Equal(t, NormalizeSubject("Budget Review"), NormalizeSubject("RE: FW: Budget Review"))
	assert.NotEqual(t, NormalizeSubject("Budget Review"), NormalizeSubject("Budget Review 2"))
}

func TestCorrelate_ExactSubjectBeatsMostRecent(t *testing.T) {
	db := newTestDB(t)
	svc := New(db, zap.NewNop())
	base := time.Now().Add(-3 * time.Hour)

	kickoff := seedSent(t, db, "jane@acme.com", "Project Kickoff", base)
	seedSent(t, db, "jane@acme.com", "Invoice", base.Add(time.Hour))
	seedSent(t, db, "jane@acme.com", "Lunch", base.Add(2*time.Hour))

	cor, err := svc.Correlate(context.Background(), InboundEmail{
		ID:      "recv-1",
		From:    "Jane Doe <jane@acme.com>",
		Subject: "RE: Project Kickoff",
	})
	require.NoError(t, err)
	assert.Equal(t, kickoff.ID, cor.SentEmailID)
	assert.Equal(t, "jane@acme.com", cor.Sender)
	assert.False(t, cor.AlreadyRecorded)
}

func TestCorrelate_FallbackMostRecent(t *testing.T) {
	db := newTestDB(t)
	svc := New(db, zap.NewNop())
	base := time.Now().Add(-2 * time.Hour)

	seedSent(t, db, "jane@acme.com", "Invoice", base)
	latest := seedSent(t, db, "jane@acme.com", "Lunch", base.Add(time.Hour))

	cor, err := svc.Correlate(context.Background(), InboundEmail{
		ID:      "recv-2",
		From:    "jane@acme.com",
		Subject: "Totally unrelated",
	})
	require.NoError(t, err)
	assert.Equal(t, latest.ID, cor.SentEmailID)
}

func TestCorrelate_NoMatch(t *testing.T) {
	db := newTestDB(t)
	svc := New(db, zap.NewNop())

	seedSent(t, db, "bob@other.com", "Hello", time.Now())

	_, err := svc.Correlate(context.Background(), InboundEmail{
		ID:      "recv-3",
		From:    "stranger@nowhere.com",
		Subject: "Re: Hello",
	})
	assert.ErrorIs(t, err, ErrNoMatch)

	var count int64
	db.Model(&models.EmailReply{}).Count(&count)
	assert.Zero(t, count)
}

func TestCorrelate_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := New(db, zap.NewNop())

	seedSent(t, db, "jane@acme.com", "Project Kickoff", time.Now())
	inbound := InboundEmail{
		ID:         "recv-4",
		From:       "jane@acme.com",
		Subject:    "Re: Project Kickoff",
		ReceivedAt: time.Now(),
	}

	first, err := svc.Correlate(context.Background(), inbound)
	require.NoError(t, err)
	require.NotEmpty(t, first.ReplyID)

	second, err := svc.Correlate(context.Background(), inbound)
	require.NoError(t, err)
	assert.True(t, second.AlreadyRecorded)
	assert.Equal(t, first.ReplyID, second.ReplyID)

	var count int64
	db.Model(&models.EmailReply{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCorrelate_CaseInsensitiveRecipientMatch(t *testing.T) {
	db := newTestDB(t)
	svc := New(db, zap.NewNop())

	sent := seedSent(t, db, "Jane@Acme.com, bob@x.com", "Project Kickoff", time.Now())

	cor, err := svc.Correlate(context.Background(), InboundEmail{
		ID:      "recv-5",
		From:    "JANE@ACME.COM",
		Subject: "Re: Project Kickoff",
	})
	require.NoError(t, err)
	assert.Equal(t, sent.ID, cor.SentEmailID)
}
