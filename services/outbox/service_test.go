package outbox

import (
	"context"
	"fmt"
	"testing"

	"loireply/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	db, err := gorm.Open(dsn, &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.EmailOutbox{}, &models.SentEmail{}))
	return db
}

func TestQueue_OK(t *testing.T) {
	db := newTestDB(t)
	svc := New(db)

	entry, err := svc.Queue(context.Background(), QueueRequest{
		UserID:      "user-1",
		ToEmail:     "a@x.com, b@x.com",
		FromEmail:   "me@mydomain.com",
		Subject:     "Hello",
		Body:        "<p>Hi</p>",
		Attachments: []string{"https://storage.example.com/f.pdf"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, models.StatusPending, entry.Status)
	assert.JSONEq(t, `["https://storage.example.com/f.pdf"]`, entry.Attachments)

	var row models.EmailOutbox
	require.NoError(t, db.First(&row, "id = ?", entry.ID).Error)
	assert.Equal(t, "a@x.com, b@x.com", row.ToEmail)
}

func TestQueue_NoRecipients(t *testing.T) {
	db := newTestDB(t)
	svc := New(db)

	_, err := svc.Queue(context.Background(), QueueRequest{
		UserID:    "user-1",
		ToEmail:   " , ,",
		FromEmail: "me@mydomain.com",
	})
	assert.ErrorIs(t, err, ErrNoRecipients)

	var count int64
	db.Model(&models.EmailOutbox{}).Count(&count)
	assert.Zero(t, count)
}

func TestRequeue_ResetsFailed(t *testing.T) {
	db := newTestDB(t)
	svc := New(db)

	entry := models.EmailOutbox{
		UserID:       "user-1",
		ToEmail:      "a@x.com",
		FromEmail:    "me@mydomain.com",
		Status:       models.StatusFailed,
		ErrorMessage: "SES: boom",
	}
	require.NoError(t, db.Create(&entry).Error)

	require.NoError(t, svc.Requeue(context.Background(), entry.ID))

	var row models.EmailOutbox
	require.NoError(t, db.First(&row, "id = ?", entry.ID).Error)
	assert.Equal(t, models.StatusPending, row.Status)
	assert.Empty(t, row.ErrorMessage)
}

func TestRequeue_NotFailed(t *testing.T) {
	db := newTestDB(t)
	svc := New(db)

	entry := models.EmailOutbox{
		UserID:    "user-1",
		ToEmail:   "a@x.com",
		FromEmail: "me@mydomain.com",
		Status:    models.StatusPending,
	}
	require.NoError(t, db.Create(&entry).Error)

	assert.ErrorIs(t, svc.Requeue(context.Background(), entry.ID), ErrNotFailed)
}

func TestRequeue_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := New(db)

	assert.ErrorIs(t, svc.Requeue(context.Background(), "missing-id"), ErrNotFound)
}
