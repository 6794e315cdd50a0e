package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"loireply/models"
	"loireply/services/replies"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newReplyRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	db, err := gorm.Open(dsn, &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SentEmail{}, &models.EmailReply{}))

	rc := NewReplyController(replies.New(db, zap.NewNop()), zap.NewNop())
	router := gin.New()
	router.POST("/internal/track-reply", rc.TrackReply)
	router.POST("/internal/inbound", rc.ProcessInbound)
	return router, db
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestTrackReply_NoMatchReturns404(t *testing.T) {
	router, db := newReplyRouter(t)

	w := postJSON(router, "/internal/track-reply",
		`{"id":"recv-1","from":"stranger@nowhere.com","subject":"Hi","to":[]}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])

	var count int64
	db.Model(&models.EmailReply{}).Count(&count)
	assert.Zero(t, count)
}

func TestTrackReply_RecordsThenReportsAlreadyRecorded(t *testing.T) {
	router, db := newReplyRouter(t)
	require.NoError(t, db.Create(&models.SentEmail{
		UserID:    "user-1",
		ToEmail:   "jane@acme.com",
		FromEmail: "me@mydomain.com",
		Subject:   "Project Kickoff",
		SentAt:    time.Now(),
	}).Error)

	payload := `{"id":"recv-2","from":"Jane Doe <jane@acme.com>","subject":"RE: Project Kickoff","to":[]}`

	first := postJSON(router, "/internal/track-reply", payload)
	require.Equal(t, http.StatusOK, first.Code)
	var firstBody map[string]any
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstBody))
	assert.Equal(t, true, firstBody["success"])
	assert.Equal(t, "Reply tracked successfully", firstBody["message"])
	require.NotEmpty(t, firstBody["reply_id"])

	second := postJSON(router, "/internal/track-reply", payload)
	require.Equal(t, http.StatusOK, second.Code)
	var secondBody map[string]any
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondBody))
	assert.Equal(t, "Reply already recorded", secondBody["message"])
	assert.Equal(t, firstBody["reply_id"], secondBody["reply_id"])

	var count int64
	db.Model(&models.EmailReply{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestProcessInbound_TracksReplyInBackground(t *testing.T) {
	router, db := newReplyRouter(t)
	require.NoError(t, db.Create(&models.SentEmail{
		UserID:    "user-1",
		ToEmail:   "jane@acme.com",
		FromEmail: "me@mydomain.com",
		Subject:   "Project Kickoff",
		SentAt:    time.Now(),
	}).Error)

	w := postJSON(router, "/internal/inbound",
		`{"id":"recv-3","from":"Jane Doe <jane@acme.com>","subject":"RE: Project Kickoff","to":[]}`)
	assert.Equal(t, http.StatusAccepted, w.Code)

	require.Eventually(t, func() bool {
		var count int64
		db.Model(&models.EmailReply{}).
			Where("received_email_id = ?", "recv-3").
			Count(&count)
		return count == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestProcessInbound_NoMatchStillAccepted(t *testing.T) {
	router, db := newReplyRouter(t)

	w := postJSON(router, "/internal/inbound",
		`{"id":"recv-4","from":"stranger@nowhere.com","subject":"Hi","to":[]}`)
	assert.Equal(t, http.StatusAccepted, w.Code)

	var count int64
	db.Model(&models.EmailReply{}).Count(&count)
	assert.Zero(t, count)
}

func TestProcessInbound_CorrelationErrorStillAccepted(t *testing.T) {
	// no tables migrated, so correlation fails outright; the caller must
	// still get its acknowledgement
	gin.SetMode(gin.TestMode)
	dsn := sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	db, err := gorm.Open(dsn, &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	rc := NewReplyController(replies.New(db, zap.NewNop()), zap.NewNop())
	router := gin.New()
	router.POST("/internal/inbound", rc.ProcessInbound)

	w := postJSON(router, "/internal/inbound",
		`{"id":"recv-5","from":"jane@acme.com","subject":"Re: Anything","to":[]}`)
	assert.Equal(t, http.StatusAccepted, w.Code)
}
