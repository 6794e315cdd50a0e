package models

// ErrorResponse represents an error response body
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request"`
	Details string `json:"details,omitempty" example:"database unreachable"`
}

// MessageResponse represents a success message response
type MessageResponse struct {
	Message string `json:"message" example:"Operation completed successfully"`
}

// SendResult is the per-entry outcome of one dispatcher pass.
type SendResult struct {
	ID     string `json:"id" example:"8f14e45f-ceea-41d4-a716-446655440000"`
	Status string `json:"status" example:"sent" enums:"sent,failed"`
	Error  string `json:"error,omitempty" example:"SES: connection refused"`
}

// DrainResponse is returned by the send-email trigger.
type DrainResponse struct {
	Success   bool         `json:"success" example:"true"`
	Processed int          `json:"processed" example:"3"`
	Results   []SendResult `json:"results"`
}

// QueueEmailRequest represents the request body for queueing an email
type QueueEmailRequest struct {
	ToEmail     string   `json:"to_email" example:"a@example.com, b@example.com"`
	FromEmail   string   `json:"from_email" example:"me@mydomain.com"`
	Subject     string   `json:"subject" example:"Project Kickoff"`
	Body        string   `json:"body" example:"<p>Hello</p>"`
	ReplyToID   *string  `json:"reply_to_id,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

// TrackReplyResponse is returned by the reply tracking boundary.
type TrackReplyResponse struct {
	Success     bool   `json:"success" example:"true"`
	Message     string `json:"message" example:"Reply tracked successfully"`
	ReplyID     string `json:"reply_id,omitempty"`
	SentEmailID string `json:"sent_email_id,omitempty"`
	Sender      string `json:"sender,omitempty" example:"jane@acme.com"`
}
