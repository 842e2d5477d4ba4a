package sms

import "context"

// Sender delivers transactional SMS. The only messages this system sends are
// login codes, so the surface stays small.
type Sender interface {
	SendSMS(ctx context.Context, to, message string) (*Response, error)
}

type Response struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}
