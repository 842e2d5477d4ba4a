package push

import "context"

// Provider delivers ride event notifications to registered device tokens.
type Provider interface {
	Send(ctx context.Context, message *Message) (*Result, error)
	SendBatch(ctx context.Context, messages []*Message) ([]*Result, error)
}

// Message is a single device push. Data carries the machine-readable event
// fields (request id, status, coordinates) alongside the visible title/body.
type Message struct {
	Token    string            `json:"token"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data,omitempty"`
	Sound    string            `json:"sound,omitempty"`
	Badge    int               `json:"badge,omitempty"`
	Priority string            `json:"priority,omitempty"`
}

type Result struct {
	MessageID string `json:"message_id"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	Token     string `json:"token,omitempty"`
}
