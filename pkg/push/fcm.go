package push

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type FCMProvider struct {
	client *messaging.Client
}

func NewFCMProvider(credentialsFile string) (*FCMProvider, error) {
	ctx := context.Background()

	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &FCMProvider{client: client}, nil
}

func (f *FCMProvider) Send(ctx context.Context, message *Message) (*Result, error) {
	response, err := f.client.Send(ctx, f.buildMessage(message))
	if err != nil {
		return &Result{
			Success: false,
			Error:   err.Error(),
			Token:   message.Token,
		}, err
	}

	return &Result{
		MessageID: response,
		Success:   true,
		Token:     message.Token,
	}, nil
}

func (f *FCMProvider) SendBatch(ctx context.Context, messages []*Message) ([]*Result, error) {
	fcmMessages := make([]*messaging.Message, len(messages))
	for i, msg := range messages {
		fcmMessages[i] = f.buildMessage(msg)
	}

	batchResponse, err := f.client.SendEach(ctx, fcmMessages)
	if err != nil {
		return nil, fmt.Errorf("failed to send batch notifications: %w", err)
	}

	results := make([]*Result, len(messages))
	for i, response := range batchResponse.Responses {
		if response.Success {
			results[i] = &Result{
				MessageID: response.MessageID,
				Success:   true,
				Token:     messages[i].Token,
			}
		} else {
			results[i] = &Result{
				Success: false,
				Error:   response.Error.Error(),
				Token:   messages[i].Token,
			}
		}
	}

	return results, nil
}

func (f *FCMProvider) buildMessage(message *Message) *messaging.Message {
	fcm := &messaging.Message{
		Token: message.Token,
		Data:  message.Data,
	}

	if message.Title != "" || message.Body != "" {
		fcm.Notification = &messaging.Notification{
			Title: message.Title,
			Body:  message.Body,
		}
	}

	if message.Priority != "" {
		fcm.Android = &messaging.AndroidConfig{Priority: message.Priority}
	}

	return fcm
}
