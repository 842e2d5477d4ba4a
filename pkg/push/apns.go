package push

import (
	"context"
	"fmt"

	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/token"
)

type APNSProvider struct {
	client *apns2.Client
	topic  string
}

func NewAPNSProvider(keyFile, keyID, teamID, topic string, production bool) (*APNSProvider, error) {
	authKey, err := token.AuthKeyFromFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load auth key: %w", err)
	}

	tokenProvider := &token.Token{
		AuthKey: authKey,
		KeyID:   keyID,
		TeamID:  teamID,
	}

	client := apns2.NewTokenClient(tokenProvider)
	if production {
		client = client.Production()
	} else {
		client = client.Development()
	}

	return &APNSProvider{client: client, topic: topic}, nil
}

func (a *APNSProvider) Send(ctx context.Context, message *Message) (*Result, error) {
	response, err := a.client.PushWithContext(ctx, a.buildNotification(message))
	if err != nil {
		return &Result{
			Success: false,
			Error:   err.Error(),
			Token:   message.Token,
		}, err
	}

	if response.Sent() {
		return &Result{
			MessageID: response.ApnsID,
			Success:   true,
			Token:     message.Token,
		}, nil
	}

	return &Result{
		Success: false,
		Error:   response.Reason,
		Token:   message.Token,
	}, fmt.Errorf("APNS error: %s", response.Reason)
}

func (a *APNSProvider) SendBatch(ctx context.Context, messages []*Message) ([]*Result, error) {
	results := make([]*Result, len(messages))

	for i, msg := range messages {
		result, err := a.Send(ctx, msg)
		if err != nil {
			result = &Result{
				Success: false,
				Error:   err.Error(),
				Token:   msg.Token,
			}
		}
		results[i] = result
	}

	return results, nil
}

func (a *APNSProvider) buildNotification(message *Message) *apns2.Notification {
	payload := map[string]interface{}{}
	aps := map[string]interface{}{}

	if message.Title != "" || message.Body != "" {
		aps["alert"] = map[string]interface{}{
			"title": message.Title,
			"body":  message.Body,
		}
	}

	if message.Sound != "" {
		aps["sound"] = message.Sound
	}
	if message.Badge > 0 {
		aps["badge"] = message.Badge
	}

	payload["aps"] = aps

	for key, value := range message.Data {
		payload[key] = value
	}

	notification := &apns2.Notification{
		DeviceToken: message.Token,
		Topic:       a.topic,
		Payload:     payload,
	}

	if message.Priority == "high" {
		notification.Priority = apns2.PriorityHigh
	} else {
		notification.Priority = apns2.PriorityLow
	}

	return notification
}
