package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/DavidGarzon9580/lite-thinking/internal/application/delivery"
)

const sendGridSendURL = "https://api.sendgrid.com/v3/mail/send"

var _ delivery.Mailer = (*SendGridMailer)(nil)

// SendGridMailer sends mail through the SendGrid v3 API
type SendGridMailer struct {
	apiKey     string
	sender     string
	sendURL    string
	httpClient *http.Client
}

// NewSendGridMailer creates a SendGrid mailer
func NewSendGridMailer(apiKey, sender string) *SendGridMailer {
	return &SendGridMailer{
		apiKey:  apiKey,
		sender:  sender,
		sendURL: sendGridSendURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type sendGridAddress struct {
	Email string `json:"email"`
}

type sendGridPersonalization struct {
	To []sendGridAddress `json:"to"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridAttachment struct {
	Content     string `json:"content"` // base64
	Type        string `json:"type"`
	Filename    string `json:"filename"`
	Disposition string `json:"disposition"`
}

type sendGridRequest struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
	Attachments      []sendGridAttachment      `json:"attachments,omitempty"`
}

// Send posts the message to the SendGrid mail/send endpoint
func (m *SendGridMailer) Send(ctx context.Context, msg *delivery.Message) error {
	payload := sendGridRequest{
		Personalizations: []sendGridPersonalization{
			{To: []sendGridAddress{{Email: msg.To}}},
		},
		From:    sendGridAddress{Email: m.sender},
		Subject: msg.Subject,
		Content: []sendGridContent{
			{Type: "text/plain", Value: msg.Body},
		},
	}
	if msg.Attachment != nil {
		payload.Attachments = []sendGridAttachment{{
			Content:     base64.StdEncoding.EncodeToString(msg.Attachment.Data),
			Type:        msg.Attachment.ContentType,
			Filename:    msg.Attachment.Filename,
			Disposition: "attachment",
		}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode sendgrid request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.sendURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sendgrid request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sendgrid request failed: %w", err)
	}
	defer resp.Body.Close()

	// SendGrid answers 202 on acceptance.
	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("sendgrid rejected message: status %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
