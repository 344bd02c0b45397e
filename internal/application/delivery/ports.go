package delivery

import "context"

// DocumentStorage archives a rendered inventory document and returns a
// backend-specific location for it. Implementations live under
// infrastructure/storage.
type DocumentStorage interface {
	// Store persists the document and returns where it ended up
	// (e.g. "s3://bucket/key" or a filesystem path). An empty
	// location with a nil error means the backend intentionally
	// discards documents.
	Store(ctx context.Context, companyNIT string, document []byte) (string, error)
}

// Attachment is a file carried by an outgoing message
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is an outgoing email
type Message struct {
	To         string
	Subject    string
	Body       string
	Attachment *Attachment
}

// Mailer sends messages. Implementations live under infrastructure/mail.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}
