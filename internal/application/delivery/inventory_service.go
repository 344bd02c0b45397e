package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/DavidGarzon9580/lite-thinking/internal/domain/catalog"
	"github.com/DavidGarzon9580/lite-thinking/internal/domain/shared"
	"go.uber.org/zap"
)

// InventoryService renders a company's inventory document and delivers
// it by email, optionally archiving a backup copy first.
type InventoryService struct {
	companyRepo catalog.CompanyRepository
	productRepo catalog.ProductRepository
	storage     DocumentStorage
	mailer      Mailer
	logger      *zap.Logger
	now         func() time.Time
}

// InventoryServiceOption is a functional option for configuring InventoryService
type InventoryServiceOption func(*InventoryService)

// WithClock overrides the time source, used in tests
func WithClock(now func() time.Time) InventoryServiceOption {
	return func(s *InventoryService) {
		s.now = now
	}
}

// NewInventoryService creates a new inventory delivery service
func NewInventoryService(
	companyRepo catalog.CompanyRepository,
	productRepo catalog.ProductRepository,
	storage DocumentStorage,
	mailer Mailer,
	logger *zap.Logger,
	opts ...InventoryServiceOption,
) *InventoryService {
	s := &InventoryService{
		companyRepo: companyRepo,
		productRepo: productRepo,
		storage:     storage,
		mailer:      mailer,
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RenderedDocument is an inventory document ready to download or attach
type RenderedDocument struct {
	Filename    string
	ContentType string
	Content     []byte
}

// DeliveryResult reports where a delivered document went
type DeliveryResult struct {
	Recipient      string `json:"recipient"`
	BackupLocation string `json:"backup_location,omitempty"`
}

// Render produces the inventory document for a company
func (s *InventoryService) Render(ctx context.Context, companyNIT string) (*RenderedDocument, error) {
	company, err := s.companyRepo.FindByNIT(ctx, companyNIT)
	if err != nil {
		return nil, err
	}
	return s.renderFor(ctx, company)
}

// renderFor renders the inventory for an already loaded company
func (s *InventoryService) renderFor(ctx context.Context, company *catalog.Company) (*RenderedDocument, error) {
	products, err := s.productRepo.FindByCompany(ctx, company.NIT)
	if err != nil {
		return nil, err
	}

	content, err := renderDocument(company, products, s.now())
	if err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to render inventory document")
	}

	return &RenderedDocument{
		Filename:    fmt.Sprintf("inventario-%s.txt", company.NIT),
		ContentType: documentContentType,
		Content:     content,
	}, nil
}

// Deliver renders the company's inventory, archives a backup copy and
// emails the document to the recipient. Archiving is best-effort: a
// storage failure is logged and the mail goes out without a backup
// mention. A mail failure aborts the delivery.
func (s *InventoryService) Deliver(ctx context.Context, companyNIT, recipient string) (*DeliveryResult, error) {
	company, err := s.companyRepo.FindByNIT(ctx, companyNIT)
	if err != nil {
		return nil, err
	}

	doc, err := s.renderFor(ctx, company)
	if err != nil {
		return nil, err
	}

	location, err := s.storage.Store(ctx, companyNIT, doc.Content)
	if err != nil {
		s.logger.Warn("Inventory backup storage failed, delivering without backup",
			zap.String("company_nit", companyNIT),
			zap.Error(err))
		location = ""
	}

	msg := &Message{
		To:      recipient,
		Subject: fmt.Sprintf("Inventario %s", company.Name),
		Body:    composeBody(company.Name, location),
		Attachment: &Attachment{
			Filename:    doc.Filename,
			ContentType: doc.ContentType,
			Data:        doc.Content,
		},
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("Inventory delivery failed",
			zap.String("company_nit", companyNIT),
			zap.String("recipient", recipient),
			zap.Error(err))
		return nil, shared.NewDomainError("DELIVERY_FAILED", "Failed to send inventory email")
	}

	s.logger.Info("Inventory delivered",
		zap.String("company_nit", companyNIT),
		zap.String("recipient", recipient),
		zap.String("backup_location", location))

	return &DeliveryResult{
		Recipient:      recipient,
		BackupLocation: location,
	}, nil
}

func composeBody(companyName, backupLocation string) string {
	body := fmt.Sprintf("Adjunto encontrarás el inventario de %s.", companyName)
	if backupLocation != "" {
		body += fmt.Sprintf("\n\nCopia de respaldo: %s", backupLocation)
	}
	return body
}
