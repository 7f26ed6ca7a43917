package interfaces

import (
	"context"
	"time"

	"garage_manager/internal/domain/entities"
)

type EmailAttachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type EmailMessage struct {
	To          string
	Subject     string
	Body        string
	Attachments []EmailAttachment
}

type IEmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

type ITokenIssuer interface {
	Issue(actor entities.Actor) (string, error)
}

// IReportCache stores computed financial reports per garage. variant tells
// apart reports of the same garage (the requested period).
type IReportCache interface {
	Get(ctx context.Context, garageID, variant string) (entities.FinancialReport, bool, error)
	Set(ctx context.Context, garageID, variant string, report entities.FinancialReport, ttl time.Duration) error
	InvalidateGarage(ctx context.Context, garageID string) error
}

type IReportExporter interface {
	Export(report entities.FinancialReport) ([]byte, error)
}
