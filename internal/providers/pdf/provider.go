package pdf

import (
	"context"
	"io"

	"go.uber.org/fx"
)

var Module = fx.Module("pdf.provider",
	fx.Provide(New),
)

type Provider interface {
	GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error)
}
