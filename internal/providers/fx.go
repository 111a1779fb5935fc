package providers

import (
	"github.com/smallbiznis/smartdairy/internal/providers/pdf"
	"github.com/smallbiznis/smartdairy/internal/providers/whatsapp"
	"go.uber.org/fx"
)

var Module = fx.Module("providers",
	pdf.Module,
	whatsapp.Module,
)
