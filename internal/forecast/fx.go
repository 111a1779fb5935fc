package forecast

import (
	"github.com/smallbiznis/smartdairy/internal/forecast/service"
	"go.uber.org/fx"
)

var Module = fx.Module("forecast.service",
	fx.Provide(service.New),
)
