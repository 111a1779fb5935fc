package notification

import (
	"github.com/smallbiznis/smartdairy/internal/notification/service"
	"go.uber.org/fx"
)

var Module = fx.Module("notification.service",
	fx.Provide(service.NewService),
)
