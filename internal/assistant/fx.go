package assistant

import (
	"github.com/shoplight/shoplight/internal/assistant/responder"
	"github.com/shoplight/shoplight/internal/assistant/service"
	"go.uber.org/fx"
)

var Module = fx.Module("assistant.service",
	fx.Provide(responder.Provide),
	fx.Provide(service.New),
)
