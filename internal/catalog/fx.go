package catalog

import (
	"github.com/shoplight/shoplight/internal/catalog/repository"
	"github.com/shoplight/shoplight/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
