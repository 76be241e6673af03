package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/shoplight/shoplight/internal/assistant"
	"github.com/shoplight/shoplight/internal/catalog"
	"github.com/shoplight/shoplight/internal/config"
	"github.com/shoplight/shoplight/internal/logger"
	"github.com/shoplight/shoplight/internal/server"
	"github.com/shoplight/shoplight/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core Infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,

		// Functional Domains
		catalog.Module,
		assistant.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
