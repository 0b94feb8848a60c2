package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/julinemart/vendorid/internal/config"
	"github.com/julinemart/vendorid/internal/logger"
	"github.com/julinemart/vendorid/internal/migration"
	"github.com/julinemart/vendorid/internal/server"
	"github.com/julinemart/vendorid/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
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
