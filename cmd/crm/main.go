package main

import (
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/config"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/customer"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/logger"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/migration"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/order"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/product"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/server"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		migration.Module,

		customer.Module,
		product.Module,
		order.Module,
		server.Module,
	)
	app.Run()
}

func registerSnowflake() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
