package product

import (
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/product/repository"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
