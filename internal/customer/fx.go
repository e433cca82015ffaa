package customer

import (
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/customer/repository"
	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
