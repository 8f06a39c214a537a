package handler

import (
	"net/http"

	"github.com/vfg2006/backoffice-api/internal/api/handler/router"
	"github.com/vfg2006/backoffice-api/internal/scheduler"
	"github.com/vfg2006/backoffice-api/internal/usecases/analyzing"
	"github.com/vfg2006/backoffice-api/internal/usecases/authenticating"
	"github.com/vfg2006/backoffice-api/internal/usecases/cataloging"
	"github.com/vfg2006/backoffice-api/internal/usecases/customering"
	"github.com/vfg2006/backoffice-api/internal/usecases/ordering"
	"github.com/vfg2006/backoffice-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     Me(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Dashboard retorna as rotas das visões analíticas agregadas
func Dashboard(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/kpis",
			Method:      http.MethodGet,
			Handler:     RevenueKPIs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/revenue/monthly",
			Method:      http.MethodGet,
			Handler:     MonthlyRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/orders/status",
			Method:      http.MethodGet,
			Handler:     OrderStatuses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/products/rating",
			Method:      http.MethodGet,
			Handler:     ProductRatings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/products/top",
			Method:      http.MethodGet,
			Handler:     TopProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/customers/continents",
			Method:      http.MethodGet,
			Handler:     CustomerContinents(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Orders(service ordering.Orderer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/orders",
			Method:      http.MethodGet,
			Handler:     OrderList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			// O httprouter não aceita /v1/orders/search junto com /v1/orders/:id
			Path:        "/v1/search/orders",
			Method:      http.MethodGet,
			Handler:     OrderSearch(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/orders/:id",
			Method:      http.MethodGet,
			Handler:     OrderDetail(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/orders/:id/status",
			Method:      http.MethodPatch,
			Handler:     UpdateOrderStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrEditor()},
		},
	}
}

func Products(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ProductList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrEditor()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodGet,
			Handler:     ProductDetail(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Snapshots retorna as rotas administrativas do reaquecimento de cache
func Snapshots(service *scheduler.SnapshotRefreshService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/snapshots/refresh",
			Method:      http.MethodPost,
			Handler:     RunSnapshotRefresh(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/snapshots/status",
			Method:      http.MethodGet,
			Handler:     GetSnapshotStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Customers(service customering.Customerer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers",
			Method:      http.MethodGet,
			Handler:     CustomerList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers",
			Method:      http.MethodPost,
			Handler:     CreateCustomer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrEditor()},
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodGet,
			Handler:     CustomerDetail(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
