package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-guardian/internal/api/handler/router"
	"github.com/vfg2006/campaign-guardian/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-guardian/internal/usecases/monitoring"
	"github.com/vfg2006/campaign-guardian/internal/usecases/registry"
	"github.com/vfg2006/campaign-guardian/pkg/middleware"
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
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Entities(service registry.EntityRegistry) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/entities",
			Method:      http.MethodGet,
			Handler:     EntityList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/entities",
			Method:      http.MethodPost,
			Handler:     RegisterEntity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/entities/:id",
			Method:      http.MethodGet,
			Handler:     GetEntity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/entities/:id",
			Method:      http.MethodPut,
			Handler:     UpdateEntity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Decisions(entities registry.EntityRegistry, monitor monitoring.Monitor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/entities/:id/decisions",
			Method:      http.MethodGet,
			Handler:     GetDecisionHistory(entities, monitor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/entities/:id/risk",
			Method:      http.MethodGet,
			Handler:     GetEntityRisk(entities, monitor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
