package session_fx

import (
	"go.uber.org/fx"
	"wanderlog/internal/services"
	mem "wanderlog/pkg/memcache"
)

var Module = fx.Provide(
	provideSessionRegistry, provideSessionService)

func provideSessionRegistry() mem.SessionRegistry {
	return mem.NewSessions()
}

func provideSessionService(sessions mem.SessionRegistry) services.SessionServiceInterface {
	return services.NewSessionService(sessions)
}
