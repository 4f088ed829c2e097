package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wanderlog/internal/repositories"
	"wanderlog/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository, sessionService services.SessionServiceInterface) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, sessionService)
}
