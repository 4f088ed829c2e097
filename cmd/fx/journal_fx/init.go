package journal_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wanderlog/internal/repositories"
	"wanderlog/internal/services"
)

var Module = fx.Provide(
	provideJournalRepo, provideJournalService)

func provideJournalRepo(db *gorm.DB) repositories.JournalRepository {
	return repositories.NewJournalRepository(db)
}

func provideJournalService(journalRepo repositories.JournalRepository) services.JournalServiceInterface {
	return services.NewJournalService(journalRepo)
}
