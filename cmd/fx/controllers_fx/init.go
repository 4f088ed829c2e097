package controllers_fx

import (
	"go.uber.org/fx"
	"wanderlog/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewJournalController),
	fx.Provide(controllers.NewBucketListController),
	fx.Provide(controllers.NewDestinationController))
