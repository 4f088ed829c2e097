package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wanderlog/cmd/fx/account_fx"
	"wanderlog/cmd/fx/bucketlist_fx"
	"wanderlog/cmd/fx/controllers_fx"
	"wanderlog/cmd/fx/db_fx"
	"wanderlog/cmd/fx/destination_fx"
	"wanderlog/cmd/fx/journal_fx"
	"wanderlog/cmd/fx/session_fx"
	"wanderlog/internal/api/controllers"
	"wanderlog/internal/infra"
	mem "wanderlog/pkg/memcache"
	"wanderlog/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		session_fx.Module,
		account_fx.Module,
		journal_fx.Module,
		bucketlist_fx.Module,
		destination_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	sessions mem.SessionRegistry,
	accountController *controllers.AccountController,
	journalController *controllers.JournalController,
	bucketListController *controllers.BucketListController,
	destinationController *controllers.DestinationController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, sessions, accountController, journalController, bucketListController, destinationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	sessions mem.SessionRegistry,
	accountController *controllers.AccountController,
	journalController *controllers.JournalController,
	bucketListController *controllers.BucketListController,
	destinationController *controllers.DestinationController) {

	r.POST("/register", accountController.Register)
	r.POST("/login", accountController.Login)

	// JSON catalog API and the one-shot fixture loader
	r.GET("/api/destinations", destinationController.ListDestinations)
	r.GET("/api/destination/:id", destinationController.GetDestination)
	r.POST("/api/destination", destinationController.CreateDestination)
	r.DELETE("/api/destination/:id", destinationController.DeleteDestination)
	r.GET("/seed", destinationController.SeedCatalog)

	authed := r.Group("/")
	authed.Use(middleware.SessionAuthMiddleware(sessions))

	authed.GET("/logout", accountController.Logout)

	authed.GET("/destinations", destinationController.ListDestinations)
	authed.GET("/destination/:id", destinationController.GetDestination)

	authed.GET("/journal", journalController.ListEntries)
	authed.POST("/add_journal_entry", journalController.AddEntry)
	authed.POST("/edit_journal_entry/:id", journalController.EditEntry)
	authed.POST("/delete_journal_entry/:id", journalController.DeleteEntry)

	authed.GET("/bucketlist", bucketListController.ListItems)
	authed.POST("/add_bucket_list_item", bucketListController.AddItem)
	authed.POST("/update_bucket_list_item/:id", bucketListController.UpdateItem)
	authed.POST("/delete_bucket_list_item/:id", bucketListController.DeleteItem)
}
