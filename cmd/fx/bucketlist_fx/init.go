package bucketlist_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wanderlog/internal/repositories"
	"wanderlog/internal/services"
)

var Module = fx.Provide(
	provideBucketListRepo, provideBucketListService)

func provideBucketListRepo(db *gorm.DB) repositories.BucketListRepository {
	return repositories.NewBucketListRepository(db)
}

func provideBucketListService(bucketListRepo repositories.BucketListRepository) services.BucketListServiceInterface {
	return services.NewBucketListService(bucketListRepo)
}
