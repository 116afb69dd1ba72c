package routes

import (
	"gridset-app/config"
	"gridset-app/controllers"
	"gridset-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAssetRoutes(app *fiber.App, db *gorm.DB) {
	assetController := controllers.NewAssetController(db)
	requestController := controllers.NewRequestController(db)

	api := app.Group(config.MAIN_ROUTES+"/assets", middleware.AuthMiddleware)

	api.Get("/", assetController.GetAllAssets)
	api.Get("/next-number", assetController.NextAssetNumber)
	api.Get("/:id", assetController.GetAssetByID)
	api.Post("/:id/request", requestController.SubmitRequest)

	// Administrative asset management
	api.Post("/", middleware.AdminOnly, assetController.CreateAsset)
	api.Put("/:id", middleware.AdminOnly, assetController.UpdateAsset)
	api.Delete("/:id", middleware.AdminOnly, assetController.DeleteAsset)
	api.Post("/:id/image", middleware.AdminOnly, assetController.UploadAssetImage)
	api.Post("/import", middleware.AdminOnly, assetController.ImportAssetsFromExcel)
	api.Post("/backfill-numbers", middleware.AdminOnly, assetController.BackfillAssetNumbers)
}
