package routes

import (
	"gridset-app/config"
	"gridset-app/controllers"
	"gridset-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStockTakeRoutes(app *fiber.App, db *gorm.DB) {
	stockTakeController := controllers.NewStockTakeController(db)

	api := app.Group(config.MAIN_ROUTES+"/stock-takes", middleware.AuthMiddleware)

	api.Get("/", stockTakeController.GetAllStockTakes)
	api.Get("/:id", stockTakeController.GetStockTakeDetail)
	api.Post("/", middleware.AdminOnly, stockTakeController.CreateStockTake)
	api.Post("/:id/counts", stockTakeController.SubmitCounts)
}
