package routes

import (
	"gridset-app/config"
	"gridset-app/controllers"
	"gridset-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRequestRoutes(app *fiber.App, db *gorm.DB) {
	requestController := controllers.NewRequestController(db)

	api := app.Group(config.MAIN_ROUTES+"/requests", middleware.AuthMiddleware)

	api.Get("/mine", requestController.MyRequests)
	api.Get("/manage", middleware.AdminOnly, requestController.ManageRequests)
	api.Post("/:id/approve", middleware.AdminOnly, requestController.ApproveRequest)
	api.Post("/:id/reject", middleware.AdminOnly, requestController.RejectRequest)
	api.Delete("/resolved", middleware.AdminOnly, requestController.ClearHistory)
}
