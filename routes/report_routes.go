package routes

import (
	"gridset-app/config"
	"gridset-app/controllers"
	"gridset-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	reportController := controllers.NewReportController(db)

	api := app.Group(config.MAIN_ROUTES+"/reports", middleware.AuthMiddleware)

	api.Get("/", reportController.GetReports)
	api.Get("/download", reportController.DownloadReport)
}
