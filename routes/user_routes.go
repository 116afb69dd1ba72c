package routes

import (
	"gridset-app/config"
	"gridset-app/controllers"
	"gridset-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controllers.NewUserController(db)

	api := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware)

	api.Get("/", userController.GetAllUsers)
	api.Post("/", middleware.AdminOnly, userController.CreateUser)
	api.Delete("/:id", middleware.AdminOnly, userController.DeleteUser)
}
