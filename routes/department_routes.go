package routes

import (
	"gridset-app/config"
	"gridset-app/controllers"
	"gridset-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDepartmentRoutes(app *fiber.App, db *gorm.DB) {
	departmentController := controllers.NewDepartmentController(db)

	api := app.Group(config.MAIN_ROUTES+"/departments", middleware.AuthMiddleware)

	api.Get("/", departmentController.GetAllDepartments)
	api.Post("/", middleware.AdminOnly, departmentController.CreateDepartment)
	api.Put("/:id", middleware.AdminOnly, departmentController.UpdateDepartment)
	api.Delete("/:id", middleware.AdminOnly, departmentController.DeleteDepartment)
}
