package main

import (
	"fmt"
	"log"
	"os"

	"gridset-app/config"
	"gridset-app/controllers/idgen"
	"gridset-app/database"
	"gridset-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	database.RunSeeders(db)
	idgen.Init()

	if err := os.MkdirAll(config.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	app := fiber.New()
	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupDepartmentRoutes(app, db)
	routes.SetupAssetRoutes(app, db)
	routes.SetupRequestRoutes(app, db)
	routes.SetupStockTakeRoutes(app, db)
	routes.SetupReportRoutes(app, db)
	routes.SetupUserRoutes(app, db)

	fmt.Println("🚀 Server running on port " + config.APP_PORT)
	if err := app.Listen(":" + config.APP_PORT); err != nil {
		log.Fatal(err)
	}
}
