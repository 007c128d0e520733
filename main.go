package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"Sistem-Manajemen-HR/config"
	_ "Sistem-Manajemen-HR/docs"
	"Sistem-Manajemen-HR/repository"
	"Sistem-Manajemen-HR/router"
	"Sistem-Manajemen-HR/seeder"
	_ "time/tzdata"
)

// @title Sistem Manajemen HR API
// @version 1.0
// @description API untuk sistem manajemen HR dengan fitur karyawan, departemen, gaji, dan cuti
//
// @contact.name API Support
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the PASETO token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Departments
// @tag.description Department management endpoints
//
// @tag.name Employees
// @tag.description Employee management endpoints
//
// @tag.name Salaries
// @tag.description Salary management endpoints
//
// @tag.name Leaves
// @tag.description Leave request endpoints
func main() {

	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file tidak ditemukan, menggunakan environment variables sistem")
	}

	cfg := config.LoadConfig()

	config.MongoConnect()
	config.InitDatabase()

	defer config.DisconnectDB()

	if os.Getenv("SEED_ADMIN") == "true" {
		seeder.SeedAdminUser(repository.NewUserRepository())
	}

	app := fiber.New()

	config.SetupCORS(app)

	app.Use(logger.New())

	router.SetupRoutes(app, cfg)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
