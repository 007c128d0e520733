package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"Sistem-Manajemen-HR/config"
	"Sistem-Manajemen-HR/config/middleware"
	_ "Sistem-Manajemen-HR/docs"
	"Sistem-Manajemen-HR/handlers"
	"Sistem-Manajemen-HR/pkg/paseto"
	"Sistem-Manajemen-HR/repository"
)

func SetupRoutes(app *fiber.App, cfg *config.AppConfig) {
	log.Println("Memulai pendaftaran rute aplikasi...")

	maker, err := paseto.NewPasetoMaker(cfg.PASETO_SECRET, cfg.TokenDuration)
	if err != nil {
		log.Fatalf("Gagal membuat PASETO maker: %v", err)
	}

	// Inisialisasi Repositories
	userRepo := repository.NewUserRepository()
	deptRepo := repository.NewDepartmentRepository()
	empRepo := repository.NewEmployeeRepository()
	salaryRepo := repository.NewSalaryRepository()
	leaveRepo := repository.NewLeaveRepository()

	// Inisialisasi Handlers
	authHandler := handlers.NewAuthHandler(userRepo, maker)
	deptHandler := handlers.NewDepartmentHandler(deptRepo, empRepo, userRepo, salaryRepo, leaveRepo)
	empHandler := handlers.NewEmployeeHandler(empRepo, userRepo, salaryRepo, leaveRepo)
	salaryHandler := handlers.NewSalaryHandler(salaryRepo, empRepo)
	leaveHandler := handlers.NewLeaveHandler(leaveRepo, empRepo)

	authRequired := middleware.AuthMiddleware(maker, userRepo)
	adminOnly := middleware.AdminMiddleware()

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Sistem Manajemen HR API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Static("/uploads", "./public/uploads")

	api := app.Group("/api")

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/verify", authRequired, authHandler.Verify)
	authGroup.Post("/change-password", authRequired, authHandler.ChangePassword)

	// Department routes, mutasi hanya untuk admin
	deptGroup := api.Group("/department", authRequired)
	deptGroup.Get("/", deptHandler.ListDepartments)
	deptGroup.Get("/:id", deptHandler.GetDepartmentByID)
	deptGroup.Post("/add", adminOnly, deptHandler.AddDepartment)
	deptGroup.Put("/:id", adminOnly, deptHandler.UpdateDepartment)
	deptGroup.Delete("/:id", adminOnly, deptHandler.DeleteDepartment)

	// Employee routes
	empGroup := api.Group("/employee", authRequired)
	empGroup.Get("/", empHandler.ListEmployees)
	empGroup.Get("/me/profile", empHandler.GetMyProfile)
	empGroup.Get("/:id", empHandler.GetEmployeeByID)
	empGroup.Post("/add", adminOnly, empHandler.AddEmployee)
	empGroup.Put("/:id", adminOnly, empHandler.UpdateEmployee)
	empGroup.Delete("/:id", adminOnly, empHandler.DeleteEmployee)

	// Salary routes
	salaryGroup := api.Group("/salary", authRequired)
	salaryGroup.Get("/", adminOnly, salaryHandler.ListSalaries)
	salaryGroup.Get("/my", salaryHandler.GetMySalaries)
	salaryGroup.Post("/addSalary", adminOnly, salaryHandler.SaveSalary)

	// Leave routes
	leaveGroup := api.Group("/leave")
	leaveGroup.Post("/", authRequired, leaveHandler.AddLeave)
	leaveGroup.Get("/my", authRequired, leaveHandler.GetMyLeaves)
	leaveGroup.Get("/my/notifications", authRequired, leaveHandler.GetMyLeaveNotifications)
	leaveGroup.Patch("/my/notifications/mark-seen", authRequired, leaveHandler.MarkNotificationsSeen)
	leaveGroup.Get("/admin", authRequired, adminOnly, leaveHandler.GetAdminLeaves)
	// TODO: dua rute admin di bawah masih tanpa auth, frontend lama memanggilnya
	// tanpa header Authorization. Tambahkan authRequired+adminOnly setelah
	// frontend diperbarui.
	leaveGroup.Get("/admin/:id", leaveHandler.GetSingleLeave)
	leaveGroup.Put("/admin/:id/status", leaveHandler.UpdateLeaveStatus)

	log.Println("Semua rute aplikasi berhasil didaftarkan.")
	log.Println("Swagger documentation tersedia di: /docs/index.html")
}
