package app

import (
	"log"
	"os"
	"path/filepath"

	"github.com/Aryansh1520/mario-emp-mgmt/internal/employee"
	"github.com/Aryansh1520/mario-emp-mgmt/internal/middleware"
	"github.com/Aryansh1520/mario-emp-mgmt/internal/payslip"
	"github.com/Aryansh1520/mario-emp-mgmt/internal/payslip/pdf"
	"github.com/Aryansh1520/mario-emp-mgmt/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectSQLite(envOr("DB_PATH", filepath.Join("data", "payroll.db")))
	if err != nil {
		return err
	}
	log.Println("✅ Database connection established")

	if err := gormDB.AutoMigrate(&employee.Employee{}, &payslip.Payslip{}); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// Redis is an optional accelerator for the employee options cache;
	// everything works without it.
	var redisClient *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient, err = connection.ConnectRedisWithRetry(addr, 3)
		if err != nil {
			log.Printf("⚠️ Redis unavailable, options cache disabled: %v", err)
			redisClient = nil
		}
	}

	assetsDir := envOr("ASSETS_DIR", "assets")
	composer := pdf.NewComposer(pdf.Config{
		OrgName: "Mariomed Pharmaceuticals Pvt. Ltd.",
		OrgAddressLines: []string{
			"24, Industrial Estate, Phase II",
			"Hyderabad, Telangana 500032",
		},
		LogoCandidates: []string{
			filepath.Join(assetsDir, "logo.png"),
			filepath.Join(assetsDir, "logo.jpg"),
		},
		FontCandidates: []string{
			filepath.Join(assetsDir, "fonts", "DejaVuSans.ttf"),
			filepath.Join(assetsDir, "fonts", "NotoSans-Regular.ttf"),
		},
	})

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	payslipRepo := payslip.NewRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, redisClient)
	payslipService := payslip.NewService(
		db,
		payslipRepo,
		employeeRepo,
		composer,
		envOr("PAYSLIP_OUTPUT_DIR", "payslips"),
	)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	payslipHandler := payslip.NewHandler(payslipService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
		payslip.RegisterRoutes(api, payslipHandler)
	}

	return nil
}
