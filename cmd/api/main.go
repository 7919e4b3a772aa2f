package main

import (
	"context"
	"os"

	"hrindex/cmd/internal/domain/sqlite"
	"hrindex/cmd/internal/domain/sqlite/repository"
	handler2 "hrindex/cmd/internal/http/handler"
	"hrindex/cmd/internal/infrastructure/xrepository"
	"hrindex/cmd/internal/loader"
	"hrindex/cmd/internal/service"
	"hrindex/cmd/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/hrindex/prod/"

func main() {
	validate := validator.New()

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	// Init SQLite
	db, err := sqlite.Init(envOr("DB_PATH", "structured_information.db"))
	if err != nil {
		panic(err)
	}

	// Gettings repos
	companyRepo := repository.NewCompanyRepository(db)
	registerRepo := repository.NewRegisterRepository(db)
	codeRepo := repository.NewCodeListRepository(db)

	// Batch side, shared with the loader binary
	batchLogger := utils.SetupLogging(os.Getenv("LOG_LEVEL"))
	batchLoader := loader.New(loader.Config{
		RootDir:         envOr("DATA_DIR", "/root/download"),
		DownloadBaseURL: os.Getenv("DOWNLOAD_BASE_URL"),
	}, db, batchLogger)
	syncService := service.NewReferenceSyncService(xrepository.NewClient(), codeRepo, batchLogger)

	// Getting services
	companyService := service.NewCompanyService(companyRepo, validate)
	registerService := service.NewRegisterService(registerRepo)
	adminService := service.NewAdminService(syncService, batchLoader)

	// Gettings handler
	companyRoutes := handler2.NewCompanyDefault(companyService)
	registerRoutes := handler2.NewRegisterDefault(registerService)
	adminRoutes := handler2.NewAdminDefault(adminService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	// Companies
	e.GET("/api/companies", companyRoutes.GetCompanies)
	e.GET("/api/companies/count", companyRoutes.CountCompanies)
	e.GET("/api/companies/:number", companyRoutes.GetCompany)
	e.POST("/api/companies", companyRoutes.CreateCompany)

	// Register entries and participants
	e.GET("/api/companies/:number/register-entries", registerRoutes.GetEntries)
	e.GET("/api/companies/:number/participant-persons", registerRoutes.GetPersons)
	e.GET("/api/companies/:number/participant-organizations", registerRoutes.GetOrganizations)

	// Admin
	e.POST("/api/admin/refresh", adminRoutes.Refresh)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(":" + envOr("SERVER_PORT", "7070")); err != nil {
		panic(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
