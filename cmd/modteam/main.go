package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gradsite/modteam/app/controllers"
	"github.com/gradsite/modteam/app/repository"
	"github.com/gradsite/modteam/internal/pkg/cache"
	"github.com/gradsite/modteam/internal/pkg/constants"
	"github.com/gradsite/modteam/internal/pkg/database"
	"github.com/gradsite/modteam/internal/pkg/env"
	"github.com/gradsite/modteam/internal/pkg/media"
	"github.com/gradsite/modteam/internal/pkg/middleware"
	"github.com/gradsite/modteam/internal/pkg/router"
	"github.com/gradsite/modteam/views"
)

// bodyLimit leaves room for a change form with several full size images
const bodyLimit = 64 << 20

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	redisClient := cache.SetupCache()

	repository.InitializeFactory(database.GetDB())

	mediaCfg := media.LoadConfig()
	store, err := media.NewStore(context.Background(), mediaCfg)
	if err != nil {
		log.Fatalf("Failed to set up media storage: %v", err)
	}

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/modteam to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:        views.NewEngine(store),
		ErrorHandler: controllers.ErrorHandler,
		BodyLimit:    bodyLimit,
	})

	// ignore and cache favicon
	app.Use(favicon.New(favicon.Config{
		File:         basePath + "public/assets/icons/favicon.ico",
		URL:          "/favicon.ico",
		CacheControl: "public, max-age=604800",
	}))

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// static files
	app.Static(constants.PublicRoute, basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, router.Deps{
		DB:       database.GetDB(),
		Repos:    repository.GetGlobalRepositories(),
		Media:    store,
		Uploader: media.NewUploader(store, mediaCfg),
		Redis:    redisClient,
		Admin:    middleware.LoadAdminCredentials(),
	})

	return app
}
