//go:build !cli
// +build !cli

package main

import (
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amanda-debetaz/PandaExpressPOS/api"
	_ "github.com/amanda-debetaz/PandaExpressPOS/api/graphql"
	_ "github.com/amanda-debetaz/PandaExpressPOS/api/inventory"
	_ "github.com/amanda-debetaz/PandaExpressPOS/api/kiosk"
	_ "github.com/amanda-debetaz/PandaExpressPOS/api/kitchen"
	_ "github.com/amanda-debetaz/PandaExpressPOS/api/media"
	_ "github.com/amanda-debetaz/PandaExpressPOS/api/menu"
	_ "github.com/amanda-debetaz/PandaExpressPOS/api/realtime"
	_ "github.com/amanda-debetaz/PandaExpressPOS/api/reports"
	_ "github.com/amanda-debetaz/PandaExpressPOS/api/stock"
	_ "github.com/amanda-debetaz/PandaExpressPOS/custom"

	"github.com/amanda-debetaz/PandaExpressPOS/config"
	"github.com/amanda-debetaz/PandaExpressPOS/core/auth"
	"github.com/amanda-debetaz/PandaExpressPOS/cron"
	_ "github.com/amanda-debetaz/PandaExpressPOS/cron/jobs"
	"github.com/amanda-debetaz/PandaExpressPOS/html"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, caching disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	// Check DB connection
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	e.Renderer = html.NewRenderer()

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware(db))

	api.ApplyModules(apiGroup, db)
	api.ApplyRoutes(e, db)
	html.RegisterMenuBoardHTMLRoutes(e, db)
	html.RegisterKitchenDisplayHTMLRoutes(e, db)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	if os.Getenv("CRON_DISABLED") != "1" {
		c := cron.StartCron()
		defer c.Stop()
		log.Println("Cron scheduler started.")
	}

	// ASCII banner on start (random font each run)
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
	fig := figure.NewFigure("Panda POS ->", fonts[rand.Intn(len(fonts))], true)
	fig.Print()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
