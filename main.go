package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"wasitku_backend/internals/configs"
	database "wasitku_backend/internals/databases"
	honorService "wasitku_backend/internals/features/honors/honors/service"
	"wasitku_backend/internals/metrics"
	"wasitku_backend/internals/middlewares"
	"wasitku_backend/internals/route"
	"wasitku_backend/internals/search"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	metrics.Register()
	go serveMetrics()

	searchClient := search.Connect()
	if err := searchClient.EnsureReviewIndex(context.Background()); err != nil {
		log.Printf("[WARN] gagal menyiapkan index ulasan: %v", err)
	}

	var payout honorService.PayoutClient
	if configs.MidtransIrisKey != "" {
		payout = honorService.NewIrisPayoutClient(
			database.DB,
			configs.MidtransIrisKey,
			configs.GetEnv("MIDTRANS_ENV", "sandbox") == "production",
		)
		log.Println("✅ Pencairan honor via Midtrans Iris aktif")
	} else {
		log.Println("[INFO] MIDTRANS_IRIS_KEY kosong, pencairan honor nonaktif")
	}

	app := fiber.New(fiber.Config{
		AppName:      "Wasitku Backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	middlewares.SetupMiddlewares(app)
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	route.SetupRoutes(app, database.DB, payout, searchClient)

	// graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("⏳ Mematikan server...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	port := configs.GetEnv("PORT", "8080")
	log.Println("🚀 Wasitku Backend berjalan di port", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("❌ Server berhenti: %v", err)
	}
}

// serveMetrics mengekspos /metrics Prometheus di port terpisah supaya
// tidak lewat middleware auth aplikasi utama.
func serveMetrics() {
	port := configs.GetEnv("METRICS_PORT", "9090")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	handler := cors.Default().Handler(mux)
	log.Println("📊 Metrics tersedia di port", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Printf("[WARN] server metrics berhenti: %v", err)
	}
}
