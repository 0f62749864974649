package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Didier2101/plato-facil-sub001/cmd"
	"github.com/Didier2101/plato-facil-sub001/internal/adapters/out/postgres/catalogrepo"
	"github.com/Didier2101/plato-facil-sub001/internal/adapters/out/postgres/orderrepo"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.CustomizationDTO{},
		&orderrepo.PaymentDTO{},
		&orderrepo.HistoryDTO{},
		&catalogrepo.ProductDTO{},
	)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	return cmd.Config{
		HTTPPort:   envString("HTTP_PORT"),
		DBHost:     envString("DB_HOST"),
		DBPort:     envString("DB_PORT"),
		DBUser:     envString("DB_USER"),
		DBPassword: envString("DB_PASSWORD"),
		DBName:     envString("DB_NAME"),
		DBSslMode:  envString("DB_SSLMODE"),

		RoutingServiceURL: envString("ROUTING_SERVICE_URL"),
		ReceiptSpoolDir:   envString("RECEIPT_SPOOL_DIR"),

		TariffBaseFee:          envInt64("TARIFF_BASE_FEE"),
		TariffBaseDistanceKm:   envFloat("TARIFF_BASE_DISTANCE_KM"),
		TariffExcessPerKm:      envInt64("TARIFF_EXCESS_PER_KM"),
		TariffCoverageRadiusKm: envFloat("TARIFF_COVERAGE_RADIUS_KM"),

		CourierTerminalID:   envString("COURIER_TERMINAL_ID"),
		PollIntervalSeconds: envInt("POLL_INTERVAL_SECONDS"),
	}
}

func envString(key string) string {
	return os.Getenv(key)
}

func envInt(key string) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func envInt64(key string) int64 {
	value, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func envFloat(key string) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
