package cmd

import "fmt"

// Config carries everything the composition root needs to wire the
// application: HTTP and database endpoints, the routing service, the receipt
// spool, the delivery tariff and the board polling setup.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RoutingServiceURL string
	ReceiptSpoolDir   string

	// Tariff: integer amounts are whole currency units.
	TariffBaseFee          int64
	TariffBaseDistanceKm   float64
	TariffExcessPerKm      int64
	TariffCoverageRadiusKm float64

	// CourierTerminalID is the courier this instance's board poller serves.
	CourierTerminalID   string
	PollIntervalSeconds int
}

// DSN returns the postgres connection string for the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
