package cmd

// Config holds the raw environment values. Durations and amounts are parsed by
// NewCompositionRoot; empty values fall back to the defaults there.
type Config struct {
	HTTPPort   string
	LogLevel   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	CountriesAPIURL   string
	StatesAPIURL      string
	StatesAPIKey      string
	CountriesCacheTTL string
	OrdersAPIURL      string
	OrdersAPIToken    string
	RatesAPIURL       string
	ServiceTimeout    string

	ShippingSurcharge string
	HSNPolicy         string
	OrderIDRequired   string
	DraftTTL          string

	KafkaHost        string
	OrderPlacedTopic string
}
