package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/wibes/draw-api/internal/prize"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	DynamoTables DynamoTables
	S3BucketName string

	JWTSecret     string
	JWTExpiryDays int

	PrizeBands []prize.Band

	SNSRegion string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Participants  string
	Registrations string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3251"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		DynamoTables: DynamoTables{
			Participants:  getEnv("DYNAMO_TABLE_PARTICIPANTS", "participants"),
			Registrations: getEnv("DYNAMO_TABLE_REGISTRATIONS", "registrations"),
		},
		S3BucketName: getEnv("S3_BUCKET_NAME", "draw-cards"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTExpiryDays: getEnvInt("JWT_EXPIRY_DAYS", 30),

		PrizeBands: parsePrizeBands(getEnv("PRIZE_TIERS", "")),

		SNSRegion: getEnv("SNS_REGION", "us-east-1"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

// parsePrizeBands parses "1-8:1100,9-16:2200" into prize bands. Malformed
// input falls back to the default campaign table rather than failing startup.
func parsePrizeBands(s string) []prize.Band {
	if s == "" {
		return prize.DefaultBands()
	}
	var bands []prize.Band
	for _, part := range strings.Split(s, ",") {
		rangeAmount := strings.Split(strings.TrimSpace(part), ":")
		if len(rangeAmount) != 2 {
			return prize.DefaultBands()
		}
		bounds := strings.Split(rangeAmount[0], "-")
		if len(bounds) != 2 {
			return prize.DefaultBands()
		}
		lo, err1 := strconv.Atoi(bounds[0])
		hi, err2 := strconv.Atoi(bounds[1])
		amount, err3 := strconv.Atoi(rangeAmount[1])
		if err1 != nil || err2 != nil || err3 != nil || lo > hi {
			return prize.DefaultBands()
		}
		bands = append(bands, prize.Band{Min: lo, Max: hi, Amount: amount})
	}
	return bands
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
