package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   string

	// JWTSecret verifies HS256 bearer tokens.
	JWTSecret string

	ORSBaseURL      string
	ORSAPIKey       string
	ORSProfile      string
	ORSCountry      string
	UpstreamTimeout time.Duration

	// RedisAddr enables the geocode cache when set.
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	GeocodeCacheTTL time.Duration

	// PricingStrategy prices the quote endpoint; registration is always bracketed.
	PricingStrategy       string
	SizeMeasure           string
	DistanceMode          string
	HeightLimited         bool
	AssignCourierOnCreate bool
	AssignmentSchedule    string
}

// DSN is the PostgreSQL connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
