package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"goplan-erp/internal/domain/entities"
)

// Config holds the PostgreSQL connection settings. Values come from
// environment variables (DB_HOST, DB_PORT, ...) with local-development
// defaults.
type Config struct {
	Strategy string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// LoadConfig reads connection settings through viper. Strategy selects how the
// DSN is built: "local" (plain tcp), "ssl" (tcp with verify-full), or
// "cloudsql" (unix socket, Host is the instance connection name).
func LoadConfig() Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db.strategy", "local")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "goplan")
	v.SetDefault("db.sslmode", "disable")

	return Config{
		Strategy: v.GetString("db.strategy"),
		Host:     v.GetString("db.host"),
		Port:     v.GetString("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
	}
}

// DSN renders the connection string for the configured strategy.
func (c Config) DSN() string {
	switch c.Strategy {
	case "cloudsql":
		return fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s",
			c.Host, c.User, c.Password, c.Name)
	case "ssl":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=verify-full TimeZone=UTC",
			c.Host, c.Port, c.User, c.Password, c.Name)
	default:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
	}
}

// Connect opens the database and migrates the schema.
func Connect() *gorm.DB {
	cfg := LoadConfig()
	log.Printf("[database] connecting strategy=%s host=%s db=%s", cfg.Strategy, cfg.Host, cfg.Name)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("[database] connection failed: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.WorkQueueItem{},
		&entities.Quotation{},
		&entities.QuotationLineItem{},
		&entities.WorkOrder{},
		&entities.WorkLog{},
		&entities.Team{},
		&entities.Employee{},
		&entities.Holiday{},
	); err != nil {
		log.Fatalf("[database] migration failed: %v", err)
	}

	return db
}
