package database

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds the postgres connection string. database.dsn wins when set.
func DSN(config *viper.Viper) string {
	if dsn := config.GetString("database.dsn"); dsn != "" {
		return dsn
	}

	sslmode := config.GetString("database.sslmode")
	if sslmode == "" {
		sslmode = "disable"
	}
	timezone := config.GetString("database.timezone")
	if timezone == "" {
		timezone = "UTC"
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		config.GetString("database.host"),
		config.GetString("database.username"),
		config.GetString("database.password"),
		config.GetString("database.dbname"),
		config.GetInt("database.port"),
		sslmode,
		timezone,
	)
}

func New(config *viper.Viper) *gorm.DB {
	logLevel := logger.Warn
	if config.GetBool("database.debug") {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(DSN(config)), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		panic(fmt.Errorf("failed to connect database: %w", err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(fmt.Errorf("failed to get sql.DB: %w", err))
	}
	if n := config.GetInt("database.pool.max_open"); n > 0 {
		sqlDB.SetMaxOpenConns(n)
	}
	if n := config.GetInt("database.pool.max_idle"); n > 0 {
		sqlDB.SetMaxIdleConns(n)
	}
	if d := config.GetDuration("database.pool.max_lifetime"); d > 0 {
		sqlDB.SetConnMaxLifetime(d)
	} else {
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db
}
