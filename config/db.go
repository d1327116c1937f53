package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"go.uber.org/zap/zapio"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}
	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	cfg := mysqldriver.NewConfig()
	cfg.User = u.User.Username()
	cfg.Passwd, _ = u.User.Password()
	cfg.Net = "tcp"
	cfg.Addr = u.Hostname() + ":" + port
	cfg.DBName = dbName
	applyMySQLDefaults(cfg)
	for key, values := range u.Query() {
		if len(values) > 0 && key != "parseTime" && key != "loc" {
			if cfg.Params == nil {
				cfg.Params = map[string]string{}
			}
			cfg.Params[key] = values[0]
		}
	}
	return cfg.FormatDSN(), nil
}

func applyMySQLDefaults(cfg *mysqldriver.Config) {
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
}

// ResolveMySQLDSN prefers MYSQL_URL, then DATABASE_URL, then the DB_*
// variables.
func ResolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		if _, err := mysqldriver.ParseDSN(raw); err != nil {
			return "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
		return raw, nil
	}

	cfg := mysqldriver.NewConfig()
	cfg.User = envOrDefault("DB_USER", "root")
	cfg.Passwd = os.Getenv("DB_PASS")
	cfg.Net = "tcp"
	cfg.Addr = envOrDefault("DB_HOST", "127.0.0.1") + ":" + envOrDefault("DB_PORT", "3306")
	cfg.DBName = envOrDefault("DB_NAME", "hotel_db")
	applyMySQLDefaults(cfg)
	return cfg.FormatDSN(), nil
}

// ResolvePostgresDSN prefers DATABASE_URL and falls back to the DB_*
// variables.
func ResolvePostgresDSN() string {
	if raw := strings.TrimSpace(os.Getenv("DATABASE_URL")); raw != "" {
		return raw
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		envOrDefault("DB_HOST", "127.0.0.1"),
		envOrDefault("DB_PORT", "5432"),
		envOrDefault("DB_USER", "postgres"),
		os.Getenv("DB_PASS"),
		envOrDefault("DB_NAME", "hotel_db"),
		envOrDefault("DB_SSLMODE", "disable"),
	)
}

func dialector(cfg Config) (gorm.Dialector, error) {
	switch cfg.StoreDriver {
	case DriverMySQL:
		dsn, err := ResolveMySQLDSN()
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(ResolvePostgresDSN()), nil
	case DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	}
	return nil, fmt.Errorf("store driver %q is not a sql database", cfg.StoreDriver)
}

// ConnectDatabase opens the SQL database for the configured driver. Gorm's
// own logging goes through zap at warn level. Driver errors are translated
// so the store can tell a duplicate key from other failures.
func ConnectDatabase(cfg Config, log *zap.Logger) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	w := &zapio.Writer{Log: log.Named("gorm"), Level: zap.WarnLevel}
	gormLogger := logger.New(
		writerPrinter{w},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{Logger: gormLogger, TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.StoreDriver, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		log.Info("cannot get raw sql.DB", zap.Error(err))
	}
	return db, nil
}

type writerPrinter struct{ w *zapio.Writer }

func (p writerPrinter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}
