package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix 環境變數前綴，例如 CHECKOUT_DB_DSN
const EnvPrefix = "checkout"

// 支援的資料庫驅動
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config 應用程式配置
type Config struct {
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	LogMode    string `envconfig:"LOG_MODE"`
	DBDriver   string `envconfig:"DB_DRIVER" default:"sqlite"`
	DBDSN      string `envconfig:"DB_DSN" default:"checkout.db"`
	DBLogLevel string `envconfig:"DB_LOG_LEVEL" default:"silent"`
}

// Load 讀取 .env（可選）與環境變數
//
// files 為空時讀取工作目錄下的 .env；檔案不存在不視為錯誤。
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 檢查配置值
func (c *Config) Validate() error {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if strings.TrimSpace(c.DBDSN) == "" {
		return errors.New("DB_DSN is required")
	}
	return nil
}

// LoggerMode 日誌模式：未設定 LOG_MODE 時依 APP_ENV 決定（正式環境 prod，其餘 dev）
func (c *Config) LoggerMode() string {
	if mode := strings.TrimSpace(c.LogMode); mode != "" {
		return mode
	}
	if c.IsProduction() {
		return "prod"
	}
	return "dev"
}

// IsProduction 是否為正式環境
func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.AppEnv) {
	case "prod", "production":
		return true
	}
	return false
}
