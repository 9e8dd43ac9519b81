package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Payroll  PayrollConfig  `toml:"payroll"`
	Taxes    TaxesConfig    `toml:"taxes"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig дефолтная политика расписания школы
// Используется, когда в БД нет конфигурации ни для инструктора, ни для школы
type ScheduleConfig struct {
	DayStartHour            int `toml:"day_start_hour"`
	DayEndHour              int `toml:"day_end_hour"`
	SlotDurationMinutes     int `toml:"slot_duration_minutes"`
	MinBookingNoticeMinutes int `toml:"min_booking_notice_minutes"`
}

// PayrollConfig политика расчёта зарплат инструкторов
// Все ставки заданы явно в конфигурации, а не константами в коде:
// каждому тенанту рано или поздно нужны свои значения
type PayrollConfig struct {
	DefaultCommissionRate  float64       `toml:"default_commission_rate"`
	HoursPerLesson         float64       `toml:"hours_per_lesson"`
	QualityBonusAmount     float64       `toml:"quality_bonus_amount"`
	QualityRatingThreshold float64       `toml:"quality_rating_threshold"`
	TaxRate                float64       `toml:"tax_rate"`
	NIRate                 float64       `toml:"ni_rate"`
	PerformanceTiers       []PayrollTier `toml:"performance_tiers"`
}

// PayrollTier ступень бонуса за выручку
// Применяется только одна, самая высокая достигнутая ступень
type PayrollTier struct {
	RevenueAbove float64 `toml:"revenue_above"`
	Bonus        float64 `toml:"bonus"`
}

// TaxesConfig дефолтная налоговая политика (fallback при отсутствии строки tax_config)
type TaxesConfig struct {
	StandardRate     float64 `toml:"standard_rate"`
	FilingGraceDays  int     `toml:"filing_grace_days"`
	UrgentWindowDays int     `toml:"urgent_window_days"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	return cfg, nil
}

// defaultConfig значения по умолчанию, перекрываемые файлом
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "dsm-core-service",
		},
		Schedule: ScheduleConfig{
			DayStartHour:            8,
			DayEndHour:              20,
			SlotDurationMinutes:     60,
			MinBookingNoticeMinutes: 60,
		},
		Payroll: PayrollConfig{
			DefaultCommissionRate:  30,
			HoursPerLesson:         1.5,
			QualityBonusAmount:     50,
			QualityRatingThreshold: 4.8,
			TaxRate:                0.20,
			NIRate:                 0.12,
			PerformanceTiers: []PayrollTier{
				{RevenueAbove: 10000, Bonus: 200},
				{RevenueAbove: 8000, Bonus: 150},
				{RevenueAbove: 5000, Bonus: 100},
			},
		},
		Taxes: TaxesConfig{
			StandardRate:     20,
			FilingGraceDays:  30,
			UrgentWindowDays: 7,
		},
	}
}
