// Ininicializing common application configuration
package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Rabbit   RabbitConfig   `mapstructure:"rabbit"`
	FCM      FCMConfig      `mapstructure:"fcm"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Worker   WorkerConfig   `mapstructure:"worker"`
	Cron     CronConfig     `mapstructure:"cron"`
}

type ServerConfig struct {
	AppVersion   string `json:"appVersion"`
	Host         string `json:"host" validate:"required"`
	Port         string `json:"port" validate:"required"`
	Timeout      time.Duration
	Idle_timeout time.Duration
	Env          string `json:"environment"`
	Mode         string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Host     string `json:"host" validate:"required"`
	Port     int    `json:"port" validate:"required"`
	Password string `json:"password"`
	DB       int    `json:"db"`

	// Pool settings
	MaxRetries   int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration

	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type RabbitConfig struct {
	URL          string `mapstructure:"url"`
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	QueueName    string `mapstructure:"queue_name"`
	ExchangeName string `mapstructure:"exchange_name"`
}

type FCMConfig struct {
	ServerKey string `mapstructure:"server_key"`
	Endpoint  string `mapstructure:"endpoint"`
	Timeout   time.Duration
}

type ReminderConfig struct {
	DeepLink        string `mapstructure:"deep_link"`
	DefaultTimezone string `mapstructure:"default_timezone"`
	Icon            string `mapstructure:"icon"`
	Badge           string `mapstructure:"badge"`
}

type WorkerConfig struct {
	ScanInterval  time.Duration `mapstructure:"scan_interval"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type CronConfig struct {
	Secret string `mapstructure:"secret"`
}

func LoadConfig() (*viper.Viper, error) {

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	setDefaults(viperInstance)

	err := viperInstance.ReadInConfig()

	if err != nil {
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode config into struct, %v", err)
		return nil, err
	}
	return &c, nil
}

// setDefaults устанавливает значения по умолчанию
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.appVersion", "1.0.0")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.mode", "debug")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "nutritrack_user")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.dbname", "nutritrack")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cache_ttl", 30*time.Second)

	// Rabbit defaults
	v.SetDefault("rabbit.host", "localhost")
	v.SetDefault("rabbit.port", 5672)
	v.SetDefault("rabbit.username", "guest")
	v.SetDefault("rabbit.password", "guest")
	v.SetDefault("rabbit.queue_name", "reminder_tasks")

	// FCM defaults
	v.SetDefault("fcm.endpoint", "https://fcm.googleapis.com/fcm/send")
	v.SetDefault("fcm.timeout", 10*time.Second)

	// Reminder defaults
	v.SetDefault("reminder.deep_link", "https://nutritraack.web.app")
	v.SetDefault("reminder.default_timezone", "Europe/Paris")
	v.SetDefault("reminder.icon", "/icon-192.png")
	v.SetDefault("reminder.badge", "/icon-192.png")

	// Worker defaults
	v.SetDefault("worker.scan_interval", time.Minute)
	v.SetDefault("worker.sweep_interval", 24*time.Hour)
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
