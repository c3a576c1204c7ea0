package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	MessageStream MessageStreamConfig
	HttpClient    HttpClientConfig
	UserService   UserServiceConfig
	Payment       PaymentConfig
}

type HttpServerConfig struct {
	Port           string `envconfig:"http_server_port" default:"3000"`
	MetricsPort    string `envconfig:"metrics_port" default:"9090"`
	MonitoringPort string `envconfig:"scheduler_monitoring_port" default:"8080"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"database_host" required:"true"`
	Port     string `envconfig:"database_port" default:"5432"`
	Username string `envconfig:"database_username" required:"true"`
	Password string `envconfig:"database_password" required:"true"`
	Name     string `envconfig:"database_name" required:"true"`
	SSLMode  string `envconfig:"database_ssl_mode" default:"require"`
	MaxConns int    `envconfig:"database_max_conns" default:"20"`
}

type RedisConfig struct {
	Host     string `envconfig:"redis_host" required:"true"`
	Port     string `envconfig:"redis_port" default:"6379"`
	Password string `envconfig:"redis_password"`
	DB       int    `envconfig:"redis_db" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"amqp_host" required:"true"`
	Port     string `envconfig:"amqp_port" default:"5672"`
	Username string `envconfig:"amqp_username" default:"guest"`
	Password string `envconfig:"amqp_password" default:"guest"`
}

type HttpClientConfig struct {
	Type                string `envconfig:"http_client_type" default:"consecutive"`
	ConsecutiveFailures int64  `envconfig:"http_client_consecutive_failures" default:"5"`
	Timeout             int    `envconfig:"http_client_timeout_seconds" default:"5"`
}

type UserServiceConfig struct {
	Host string `envconfig:"user_service_host" required:"true"`
	Port string `envconfig:"user_service_port" default:"8081"`
}

// PaymentConfig carries the UPI payee the buyer transfers to and the delay
// before a submitted claim is checked for reconciliation.
type PaymentConfig struct {
	UpiPayeeName           string `envconfig:"upi_payee_name" default:"Cricket Booking Ltd"`
	UpiPayeeVPA            string `envconfig:"upi_payee_vpa" required:"true"`
	ClaimReconcileDelayMin int    `envconfig:"claim_reconcile_delay_minutes" default:"30"`
	FlowTTLMin             int    `envconfig:"booking_flow_ttl_minutes" default:"30"`
}

func InitConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, reading environment directly")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to process env config: %v", err)
	}

	return &cfg
}
