package config

import "os"

// Backend selects the key-value substrate implementation.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendFile     Backend = "file"
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
)

// Server captures process level configuration.
type Server struct {
	Addr         string
	Backend      Backend
	DataDir      string
	RedisURL     string
	PostgresURL  string
	KafkaBrokers string
	AuditTopic   string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	cfg := Server{
		Addr:         os.Getenv("COMUNIDAD_ADDR"),
		Backend:      Backend(os.Getenv("COMUNIDAD_BACKEND")),
		DataDir:      os.Getenv("COMUNIDAD_DATA_DIR"),
		RedisURL:     os.Getenv("COMUNIDAD_REDIS_URL"),
		PostgresURL:  os.Getenv("COMUNIDAD_POSTGRES_URL"),
		KafkaBrokers: os.Getenv("COMUNIDAD_KAFKA_BROKERS"),
		AuditTopic:   os.Getenv("COMUNIDAD_AUDIT_TOPIC"),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendFile
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.AuditTopic == "" {
		cfg.AuditTopic = "comunidad.audit"
	}
	return cfg
}
