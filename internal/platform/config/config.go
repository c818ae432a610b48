// Package config builds service configuration from environment variables so
// main stays lean. Invalid values are startup errors, never per-request ones.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures everything the server needs at startup.
type Config struct {
	Addr string

	// Decision thresholds. Missing or out-of-range values fail startup.
	PassThreshold         float64
	AuthenticityThreshold float64
	MinAnswers            int

	// StageTimeout bounds every external call a stage makes; on expiry the
	// stage falls back to its deterministic heuristic instead of retrying.
	StageTimeout time.Duration

	// PostgresDSN enables the durable audit and ledger stores when set;
	// empty means in-memory stores (dev mode).
	PostgresDSN string

	// RedisAddr enables the evidence query cache when set.
	RedisAddr string

	// KafkaBrokers enables the audit Kafka sink when non-empty.
	KafkaBrokers []string
	KafkaTopic   string

	// Operator auth: bcrypt hash of the operator API key, and the HS256
	// signing key for issued JWTs.
	JWTSigningKey   string
	OperatorKeyHash string

	// SignerID identifies this deployment in ledger block signatures.
	SignerID string
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Addr:            envOr("VELOS_ADDR", ":8080"),
		PostgresDSN:     os.Getenv("VELOS_POSTGRES_DSN"),
		RedisAddr:       os.Getenv("VELOS_REDIS_ADDR"),
		KafkaTopic:      envOr("VELOS_KAFKA_TOPIC", "velos.audit.events"),
		JWTSigningKey:   envOr("VELOS_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		OperatorKeyHash: os.Getenv("VELOS_OPERATOR_KEY_HASH"),
		SignerID:        envOr("VELOS_SIGNER_ID", "velos-orchestrator"),
	}

	if brokers := os.Getenv("VELOS_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	var err error
	if cfg.PassThreshold, err = envFloat("VELOS_PASS_THRESHOLD", 60); err != nil {
		return Config{}, err
	}
	if cfg.PassThreshold < 0 || cfg.PassThreshold > 100 {
		return Config{}, fmt.Errorf("VELOS_PASS_THRESHOLD must be within [0,100], got %v", cfg.PassThreshold)
	}
	if cfg.AuthenticityThreshold, err = envFloat("VELOS_AUTHENTICITY_THRESHOLD", 70); err != nil {
		return Config{}, err
	}
	if cfg.AuthenticityThreshold < 0 || cfg.AuthenticityThreshold > 100 {
		return Config{}, fmt.Errorf("VELOS_AUTHENTICITY_THRESHOLD must be within [0,100], got %v", cfg.AuthenticityThreshold)
	}
	if cfg.MinAnswers, err = envInt("VELOS_MIN_ANSWERS", 3); err != nil {
		return Config{}, err
	}
	if cfg.StageTimeout, err = envDuration("VELOS_STAGE_TIMEOUT", 15*time.Second); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
