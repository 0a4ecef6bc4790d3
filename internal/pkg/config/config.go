package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Bid       BidConfig
	Funds     FundsConfig
	Scheduler SchedulerConfig
	Reconcile ReconcileConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Seoul"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" required:"true"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	PoolSize int    `envconfig:"REDIS_POOL_SIZE" default:"50"`
}

type KafkaConfig struct {
	Enabled      bool          `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers      []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic        string        `envconfig:"KAFKA_TOPIC" default:"auction-events"`
	BatchTimeout time.Duration `envconfig:"KAFKA_BATCH_TIMEOUT" default:"10ms"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type BidConfig struct {
	LockWait          time.Duration   `envconfig:"BID_LOCK_WAIT" default:"5s"`
	LockLease         time.Duration   `envconfig:"BID_LOCK_LEASE" default:"2s"`
	RollbackLockLease time.Duration   `envconfig:"BID_ROLLBACK_LOCK_LEASE" default:"30s"`
	IdempotencyTTL    time.Duration   `envconfig:"BID_IDEMPOTENCY_TTL" default:"10m"`
	MinIncrementRate  decimal.Decimal `envconfig:"BID_MIN_INCREMENT_RATE" default:"0.1"`
	MinIncrementUnit  decimal.Decimal `envconfig:"BID_MIN_INCREMENT_UNIT" default:"10"`
	ExtensionDisabled bool            `envconfig:"BID_EXTENSION_DISABLED" default:"false"`
}

type FundsConfig struct {
	CacheTTL      time.Duration `envconfig:"FUNDS_CACHE_TTL" default:"30m"`
	UserLockWait  time.Duration `envconfig:"USER_LOCK_WAIT" default:"3s"`
	UserLockLease time.Duration `envconfig:"USER_LOCK_LEASE" default:"5s"`
}

type SchedulerConfig struct {
	Enabled            bool          `envconfig:"SCHEDULER_ENABLED" default:"true"`
	Interval           time.Duration `envconfig:"SCHEDULER_INTERVAL" default:"1m"`
	ExposeGrace        time.Duration `envconfig:"SCHEDULER_EXPOSE_GRACE" default:"5m"`
	SettleDelay        time.Duration `envconfig:"SCHEDULER_SETTLE_DELAY" default:"30s"`
	Extension          time.Duration `envconfig:"SCHEDULER_EXTENSION" default:"3m"`
	ImminentMinutes    int           `envconfig:"SCHEDULER_IMMINENT_MINUTES" default:"3"`
	CancelRefundWindow time.Duration `envconfig:"SCHEDULER_CANCEL_REFUND_WINDOW" default:"10m"`
	BroadcastActive    bool          `envconfig:"SCHEDULER_BROADCAST_ACTIVE" default:"true"`
}

type ReconcileConfig struct {
	Queue       string        `envconfig:"RECONCILE_QUEUE" default:"memory"`
	Workers     int           `envconfig:"RECONCILE_WORKERS" default:"4"`
	MaxAttempts int           `envconfig:"RECONCILE_MAX_ATTEMPTS" default:"3"`
	RetryDelay  time.Duration `envconfig:"RECONCILE_RETRY_DELAY" default:"1s"`
	BufferSize  int           `envconfig:"RECONCILE_BUFFER_SIZE" default:"1024"`
	Stream      string        `envconfig:"RECONCILE_STREAM" default:"bid_accepted"`
	Group       string        `envconfig:"RECONCILE_GROUP" default:"reconciler"`
	Consumer    string        `envconfig:"RECONCILE_CONSUMER" default:"reconciler-1"`

	// Queue-level redelivery of deliveries whose handler returned an error.
	MaxDeliveries   int           `envconfig:"RECONCILE_MAX_DELIVERIES" default:"5"`
	RedeliveryDelay time.Duration `envconfig:"RECONCILE_REDELIVERY_DELAY" default:"2s"`
	ClaimIdle       time.Duration `envconfig:"RECONCILE_CLAIM_IDLE" default:"30s"`
}

const (
	QueueMemory = "memory"
	QueueRedis  = "redis"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Seoul",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			Addr:     "localhost:16379",
			PoolSize: 10,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Seoul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-auction-engine",
			Duration: "1h",
		},
		Bid: BidConfig{
			LockWait:          2 * time.Second,
			LockLease:         2 * time.Second,
			RollbackLockLease: 30 * time.Second,
			IdempotencyTTL:    10 * time.Minute,
			MinIncrementRate:  decimal.RequireFromString("0.1"),
			MinIncrementUnit:  decimal.NewFromInt(10),
		},
		Funds: FundsConfig{
			CacheTTL:      30 * time.Minute,
			UserLockWait:  time.Second,
			UserLockLease: 5 * time.Second,
		},
		Scheduler: SchedulerConfig{
			Interval:           time.Minute,
			ExposeGrace:        5 * time.Minute,
			SettleDelay:        0,
			Extension:          3 * time.Minute,
			ImminentMinutes:    3,
			CancelRefundWindow: 10 * time.Minute,
		},
		Reconcile: ReconcileConfig{
			Queue:           QueueMemory,
			Workers:         2,
			MaxAttempts:     3,
			RetryDelay:      10 * time.Millisecond,
			BufferSize:      128,
			Stream:          "bid_accepted_test",
			Group:           "reconciler",
			Consumer:        "reconciler-test",
			MaxDeliveries:   3,
			RedeliveryDelay: 10 * time.Millisecond,
			ClaimIdle:       50 * time.Millisecond,
		},
	}
}
