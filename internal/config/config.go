package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"smt_scheduler/internal/domain/scheduling"
	"smt_scheduler/internal/usecase"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the process configuration read from the environment.
//
// Table names are read by the DynamoDB repositories themselves
// (WORK_ORDERS_TABLE, PRODUCTION_LINES_TABLE).
type Config struct {
	HTTPPort     int
	StoreBackend string
	AutoInitDB   bool
	LinesFile    string

	AWSRegion        string
	DynamoDBEndpoint string
	DatabaseURL      string

	KafkaBrokers []string
	KafkaTopic   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	Scheduler SchedulerConfig

	LogLevel    string
	Environment string
}

// SchedulerConfig carries the SCHEDULER_* knobs.
type SchedulerConfig struct {
	LockedPerLine         int
	Budget                time.Duration
	LookaheadDays         int
	ExtendedLookaheadDays int
	LongJobDays           int
	DueDateAware          bool
	ScheduleLateJobs      bool
	ClearConcurrency      int
	Timezone              string
}

// Load reads and validates the environment.
func Load() (*Config, error) {
	p := &parser{}
	defaults := usecase.DefaultAutoScheduleOptions()
	slot := scheduling.DefaultSlotOptions()

	cfg := &Config{
		HTTPPort:         p.int("HTTP_PORT", 8080),
		StoreBackend:     strings.ToLower(getenvDefault("STORE_BACKEND", StoreDynamoDB)),
		AutoInitDB:       p.bool("AUTO_INIT_DB", false),
		LinesFile:        os.Getenv("LINES_FILE"),
		AWSRegion:        getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		KafkaBrokers:     splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:       getenvDefault("KAFKA_SCHEDULE_TOPIC", "smt.schedule.events"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          p.int("REDIS_DB", 0),
		Scheduler: SchedulerConfig{
			LockedPerLine:         p.int("SCHEDULER_LOCKED_PER_LINE", defaults.LockedPerLine),
			Budget:                p.duration("SCHEDULER_BUDGET", defaults.Budget),
			LookaheadDays:         p.int("SCHEDULER_LOOKAHEAD_DAYS", slot.LookaheadDays),
			ExtendedLookaheadDays: p.int("SCHEDULER_EXTENDED_LOOKAHEAD_DAYS", slot.ExtendedLookaheadDays),
			LongJobDays:           p.int("SCHEDULER_LONG_JOB_DAYS", slot.LongJobDays),
			DueDateAware:          p.bool("SCHEDULER_DUE_DATE_AWARE", defaults.Planner.DueDateAware),
			ScheduleLateJobs:      p.bool("SCHEDULER_SCHEDULE_LATE_JOBS", false),
			ClearConcurrency:      p.int("SCHEDULER_CLEAR_CONCURRENCY", defaults.ClearConcurrency),
			Timezone:              getenvDefault("SCHEDULER_TIMEZONE", "UTC"),
		},
		LogLevel:    getenvDefault("LOG_LEVEL", "info"),
		Environment: getenvDefault("ENVIRONMENT", "development"),
	}
	if p.err != nil {
		return nil, p.err
	}

	switch cfg.StoreBackend {
	case StoreDynamoDB:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("%w: DATABASE_URL is required for the postgres store", ErrInvalidConfig)
		}
	default:
		return nil, fmt.Errorf("%w: STORE_BACKEND %q", ErrInvalidConfig, cfg.StoreBackend)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	if _, err := cfg.AutoScheduleOptions(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location resolves the plant time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Scheduler.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: SCHEDULER_TIMEZONE %q: %v", ErrInvalidConfig, c.Scheduler.Timezone, err)
	}
	return loc, nil
}

// AutoScheduleOptions maps the scheduler knobs onto run options.
func (c *Config) AutoScheduleOptions() (usecase.AutoScheduleOptions, error) {
	loc, err := c.Location()
	if err != nil {
		return usecase.AutoScheduleOptions{}, err
	}
	opts := usecase.DefaultAutoScheduleOptions()
	opts.LockedPerLine = c.Scheduler.LockedPerLine
	opts.Budget = c.Scheduler.Budget
	opts.ClearConcurrency = c.Scheduler.ClearConcurrency
	opts.Planner = scheduling.PlannerOptions{
		Slot: scheduling.SlotOptions{
			LookaheadDays:         c.Scheduler.LookaheadDays,
			ExtendedLookaheadDays: c.Scheduler.ExtendedLookaheadDays,
			LongJobDays:           c.Scheduler.LongJobDays,
		},
		DueDateAware:     c.Scheduler.DueDateAware,
		ScheduleLateJobs: c.Scheduler.ScheduleLateJobs,
		Location:         loc,
	}
	if err := opts.Validate(); err != nil {
		return usecase.AutoScheduleOptions{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return opts, nil
}

// parser keeps the first conversion error so Load reports it once.
type parser struct {
	err error
}

func (p *parser) int(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		p.fail(key, raw)
		return def
	}
	return v
}

func (p *parser) bool(key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		p.fail(key, raw)
		return def
	}
	return v
}

// duration accepts Go durations ("45s") or whole seconds ("45").
func (p *parser) duration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(key, raw)
		return def
	}
	return v
}

func (p *parser) fail(key, raw string) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: %s=%q", ErrInvalidConfig, key, raw)
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
