package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/studiopayroll/payroll-engine-go/internal/domain/payroll"
	"github.com/studiopayroll/payroll-engine-go/internal/domain/timecard"
	"github.com/studiopayroll/payroll-engine-go/internal/pkg/timeutil"
)

type Config struct {
	App      AppConfig
	Payroll  PayrollConfig
	Schedule ScheduleConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// PayrollConfig holds the per-cutoff amounts. These are flat figures in this
// domain, revised by finance from time to time, so they load from the
// environment instead of being compiled in.
type PayrollConfig struct {
	SSSAmount        decimal.Decimal
	PagIbigAmount    decimal.Decimal
	PhilHealthAmount decimal.Decimal

	InternAllowancePerDay decimal.Decimal
	OwnerCutoffPay        decimal.Decimal

	OBInternRate       decimal.Decimal
	OBVideographerRate decimal.Decimal
	OBTalentRate       decimal.Decimal
	OBDefaultRate      decimal.Decimal
}

// ScheduleConfig holds the official shift window clocks and the half-day
// policy figures.
type ScheduleConfig struct {
	ShiftStart  timeutil.Clock
	ShiftEnd    timeutil.Clock
	EarliestIn  timeutil.Clock
	EarliestOut timeutil.Clock
	LunchStart  timeutil.Clock
	LunchEnd    timeutil.Clock
	HalfDayEnd  timeutil.Clock

	FullDayHours float64
	HalfDayHours float64
}

func Load() (*Config, error) {
	// A missing .env is fine; the defaults below cover local use.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	defaults := payroll.DefaultRates()
	config.Payroll = PayrollConfig{
		SSSAmount:             getEnvDecimal("SSS_AMOUNT", defaults.SSS),
		PagIbigAmount:         getEnvDecimal("PAGIBIG_AMOUNT", defaults.PagIbig),
		PhilHealthAmount:      getEnvDecimal("PHILHEALTH_AMOUNT", defaults.PhilHealth),
		InternAllowancePerDay: getEnvDecimal("INTERN_ALLOWANCE_PER_DAY", defaults.InternAllowancePerDay),
		OwnerCutoffPay:        getEnvDecimal("OWNER_CUTOFF_PAY", defaults.OwnerCutoffPay),
		OBInternRate:          getEnvDecimal("OB_INTERN_RATE", defaults.OBInternRate),
		OBVideographerRate:    getEnvDecimal("OB_VIDEOGRAPHER_RATE", defaults.OBVideographerRate),
		OBTalentRate:          getEnvDecimal("OB_TALENT_RATE", defaults.OBTalentRate),
		OBDefaultRate:         getEnvDecimal("OB_DEFAULT_RATE", defaults.OBDefaultRate),
	}

	sched := timecard.DefaultSchedule()
	config.Schedule = ScheduleConfig{
		ShiftStart:  getEnvClock("SHIFT_START", sched.ShiftStart),
		ShiftEnd:    getEnvClock("SHIFT_END", sched.ShiftEnd),
		EarliestIn:  getEnvClock("EARLIEST_TIME_IN", sched.EarliestIn),
		EarliestOut: getEnvClock("EARLIEST_TIME_OUT", sched.EarliestOut),
		LunchStart:  getEnvClock("LUNCH_START", sched.LunchStart),
		LunchEnd:    getEnvClock("LUNCH_END", sched.LunchEnd),
		HalfDayEnd:  getEnvClock("HALF_DAY_END", sched.HalfDayEnd),

		FullDayHours: getEnvFloat("FULL_DAY_HOURS", sched.FullDayHours),
		HalfDayHours: getEnvFloat("HALF_DAY_HOURS", sched.HalfDayHours),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	for name, v := range map[string]decimal.Decimal{
		"SSS_AMOUNT":               c.Payroll.SSSAmount,
		"PAGIBIG_AMOUNT":           c.Payroll.PagIbigAmount,
		"PHILHEALTH_AMOUNT":        c.Payroll.PhilHealthAmount,
		"INTERN_ALLOWANCE_PER_DAY": c.Payroll.InternAllowancePerDay,
		"OWNER_CUTOFF_PAY":         c.Payroll.OwnerCutoffPay,
	} {
		if v.IsNegative() {
			return fmt.Errorf("%s must be non-negative", name)
		}
	}
	if c.Schedule.ShiftEnd <= c.Schedule.ShiftStart {
		return fmt.Errorf("SHIFT_END must be after SHIFT_START")
	}
	if c.Schedule.LunchEnd <= c.Schedule.LunchStart {
		return fmt.Errorf("LUNCH_END must be after LUNCH_START")
	}
	if c.Schedule.FullDayHours <= 0 {
		return fmt.Errorf("FULL_DAY_HOURS must be positive")
	}
	if c.Schedule.HalfDayHours < 0 || c.Schedule.HalfDayHours > c.Schedule.FullDayHours {
		return fmt.Errorf("HALF_DAY_HOURS must be between 0 and FULL_DAY_HOURS")
	}
	return nil
}

// Rates materializes the configured amounts for the calculator. The premium
// multipliers are statutory and stay fixed.
func (c *Config) Rates() payroll.Rates {
	rates := payroll.DefaultRates()
	rates.SSS = c.Payroll.SSSAmount
	rates.PagIbig = c.Payroll.PagIbigAmount
	rates.PhilHealth = c.Payroll.PhilHealthAmount
	rates.InternAllowancePerDay = c.Payroll.InternAllowancePerDay
	rates.OwnerCutoffPay = c.Payroll.OwnerCutoffPay
	rates.OBInternRate = c.Payroll.OBInternRate
	rates.OBVideographerRate = c.Payroll.OBVideographerRate
	rates.OBTalentRate = c.Payroll.OBTalentRate
	rates.OBDefaultRate = c.Payroll.OBDefaultRate
	return rates
}

// WorkSchedule materializes the configured shift window for the merger.
func (c *Config) WorkSchedule() timecard.Schedule {
	sched := timecard.DefaultSchedule()
	sched.ShiftStart = c.Schedule.ShiftStart
	sched.ShiftEnd = c.Schedule.ShiftEnd
	sched.EarliestIn = c.Schedule.EarliestIn
	sched.EarliestOut = c.Schedule.EarliestOut
	sched.LunchStart = c.Schedule.LunchStart
	sched.LunchEnd = c.Schedule.LunchEnd
	sched.HalfDayEnd = c.Schedule.HalfDayEnd
	sched.FullDayHours = c.Schedule.FullDayHours
	sched.HalfDayHours = c.Schedule.HalfDayHours
	return sched
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	return strings.Split(getEnv(key, fallback), ",")
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return fallback
	}
	return d
}

func getEnvClock(key string, fallback timeutil.Clock) timeutil.Clock {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	c, err := timeutil.ParseClock(value)
	if err != nil {
		return fallback
	}
	return c
}
