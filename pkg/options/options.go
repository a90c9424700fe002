/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package options holds flags shared by the command line tools.
package options

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingOptions selects how the tools log.
type LoggingOptions struct {
	Level string
	JSON  bool
}

func (o *LoggingOptions) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.Level, "log-level", "info", "Log level, one of debug, info, warn or error")
	f.BoolVar(&o.JSON, "json-logs", false, "Log JSON lines rather than console text")
}

// Logger builds a zap logger and adapts it to logr.  The returned function
// flushes buffered entries and should be called before exiting.
func (o *LoggingOptions) Logger() (logr.Logger, func(), error) {
	var level zapcore.Level

	if err := level.UnmarshalText([]byte(o.Level)); err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("invalid log level %q: %w", o.Level, err)
	}

	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	if o.JSON {
		config = zap.NewProductionConfig()
	}

	config.Level.SetLevel(level)

	logger, err := config.Build()
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("building logger: %w", err)
	}

	flush := func() {
		_ = logger.Sync()
	}

	return zapr.NewLogger(logger), flush, nil
}

// LoadEnvFile loads a .env file from the working directory, when there is
// one.  Variables already in the environment take precedence.
func LoadEnvFile() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	return nil
}

// Getenv returns the value of an environment variable, or a default.
func Getenv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return defaultValue
}

// GetDuration returns an environment variable parsed as a duration.  Unset
// or malformed values yield the default.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}
