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

package api

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/nscaledev/petfriends/pkg/options"
	"github.com/nscaledev/petfriends/pkg/petfriends"
)

// Credentials used against the in-process fake.
const (
	FakeEmail    = "tester@petfriends.test"
	FakePassword = "fake-password"
)

type TestConfig struct {
	BaseURL          string
	Email            string
	Password         string
	RequestTimeout   time.Duration
	TestTimeout      time.Duration
	UseFakeShelter   bool
	StrictValidation bool
	ValidateContract bool
	SkipIntegration  bool
	DebugLogging     bool
	LogRequests      bool
	LogResponses     bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:          options.Getenv("API_BASE_URL", petfriends.DefaultBaseURL),
		Email:            os.Getenv("PETFRIENDS_EMAIL"),
		Password:         os.Getenv("PETFRIENDS_PASSWORD"),
		RequestTimeout:   options.GetDuration("REQUEST_TIMEOUT", petfriends.DefaultTimeout),
		TestTimeout:      options.GetDuration("TEST_TIMEOUT", 5*time.Minute),
		UseFakeShelter:   getBoolWithDefault("USE_FAKE_SHELTER", false),
		StrictValidation: getBoolWithDefault("STRICT_VALIDATION", false),
		ValidateContract: getBoolWithDefault("VALIDATE_CONTRACT", true),
		SkipIntegration:  getBoolWithDefault("SKIP_INTEGRATION", false),
		DebugLogging:     getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:      getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:     getBoolWithDefault("LOG_RESPONSES", false),
	}

	if config.UseFakeShelter {
		// The base URL is only known once the fake is listening.
		config.Email = FakeEmail
		config.Password = FakePassword
	}

	if config.SkipIntegration {
		return config, nil
	}

	// Validate required fields
	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
		"../../test/.env",    // From test/api directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing environment variables take precedence over the file.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := map[string]string{
		"PETFRIENDS_EMAIL":    config.Email,
		"PETFRIENDS_PASSWORD": config.Password,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)

		return fmt.Errorf("missing required configuration: %s. Please set these environment variables or add them to a .env file, or the gh secrets", strings.Join(missing, ", "))
	}

	return nil
}
