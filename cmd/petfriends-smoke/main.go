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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/nscaledev/petfriends/pkg/options"
	"github.com/nscaledev/petfriends/pkg/petfriends"
	"github.com/nscaledev/petfriends/pkg/smoke"
)

var errMissingCredentials = errors.New("an email and password are required")

func run() error {
	if err := options.LoadEnvFile(); err != nil {
		return err
	}

	var (
		logging  options.LoggingOptions
		baseURL  string
		email    string
		password string
		timeout  time.Duration
		petName  string
	)

	logging.AddFlags(pflag.CommandLine)

	pflag.StringVar(&baseURL, "base-url", options.Getenv("API_BASE_URL", petfriends.DefaultBaseURL), "PetFriends API to probe")
	pflag.StringVar(&email, "email", os.Getenv("PETFRIENDS_EMAIL"), "Account email")
	pflag.StringVar(&password, "password", os.Getenv("PETFRIENDS_PASSWORD"), "Account password")
	pflag.DurationVar(&timeout, "timeout", options.GetDuration("REQUEST_TIMEOUT", petfriends.DefaultTimeout), "Per request timeout")
	pflag.StringVar(&petName, "pet-name", "smoke-test", "Name of the pet created and deleted by the run")

	pflag.Parse()

	if email == "" || password == "" {
		return errMissingCredentials
	}

	logger, flush, err := logging.Logger()
	if err != nil {
		return err
	}

	defer flush()

	logger = logger.WithName("smoke")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := petfriends.New(baseURL,
		petfriends.WithTimeout(timeout),
		petfriends.WithLogger(logger.WithName("client")),
	)
	if err != nil {
		return err
	}

	logger.Info("smoke run starting", "baseURL", client.BaseURL())

	report, err := smoke.New(client, email, password, smoke.WithLogger(logger), smoke.WithPetName(petName)).Run(ctx)
	if err != nil {
		return err
	}

	var total time.Duration

	for _, step := range report.Steps {
		total += step.Duration
	}

	logger.Info("smoke run passed", "steps", len(report.Steps), "duration", total)

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
