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
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/nscaledev/petfriends/pkg/fakeshelter"
	"github.com/nscaledev/petfriends/pkg/options"
)

var errInvalidUser = errors.New("users must be given as email:password")

func run() error {
	var (
		logging options.LoggingOptions
		listen  string
		users   []string
	)

	logging.AddFlags(pflag.CommandLine)

	pflag.StringVar(&listen, "listen", ":8080", "Address to serve the API on")
	pflag.StringArrayVar(&users, "user", nil, "Account to register, as email:password, may be repeated")

	pflag.Parse()

	logger, flush, err := logging.Logger()
	if err != nil {
		return err
	}

	defer flush()

	logger = logger.WithName("fake")

	shelter := fakeshelter.New(fakeshelter.WithLogger(logger))

	for _, user := range users {
		email, password, ok := strings.Cut(user, ":")
		if !ok || email == "" {
			return fmt.Errorf("%w: %q", errInvalidUser, user)
		}

		shelter.AddUser(email, password)

		logger.Info("registered user", "email", email)
	}

	server := &http.Server{
		Addr:              listen,
		Handler:           shelter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errs := make(chan error, 1)

	go func() {
		logger.Info("serving", "address", listen)

		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	logger.Info("stopped")

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
