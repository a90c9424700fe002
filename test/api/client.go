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

	"github.com/go-logr/logr"

	"github.com/nscaledev/petfriends/pkg/petfriends"
)

// NewClient creates a PetFriends client from the test configuration.
// Request and response bodies are logged when LOG_REQUESTS or LOG_RESPONSES
// is set, and every non-200 status when DEBUG_LOGGING is set and the logger
// is verbose, see NewLogger.
func NewClient(config *TestConfig, logger logr.Logger) (*petfriends.Client, error) {
	if !config.DebugLogging && !config.LogRequests && !config.LogResponses {
		logger = logr.Discard()
	}

	client, err := petfriends.New(config.BaseURL,
		petfriends.WithTimeout(config.RequestTimeout),
		petfriends.WithLogger(logger),
		petfriends.WithRequestLogging(config.LogRequests, config.LogResponses),
	)
	if err != nil {
		return nil, fmt.Errorf("creating client for %s: %w", config.BaseURL, err)
	}

	return client, nil
}
