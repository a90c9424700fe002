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
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// NewLogger returns a logger writing to w.  DEBUG_LOGGING raises the
// verbosity so non-200 statuses and fake shelter requests are logged.
func NewLogger(config *TestConfig, w io.Writer) logr.Logger {
	var verbosity int

	if config.DebugLogging {
		verbosity = 1
	}

	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}

		fmt.Fprintln(w, args)
	}, funcr.Options{
		Verbosity: verbosity,
	})
}
