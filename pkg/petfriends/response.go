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

package petfriends

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

var (
	// ErrMissingKey is returned when a key response carries no key.
	ErrMissingKey = errors.New("response contains no api key")

	// ErrNotJSON is returned when a typed decode is attempted on a non-JSON body.
	ErrNotJSON = errors.New("response body is not a json object")
)

// Response is the outcome of a single API call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Duration   time.Duration

	// Request is the request that produced this response, with its body consumed.
	Request *http.Request

	once   sync.Once
	object map[string]any
}

// OK reports whether the API answered 200.
func (r *Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Text returns the raw body.
func (r *Response) Text() string {
	return string(r.Body)
}

// JSON returns the body decoded as a JSON object.  The second return value
// is false when the body is empty, malformed, or not an object.
func (r *Response) JSON() (map[string]any, bool) {
	r.once.Do(func() {
		var object map[string]any
		if err := json.Unmarshal(r.Body, &object); err == nil && object != nil {
			r.object = object
		}
	})

	return r.object, r.object != nil
}

// Has reports whether the body is a JSON object with the given top-level field.
func (r *Response) Has(field string) bool {
	object, ok := r.JSON()
	if !ok {
		return false
	}

	_, ok = object[field]

	return ok
}

// Field returns a top-level field of a JSON body, or nil.
func (r *Response) Field(field string) any {
	object, ok := r.JSON()
	if !ok {
		return nil
	}

	return object[field]
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if _, ok := r.JSON(); !ok {
		return fmt.Errorf("%w (status %d): %s", ErrNotJSON, r.StatusCode, truncate(r.Body, 256))
	}

	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// Key extracts the API key from a key response.
func (r *Response) Key() (string, error) {
	var key APIKey
	if err := r.Decode(&key); err != nil {
		return "", err
	}

	if key.Key == "" {
		return "", ErrMissingKey
	}

	return key.Key, nil
}

// Pet decodes a single pet record.
func (r *Response) Pet() (*Pet, error) {
	var pet Pet
	if err := r.Decode(&pet); err != nil {
		return nil, err
	}

	return &pet, nil
}

// PetList decodes a pet listing.
func (r *Response) PetList() (*PetList, error) {
	var list PetList
	if err := r.Decode(&list); err != nil {
		return nil, err
	}

	return &list, nil
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}

	return string(body[:limit]) + "..."
}
