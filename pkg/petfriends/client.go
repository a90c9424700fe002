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
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

const (
	// DefaultBaseURL is the public PetFriends deployment.
	DefaultBaseURL = "https://petfriends.skillfactory.ru"

	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second

	// loggedBodyLimit keeps base64 photos out of the logs.
	loggedBodyLimit = 512
)

// Client talks to a PetFriends deployment.  It holds no per-user state, the
// API key is passed explicitly to every call.
type Client struct {
	baseURL      string
	client       *http.Client
	timeout      time.Duration
	endpoints    *Endpoints
	logger       logr.Logger
	logRequests  bool
	logResponses bool
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.  A nil client is
// ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithTimeout sets the per-request timeout.  It applies to a copy of the
// HTTP client, one passed to WithHTTPClient is left untouched.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger sets the logger, which discards by default.
func WithLogger(logger logr.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRequestLogging logs every request line and, optionally, response bodies.
func WithRequestLogging(requests, responses bool) Option {
	return func(c *Client) {
		c.logRequests = requests
		c.logResponses = responses
	}
}

// WithEndpoints targets a deployment with different routes.
func WithEndpoints(endpoints *Endpoints) Option {
	return func(c *Client) {
		if endpoints != nil {
			c.endpoints = endpoints
		}
	}
}

// New returns a client for the deployment at baseURL.
func New(baseURL string, options ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}

	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
		endpoints: NewEndpoints(),
		logger:    logr.Discard(),
	}

	for _, option := range options {
		option(c)
	}

	if c.timeout > 0 {
		client := *c.client
		client.Timeout = c.timeout
		c.client = &client
	}

	return c, nil
}

// BaseURL returns the deployment the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetAPIKey exchanges credentials for an API key.
func (c *Client) GetAPIKey(ctx context.Context, email, password string) (*Response, error) {
	header := http.Header{}
	header.Set("email", email)
	header.Set("password", password)

	return c.doRequest(ctx, c.endpoints.KeyMethod, c.endpoints.APIKey(), header, nil)
}

// ListPets lists all pets, or only the key holder's with FilterMyPets.
func (c *Client) ListPets(ctx context.Context, key string, filter Filter) (*Response, error) {
	return c.doRequest(ctx, http.MethodGet, c.endpoints.ListPets(filter), authHeader(key), nil)
}

// AddPet creates a pet with a photo.
func (c *Client) AddPet(ctx context.Context, key string, pet NewPet) (*Response, error) {
	form := newMultipartForm()

	if err := form.addFields(petInfoValues(pet.PetInfo)); err != nil {
		return nil, err
	}

	if err := form.addPhoto(photoField, pet.PhotoPath); err != nil {
		return nil, err
	}

	return c.sendForm(ctx, http.MethodPost, c.endpoints.AddPet(), key, form)
}

// CreatePetSimple creates a pet without a photo.
func (c *Client) CreatePetSimple(ctx context.Context, key string, info PetInfo) (*Response, error) {
	return c.sendValues(ctx, http.MethodPost, c.endpoints.CreatePetSimple(), key, petInfoValues(info))
}

// UpdatePet replaces the name, type and age of a pet.
func (c *Client) UpdatePet(ctx context.Context, key, petID string, info PetInfo) (*Response, error) {
	return c.sendValues(ctx, http.MethodPut, c.endpoints.UpdatePet(petID), key, petInfoValues(info))
}

// DeletePet deletes a pet.
func (c *Client) DeletePet(ctx context.Context, key, petID string) (*Response, error) {
	return c.doRequest(ctx, http.MethodDelete, c.endpoints.DeletePet(petID), authHeader(key), nil)
}

// AddPhoto sets the photo of an existing pet.
func (c *Client) AddPhoto(ctx context.Context, key, petID, photoPath string) (*Response, error) {
	form := newMultipartForm()

	if err := form.addPhoto(photoField, photoPath); err != nil {
		return nil, err
	}

	return c.sendForm(ctx, http.MethodPost, c.endpoints.SetPhoto(petID), key, form)
}

func (c *Client) sendValues(ctx context.Context, method, path, key string, values url.Values) (*Response, error) {
	header := authHeader(key)
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.doRequest(ctx, method, path, header, strings.NewReader(values.Encode()))
}

func (c *Client) sendForm(ctx context.Context, method, path, key string, form *multipartForm) (*Response, error) {
	body, contentType, err := form.finish()
	if err != nil {
		return nil, err
	}

	header := authHeader(key)
	header.Set("Content-Type", contentType)

	return c.doRequest(ctx, method, path, header, bytes.NewReader(body))
}

func authHeader(key string) http.Header {
	header := http.Header{}
	header.Set("auth_key", key)

	return header
}

func petInfoValues(info PetInfo) url.Values {
	values := url.Values{}
	values.Set("name", info.Name)
	values.Set("animal_type", info.AnimalType)
	values.Set("age", info.Age)

	return values
}

// doRequest performs a single best-effort call.  The status code is returned
// as data, only transport failures are errors.
func (c *Client) doRequest(ctx context.Context, method, path string, header http.Header, body io.Reader) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for name, values := range header {
		req.Header[name] = values
	}

	req.Header.Set("Accept", "application/json")

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=petfriends")

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error(err, "http request failed", "method", method, "path", path, "duration", duration, "traceID", TraceID(traceParent))
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error(err, "reading response body", "method", method, "path", path, "status", resp.StatusCode, "traceID", TraceID(traceParent))
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.logRequests {
		c.logger.Info("request", "method", method, "path", path, "status", resp.StatusCode, "duration", duration, "traceID", TraceID(traceParent))
	}

	if c.logResponses && len(respBody) > 0 {
		c.logger.Info("response body", "method", method, "path", path, "body", truncate(respBody, loggedBodyLimit))
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.V(1).Info("non-200 status", "method", method, "path", path, "status", resp.StatusCode, "traceID", TraceID(traceParent))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		Duration:   duration,
		Request:    req,
	}, nil
}
