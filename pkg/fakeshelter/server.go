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

// Package fakeshelter is an in-memory stand-in for the PetFriends API.
//
// It serves the same routes with the same status codes and body shapes as
// the public deployment, including its lax validation: ages may be negative
// or text, fields may be empty and photos may be any size.  That keeps the
// end-to-end suites meaningful when run offline.
package fakeshelter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"

	"github.com/nscaledev/petfriends/pkg/openapi"
	"github.com/nscaledev/petfriends/pkg/petfriends/contract"
)

const (
	// defaultMaxUploadSize bounds request bodies, generously enough for 15MB photos.
	defaultMaxUploadSize = 64 << 20

	// maxMemory is the part of a multipart body held in memory.
	maxMemory = 32 << 20
)

// Server is an http.Handler serving the PetFriends API from memory.
type Server struct {
	store         *store
	router        chi.Router
	logger        logr.Logger
	maxUploadSize int64
}

var _ openapi.ServerInterface = &Server{}

// Option customizes a Server.
type Option func(*Server)

// WithLogger sets the request logger, which discards by default.
func WithLogger(logger logr.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithClock overrides the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.store.now = now
	}
}

// WithMaxUploadSize bounds the size of pet and photo uploads.
func WithMaxUploadSize(size int64) Option {
	return func(s *Server) {
		if size > 0 {
			s.maxUploadSize = size
		}
	}
}

// New returns an empty shelter with no registered users.
func New(options ...Option) *Server {
	s := &Server{
		store:         newStore(),
		logger:        logr.Discard(),
		maxUploadSize: defaultMaxUploadSize,
	}

	for _, option := range options {
		option(s)
	}

	s.router = s.routes()

	return s
}

// AddUser registers credentials that may request a key.
func (s *Server) AddUser(email, password string) {
	s.store.addUser(email, password)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/openapi.yaml", serveDocument)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeHTMLError(w, http.StatusNotFound, "The requested URL was not found on the server.")
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeHTMLError(w, http.StatusMethodNotAllowed, "The method is not allowed for the requested URL.")
	})

	options := openapi.ChiServerOptions{
		BaseRouter: r,
		Middlewares: []openapi.MiddlewareFunc{
			s.authenticate,
		},
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			writeHTMLError(w, http.StatusBadRequest, err.Error())
		},
	}

	openapi.HandlerWithOptions(s, options)

	return r
}

// serveDocument publishes the OpenAPI description the fake implements.
func serveDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(contract.Document())
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.V(1).Info("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"requestID", middleware.GetReqID(r.Context()),
			"traceparent", r.Header.Get("Traceparent"))
	})
}
