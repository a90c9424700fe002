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

// Package contract checks PetFriends responses against an OpenAPI description
// of the API.
package contract

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"

	"github.com/nscaledev/petfriends/pkg/petfriends"
)

//go:embed petfriends.yaml
var document []byte

// ErrNoRequest is returned for responses that do not record their request.
var ErrNoRequest = errors.New("response has no originating request")

// Validator validates responses against the embedded document.
type Validator struct {
	doc    *openapi3.T
	router routers.Router
}

// Document returns the raw OpenAPI document.
func Document() []byte {
	return document
}

// New loads and validates the embedded document.
func New(ctx context.Context) (*Validator, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}

	// Match on path alone, the suites run against several hosts.
	doc.Servers = nil

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("building openapi router: %w", err)
	}

	return &Validator{
		doc:    doc,
		router: router,
	}, nil
}

// ValidateResponse checks the status, headers and body of a response against
// the operation its request was routed to.
func (v *Validator) ValidateResponse(ctx context.Context, resp *petfriends.Response) error {
	if resp.Request == nil {
		return ErrNoRequest
	}

	route, pathParams, err := v.router.FindRoute(resp.Request)
	if err != nil {
		return fmt.Errorf("finding route for %s %s: %w", resp.Request.Method, resp.Request.URL.Path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    resp.Request,
			PathParams: pathParams,
			Route:      route,
		},
		Status: resp.StatusCode,
		Header: resp.Header,
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	input.SetBodyBytes(resp.Body)

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%s %s (status %d) violates contract: %w", resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, err)
	}

	return nil
}

// Operations returns the operation IDs the document describes.
func (v *Validator) Operations() []string {
	var ids []string

	for _, path := range v.doc.Paths.InMatchingOrder() {
		for _, operation := range v.doc.Paths.Value(path).Operations() {
			ids = append(ids, operation.OperationID)
		}
	}

	sort.Strings(ids)

	return ids
}
