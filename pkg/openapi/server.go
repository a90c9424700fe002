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

// Package openapi binds the operations of pkg/petfriends/contract/petfriends.yaml
// to a chi router.  It follows the chi-server layout of oapi-codegen, so
// implementations only see typed parameters.
package openapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

type contextKey string

// AuthKeyScopes is set on the context of operations that require an auth_key
// header.
const AuthKeyScopes contextKey = "auth_key.Scopes"

// PetIDParameter is the pet_id path parameter.
type PetIDParameter = string

// ListPetsParams defines parameters for ListPets.
type ListPetsParams struct {
	Filter *string `form:"filter,omitempty" json:"filter,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Exchange credentials for an API key.
	// (GET /api/key)
	GetApiKey(w http.ResponseWriter, r *http.Request)
	// (POST /api/key)
	PostApiKey(w http.ResponseWriter, r *http.Request)
	// List pets.
	// (GET /api/pets)
	ListPets(w http.ResponseWriter, r *http.Request, params ListPetsParams)
	// Add a pet with a photo.
	// (POST /api/pets)
	AddPet(w http.ResponseWriter, r *http.Request)
	// Update a pet.
	// (PUT /api/pets/{pet_id})
	UpdatePet(w http.ResponseWriter, r *http.Request, petID PetIDParameter)
	// Delete a pet.
	// (DELETE /api/pets/{pet_id})
	DeletePet(w http.ResponseWriter, r *http.Request, petID PetIDParameter)
	// Set the photo of a pet.
	// (POST /api/pets/set_photo/{pet_id})
	SetPetPhoto(w http.ResponseWriter, r *http.Request, petID PetIDParameter)
	// Add a pet without a photo.
	// (POST /api/create_pet_simple)
	CreatePetSimple(w http.ResponseWriter, r *http.Request)
}

// MiddlewareFunc wraps a single operation.
type MiddlewareFunc func(http.Handler) http.Handler

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, handler http.Handler) {
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

func secured(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), AuthKeyScopes, []string{}))
}

func (siw *ServerInterfaceWrapper) petID(w http.ResponseWriter, r *http.Request) (PetIDParameter, bool) {
	var petID PetIDParameter

	if err := runtime.BindStyledParameterWithLocation("simple", false, "pet_id", runtime.ParamLocationPath, chi.URLParam(r, "pet_id"), &petID); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "pet_id", Err: err})
		return "", false
	}

	return petID, true
}

// GetApiKey operation middleware.
func (siw *ServerInterfaceWrapper) GetApiKey(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.GetApiKey))
}

// PostApiKey operation middleware.
func (siw *ServerInterfaceWrapper) PostApiKey(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.PostApiKey))
}

// ListPets operation middleware.
func (siw *ServerInterfaceWrapper) ListPets(w http.ResponseWriter, r *http.Request) {
	r = secured(r)

	var params ListPetsParams

	if err := runtime.BindQueryParameter("form", true, false, "filter", r.URL.Query(), &params.Filter); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "filter", Err: err})
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListPets(w, r, params)
	}))
}

// AddPet operation middleware.
func (siw *ServerInterfaceWrapper) AddPet(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, secured(r), http.HandlerFunc(siw.Handler.AddPet))
}

// UpdatePet operation middleware.
func (siw *ServerInterfaceWrapper) UpdatePet(w http.ResponseWriter, r *http.Request) {
	r = secured(r)

	petID, ok := siw.petID(w, r)
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdatePet(w, r, petID)
	}))
}

// DeletePet operation middleware.
func (siw *ServerInterfaceWrapper) DeletePet(w http.ResponseWriter, r *http.Request) {
	r = secured(r)

	petID, ok := siw.petID(w, r)
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeletePet(w, r, petID)
	}))
}

// SetPetPhoto operation middleware.
func (siw *ServerInterfaceWrapper) SetPetPhoto(w http.ResponseWriter, r *http.Request) {
	r = secured(r)

	petID, ok := siw.petID(w, r)
	if !ok {
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SetPetPhoto(w, r, petID)
	}))
}

// CreatePetSimple operation middleware.
func (siw *ServerInterfaceWrapper) CreatePetSimple(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, secured(r), http.HandlerFunc(siw.Handler.CreatePetSimple))
}

// InvalidParamFormatError is passed to the error handler when a parameter
// does not bind.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// ChiServerOptions configures HandlerWithOptions.
type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

// HandlerWithOptions creates http.Handler with additional options.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}

	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, _ *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/api/key", wrapper.GetApiKey)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/key", wrapper.PostApiKey)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/api/pets", wrapper.ListPets)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/pets", wrapper.AddPet)
	})
	r.Group(func(r chi.Router) {
		r.Put(options.BaseURL+"/api/pets/{pet_id}", wrapper.UpdatePet)
	})
	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/api/pets/{pet_id}", wrapper.DeletePet)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/pets/set_photo/{pet_id}", wrapper.SetPetPhoto)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/create_pet_simple", wrapper.CreatePetSimple)
	})

	return r
}
