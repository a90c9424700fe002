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

package fakeshelter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/nscaledev/petfriends/pkg/openapi"
	"github.com/nscaledev/petfriends/pkg/petfriends"

	"k8s.io/utils/ptr"
)

const photoField = "pet_photo"

var errUnsupportedPhoto = errors.New("photo must be a jpeg or png image")

type contextKey struct{}

func userFromContext(ctx context.Context) *user {
	//nolint:forcetypeassert // set by authenticate for every secured operation
	return ctx.Value(contextKey{}).(*user)
}

// authenticate resolves the auth_key header of secured operations.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Context().Value(openapi.AuthKeyScopes) == nil {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get("auth_key")
		if key == "" {
			writeHTMLError(w, http.StatusForbidden, "Please provide 'auth_key' Header")
			return
		}

		u, ok := s.store.userForKey(key)
		if !ok {
			writeHTMLError(w, http.StatusForbidden, "Please provide 'auth_key' Header")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, u)))
	})
}

func (s *Server) GetApiKey(w http.ResponseWriter, r *http.Request) {
	s.getKey(w, r)
}

func (s *Server) PostApiKey(w http.ResponseWriter, r *http.Request) {
	s.getKey(w, r)
}

func (s *Server) getKey(w http.ResponseWriter, r *http.Request) {
	key, ok := s.store.login(r.Header.Get("email"), r.Header.Get("password"))
	if !ok {
		writeHTMLError(w, http.StatusForbidden, "This user wasn't found in database")
		return
	}

	writeJSON(w, http.StatusOK, petfriends.APIKey{Key: key})
}

func (s *Server) ListPets(w http.ResponseWriter, r *http.Request, params openapi.ListPetsParams) {
	var owner string

	switch petfriends.Filter(ptr.Deref(params.Filter, "")) {
	case petfriends.FilterAll:
	case petfriends.FilterMyPets:
		owner = userFromContext(r.Context()).id
	default:
		writeHTMLError(w, http.StatusBadRequest, "Filter value is incorrect")
		return
	}

	setUncacheable(w)
	writeJSON(w, http.StatusOK, petfriends.PetList{Pets: s.store.list(owner)})
}

func (s *Server) AddPet(w http.ResponseWriter, r *http.Request) {
	fields, ok := s.requiredFields(w, r)
	if !ok {
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		writeHTMLError(w, http.StatusBadRequest, err.Error())
		return
	}

	pet := s.store.create(userFromContext(r.Context()), fields["name"], fields["animal_type"], fields["age"], photo)

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) CreatePetSimple(w http.ResponseWriter, r *http.Request) {
	fields, ok := s.requiredFields(w, r)
	if !ok {
		return
	}

	pet := s.store.create(userFromContext(r.Context()), fields["name"], fields["animal_type"], fields["age"], "")

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) UpdatePet(w http.ResponseWriter, r *http.Request, petID openapi.PetIDParameter) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)

	if err := parseForm(r); err != nil {
		writeHTMLError(w, http.StatusBadRequest, "The browser (or proxy) sent a request that this server could not understand.")
		return
	}

	// Fields sent empty keep their previous value.
	var update petUpdate

	if v := r.PostForm.Get("name"); v != "" {
		update.name = ptr.To(v)
	}

	if v := r.PostForm.Get("animal_type"); v != "" {
		update.animalType = ptr.To(v)
	}

	if v := r.PostForm.Get("age"); v != "" {
		update.age = ptr.To(v)
	}

	pet, err := s.store.update(userFromContext(r.Context()), petID, update)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) SetPetPhoto(w http.ResponseWriter, r *http.Request, petID openapi.PetIDParameter) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)

	if err := parseForm(r); err != nil {
		writeHTMLError(w, http.StatusBadRequest, "The browser (or proxy) sent a request that this server could not understand.")
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		writeHTMLError(w, http.StatusBadRequest, err.Error())
		return
	}

	pet, err := s.store.setPhoto(userFromContext(r.Context()), petID, photo)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) DeletePet(w http.ResponseWriter, r *http.Request, petID openapi.PetIDParameter) {
	if err := s.store.remove(userFromContext(r.Context()), petID); err != nil {
		writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxMemory)
	}

	return r.ParseForm()
}

// requiredFields checks the pet fields are present, though they may be empty.
func (s *Server) requiredFields(w http.ResponseWriter, r *http.Request) (map[string]string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)

	if err := parseForm(r); err != nil {
		writeHTMLError(w, http.StatusBadRequest, "The browser (or proxy) sent a request that this server could not understand.")
		return nil, false
	}

	fields := map[string]string{}

	for _, name := range []string{"name", "animal_type", "age"} {
		values, ok := r.PostForm[name]
		if !ok {
			writeHTMLError(w, http.StatusBadRequest, fmt.Sprintf("Missing required field '%s'", name))
			return nil, false
		}

		fields[name] = values[0]
	}

	return fields, true
}

// readPhoto returns the uploaded photo as a data URI.
func readPhoto(r *http.Request) (string, error) {
	file, header, err := r.FormFile(photoField)
	if err != nil {
		return "", fmt.Errorf("missing required file '%s'", photoField)
	}

	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("reading photo: %w", err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	if contentType != "image/jpeg" && contentType != "image/png" {
		return "", errUnsupportedPhoto
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errNotFound):
		writeHTMLError(w, http.StatusBadRequest, "Pet with this id wasn't found")
	case errors.Is(err, errForbidden):
		writeHTMLError(w, http.StatusForbidden, "This pet belongs to another user")
	default:
		writeHTMLError(w, http.StatusInternalServerError, err.Error())
	}
}

// setUncacheable marks responses that change with every write.
func setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeHTMLError mimics the HTML error pages of the public deployment.
func writeHTMLError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, "<!DOCTYPE HTML PUBLIC \"-//W3C//DTD HTML 3.2 Final//EN\">\n<title>%d %s</title>\n<h1>%s</h1>\n<p>%s</p>\n",
		status, http.StatusText(status), http.StatusText(status), html.EscapeString(message))
}
