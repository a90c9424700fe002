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
	"fmt"
	"net/http"
	"net/url"
)

// Endpoints holds the routes of a deployment.  Paths taking a pet id are
// format strings with a single %s verb.
type Endpoints struct {
	// KeyMethod is GET on the public deployment, older ones expect POST.
	KeyMethod     string
	KeyPath       string
	PetsPath      string
	CreatePetPath string
	PetPath       string
	SetPhotoPath  string
}

// NewEndpoints returns the routes of the public deployment.
func NewEndpoints() *Endpoints {
	return &Endpoints{
		KeyMethod:     http.MethodGet,
		KeyPath:       "/api/key",
		PetsPath:      "/api/pets",
		CreatePetPath: "/api/create_pet_simple",
		PetPath:       "/api/pets/%s",
		SetPhotoPath:  "/api/pets/set_photo/%s",
	}
}

// Authentication endpoints.
func (e *Endpoints) APIKey() string {
	return e.KeyPath
}

// Pet endpoints.
func (e *Endpoints) ListPets(filter Filter) string {
	query := url.Values{}
	query.Set("filter", string(filter))

	return e.PetsPath + "?" + query.Encode()
}

func (e *Endpoints) AddPet() string {
	return e.PetsPath
}

func (e *Endpoints) CreatePetSimple() string {
	return e.CreatePetPath
}

func (e *Endpoints) UpdatePet(petID string) string {
	return fmt.Sprintf(e.PetPath, url.PathEscape(petID))
}

func (e *Endpoints) DeletePet(petID string) string {
	return fmt.Sprintf(e.PetPath, url.PathEscape(petID))
}

func (e *Endpoints) SetPhoto(petID string) string {
	return fmt.Sprintf(e.SetPhotoPath, url.PathEscape(petID))
}
