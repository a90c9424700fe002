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

//go:generate go tool mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

package smoke

import (
	"context"

	"github.com/nscaledev/petfriends/pkg/petfriends"
)

// Shelter is the subset of the PetFriends API the smoke run exercises.
// *petfriends.Client satisfies it.
type Shelter interface {
	GetAPIKey(ctx context.Context, email, password string) (*petfriends.Response, error)
	ListPets(ctx context.Context, key string, filter petfriends.Filter) (*petfriends.Response, error)
	CreatePetSimple(ctx context.Context, key string, info petfriends.PetInfo) (*petfriends.Response, error)
	UpdatePet(ctx context.Context, key, petID string, info petfriends.PetInfo) (*petfriends.Response, error)
	DeletePet(ctx context.Context, key, petID string) (*petfriends.Response, error)
}

var _ Shelter = &petfriends.Client{}
