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
	"encoding/json"
	"fmt"
)

// Filter selects which pets a listing returns.
type Filter string

const (
	// FilterAll lists every pet on the shelter.
	FilterAll Filter = ""
	// FilterMyPets lists the pets owned by the key holder.
	FilterMyPets Filter = "my_pets"
)

// PetInfo is the textual part of a pet record as submitted by a client.
// Age is free text because the API accepts anything in that field.
type PetInfo struct {
	Name       string
	AnimalType string
	Age        string
}

// NewPet is a pet submitted together with a photo file.
type NewPet struct {
	PetInfo

	PhotoPath string
}

// APIKey is the body of a successful key request.
type APIKey struct {
	Key string `json:"key"`
}

// Pet is a pet record as returned by the API.
type Pet struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	AnimalType string     `json:"animal_type"`
	Age        FlexString `json:"age"`
	PetPhoto   string     `json:"pet_photo"`
	CreatedAt  FlexString `json:"created_at"`
	UserID     string     `json:"user_id"`
}

// PetList is the body of a listing, newest pet first.
type PetList struct {
	Pets []Pet `json:"pets"`
}

// FlexString decodes a JSON string, number or null into a string.
// The API is not consistent about how it encodes ages and timestamps.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}

		*s = FlexString(v)
	default:
		var v json.Number
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("flex string: %w", err)
		}

		*s = FlexString(v.String())
	}

	return nil
}

func (s FlexString) String() string {
	return string(s)
}
