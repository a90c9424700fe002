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
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nscaledev/petfriends/pkg/petfriends"
)

var (
	errNotFound  = errors.New("pet not found")
	errForbidden = errors.New("pet belongs to another user")
)

type user struct {
	id       string
	password string
	key      string
}

type pet struct {
	id         string
	owner      string
	name       string
	animalType string
	age        string
	photo      string
	created    time.Time
}

// petUpdate carries the fields of an update, nil meaning keep.
type petUpdate struct {
	name       *string
	animalType *string
	age        *string
}

type store struct {
	mu    sync.RWMutex
	now   func() time.Time
	users map[string]*user
	keys  map[string]*user
	// pets is ordered oldest first.
	pets []*pet
}

func newStore() *store {
	return &store{
		now:   time.Now,
		users: map[string]*user{},
		keys:  map[string]*user{},
	}
}

func newKey() string {
	bytes := make([]byte, 28)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

func (s *store) addUser(email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.users[email]; ok {
		existing.password = password
		return
	}

	u := &user{
		id:       uuid.NewString(),
		password: password,
		key:      newKey(),
	}

	s.users[email] = u
	s.keys[u.key] = u
}

// login returns the user's key, which is stable across logins.
func (s *store) login(email, password string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok || email == "" || u.password != password {
		return "", false
	}

	return u.key, true
}

func (s *store) userForKey(key string) (*user, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.keys[key]

	return u, ok
}

func (s *store) create(owner *user, name, animalType, age, photo string) petfriends.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &pet{
		id:         uuid.NewString(),
		owner:      owner.id,
		name:       name,
		animalType: animalType,
		age:        age,
		photo:      photo,
		created:    s.now(),
	}

	s.pets = append(s.pets, p)

	return p.toAPI()
}

// list returns pets newest first, optionally restricted to one owner.
func (s *store) list(owner string) []petfriends.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]petfriends.Pet, 0, len(s.pets))

	for i := len(s.pets) - 1; i >= 0; i-- {
		if owner != "" && s.pets[i].owner != owner {
			continue
		}

		out = append(out, s.pets[i].toAPI())
	}

	return out
}

func (s *store) find(id string) (int, *pet) {
	for i, p := range s.pets {
		if p.id == id {
			return i, p
		}
	}

	return -1, nil
}

func (s *store) update(owner *user, id string, update petUpdate) (petfriends.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, p := s.find(id)
	if p == nil {
		return petfriends.Pet{}, errNotFound
	}

	if p.owner != owner.id {
		return petfriends.Pet{}, errForbidden
	}

	if update.name != nil {
		p.name = *update.name
	}

	if update.animalType != nil {
		p.animalType = *update.animalType
	}

	if update.age != nil {
		p.age = *update.age
	}

	return p.toAPI(), nil
}

func (s *store) setPhoto(owner *user, id, photo string) (petfriends.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, p := s.find(id)
	if p == nil {
		return petfriends.Pet{}, errNotFound
	}

	if p.owner != owner.id {
		return petfriends.Pet{}, errForbidden
	}

	p.photo = photo

	return p.toAPI(), nil
}

// remove deletes a pet.  Deleting an unknown pet is not an error.
func (s *store) remove(owner *user, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, p := s.find(id)
	if p == nil {
		return nil
	}

	if p.owner != owner.id {
		return errForbidden
	}

	s.pets = append(s.pets[:i], s.pets[i+1:]...)

	return nil
}

func (p *pet) toAPI() petfriends.Pet {
	return petfriends.Pet{
		ID:         p.id,
		Name:       p.name,
		AnimalType: p.animalType,
		Age:        petfriends.FlexString(p.age),
		PetPhoto:   p.photo,
		CreatedAt:  petfriends.FlexString(fmt.Sprintf("%.6f", float64(p.created.UnixMicro())/1e6)),
		UserID:     p.owner,
	}
}
