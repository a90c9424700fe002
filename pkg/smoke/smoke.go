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

// Package smoke runs a short create/update/delete round trip against a
// PetFriends deployment and reports each step.
package smoke

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-logr/logr"

	"github.com/nscaledev/petfriends/pkg/petfriends"
)

var (
	// ErrStepFailed is wrapped by the error of a failed run.
	ErrStepFailed = errors.New("smoke step failed")

	// ErrUnexpectedStatus is recorded when a step gets anything but 200.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrPetNotDeleted is recorded when a deleted pet is still listed.
	ErrPetNotDeleted = errors.New("deleted pet is still listed")
)

// Step is the outcome of one call.
type Step struct {
	Name     string
	Status   int
	Duration time.Duration
	Err      error
}

// Report collects the steps of a run, in order.
type Report struct {
	Steps []Step
}

// Failed reports whether any step failed.
func (r *Report) Failed() bool {
	for _, step := range r.Steps {
		if step.Err != nil {
			return true
		}
	}

	return false
}

// Runner performs smoke runs.
type Runner struct {
	shelter  Shelter
	email    string
	password string
	logger   logr.Logger
	petName  string
}

// Option customizes a Runner.
type Option func(*Runner)

// WithLogger logs each step as it completes.
func WithLogger(logger logr.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithPetName sets the name of the throwaway pet.
func WithPetName(name string) Option {
	return func(r *Runner) {
		r.petName = name
	}
}

// New returns a runner that logs in with the given credentials.
func New(shelter Shelter, email, password string, options ...Option) *Runner {
	r := &Runner{
		shelter:  shelter,
		email:    email,
		password: password,
		logger:   logr.Discard(),
		petName:  "smoke-test",
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// Run executes the steps, stopping at the first failure.  The report is
// always returned, the error wraps ErrStepFailed and names the step.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	var (
		key     string
		petID   string
		deleted bool
	)

	defer func() {
		if petID != "" && !deleted {
			r.removePet(ctx, key, petID)
		}
	}()

	steps := []struct {
		name string
		call func() (*petfriends.Response, error)
		then func(*petfriends.Response) error
	}{
		{
			name: "get key",
			call: func() (*petfriends.Response, error) {
				return r.shelter.GetAPIKey(ctx, r.email, r.password)
			},
			then: func(resp *petfriends.Response) (err error) {
				key, err = resp.Key()
				return err
			},
		},
		{
			name: "list pets",
			call: func() (*petfriends.Response, error) {
				return r.shelter.ListPets(ctx, key, petfriends.FilterAll)
			},
			then: func(resp *petfriends.Response) error {
				_, err := resp.PetList()
				return err
			},
		},
		{
			name: "create pet",
			call: func() (*petfriends.Response, error) {
				return r.shelter.CreatePetSimple(ctx, key, petfriends.PetInfo{Name: r.petName, AnimalType: "smoke", Age: "1"})
			},
			then: func(resp *petfriends.Response) error {
				pet, err := resp.Pet()
				if err != nil {
					return err
				}

				petID = pet.ID

				return nil
			},
		},
		{
			name: "update pet",
			call: func() (*petfriends.Response, error) {
				return r.shelter.UpdatePet(ctx, key, petID, petfriends.PetInfo{Name: r.petName + "-updated", AnimalType: "smoke", Age: "2"})
			},
		},
		{
			name: "delete pet",
			call: func() (*petfriends.Response, error) {
				return r.shelter.DeletePet(ctx, key, petID)
			},
			then: func(*petfriends.Response) error {
				deleted = true
				return nil
			},
		},
		{
			name: "verify deletion",
			call: func() (*petfriends.Response, error) {
				return r.shelter.ListPets(ctx, key, petfriends.FilterMyPets)
			},
			then: func(resp *petfriends.Response) error {
				list, err := resp.PetList()
				if err != nil {
					return err
				}

				for _, pet := range list.Pets {
					if pet.ID == petID {
						return fmt.Errorf("%w: %s", ErrPetNotDeleted, petID)
					}
				}

				return nil
			},
		},
	}

	for _, s := range steps {
		step := Step{
			Name: s.name,
		}

		start := time.Now()
		resp, err := s.call()
		step.Duration = time.Since(start)

		switch {
		case err != nil:
			step.Err = err
		case resp.StatusCode != http.StatusOK:
			step.Status = resp.StatusCode
			step.Err = fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		default:
			step.Status = resp.StatusCode

			if s.then != nil {
				step.Err = s.then(resp)
			}
		}

		report.Steps = append(report.Steps, step)

		if step.Err != nil {
			r.logger.Error(step.Err, "smoke step failed", "step", step.Name, "status", step.Status, "duration", step.Duration)

			return report, fmt.Errorf("%w: %s: %w", ErrStepFailed, step.Name, step.Err)
		}

		r.logger.Info("smoke step passed", "step", step.Name, "status", step.Status, "duration", step.Duration)
	}

	return report, nil
}

// removePet deletes the pet of a run that stopped early.  The run's context
// may already be cancelled.
func (r *Runner) removePet(ctx context.Context, key, petID string) {
	resp, err := r.shelter.DeletePet(context.WithoutCancel(ctx), key, petID)

	switch {
	case err != nil:
		r.logger.Error(err, "removing smoke pet", "petID", petID)
	case !resp.OK():
		r.logger.Error(fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode), "removing smoke pet", "petID", petID)
	default:
		r.logger.Info("removed smoke pet", "petID", petID)
	}
}
