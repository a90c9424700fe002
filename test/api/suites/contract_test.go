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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/petfriends/pkg/petfriends"
	"github.com/nscaledev/petfriends/test/api"
)

var _ = Describe("API Contract", func() {
	var key string

	BeforeEach(func() {
		if validator == nil {
			Skip("VALIDATE_CONTRACT is disabled")
		}

		key = api.AcquireKey(ctx, client, config)
	})

	Context("When walking a pet through its lifecycle", func() {
		It("should answer every call as documented", func() {
			calls := []struct {
				name string
				call func(petID string) (*petfriends.Response, error)
			}{
				{"list pets", func(string) (*petfriends.Response, error) {
					return client.ListPets(ctx, key, petfriends.FilterMyPets)
				}},
				{"update pet", func(petID string) (*petfriends.Response, error) {
					return client.UpdatePet(ctx, key, petID, api.NewPetPayload().BuildInfo())
				}},
				{"add photo", func(petID string) (*petfriends.Response, error) {
					return client.AddPhoto(ctx, key, petID, photo)
				}},
				{"delete pet", func(petID string) (*petfriends.Response, error) {
					return client.DeletePet(ctx, key, petID)
				}},
			}

			pet := api.CreatePetWithCleanup(ctx, client, key, api.NewPetPayload().BuildInfo())

			for _, c := range calls {
				By(c.name)

				resp, err := c.call(pet.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK), "%s: %s", c.name, resp.Text())
				Expect(validator.ValidateResponse(ctx, resp)).To(Succeed(), c.name)
			}
		})
	})
})
