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
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/petfriends/pkg/petfriends"
	"github.com/nscaledev/petfriends/test/api"
)

var _ = Describe("Pet Listing", func() {
	var key string

	BeforeEach(func() {
		key = api.AcquireKey(ctx, client, config)
	})

	Context("When listing all pets", func() {
		Describe("Given a valid key", func() {
			BeforeEach(func() {
				api.EnsurePet(ctx, client, key)
			})

			It("should return a non-empty list", func() {
				resp, err := client.ListPets(ctx, key, petfriends.FilterAll)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				list, err := resp.PetList()
				Expect(err).NotTo(HaveOccurred())
				Expect(list.Pets).NotTo(BeEmpty())

				api.ExpectContract(ctx, validator, resp)
			})
		})
	})

	Context("When listing my pets", func() {
		Describe("Given I own a pet", func() {
			var seeded petfriends.Pet

			BeforeEach(func() {
				seeded = api.EnsurePet(ctx, client, key)
			})

			It("should only return my pets, newest first", func() {
				resp, err := client.ListPets(ctx, key, petfriends.FilterMyPets)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				list, err := resp.PetList()
				Expect(err).NotTo(HaveOccurred())
				Expect(list.Pets).NotTo(BeEmpty())
				Expect(list.Pets[0].ID).To(Equal(seeded.ID))

				for _, pet := range list.Pets {
					Expect(pet.UserID).To(Equal(seeded.UserID), "pet %s belongs to someone else", pet.ID)
				}

				api.ExpectContract(ctx, validator, resp)
			})

			It("should also list my pet among all pets", func() {
				all := slices.Collect(api.PetIDs(api.ListPets(ctx, client, key, petfriends.FilterAll)).All())
				Expect(all).To(ContainElement(seeded.ID))
			})
		})
	})
})
