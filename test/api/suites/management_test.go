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

var _ = Describe("Pet Management", func() {
	var (
		key   string
		first petfriends.Pet
	)

	BeforeEach(func() {
		key = api.AcquireKey(ctx, client, config)
		first = api.EnsurePet(ctx, client, key)
	})

	Context("When deleting my first pet", func() {
		It("should remove it from my listing", func() {
			before := api.ListPets(ctx, client, key, petfriends.FilterMyPets)

			resp, err := client.DeletePet(ctx, key, first.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			api.ExpectContract(ctx, validator, resp)

			after := api.ListPets(ctx, client, key, petfriends.FilterMyPets)
			api.ExpectPetRemoved(before, after, first.ID)
		})
	})

	Context("When updating my first pet", func() {
		Describe("Given new valid details", func() {
			It("should apply them", func() {
				info := api.NewPetPayload().
					WithName("Василевс").
					WithAnimalType("Котяра").
					WithAge("11").
					BuildInfo()

				resp, err := client.UpdatePet(ctx, key, first.ID, info)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Field("name")).To(Equal(info.Name))

				api.ExpectContract(ctx, validator, resp)
			})
		})

		Describe("Given an empty name", func() {
			It("should update the other fields", func() {
				info := api.NewPetPayload().
					WithName("").
					WithAnimalType("собачка").
					WithAge("22").
					BuildInfo()

				resp, err := client.UpdatePet(ctx, key, first.ID, info)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				pet, err := resp.Pet()
				Expect(err).NotTo(HaveOccurred())
				Expect(pet.AnimalType).To(Equal(info.AnimalType))

				after := api.ListPets(ctx, client, key, petfriends.FilterMyPets)
				Expect(after.Pets).NotTo(BeEmpty())
				Expect(after.Pets[0].ID).To(Equal(first.ID))

				if config.StrictValidation {
					Expect(after.Pets[0].Name).To(BeEmpty(), "an empty name should replace the old one")
					return
				}

				// The service keeps the old name when sent an empty one.
				Expect(pet.Name).To(Equal(first.Name))
				Expect(after.Pets[0].Name).To(Equal(first.Name))
			})
		})
	})

	Context("When adding a photo to my first pet", func() {
		It("should store the photo", func() {
			Expect(first.PetPhoto).To(BeEmpty(), "the seeded pet should not have a photo yet")

			resp, err := client.AddPhoto(ctx, key, first.ID, photo)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			pet, err := resp.Pet()
			Expect(err).NotTo(HaveOccurred())
			Expect(pet.PetPhoto).NotTo(BeEmpty())

			api.ExpectContract(ctx, validator, resp)
		})
	})
})
