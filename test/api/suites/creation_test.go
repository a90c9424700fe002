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

	"github.com/nscaledev/petfriends/test/api"
)

var _ = Describe("Pet Creation", func() {
	var key string

	BeforeEach(func() {
		key = api.AcquireKey(ctx, client, config)
	})

	Context("When adding a pet with a photo", func() {
		Describe("Given valid pet data", func() {
			It("should create the pet", func() {
				payload := api.NewPetPayload().
					WithName("Матроскин").
					WithAnimalType("гулящий").
					WithAge("4").
					WithPhoto(photo).
					Build()

				resp, err := client.AddPet(ctx, key, payload)
				Expect(err).NotTo(HaveOccurred())
				api.CleanupCreated(ctx, client, key, resp)

				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Field("name")).To(Equal(payload.Name))

				pet, err := resp.Pet()
				Expect(err).NotTo(HaveOccurred())
				Expect(pet.PetPhoto).NotTo(BeEmpty())

				api.ExpectContract(ctx, validator, resp)
			})
		})

		Describe("Given a 15 MB photo", func() {
			var oversized string

			BeforeEach(func() {
				var err error

				oversized, err = api.WriteJPEG(photoDir, "size15mb.jpg", api.OversizedPhotoSize)
				Expect(err).NotTo(HaveOccurred())
			})

			It("should accept the photo, the service has no size limit", func() {
				payload := api.NewPetPayload().
					WithName("БольшойКот").
					WithAnimalType("тестировочный").
					WithAge("50").
					WithPhoto(oversized).
					Build()

				resp, err := client.AddPet(ctx, key, payload)
				Expect(err).NotTo(HaveOccurred())
				api.CleanupCreated(ctx, client, key, resp)

				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Field("name")).To(Equal(payload.Name))
			})
		})

		Describe("Given special characters in every field", func() {
			It("should echo the fields unchanged", func() {
				payload := api.NewPetPayload().
					WithName("@#$%/?^+").
					WithAnimalType("%/?^&*").
					WithAge(`@!$#\%^*`).
					WithPhoto(photo).
					Build()

				resp, err := client.AddPet(ctx, key, payload)
				Expect(err).NotTo(HaveOccurred())
				api.CleanupCreated(ctx, client, key, resp)

				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				pet, err := resp.Pet()
				Expect(err).NotTo(HaveOccurred())
				Expect(pet.Name).To(Equal(payload.Name))
				Expect(pet.AnimalType).To(Equal(payload.AnimalType))
				Expect(pet.Age.String()).To(Equal(payload.Age))
			})
		})
	})

	Context("When creating a pet without a photo", func() {
		Describe("Given valid pet data", func() {
			It("should create the pet", func() {
				info := api.NewPetPayload().
					WithName("Шарик").
					WithAnimalType("Котопес").
					WithAge("9").
					BuildInfo()

				resp, err := client.CreatePetSimple(ctx, key, info)
				Expect(err).NotTo(HaveOccurred())
				api.CleanupCreated(ctx, client, key, resp)

				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Field("name")).To(Equal(info.Name))

				api.ExpectContract(ctx, validator, resp)
			})
		})
	})
})
