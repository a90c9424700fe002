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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/petfriends/pkg/petfriends"
	"github.com/nscaledev/petfriends/test/api"
)

// These scenarios send input the service should refuse.  See the package
// documentation of test/api for how the known gaps are asserted.
var _ = Describe("Input Validation", func() {
	var key string

	BeforeEach(func() {
		key = api.AcquireKey(ctx, client, config)
	})

	Context("When creating a pet without a photo", func() {
		DescribeTable("should reject invalid pet data",
			func(description string, info petfriends.PetInfo) {
				resp, err := client.CreatePetSimple(ctx, key, info)
				Expect(err).NotTo(HaveOccurred())
				api.CleanupCreated(ctx, client, key, resp)

				api.ExpectRejected(config, resp, description)

				if !resp.OK() {
					Expect(resp.Has("name")).To(BeFalse())
				}
			},
			Entry("negative age", "a negative age",
				petfriends.PetInfo{Name: "Бобик", AnimalType: "Не_рожденный", Age: "-9"}),
			Entry("huge age", "an age of 1000",
				petfriends.PetInfo{Name: "Крокодил", AnimalType: "мумия", Age: "1000"}),
			Entry("text age", "text in the age field",
				petfriends.PetInfo{Name: "Енот", AnimalType: "Полоскун", Age: "млгнпм"}),
			Entry("SQL-like text", "SQL-like text in every field",
				petfriends.PetInfo{Name: "SELECT * FROM users", AnimalType: "SELECT * FROM users", Age: "SELECT * FROM users"}),
			Entry("very long values", "very long values",
				petfriends.PetInfo{
					Name:       "ывотмзытастысдштшщцатсзштСдтшфтсзшутасщжуТАжштфуащсшфсштжфщсшфшыстфшщСшфыщс",
					AnimalType: "тйсдцийтцудлстоытдфцшуашюиатжцфтдмсфтысфцуолтастцудасицуташгтцуагшсидцуаюси",
					Age:        "тсшфгдтфшцутсмгшцустмдгцстмшфгтюстуысшдгтцушгстмдцушгтмсшзывсргшцусршвцсшщж",
				}),
		)

		Describe("Given every field empty", func() {
			var head petfriends.Pet

			BeforeEach(func() {
				head = api.EnsurePet(ctx, client, key)
			})

			It("should not create a pet", func() {
				resp, err := client.CreatePetSimple(ctx, key, petfriends.PetInfo{})
				Expect(err).NotTo(HaveOccurred())
				api.CleanupCreated(ctx, client, key, resp)

				api.ExpectRejected(config, resp, "a pet with every field empty")

				after := api.ListPets(ctx, client, key, petfriends.FilterMyPets)
				Expect(after.Pets).NotTo(BeEmpty())

				if resp.OK() {
					// The empty pet is now the newest.
					Expect(after.Pets[0].ID).NotTo(Equal(head.ID))
					return
				}

				Expect(after.Pets[0].ID).To(Equal(head.ID))
			})
		})
	})
})
