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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/nscaledev/petfriends/pkg/petfriends"
	"github.com/nscaledev/petfriends/pkg/petfriends/contract"
)

// AcquireKey logs in with the configured credentials and fails the test if
// no key comes back.
func AcquireKey(ctx context.Context, client *petfriends.Client, config *TestConfig) string {
	resp, err := client.GetAPIKey(ctx, config.Email, config.Password)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "login failed: %s", resp.Text())

	key, err := resp.Key()
	Expect(err).NotTo(HaveOccurred())

	return key
}

// ListPets lists pets and fails the test unless the listing decodes.
func ListPets(ctx context.Context, client *petfriends.Client, key string, filter petfriends.Filter) *petfriends.PetList {
	resp, err := client.ListPets(ctx, key, filter)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "listing failed: %s", resp.Text())

	list, err := resp.PetList()
	Expect(err).NotTo(HaveOccurred())

	return list
}

// CleanupCreated schedules deletion of the pet a successful creation
// returned.  Anything else is ignored, a rejected creation left nothing behind.
func CleanupCreated(ctx context.Context, client *petfriends.Client, key string, resp *petfriends.Response) {
	if !resp.OK() {
		return
	}

	pet, err := resp.Pet()
	if err != nil || pet.ID == "" {
		return
	}

	petID := pet.ID

	GinkgoWriter.Printf("Created pet with ID: %s\n", petID)

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up pet: %s\n", petID)

		deleted, deleteErr := client.DeletePet(ctx, key, petID)

		switch {
		case deleteErr != nil:
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: %v\n", petID, deleteErr)
		case !deleted.OK():
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: status %d\n", petID, deleted.StatusCode)
		default:
			GinkgoWriter.Printf("Successfully deleted pet: %s\n", petID)
		}
	})
}

// CreatePetWithCleanup creates a pet without a photo and schedules automatic cleanup.
func CreatePetWithCleanup(ctx context.Context, client *petfriends.Client, key string, info petfriends.PetInfo) *petfriends.Pet {
	resp, err := client.CreatePetSimple(ctx, key, info)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "creating pet failed: %s", resp.Text())

	CleanupCreated(ctx, client, key, resp)

	pet, err := resp.Pet()
	Expect(err).NotTo(HaveOccurred())
	Expect(pet.ID).NotTo(BeEmpty())

	return pet
}

// EnsurePet seeds a fresh pet so the head of the caller's listing always
// exists, and returns that head.  Listings are newest first, so the head is
// the seeded pet and scenarios never touch pets they did not create.
func EnsurePet(ctx context.Context, client *petfriends.Client, key string) petfriends.Pet {
	seeded := CreatePetWithCleanup(ctx, client, key, NewPetPayload().
		WithAnimalType("undetermined").
		WithAge("7").
		BuildInfo())

	list := ListPets(ctx, client, key, petfriends.FilterMyPets)
	Expect(list.Pets).NotTo(BeEmpty())
	Expect(list.Pets[0].ID).To(Equal(seeded.ID), "seeded pet is not the newest in the listing")

	return list.Pets[0]
}

// PetIDs returns the ids in a listing.
func PetIDs(list *petfriends.PetList) set.Set[string] {
	ids := make([]string, 0, len(list.Pets))

	for _, pet := range list.Pets {
		ids = append(ids, pet.ID)
	}

	return set.New[string](ids...)
}

// ExpectPetRemoved verifies a pet present in the before listing is missing
// from the after listing.
func ExpectPetRemoved(before, after *petfriends.PetList, petID string) {
	removed := slices.Collect(PetIDs(before).Difference(PetIDs(after)).All())
	Expect(removed).To(ContainElement(petID), "Expected pet ID %s to be removed from the list", petID)
}

// ExpectRejected asserts input the service should refuse.  Unless strict
// validation is configured the known gap is asserted instead, so the suite
// notices when the service starts rejecting it.
func ExpectRejected(config *TestConfig, resp *petfriends.Response, description string) {
	if config.StrictValidation {
		Expect(resp.StatusCode).NotTo(Equal(http.StatusOK), "expected %s to be rejected", description)
		return
	}

	Expect(resp.StatusCode).To(Equal(http.StatusOK), "%s is no longer accepted, the validation gap appears to be fixed", description)

	GinkgoWriter.Printf("Validation gap: %s accepted with status %d\n", description, resp.StatusCode)
}

// ExpectContract validates a successful response against the OpenAPI
// document.  A nil validator disables the check.
func ExpectContract(ctx context.Context, validator *contract.Validator, resp *petfriends.Response) {
	if validator == nil || !resp.OK() {
		return
	}

	Expect(validator.ValidateResponse(ctx, resp)).To(Succeed())
}
