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

var _ = Describe("Authentication", func() {
	Context("When requesting an API key", func() {
		Describe("Given valid credentials", func() {
			It("should return a key", func() {
				resp, err := client.GetAPIKey(ctx, config.Email, config.Password)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Has("key")).To(BeTrue())

				api.ExpectContract(ctx, validator, resp)
			})
		})

		Describe("Given invalid credentials", func() {
			DescribeTable("should refuse a key",
				func(email, password func() string) {
					resp, err := client.GetAPIKey(ctx, email(), password())
					Expect(err).NotTo(HaveOccurred())
					Expect(resp.StatusCode).NotTo(Equal(http.StatusOK))
					Expect(resp.Has("key")).To(BeFalse())
				},
				Entry("for a user that does not exist",
					func() string { return "23324178@mail.ru" },
					func() string { return "12345678" }),
				Entry("for an empty email and password",
					func() string { return "" },
					func() string { return "" }),
				Entry("for a valid email and the wrong password",
					func() string { return config.Email },
					func() string { return "1565435484" }),
			)
		})
	})

	Context("When using an API key", func() {
		Describe("Given a key the service never issued", func() {
			It("should reject the request with 403", func() {
				resp, err := client.ListPets(ctx, "not-a-key-"+api.GenerateTestID(), petfriends.FilterAll)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
				Expect(resp.Has("pets")).To(BeFalse())
			})
		})
	})
})
