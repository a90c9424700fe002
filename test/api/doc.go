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

// Package api provides end-to-end test utilities for the PetFriends API.
//
// # Live State
//
// The scenarios run against a shared, live deployment.  Nothing is isolated:
// "the first of my pets" is whatever the server lists first at the time of
// the call.  Fixtures therefore seed a pet before any scenario that reads the
// head of the listing, and register cleanup for anything they create.
//
// # Validation Gaps
//
// The public deployment accepts input it arguably should not: negative ages,
// empty pets, text in the age field.  Those scenarios are written against
// the desired behaviour but, unless STRICT_VALIDATION is set, assert the
// observed one and log the gap.  If the service starts rejecting such input
// the scenario fails, prompting the gap to be struck off.
//
// # Offline Runs
//
// With USE_FAKE_SHELTER set the suites start an in-process fake of the API
// (see pkg/fakeshelter) and need no credentials.
package api
