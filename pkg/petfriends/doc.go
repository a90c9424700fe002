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

// Package petfriends provides a thin HTTP client for the PetFriends pet shelter API.
//
// # Status Is Data
//
// Every operation returns a Response carrying the HTTP status code and the raw
// body, whatever the status. A 403 from the key endpoint is an answer the
// caller asserts against, not a failure of the client, so only transport
// problems (connection errors, timeouts, unreadable photo files) surface as
// errors.
//
// # Body Shape
//
// The API answers with JSON on success and usually with an HTML page on
// failure. Response keeps the raw bytes and exposes the decoded JSON object
// separately via Response.JSON, so the shape of a result never changes with
// the content of the body.
//
// # Tracing
//
// Each request carries a W3C traceparent header. When a call misbehaves the
// trace ID is logged so the request can be located in server logs.
package petfriends
