// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines sentinel errors for consistent error handling across
// the application. These errors map to specific exit codes in the CLI for
// proper scripting support.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrMissingEnterprise indicates no enterprise slug was supplied via
	// flag, environment, or config file. Maps to exit code 1.
	ErrMissingEnterprise = errors.New("enterprise slug is required")

	// ErrMissingToken indicates no GitHub token was supplied.
	// Maps to exit code 1.
	ErrMissingToken = errors.New("github token is required")

	// ErrInvalidFormat indicates an unsupported output format was requested.
	// Maps to exit code 1.
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrMissingOutput indicates a format that requires an output file was
	// requested without one. Maps to exit code 1.
	ErrMissingOutput = errors.New("output file is required")

	// ErrRequestTimeout indicates a single API request exceeded the request
	// timeout. Maps to exit code 3.
	ErrRequestTimeout = errors.New("request timed out")

	// ErrDecode indicates the API returned a body that is not valid JSON.
	ErrDecode = errors.New("response body is not valid JSON")

	// ErrNoData indicates the CSV serializer was given an empty seat list.
	// This is reported to the user but does not fail the run.
	ErrNoData = errors.New("no seat data to serialize")

	// ErrTooManyPages indicates the pagination guard tripped before the API
	// signaled a final page.
	ErrTooManyPages = errors.New("pagination exceeded the configured page limit")
)

// StatusError reports a non-2xx response from the GitHub API. Message holds
// the `message` field of the error body when present, otherwise the raw body
// text.
type StatusError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("github api returned status %d: %s", e.StatusCode, e.Message)
}

// IsAuthError reports whether the response indicates an authentication or
// authorization failure.
func (e *StatusError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
