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

package github

import (
	"fmt"
	"net/http"

	"github.com/barrosoj/copilot-licenses-enterprise/pkg/version"
)

// apiVersion is the GitHub REST API version requested on every call.
const apiVersion = "2022-11-28"

// authTransport injects the standard GitHub REST headers into every request.
// The incoming request is cloned before headers are set, so a shared request
// value is never mutated across calls.
type authTransport struct {
	token string
	base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Accept", "application/vnd.github+json")
	clone.Header.Set("Authorization", "Bearer "+t.token)
	clone.Header.Set("X-GitHub-Api-Version", apiVersion)
	clone.Header.Set("User-Agent", fmt.Sprintf("copilot-seats/%s", version.Version))
	return t.base.RoundTrip(clone)
}
