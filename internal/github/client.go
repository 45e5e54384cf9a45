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
	"context"
	"encoding/json"
)

// Client defines the interface for the enterprise billing endpoints.
// This interface allows for easy mocking in tests.
type Client interface {
	// FetchSeatsPage retrieves one page of the Copilot seat listing for an
	// enterprise. Pages are numbered from 1.
	FetchSeatsPage(ctx context.Context, enterprise string, perPage, page int) (*SeatsPage, error)

	// FetchBillingSummary retrieves the enterprise Copilot billing summary.
	// The payload is returned verbatim; callers treat it as opaque.
	FetchBillingSummary(ctx context.Context, enterprise string) (json.RawMessage, error)
}
