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

// Package testutil provides common test helpers: seat fixtures and mock
// GitHub API servers.
package testutil

import (
	"fmt"
	"time"

	"github.com/barrosoj/copilot-licenses-enterprise/internal/github"
)

// StringPtr returns a pointer to s, for optional fixture fields.
func StringPtr(s string) *string {
	return &s
}

// NewRawSeat builds a realistic raw seat record for login in org, including
// the extra API fields normalization is expected to discard.
func NewRawSeat(login, org string) github.RawSeat {
	created := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	return github.RawSeat{
		CreatedAt:          created.Format(time.RFC3339),
		UpdatedAt:          created.Add(48 * time.Hour).Format(time.RFC3339),
		PlanType:           StringPtr("business"),
		LastActivityAt:     StringPtr(created.Add(72 * time.Hour).Format(time.RFC3339)),
		LastActivityEditor: StringPtr("vscode/1.88.0/copilot/1.180.0"),
		Assignee: &github.RawAccount{
			Login:     login,
			ID:        int64(1000 + len(login)),
			NodeID:    "MDQ6VXNlcjE=",
			AvatarURL: fmt.Sprintf("https://avatars.example.com/%s", login),
			HTMLURL:   fmt.Sprintf("https://github.com/%s", login),
			Type:      "User",
		},
		Organization: &github.RawAccount{
			Login:  org,
			ID:     int64(9000 + len(org)),
			NodeID: "MDEyOk9yZ2FuaXphdGlvbjE=",
			Type:   "Organization",
		},
	}
}

// NewRawSeats builds n distinct raw seats assigned within org.
func NewRawSeats(n int, org string) []github.RawSeat {
	seats := make([]github.RawSeat, 0, n)
	for i := 0; i < n; i++ {
		seats = append(seats, NewRawSeat(fmt.Sprintf("user-%03d", i+1), org))
	}
	return seats
}

// Paginate splits seats into pages of perPage records, the way the API
// partitions a listing. The final page is short or, when the total divides
// evenly, an extra empty page is appended so a pager can observe the end.
func Paginate(seats []github.RawSeat, perPage int) [][]github.RawSeat {
	var pages [][]github.RawSeat
	for start := 0; start < len(seats); start += perPage {
		end := start + perPage
		if end > len(seats) {
			end = len(seats)
		}
		pages = append(pages, seats[start:end])
	}
	if len(seats)%perPage == 0 {
		pages = append(pages, nil)
	}
	return pages
}
