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

// SeatsPage is one page of the enterprise seats listing as returned by
// GET /enterprises/{enterprise}/copilot/billing/seats.
type SeatsPage struct {
	TotalSeats int       `json:"total_seats"`
	Seats      []RawSeat `json:"seats"`
}

// RawSeat is a single seat assignment exactly as the API returns it.
// Downstream normalization keeps only a subset of these fields.
type RawSeat struct {
	CreatedAt               string      `json:"created_at"`
	UpdatedAt               string      `json:"updated_at"`
	PendingCancellationDate *string     `json:"pending_cancellation_date"`
	LastActivityAt          *string     `json:"last_activity_at"`
	LastActivityEditor      *string     `json:"last_activity_editor"`
	PlanType                *string     `json:"plan_type"`
	Assignee                *RawAccount `json:"assignee"`
	AssigningTeam           *RawTeam    `json:"assigning_team"`
	Organization            *RawAccount `json:"organization"`
}

// RawAccount is a user or organization reference embedded in a seat record.
type RawAccount struct {
	Login     string `json:"login"`
	ID        int64  `json:"id"`
	NodeID    string `json:"node_id"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
	Type      string `json:"type"`
	SiteAdmin bool   `json:"site_admin"`
}

// RawTeam is the team a seat was assigned through, when any.
type RawTeam struct {
	ID      int64  `json:"id"`
	NodeID  string `json:"node_id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	HTMLURL string `json:"html_url"`
}
