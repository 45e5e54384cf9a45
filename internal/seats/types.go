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

package seats

import "encoding/json"

// Account is the normalized form of a user or organization reference.
// Only the login survives normalization.
type Account struct {
	Login string `json:"login"`
}

// Team is the normalized form of an assigning team. Only the name survives.
type Team struct {
	Name string `json:"name"`
}

// Seat is one normalized Copilot seat assignment. These are exactly the
// fields retained from the API record; everything else is discarded.
type Seat struct {
	Assignee                *Account `json:"assignee"`
	PendingCancellationDate *string  `json:"pending_cancellation_date"`
	PlanType                *string  `json:"plan_type"`
	LastActivityAt          *string  `json:"last_activity_at"`
	LastActivityEditor      *string  `json:"last_activity_editor"`
	AssigningTeam           *Team    `json:"assigning_team"`
	Organization            *Account `json:"organization"`
}

// SeatCollection is the complete result of one retrieval run. It is built
// once, read by the serializers and the reporter, and never mutated after.
type SeatCollection struct {
	TotalSeats     int             `json:"total_seats"`
	Seats          []Seat          `json:"seats"`
	RetrievedAt    string          `json:"retrieved_at"`
	BillingSummary json.RawMessage `json:"billing_summary,omitempty"`
}
