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

import "github.com/barrosoj/copilot-licenses-enterprise/internal/github"

// Normalize projects a raw API seat record onto the fixed retained field
// set. The projection is pure and lossy: a missing assignee or team becomes
// nil rather than an error, and no other raw fields survive.
func Normalize(raw github.RawSeat) Seat {
	seat := Seat{
		PendingCancellationDate: raw.PendingCancellationDate,
		PlanType:                raw.PlanType,
		LastActivityAt:          raw.LastActivityAt,
		LastActivityEditor:      raw.LastActivityEditor,
	}

	if raw.Assignee != nil {
		seat.Assignee = &Account{Login: raw.Assignee.Login}
	}
	if raw.AssigningTeam != nil {
		seat.AssigningTeam = &Team{Name: raw.AssigningTeam.Name}
	}
	if raw.Organization != nil {
		seat.Organization = &Account{Login: raw.Organization.Login}
	}

	return seat
}
