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

// Package report prints a human-readable summary of a seat collection to a
// report stream, alongside (not instead of) the structured export.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/barrosoj/copilot-licenses-enterprise/internal/seats"
)

// recentSeatCount is how many of the most recent assignments are listed.
const recentSeatCount = 5

// PrintSummary writes an aggregate summary of the collection to w: total
// count, retrieval timestamp, a breakdown by assignee type, the distinct
// organizations, and the most recent assignments.
//
// Two caveats carried over from the export schema: normalization keeps only
// the assignee login, so the type breakdown buckets every seat as Unknown,
// and it drops created_at, so the recency sort is stable over retrieval
// order and effectively lists the first seats returned.
func PrintSummary(w io.Writer, collection *seats.SeatCollection) {
	fmt.Fprintf(w, "\nCopilot seat report\n")
	fmt.Fprintf(w, "===================\n")
	fmt.Fprintf(w, "Total seats:  %d\n", collection.TotalSeats)
	fmt.Fprintf(w, "Retrieved at: %s\n", collection.RetrievedAt)

	printTypeBreakdown(w, collection.Seats)
	printOrganizations(w, collection.Seats)
	printRecentSeats(w, collection.Seats)
}

// printTypeBreakdown counts seats by assignee type. The normalized assignee
// carries no type field, so every seat falls into the Unknown bucket.
func printTypeBreakdown(w io.Writer, all []seats.Seat) {
	counts := make(map[string]int)
	for range all {
		counts["Unknown"]++
	}

	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	fmt.Fprintf(w, "\nSeats by assignee type:\n")
	if len(types) == 0 {
		fmt.Fprintf(w, "  (none)\n")
		return
	}
	for _, t := range types {
		fmt.Fprintf(w, "  %s: %d\n", t, counts[t])
	}
}

// printOrganizations lists the distinct organization logins alphabetically.
func printOrganizations(w io.Writer, all []seats.Seat) {
	seen := make(map[string]struct{})
	for _, seat := range all {
		if seat.Organization != nil && seat.Organization.Login != "" {
			seen[seat.Organization.Login] = struct{}{}
		}
	}

	orgs := make([]string, 0, len(seen))
	for org := range seen {
		orgs = append(orgs, org)
	}
	sort.Strings(orgs)

	fmt.Fprintf(w, "\nOrganizations (%d):\n", len(orgs))
	if len(orgs) == 0 {
		fmt.Fprintf(w, "  (none)\n")
		return
	}
	for _, org := range orgs {
		fmt.Fprintf(w, "  %s\n", org)
	}
}

// printRecentSeats lists the most recently created assignments. With
// created_at absent from the normalized record the stable sort leaves
// retrieval order intact, so this shows the first seats of the listing.
func printRecentSeats(w io.Writer, all []seats.Seat) {
	recent := make([]seats.Seat, len(all))
	copy(recent, all)
	sort.SliceStable(recent, func(i, j int) bool {
		return creationTime(recent[i]) > creationTime(recent[j])
	})

	if len(recent) > recentSeatCount {
		recent = recent[:recentSeatCount]
	}

	fmt.Fprintf(w, "\nMost recent assignments:\n")
	if len(recent) == 0 {
		fmt.Fprintf(w, "  (none)\n")
		return
	}
	for _, seat := range recent {
		login := "unassigned"
		if seat.Assignee != nil && seat.Assignee.Login != "" {
			login = seat.Assignee.Login
		}
		org := ""
		if seat.Organization != nil {
			org = seat.Organization.Login
		}
		fmt.Fprintf(w, "  %s (%s)\n", login, org)
	}
}

// creationTime returns the seat's creation timestamp for sorting. The
// normalized record does not retain one, so every seat compares equal.
func creationTime(seats.Seat) string {
	return ""
}
