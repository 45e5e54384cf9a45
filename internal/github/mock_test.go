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
	"testing"
)

func TestMockClient_ServesConfiguredPages(t *testing.T) {
	mock := &MockClient{
		Pages: [][]RawSeat{
			{{Assignee: &RawAccount{Login: "a"}}, {Assignee: &RawAccount{Login: "b"}}},
			{{Assignee: &RawAccount{Login: "c"}}},
		},
	}

	page, err := mock.FetchSeatsPage(context.Background(), "acme", 2, 1)
	if err != nil {
		t.Fatalf("FetchSeatsPage failed: %v", err)
	}
	if len(page.Seats) != 2 || page.TotalSeats != 3 {
		t.Errorf("page 1 = %d seats of %d total, want 2 of 3", len(page.Seats), page.TotalSeats)
	}

	// Beyond the configured pages an empty page comes back.
	page, err = mock.FetchSeatsPage(context.Background(), "acme", 2, 3)
	if err != nil {
		t.Fatalf("FetchSeatsPage failed: %v", err)
	}
	if len(page.Seats) != 0 {
		t.Errorf("page 3 = %d seats, want 0", len(page.Seats))
	}

	if mock.SeatCalls != 2 || mock.LastPage != 3 || mock.LastPerPage != 2 {
		t.Errorf("call tracking = %d calls, last page %d, last perPage %d",
			mock.SeatCalls, mock.LastPage, mock.LastPerPage)
	}
}

func TestMockClient_BillingDefaults(t *testing.T) {
	mock := &MockClient{}
	summary, err := mock.FetchBillingSummary(context.Background(), "acme")
	if err != nil {
		t.Fatalf("FetchBillingSummary failed: %v", err)
	}
	if string(summary) != "{}" {
		t.Errorf("summary = %s, want {}", summary)
	}
}
