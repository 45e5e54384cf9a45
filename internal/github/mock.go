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

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	// Pages holds the seat pages to serve, indexed by page number - 1.
	// Requests beyond the last page receive an empty page.
	Pages [][]RawSeat

	// Err, when set, is returned from every FetchSeatsPage call.
	Err error

	// BillingSummary is returned from FetchBillingSummary.
	BillingSummary json.RawMessage

	// BillingErr, when set, is returned from FetchBillingSummary.
	BillingErr error

	// Track calls for verification
	SeatCalls      int
	BillingCalls   int
	LastEnterprise string
	LastPerPage    int
	LastPage       int
}

// FetchSeatsPage implements the Client interface.
func (m *MockClient) FetchSeatsPage(ctx context.Context, enterprise string, perPage, page int) (*SeatsPage, error) {
	m.SeatCalls++
	m.LastEnterprise = enterprise
	m.LastPerPage = perPage
	m.LastPage = page

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.Err != nil {
		return nil, m.Err
	}

	total := 0
	for _, p := range m.Pages {
		total += len(p)
	}

	if page < 1 || page > len(m.Pages) {
		return &SeatsPage{TotalSeats: total}, nil
	}
	return &SeatsPage{TotalSeats: total, Seats: m.Pages[page-1]}, nil
}

// FetchBillingSummary implements the Client interface.
func (m *MockClient) FetchBillingSummary(ctx context.Context, enterprise string) (json.RawMessage, error) {
	m.BillingCalls++
	m.LastEnterprise = enterprise

	if m.BillingErr != nil {
		return nil, m.BillingErr
	}
	if m.BillingSummary == nil {
		return json.RawMessage(`{}`), nil
	}
	return m.BillingSummary, nil
}
