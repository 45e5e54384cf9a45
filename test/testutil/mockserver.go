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

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/barrosoj/copilot-licenses-enterprise/internal/github"
)

// MockServer wraps an httptest server simulating the enterprise billing
// endpoints.
type MockServer struct {
	*httptest.Server
	requestCount int32
}

// RequestCount returns the number of requests the server has received.
func (s *MockServer) RequestCount() int {
	return int(atomic.LoadInt32(&s.requestCount))
}

// NewSeatsServer creates a mock server that serves the given seat pages from
// the seats endpoint and the given billing payload from the billing
// endpoint. Page numbers beyond the configured pages get an empty page.
func NewSeatsServer(t *testing.T, pages [][]github.RawSeat, billing json.RawMessage) *MockServer {
	t.Helper()

	total := 0
	for _, p := range pages {
		total += len(p)
	}

	ms := &MockServer{}
	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&ms.requestCount, 1)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasSuffix(r.URL.Path, "/copilot/billing/seats"):
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			var seats []github.RawSeat
			if page >= 1 && page <= len(pages) {
				seats = pages[page-1]
			}
			if seats == nil {
				seats = []github.RawSeat{}
			}
			_ = json.NewEncoder(w).Encode(github.SeatsPage{TotalSeats: total, Seats: seats})

		case strings.HasSuffix(r.URL.Path, "/copilot/billing"):
			if billing == nil {
				billing = json.RawMessage(`{"seat_breakdown":{"total":` + strconv.Itoa(total) + `}}`)
			}
			_, _ = w.Write(billing)

		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		}
	}))

	t.Cleanup(ms.Close)
	return ms
}

// NewErrorServer creates a mock server that always returns the specified
// status and body.
func NewErrorServer(t *testing.T, statusCode int, body string) *MockServer {
	t.Helper()

	ms := &MockServer{}
	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&ms.requestCount, 1)
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	}))

	t.Cleanup(ms.Close)
	return ms
}
