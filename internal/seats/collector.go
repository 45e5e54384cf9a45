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

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/barrosoj/copilot-licenses-enterprise/internal/errors"
	"github.com/barrosoj/copilot-licenses-enterprise/internal/github"
	"go.uber.org/zap"
)

const (
	// DefaultPerPage is the page size requested from the API. 100 is the
	// API's hard cap; larger values are passed through and left for the
	// API to reject.
	DefaultPerPage = 100

	// DefaultMaxPages guards the pagination loop. The API signals the last
	// page with a short or empty page; this bound only exists so a
	// misbehaving endpoint cannot loop the client forever.
	DefaultMaxPages = 10000
)

// Collector retrieves the full seat listing for an enterprise, one page at a
// time, normalizing records as they arrive. Requests are issued strictly in
// page order with one request outstanding at a time.
type Collector struct {
	client   github.Client
	logger   *zap.Logger
	perPage  int
	maxPages int
}

// CollectorOptions configures a Collector. Zero values fall back to the
// package defaults.
type CollectorOptions struct {
	PerPage  int
	MaxPages int
}

// NewCollector creates a Collector over the given client.
func NewCollector(client github.Client, logger *zap.Logger, opts CollectorOptions) *Collector {
	if opts.PerPage <= 0 {
		opts.PerPage = DefaultPerPage
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultMaxPages
	}
	return &Collector{
		client:   client,
		logger:   logger,
		perPage:  opts.PerPage,
		maxPages: opts.MaxPages,
	}
}

// Retrieve fetches every seat page starting at page 1 and returns the
// normalized collection. Pagination stops on the first empty page or the
// first page shorter than the requested page size. Any fetch error aborts
// the whole retrieval; no partial collection is returned.
func (c *Collector) Retrieve(ctx context.Context, enterprise string) (*SeatCollection, error) {
	collected := make([]Seat, 0, c.perPage)

	for page := 1; ; page++ {
		if page > c.maxPages {
			return nil, fmt.Errorf("seat listing for %s did not terminate after %d pages: %w",
				enterprise, c.maxPages, apperrors.ErrTooManyPages)
		}

		pageData, err := c.client.FetchSeatsPage(ctx, enterprise, c.perPage, page)
		if err != nil {
			return nil, fmt.Errorf("fetching seats page %d: %w", page, err)
		}

		for _, raw := range pageData.Seats {
			collected = append(collected, Normalize(raw))
		}

		c.logger.Info("retrieved seats page",
			zap.Int("page", page),
			zap.Int("seats", len(pageData.Seats)),
			zap.Int("total", len(collected)),
		)

		// A short or empty page is the last page.
		if len(pageData.Seats) < c.perPage {
			break
		}
	}

	return &SeatCollection{
		TotalSeats:  len(collected),
		Seats:       collected,
		RetrievedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
