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
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/barrosoj/copilot-licenses-enterprise/internal/errors"
	"go.uber.org/zap"
)

const (
	// DefaultAPIEndpoint is the public GitHub REST API base URL. Override
	// via configuration for GitHub Enterprise Server deployments.
	DefaultAPIEndpoint = "https://api.github.com"

	// requestTimeout bounds each individual API call. There is no overall
	// deadline on a run; the bound is per request.
	requestTimeout = 30 * time.Second

	// maxResponseSize caps response bodies to protect against malformed or
	// malicious responses consuming unbounded memory.
	maxResponseSize = 10 * 1024 * 1024
)

// RESTClient talks to the GitHub REST billing endpoints. Failed requests are
// never retried: any error propagates to the caller immediately.
type RESTClient struct {
	httpClient *http.Client
	endpoint   string
	logger     *zap.Logger
}

// NewRESTClient creates a client authenticated with the given token. If
// endpoint is empty, DefaultAPIEndpoint is used.
func NewRESTClient(token, endpoint string, logger *zap.Logger) *RESTClient {
	if endpoint == "" {
		endpoint = DefaultAPIEndpoint
	}
	return &RESTClient{
		httpClient: &http.Client{
			Timeout: requestTimeout,
			Transport: &authTransport{
				token: token,
				base:  http.DefaultTransport,
			},
		},
		endpoint: strings.TrimRight(endpoint, "/"),
		logger:   logger,
	}
}

// FetchSeatsPage implements the Client interface.
func (c *RESTClient) FetchSeatsPage(ctx context.Context, enterprise string, perPage, page int) (*SeatsPage, error) {
	url := fmt.Sprintf("%s/enterprises/%s/copilot/billing/seats?per_page=%d&page=%d",
		c.endpoint, enterprise, perPage, page)

	var result SeatsPage
	if err := c.get(ctx, url, &result); err != nil {
		return nil, err
	}

	c.logger.Debug("fetched seats page",
		zap.String("enterprise", enterprise),
		zap.Int("page", page),
		zap.Int("seats", len(result.Seats)),
	)
	return &result, nil
}

// FetchBillingSummary implements the Client interface.
func (c *RESTClient) FetchBillingSummary(ctx context.Context, enterprise string) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/enterprises/%s/copilot/billing", c.endpoint, enterprise)

	var result json.RawMessage
	if err := c.get(ctx, url, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// get issues a single authenticated GET and decodes the JSON response into
// out. Non-2xx responses become a *StatusError carrying the API message,
// timeouts become ErrRequestTimeout, and undecodable bodies become ErrDecode.
func (c *RESTClient) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("get %s: %w", url, apperrors.ErrRequestTimeout)
		}
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("reading response from %s: %w", url, apperrors.ErrRequestTimeout)
		}
		return fmt.Errorf("reading response from %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apperrors.StatusError{
			StatusCode: resp.StatusCode,
			Message:    apiMessage(body),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrDecode, err)
	}
	return nil
}

// apiMessage extracts the `message` field from a GitHub error body, falling
// back to the raw body text when the body is not JSON or has no message.
func apiMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}

// isTimeout reports whether err represents an exceeded request deadline.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
