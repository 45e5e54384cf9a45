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

package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/barrosoj/copilot-licenses-enterprise/internal/config"
	apperrors "github.com/barrosoj/copilot-licenses-enterprise/internal/errors"
	"github.com/barrosoj/copilot-licenses-enterprise/internal/seats"
	"github.com/barrosoj/copilot-licenses-enterprise/test/testutil"
)

func TestGetToken(t *testing.T) {
	tests := []struct {
		name      string
		flagToken string
		envVar    string
		envValue  string
		want      string
	}{
		{
			name:      "flag takes precedence",
			flagToken: "flag-token",
			envVar:    "GITHUB_TOKEN",
			envValue:  "env-token",
			want:      "flag-token",
		},
		{
			name:     "env var fallback",
			envVar:   "GITHUB_TOKEN",
			envValue: "env-token",
			want:     "env-token",
		},
		{
			name:     "custom env var from config",
			envVar:   "GITHUB_ENTERPRISE_TOKEN",
			envValue: "custom-token",
			want:     "custom-token",
		},
		{
			name:   "no token",
			envVar: "GITHUB_TOKEN",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.envValue)
			if got := getToken(tt.flagToken, tt.envVar); got != tt.want {
				t.Errorf("getToken(%q, %q) = %q, want %q", tt.flagToken, tt.envVar, got, tt.want)
			}
		})
	}
}

func TestGetEnterprise(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.GitHub.Enterprise = "config-corp"

	t.Setenv("GITHUB_ENTERPRISE", "env-corp")
	if got := getEnterprise("flag-corp", cfg); got != "flag-corp" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := getEnterprise("", cfg); got != "env-corp" {
		t.Errorf("env should beat config, got %q", got)
	}

	t.Setenv("GITHUB_ENTERPRISE", "")
	if got := getEnterprise("", cfg); got != "config-corp" {
		t.Errorf("config fallback, got %q", got)
	}
}

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"nil error", nil, 0},
		{"general error", os.ErrClosed, 1},
		{"validation error", apperrors.ErrMissingToken, 1},
		{"no data", apperrors.ErrNoData, 1},
		{"auth status error", &apperrors.StatusError{StatusCode: 401, Message: "Bad credentials"}, 2},
		{"forbidden status error", &apperrors.StatusError{StatusCode: 403, Message: "forbidden"}, 2},
		{"server status error", &apperrors.StatusError{StatusCode: 500, Message: "boom"}, 1},
		{"timeout", apperrors.ErrRequestTimeout, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapErrorToExitCode(tt.err); got != tt.wantCode {
				t.Errorf("mapErrorToExitCode(%v) = %d, want %d", tt.err, got, tt.wantCode)
			}
		})
	}
}

func TestRunExport_Validation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "missing enterprise",
			args:    []string{"--token", "tok"},
			wantErr: apperrors.ErrMissingEnterprise,
		},
		{
			name:    "missing token",
			args:    []string{"--enterprise", "acme"},
			wantErr: apperrors.ErrMissingToken,
		},
		{
			name:    "invalid format",
			args:    []string{"--enterprise", "acme", "--token", "tok", "--format", "xml"},
			wantErr: apperrors.ErrInvalidFormat,
		},
		{
			name:    "csv without output",
			args:    []string{"--enterprise", "acme", "--token", "tok", "--format", "csv"},
			wantErr: apperrors.ErrMissingOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GITHUB_TOKEN", "")
			t.Setenv("GITHUB_ENTERPRISE", "")
			t.Setenv("HOME", t.TempDir()) // no user config file

			cmd := newRootCommand()
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunExport_JSONToFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	server := testutil.NewSeatsServer(t, testutil.Paginate(testutil.NewRawSeats(7, "acme-web"), 5), nil)
	outPath := filepath.Join(t.TempDir(), "seats.json")

	cmd := newRootCommand()
	cmd.SetArgs([]string{
		"--enterprise", "acme",
		"--token", "tok",
		"--api-url", server.URL,
		"--per-page", "5",
		"--output", outPath,
		"--quiet",
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	var collection seats.SeatCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if collection.TotalSeats != 7 {
		t.Errorf("total_seats = %d, want 7", collection.TotalSeats)
	}
	if len(collection.Seats) != 7 {
		t.Errorf("len(seats) = %d, want 7", len(collection.Seats))
	}
	if collection.BillingSummary != nil {
		t.Errorf("billing_summary = %s, want omitted without --billing", collection.BillingSummary)
	}
	// 7 seats at per_page 5: a full page then a short page.
	if got := server.RequestCount(); got != 2 {
		t.Errorf("request count = %d, want 2", got)
	}
}

func TestRunExport_BillingSummary(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	billing := json.RawMessage(`{"seat_breakdown":{"total":3},"plan_type":"business"}`)
	server := testutil.NewSeatsServer(t, testutil.Paginate(testutil.NewRawSeats(3, "acme-web"), 100), billing)
	outPath := filepath.Join(t.TempDir(), "seats.json")

	cmd := newRootCommand()
	cmd.SetArgs([]string{
		"-e", "acme", "-t", "tok", "-b", "-q",
		"--api-url", server.URL,
		"-o", outPath,
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var collection seats.SeatCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !strings.Contains(string(collection.BillingSummary), `"plan_type"`) {
		t.Errorf("billing_summary = %s, want passthrough payload", collection.BillingSummary)
	}
}

func TestRunExport_CSVToFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	server := testutil.NewSeatsServer(t, testutil.Paginate(testutil.NewRawSeats(2, "acme-web"), 100), nil)
	outPath := filepath.Join(t.TempDir(), "seats.csv")

	cmd := newRootCommand()
	cmd.SetArgs([]string{
		"-e", "acme", "-t", "tok", "-q",
		"--api-url", server.URL,
		"-f", "csv",
		"-o", outPath,
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "assignee_login,") {
		t.Errorf("header = %q", lines[0])
	}
}

// An empty enterprise exports no CSV file at all, and the run still
// succeeds.
func TestRunExport_CSVNoData(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	server := testutil.NewSeatsServer(t, nil, nil)
	outPath := filepath.Join(t.TempDir(), "seats.csv")

	cmd := newRootCommand()
	cmd.SetArgs([]string{
		"-e", "acme", "-t", "tok", "-q",
		"--api-url", server.URL,
		"-f", "csv",
		"-o", outPath,
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Errorf("output file should not exist for an empty export, stat err = %v", err)
	}
}

// A failing seats endpoint aborts the run without writing any output.
func TestRunExport_APIErrorAborts(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	server := testutil.NewErrorServer(t, 401, `{"message":"Bad credentials"}`)
	outPath := filepath.Join(t.TempDir(), "seats.json")

	cmd := newRootCommand()
	cmd.SetArgs([]string{
		"-e", "acme", "-t", "bad", "-q",
		"--api-url", server.URL,
		"-o", outPath,
	})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var statusErr *apperrors.StatusError
	if !errors.As(err, &statusErr) || statusErr.Message != "Bad credentials" {
		t.Errorf("error = %v, want StatusError with Bad credentials", err)
	}
	if got := mapErrorToExitCode(err); got != 2 {
		t.Errorf("exit code = %d, want 2", got)
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Error("no output file should be written on a fetch failure")
	}
}

// A failing billing endpoint degrades to an empty summary instead of
// aborting the run.
func TestRunExport_BillingFailureDegrades(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	server := testutil.NewSeatsServer(t, testutil.Paginate(testutil.NewRawSeats(1, "acme-web"), 100), json.RawMessage("not json"))
	outPath := filepath.Join(t.TempDir(), "seats.json")

	cmd := newRootCommand()
	cmd.SetArgs([]string{
		"-e", "acme", "-t", "tok", "-b", "-q",
		"--api-url", server.URL,
		"-o", outPath,
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if string(decoded["billing_summary"]) != "{}" {
		t.Errorf("billing_summary = %s, want {}", decoded["billing_summary"])
	}
}
