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

// Package main implements the copilot-seats command-line interface. The tool
// retrieves the full Copilot seat listing of a GitHub enterprise from the
// billing API, normalizes each record, and exports the result as JSON or CSV.
//
// The CLI supports:
//   - Paginated retrieval of every seat assignment in the enterprise
//   - JSON output to stdout or a file, CSV output to a file
//   - Optional inclusion of the enterprise billing summary
//   - An optional human-readable console report
//   - GitHub token authentication via flag or environment variable
//
// Usage:
//
//	copilot-seats --enterprise <slug> [flags]
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	copilot-seats --enterprise acme-corp --format csv --output seats.csv
//
// Exit codes:
//   - 0: Success
//   - 1: General error (validation, serialization, file writes)
//   - 2: Authentication/authorization error
//   - 3: Network or timeout error
package main
