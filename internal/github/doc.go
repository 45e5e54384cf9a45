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

// Package github provides a minimal client for the GitHub enterprise Copilot
// billing endpoints: the paginated seat listing and the billing summary.
//
// The client is deliberately simple: authenticated GET, a fixed per-request
// timeout, and no retry or rate-limit handling. Any failure surfaces to the
// caller immediately so a run either completes or aborts cleanly.
package github
