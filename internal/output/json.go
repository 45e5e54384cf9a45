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

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/barrosoj/copilot-licenses-enterprise/internal/seats"
)

// JSONSerializer renders the collection as pretty-printed JSON with 2-space
// indentation. The structure is a direct dump of the collection; no fields
// are reordered or omitted beyond what normalization already did.
type JSONSerializer struct{}

// Serialize implements the Serializer interface.
func (s *JSONSerializer) Serialize(collection *seats.SeatCollection, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(collection); err != nil {
		return fmt.Errorf("encoding collection: %w", err)
	}
	return nil
}
