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
	"fmt"
	"io"

	apperrors "github.com/barrosoj/copilot-licenses-enterprise/internal/errors"
	"github.com/barrosoj/copilot-licenses-enterprise/internal/seats"
)

// Format identifies a supported output format.
type Format string

// Supported output formats.
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Serializer renders a complete seat collection to a writer.
// Implementations read the collection and never mutate it.
type Serializer interface {
	// Serialize writes the collection to w in the implementation's format.
	Serialize(collection *seats.SeatCollection, w io.Writer) error
}

// ForFormat returns the serializer for the named format.
func ForFormat(format Format) (Serializer, error) {
	switch format {
	case FormatJSON:
		return &JSONSerializer{}, nil
	case FormatCSV:
		return &CSVSerializer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (expected json or csv)", apperrors.ErrInvalidFormat, format)
	}
}
