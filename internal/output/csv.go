package output

import (
	"bufio"
	"io"
	"strings"

	apperrors "github.com/barrosoj/copilot-licenses-enterprise/internal/errors"
	"github.com/barrosoj/copilot-licenses-enterprise/internal/seats"
)

// CSVSerializer renders the seat list as CSV, one row per seat. Nested
// objects are flattened into single columns: assignee and organization
// collapse to their logins, the assigning team to its name. Null and missing
// values render as empty strings.
//
// The header is derived from the first seat's flattened field order. Records
// with heterogeneous shapes are not reconciled against it.
//
// The escaping is deliberately minimal rather than a full CSV dialect: a
// cell is quoted (with internal quotes doubled) only when it contains a
// comma, a double quote, or a newline.
type CSVSerializer struct{}

// Serialize implements the Serializer interface. An empty seat list returns
// ErrNoData without writing anything, so callers can skip file creation
// instead of producing a header-only file.
func (s *CSVSerializer) Serialize(collection *seats.SeatCollection, w io.Writer) error {
	if len(collection.Seats) == 0 {
		return apperrors.ErrNoData
	}

	bw := bufio.NewWriter(w)

	header, _ := flatten(collection.Seats[0])
	if err := writeRow(bw, header); err != nil {
		return err
	}

	for _, seat := range collection.Seats {
		_, values := flatten(seat)
		if err := writeRow(bw, values); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// flatten converts one seat into parallel column and value slices. The
// column order follows the normalized record's field order, with each nested
// object replaced in place by its single retained scalar.
func flatten(seat seats.Seat) (columns, values []string) {
	columns = []string{
		"assignee_login",
		"pending_cancellation_date",
		"plan_type",
		"last_activity_at",
		"last_activity_editor",
		"assigning_team_name",
		"organization_login",
	}

	var assignee, organization, team string
	if seat.Assignee != nil {
		assignee = seat.Assignee.Login
	}
	if seat.Organization != nil {
		organization = seat.Organization.Login
	}
	if seat.AssigningTeam != nil {
		team = seat.AssigningTeam.Name
	}

	values = []string{
		assignee,
		stringValue(seat.PendingCancellationDate),
		stringValue(seat.PlanType),
		stringValue(seat.LastActivityAt),
		stringValue(seat.LastActivityEditor),
		team,
		organization,
	}
	return columns, values
}

// writeRow writes one escaped CSV row terminated by a newline.
func writeRow(w *bufio.Writer, cells []string) error {
	for i, cell := range cells {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(escapeCell(cell)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// escapeCell quotes a value only when it contains a comma, a double quote,
// or a newline. Internal double quotes are doubled.
func escapeCell(value string) string {
	if !strings.ContainsAny(value, ",\"\n") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// stringValue renders an optional scalar, with nil as the empty string.
func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
