package responder

import (
	"github.com/oklog/ulid/v2"
)

// newTraceID tags each logged failure so operators can correlate a client
// report with the diagnostic record.
func newTraceID() string {
	return ulid.Make().String()
}
