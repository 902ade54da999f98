package models

import (
	"fmt"
	"time"

	appErrors "github.com/noah-isme/anycanvas/pkg/errors"
)

// TimestampLayout is the only timestamp shape Canvas term boundaries are accepted in.
const TimestampLayout = "2006-01-02T15:04:05Z"

// ParseUTC parses s as YYYY-MM-DDTHH:MM:SSZ and tags the result as UTC. Offsets, fractional
// seconds and date-only values are rejected.
func ParseUTC(s string) (time.Time, error) {
	msg := fmt.Sprintf("timestamp %q does not match %s", s, TimestampLayout)
	// time.Parse tolerates fractional seconds the layout does not mention.
	if len(s) != len(TimestampLayout) {
		return time.Time{}, appErrors.Clone(appErrors.ErrTimestampFormat, msg)
	}
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, appErrors.Wrap(err, appErrors.ErrTimestampFormat.Code, msg)
	}
	return t.UTC(), nil
}

// FormatUTC renders t in the layout ParseUTC accepts.
func FormatUTC(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
