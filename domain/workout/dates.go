package workout

import (
	"time"

	apperrors "musclelog-backend/pkg/errors"
)

const (
	// DateLayout is the wire format for dates in requests and responses
	DateLayout = "2006-01-02"

	// StoredTimeLayout is how timestamps are persisted: ISO-8601 with
	// microsecond precision, no zone suffix. Dates are stored at implicit
	// local midnight, so the round trip through DecodeDate is lossy for
	// time-of-day on purpose.
	StoredTimeLayout = "2006-01-02T15:04:05.000000"

	// ClearDateSentinel marks a todo that has not been completed yet.
	// It sorts below every real timestamp, which the completed-only
	// filters rely on.
	ClearDateSentinel = "0"
)

// EncodeDate converts a YYYY-MM-DD string into the stored timestamp format
// at local midnight.
func EncodeDate(date string) (string, error) {
	t, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return "", apperrors.NewValidationError("invalid date: " + date).WithCause(err)
	}
	return t.Format(StoredTimeLayout), nil
}

// EncodeTime converts a point in time into the stored timestamp format.
func EncodeTime(t time.Time) string {
	return t.Format(StoredTimeLayout)
}

// DecodeDate truncates a stored timestamp back to YYYY-MM-DD for display.
func DecodeDate(stored string) (string, error) {
	t, err := time.ParseInLocation(StoredTimeLayout, stored, time.Local)
	if err != nil {
		return "", apperrors.NewValidationError("invalid stored timestamp: " + stored).WithCause(err)
	}
	return t.Format(DateLayout), nil
}
