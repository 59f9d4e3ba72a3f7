// Copyright (c) 2023-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instant resolves a raw date/time value to an absolute point
// in time and renders it as its equivalent representations.
package instant

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// isoFormat is the ISO 8601 output layout.  Instants are converted
	// to UTC before formatting, hence the literal Z designator.
	isoFormat = "2006-01-02T15:04:05.000Z"

	// year3000Secs is 3000-01-01T00:00:00Z expressed as epoch seconds.
	// A numeric value below it is interpreted as epoch seconds, at or
	// above it as epoch milliseconds.
	year3000Secs = 32503680000

	// minEpochSecs is the most negative epoch-seconds value whose
	// millisecond projection still fits in an int64.
	minEpochSecs = math.MinInt64 / 1000
)

// RangeError is returned for a numeric value that cannot be represented
// as an instant with millisecond precision.
type RangeError struct {
	Value string
}

func (e RangeError) Error() string {
	return fmt.Sprintf("invalid epoch time: %v", e.Value)
}

// UnparseableError is returned when a value matches neither the numeric
// epoch grammar nor ISO 8601.  It carries both underlying causes.
type UnparseableError struct {
	Value    string
	EpochErr error
	ISOErr   error
}

func (e UnparseableError) Error() string {
	return fmt.Sprintf("unrecognized date/time %q: %v and %v", e.Value,
		e.EpochErr, e.ISOErr)
}

// Timestamp is a single instant rendered as its three equivalent
// representations.
type Timestamp struct {
	ISO8601     string `json:"isotimestamp"`
	EpochSecs   int64  `json:"epochseconds"`
	EpochMillis int64  `json:"epochmilliseconds"`
}

// fromEpoch converts a raw epoch value to an instant.  The value is
// taken as epoch seconds when that interpretation lands before the year
// 3000, epoch milliseconds otherwise.  The seconds interpretation is
// rejected when the instant cannot be projected back to epoch
// milliseconds without overflowing.
func fromEpoch(v int64) (time.Time, error) {
	if v < minEpochSecs {
		return time.Time{}, RangeError{Value: strconv.FormatInt(v, 10)}
	}
	if v < year3000Secs {
		t := time.Unix(v, 0).UTC()
		log.Debugf("%v interpreted as epoch seconds: %v", v, t)
		return t, nil
	}
	t := time.UnixMilli(v).UTC()
	log.Debugf("%v interpreted as epoch milliseconds: %v", v, t)
	return t, nil
}

// Parse resolves a raw string to an instant.  Surrounding whitespace is
// ignored.  A base 10 integer is treated as a raw epoch value and
// disambiguated by fromEpoch; anything else must be an ISO 8601
// datetime (offsets, the Z designator and fractional seconds are all
// accepted).  The returned instant is in UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	v, epochErr := strconv.ParseInt(s, 10, 64)
	if epochErr == nil {
		return fromEpoch(v)
	}
	if ne, ok := epochErr.(*strconv.NumError); ok &&
		ne.Err == strconv.ErrRange {
		// Numeric, but too large for any epoch interpretation.
		return time.Time{}, RangeError{Value: s}
	}

	t, isoErr := time.Parse(time.RFC3339, s)
	if isoErr == nil {
		return t.UTC(), nil
	}

	return time.Time{}, UnparseableError{
		Value:    s,
		EpochErr: epochErr,
		ISOErr:   isoErr,
	}
}

// Convert renders an instant as its three representations.  Epoch
// seconds truncate toward negative infinity; the ISO 8601 string keeps
// millisecond precision.
func Convert(t time.Time) Timestamp {
	return Timestamp{
		ISO8601:     t.UTC().Format(isoFormat),
		EpochSecs:   t.Unix(),
		EpochMillis: t.UnixMilli(),
	}
}
