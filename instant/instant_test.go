// Copyright (c) 2023-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instant

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

var parseTests = []struct {
	in     string
	millis int64
}{
	// Epoch seconds
	{"0", 0},
	{"-1", -1000},
	{"1676140630", 1676140630000},
	{"1676550896", 1676550896000},
	// Spaces
	{" 1676550896", 1676550896000},
	{"1676550896 ", 1676550896000},
	// Epoch milliseconds
	{"1676550896789", 1676550896789},
	{" 1676550896789", 1676550896789},
	{"1676550896789 ", 1676550896789},
	// Last second interpretation, first millisecond interpretation
	{"32503679999", 32503679999000},
	{"32503680000", 32503680000},
	// ISO 8601
	{"2023-02-11T18:37:10.000Z", 1676140630000},
	{"2023-02-16T12:34:56.789Z", 1676550896789},
	{"2023-02-16T12:34:56Z", 1676550896000},
	{" 2023-02-16T12:34:56Z", 1676550896000},
	{"2023-02-16T12:34:56Z ", 1676550896000},
	{"2023-02-16T13:34:56.789+01:00", 1676550896789},
	{"1969-12-31T23:59:59.999Z", -1},
}

func TestParse(t *testing.T) {
	for _, v := range parseTests {
		got, err := Parse(v.in)
		if err != nil {
			t.Errorf("%q: unexpected error %v", v.in, err)
			continue
		}
		if got.UnixMilli() != v.millis {
			t.Errorf("%q: want %v got %v", v.in, v.millis,
				got.UnixMilli())
		}
	}
}

var parseErrorTests = []struct {
	in          string
	rangeError  bool
	unparseable bool
}{
	{"not-a-date", false, true},
	{"", false, true},
	{"2023-02-16", false, true},
	{"12:34:56", false, true},
	{"1676550896.5", false, true},
	{"1,676,550,896", false, true},
	// Exceeds int64
	{"9223372036854775808", true, false},
	{"-9223372036854775809", true, false},
	// Fits in int64 but the millisecond projection does not
	{"-9223372036854775808", true, false},
}

func TestParseErrors(t *testing.T) {
	for _, v := range parseErrorTests {
		_, err := Parse(v.in)
		if err == nil {
			t.Errorf("%q: expected error, got none", v.in)
			continue
		}
		if _, ok := err.(RangeError); ok != v.rangeError {
			t.Errorf("%q: RangeError %v, want %v: %v", v.in, ok,
				v.rangeError, err)
		}
		if _, ok := err.(UnparseableError); ok != v.unparseable {
			t.Errorf("%q: UnparseableError %v, want %v: %v", v.in,
				ok, v.unparseable, err)
		}
	}
}

var convertTests = []struct {
	in       string
	expected Timestamp
}{
	{"0", Timestamp{
		ISO8601:     "1970-01-01T00:00:00.000Z",
		EpochSecs:   0,
		EpochMillis: 0,
	}},
	{"1676140630", Timestamp{
		ISO8601:     "2023-02-11T18:37:10.000Z",
		EpochSecs:   1676140630,
		EpochMillis: 1676140630000,
	}},
	{"2023-02-11T18:37:10.000Z", Timestamp{
		ISO8601:     "2023-02-11T18:37:10.000Z",
		EpochSecs:   1676140630,
		EpochMillis: 1676140630000,
	}},
	{"2023-02-16T12:34:56.789Z", Timestamp{
		ISO8601:     "2023-02-16T12:34:56.789Z",
		EpochSecs:   1676550896,
		EpochMillis: 1676550896789,
	}},
	// Epoch seconds floor toward negative infinity for pre-epoch
	// instants with a fractional second.
	{"1969-12-31T23:59:59.001Z", Timestamp{
		ISO8601:     "1969-12-31T23:59:59.001Z",
		EpochSecs:   -1,
		EpochMillis: -999,
	}},
}

func TestConvert(t *testing.T) {
	for _, v := range convertTests {
		instant, err := Parse(v.in)
		if err != nil {
			t.Fatalf("%q: %v", v.in, err)
		}
		got := Convert(instant)
		if !reflect.DeepEqual(got, v.expected) {
			t.Fatalf("%q: want %v got %v", v.in,
				spew.Sdump(v.expected), spew.Sdump(got))
		}
	}
}

// TestRoundTrip verifies that formatting is lossless: parsing the ISO
// rendering of any resolved instant yields the identical instant.
func TestRoundTrip(t *testing.T) {
	for _, v := range parseTests {
		first, err := Parse(v.in)
		if err != nil {
			t.Fatalf("%q: %v", v.in, err)
		}
		second, err := Parse(Convert(first).ISO8601)
		if err != nil {
			t.Fatalf("%q: reparse: %v", v.in, err)
		}
		if !first.Equal(second) {
			t.Fatalf("%q: want %v got %v", v.in, first, second)
		}
	}
}
