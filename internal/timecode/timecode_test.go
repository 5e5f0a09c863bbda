package timecode

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  TimeCode
	}{
		{
			input: "01:02:03.004",
			want: TimeCode{
				Source:  "01:02:03.004",
				Hours:   1,
				Minutes: 2,
				Seconds: 3,
				Millis:  4,
			},
		},
		{
			input: "00:01:14,815",
			want: TimeCode{
				Source:  "00:01:14,815",
				Hours:   0,
				Minutes: 1,
				Seconds: 14,
				Millis:  815,
			},
		},
		{
			// no hour field defaults to zero hours
			input: "02:03.004",
			want: TimeCode{
				Source:  "02:03.004",
				Hours:   0,
				Minutes: 2,
				Seconds: 3,
				Millis:  4,
			},
		},
		{
			// hours may exceed a day
			input: "0120:59:59.999",
			want: TimeCode{
				Source:  "0120:59:59.999",
				Hours:   120,
				Minutes: 59,
				Seconds: 59,
				Millis:  999,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"01:02:03",      // missing milliseconds
		"0a:02:03.001",  // non-digit character
		"01:02:60.004",  // seconds out of range
		"01:60:03.004",  // minutes out of range
		"01:02:03.04",   // two-digit milliseconds
		"01:02:03.0045", // four-digit milliseconds
		"1:02:03.004",   // one-digit hours
		"01:02:03:004",  // wrong millisecond separator
		"01;02:03.004",  // wrong field separator
		"",
		"hello",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", input)
			}
			if !errors.Is(err, ErrInvalidTimeCode) {
				t.Errorf(
					"Parse(%q) error = %v, want ErrInvalidTimeCode",
					input,
					err,
				)
			}
		})
	}
}

func TestParseKeepsSourceVerbatim(t *testing.T) {
	inputs := []string{"00:01:14.815", "00:01:14,815", "01:14.815"}

	for _, input := range inputs {
		tc, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", input, err)
		}
		if tc.Source != input {
			t.Errorf("Source = %q, want %q", tc.Source, input)
		}
		if tc.String() != input {
			t.Errorf("String() = %q, want %q", tc.String(), input)
		}
	}
}

func TestToSeconds(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"01:02:03.004", 3723},
		{"00:01:14.815", 74},
		{"01:14.999", 74}, // milliseconds truncated, never rounded
		{"00:00:00.000", 0},
		{"10:00:00.000", 36000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tc, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got := tc.ToSeconds(); got != tt.want {
				t.Errorf("ToSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}
