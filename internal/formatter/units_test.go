package formatter

import (
	"strconv"
	"strings"
	"testing"
)

func TestCount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1.0K"},
		{"1250", "1.3K"},
		{"1249", "1.2K"},
		{"15300", "15.3K"},
		{"1000000", "1.0M"},
		{"1250000", "1.3M"},
		{"1150000", "1.2M"},
		{"2500000000", "2.5B"},
		{"999999999999", "1000.0B"},
		{"abc", "abc"},
		{"Hidden", "Hidden"},
		{"", ""},
		{"  42  ", "42"},
		{"12abc", "12"},
		{"-5", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Count(tt.raw); got != tt.want {
				t.Errorf("Count(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCount_MagnitudeBuckets(t *testing.T) {
	for _, n := range []int64{0, 1, 7, 999, 1000, 4321, 999_999, 1_000_000, 56_789_012, 999_999_999, 1_000_000_000, 9_000_000_000_000} {
		got := Count(strconv.FormatInt(n, 10))

		var wantSuffix string
		switch {
		case n >= 1_000_000_000:
			wantSuffix = "B"
		case n >= 1_000_000:
			wantSuffix = "M"
		case n >= 1_000:
			wantSuffix = "K"
		}

		if wantSuffix == "" {
			if got != strconv.FormatInt(n, 10) {
				t.Errorf("Count(%d) = %q, want plain integer", n, got)
			}
			continue
		}
		if !strings.HasSuffix(got, wantSuffix) {
			t.Errorf("Count(%d) = %q, want suffix %s", n, got, wantSuffix)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{"PT1H2M3S", "1:02:03"},
		{"PT5M9S", "5:09"},
		{"PT45S", "0:45"},
		{"PT10M", "10:00"},
		{"PT2H", "2:00:00"},
		{"PT1H5S", "1:00:05"},
		{"PT12H34M56S", "12:34:56"},
		{"garbage", "garbage"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.iso, func(t *testing.T) {
			if got := Duration(tt.iso); got != tt.want {
				t.Errorf("Duration(%q) = %q, want %q", tt.iso, got, tt.want)
			}
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{"2023-03-05T10:00:00Z", "Mar 5, 2023"},
		{"2021-12-31T23:59:59.123Z", "Dec 31, 2021"},
		{"2020-07-04T01:00:00+02:00", "Jul 3, 2020"},
		{"2019-01-15", "Jan 15, 2019"},
		{"not a date", "not a date"},
	}

	for _, tt := range tests {
		t.Run(tt.iso, func(t *testing.T) {
			if got := Date(tt.iso); got != tt.want {
				t.Errorf("Date(%q) = %q, want %q", tt.iso, got, tt.want)
			}
		})
	}
}
