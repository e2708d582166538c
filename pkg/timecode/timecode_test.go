package timecode

import "testing"

func TestHMS(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00"},
		{90, "00:01:30"},
		{3661.5, "01:01:01"},
		{7200, "02:00:00"},
	}

	for _, tt := range tests {
		if got := HMS(tt.seconds); got != tt.want {
			t.Errorf("HMS(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestHMSMillis(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{90.5, "00:01:30.500"},
		{3661.123, "01:01:01.123"},
		{0, "00:00:00.000"},
		{59.9999, "00:01:00.000"}, // millisecond rounding carries over
	}

	for _, tt := range tests {
		if got := HMSMillis(tt.seconds); got != tt.want {
			t.Errorf("HMSMillis(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestSRT(t *testing.T) {
	if got := SRT(3661.5); got != "01:01:01,500" {
		t.Errorf("SRT(3661.5) = %q, want 01:01:01,500", got)
	}
	if got := SRT(0); got != "00:00:00,000" {
		t.Errorf("SRT(0) = %q, want 00:00:00,000", got)
	}
}

func TestReadable(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{90, "1 minute 30 seconds"},
		{3600, "1 hour"},
		{0, "0 seconds"},
		{3725, "1 hour 2 minutes 5 seconds"},
	}

	for _, tt := range tests {
		if got := Readable(tt.seconds); got != tt.want {
			t.Errorf("Readable(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"00:01:30", 90, false},
		{"01:01:01.500", 3661.5, false},
		{"01:01:01,500", 3661.5, false},
		{"bogus", 0, true},
		{"10:20", 0, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []float64{0, 1.5, 90, 3661.25, 7199.999} {
		got, err := Parse(SRT(s))
		if err != nil {
			t.Fatalf("Parse(SRT(%v)) error: %v", s, err)
		}
		if diff := got - s; diff > 0.001 || diff < -0.001 {
			t.Errorf("round trip %v -> %v", s, got)
		}
	}
}
