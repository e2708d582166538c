// Package timecode converts between seconds and the textual time forms
// used by subtitle files and reports.
package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HMS formats seconds as HH:MM:SS.
func HMS(seconds float64) string {
	h := int(seconds) / 3600
	m := (int(seconds) % 3600) / 60
	s := int(seconds) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// HMSMillis formats seconds as HH:MM:SS.mmm.
func HMSMillis(seconds float64) string {
	h := int(seconds) / 3600
	m := (int(seconds) % 3600) / 60
	s := int(seconds) % 60
	ms := int(math.Round(math.Mod(seconds, 1) * 1000))
	if ms >= 1000 {
		// Rounding 0.9996 up must carry into the seconds field
		ms -= 1000
		s++
		if s >= 60 {
			s -= 60
			m++
		}
		if m >= 60 {
			m -= 60
			h++
		}
	}
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// SRT formats seconds in SubRip timestamp form, HH:MM:SS,mmm.
func SRT(seconds float64) string {
	return strings.Replace(HMSMillis(seconds), ".", ",", 1)
}

// Range formats a time span as "HH:MM:SS - HH:MM:SS".
func Range(start, end float64) string {
	return HMS(start) + " - " + HMS(end)
}

// Readable formats seconds as "X hours Y minutes Z seconds", omitting
// zero-valued leading units.
func Readable(seconds float64) string {
	h := int(seconds) / 3600
	m := (int(seconds) % 3600) / 60
	s := int(seconds) % 60

	var parts []string
	if h > 0 {
		parts = append(parts, plural(h, "hour"))
	}
	if m > 0 {
		parts = append(parts, plural(m, "minute"))
	}
	if s > 0 || len(parts) == 0 {
		parts = append(parts, plural(s, "second"))
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Parse converts HH:MM:SS, HH:MM:SS.mmm or HH:MM:SS,mmm to seconds.
func Parse(ts string) (float64, error) {
	ts = strings.TrimSpace(ts)
	// SRT uses a comma before the millisecond field
	ts = strings.Replace(ts, ",", ".", 1)

	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q: expected HH:MM:SS", ts)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hours in %q: %w", ts, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %q: %w", ts, err)
	}
	s, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seconds in %q: %w", ts, err)
	}

	return float64(h)*3600 + float64(m)*60 + s, nil
}
