package render

import (
	"fmt"
	"math"
	"time"
)

// FormatSize returns human readable repository size. Input is in kilobytes.
func FormatSize(sizeKB int) string {
	switch {
	case sizeKB < 1024:
		return fmt.Sprintf("%d KB", sizeKB)
	case sizeKB < 1024*1024:
		return fmt.Sprintf("%.1f MB", roundTenths(float64(sizeKB)/1024))
	default:
		return fmt.Sprintf("%.1f GB", roundTenths(float64(sizeKB)/(1024*1024)))
	}
}

// roundTenths rounds to one decimal place, halves away from zero.
// Plain %.1f rounds exact halves like 1.25 to even.
func roundTenths(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// FormatDate returns date as "Jan 2, 2006" in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006")
}
