// Copyright 2023 Pete Isensee. All rights reserved.
// Use of this source code is governed by the MIT license.

package strutil

import "fmt"

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	hoursPerDay      = 24
	secondsPerDay    = hoursPerDay * secondsPerHour
)

// GetDurationStr formats an elapsed time in seconds as DDd:HHh:MMm:SSs,
// including the day field only once the duration reaches three days.
// See [GetDurationStrEx].
func GetDurationStr(totalSeconds uint64) string {
	return GetDurationStrEx(totalSeconds, 3)
}

// GetDurationStrEx formats an elapsed time in seconds. Durations of at
// least minDays whole days render as DDd:HHh:MMm:SSs with the remainder
// after the full days; shorter durations render as HHh:MMm:SSs, or as
// MMm:SSs when there is not a single whole hour. The hour, minute and
// second fields are two digits zero-padded; the day field is unpadded.
func GetDurationStrEx(totalSeconds, minDays uint64) string {
	totalHours := totalSeconds / secondsPerHour
	totalDays := totalHours / hoursPerDay

	// Only include days if there are at least minDays
	if totalDays >= minDays {
		rem := totalSeconds - totalDays*secondsPerDay
		return fmt.Sprintf("%dd:%02dh:%02dm:%02ds", totalDays,
			rem/secondsPerHour, rem%secondsPerHour/secondsPerMinute, rem%secondsPerMinute)
	}

	// Don't include hours unless there is at least one
	if totalHours == 0 {
		return fmt.Sprintf("%02dm:%02ds",
			totalSeconds/secondsPerMinute, totalSeconds%secondsPerMinute)
	}
	return fmt.Sprintf("%02dh:%02dm:%02ds", totalHours,
		totalSeconds%secondsPerHour/secondsPerMinute, totalSeconds%secondsPerMinute)
}
