// Package timezone converts booking wall-clock times between their stored
// UTC form and the Pacific local form shown to schedulers.
//
// Times are HH:MM strings with no date attached, so the daylight-saving
// offset has to be picked from somewhere: both conversion directions key
// it off the current date, not the date the time belongs to. Conversions
// are therefore exact for today and can be an hour off for past or future
// dates near a DST transition. That trade-off is intentional; do not
// re-key the offset off the booking date without changing the stored data
// expectations everywhere.
package timezone

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

const localZoneName = "America/Los_Angeles"

var pacific = loadPacific()

func loadPacific() *time.Location {
	loc, err := time.LoadLocation(localZoneName)
	if err != nil {
		// tzdata is linked in, so this only trips on a corrupt build.
		panic(fmt.Sprintf("timezone: load %s: %v", localZoneName, err))
	}
	return loc
}

// ToLocal converts a stored UTC HH:MM string to Pacific local time.
// Nil and empty inputs map to nil; anything that does not parse as
// HH:MM is passed through unchanged rather than treated as an error.
func ToLocal(utcWall *string) *string {
	return shift(utcWall, -1)
}

// ToUTC converts a Pacific local HH:MM string to UTC for storage.
func ToUTC(localWall *string) *string {
	return shift(localWall, +1)
}

func shift(wall *string, direction int) *string {
	if wall == nil || *wall == "" {
		return nil
	}
	h, m, ok := parseWall(*wall)
	if !ok {
		return wall
	}
	minutes := h*60 + m + direction*offsetAt(time.Now().UTC())*60
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	out := fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
	return &out
}

func parseWall(s string) (h, m int, ok bool) {
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, 0, false
	}
	m, err = strconv.Atoi(mm)
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}

// offsetAt is the hours behind UTC for Pacific time on the given date:
// 7 during daylight saving, 8 during standard time.
func offsetAt(t time.Time) int {
	if IsDaylightSaving(t) {
		return 7
	}
	return 8
}

// IsDaylightSaving applies the continental US rule: daylight time runs
// from the second Sunday of March through the first Sunday of November.
// Only the calendar date of t is inspected.
func IsDaylightSaving(t time.Time) bool {
	t = t.UTC()
	switch t.Month() {
	case time.December, time.January, time.February:
		return false
	case time.April, time.May, time.June, time.July, time.August, time.September, time.October:
		return true
	case time.March:
		return t.Day() >= nthSunday(t.Year(), time.March, 2)
	default: // November
		return t.Day() < nthSunday(t.Year(), time.November, 1)
	}
}

// nthSunday returns the day-of-month of the nth Sunday of the month.
func nthSunday(year int, month time.Month, n int) int {
	count := 0
	for day := 1; day <= 14; day++ {
		if time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday() == time.Sunday {
			count++
			if count == n {
				return day
			}
		}
	}
	return 1
}

// Today returns the current calendar date in Pacific time as YYYY-MM-DD.
// Unlike the wall-time conversions this uses real tzdata rules, so the
// date itself is always right.
func Today() string {
	return time.Now().In(pacific).Format("2006-01-02")
}
