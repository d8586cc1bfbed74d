// Package expiry handles the MM/YY expiration dates printed on cards.
// A card stays valid through the last instant of its expiry month.
package expiry

import (
	"fmt"
	"strconv"
	"time"
)

var defaultLoc = time.UTC

// SetDefaultLocation sets the location used when none is passed (fallback UTC).
func SetDefaultLocation(loc *time.Location) {
	if loc != nil {
		defaultLoc = loc
	}
}

// Validate checks the value is MM/YY with a month in 01..12.
func Validate(mmyy string) error {
	if len(mmyy) != 5 || mmyy[2] != '/' {
		return fmt.Errorf("expiry must be MM/YY")
	}
	for _, i := range []int{0, 1, 3, 4} {
		if mmyy[i] < '0' || mmyy[i] > '9' {
			return fmt.Errorf("expiry must be digits: MM/YY")
		}
	}
	mm, _ := strconv.Atoi(mmyy[:2])
	if mm < 1 || mm > 12 {
		return fmt.Errorf("expiry month must be 01..12")
	}
	return nil
}

// EndOfMonth parses MM/YY into the last instant of that month in loc.
func EndOfMonth(mmyy string, loc *time.Location) (time.Time, error) {
	if err := Validate(mmyy); err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = defaultLoc
	}
	mm, _ := strconv.Atoi(mmyy[:2])
	yy, _ := strconv.Atoi(mmyy[3:])
	firstNext := time.Date(2000+yy, time.Month(mm), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
	return firstNext.Add(-time.Nanosecond), nil
}

// IsExpired reports whether 'at' is strictly after the end of the MM/YY month.
func IsExpired(mmyy string, at time.Time, loc *time.Location) (bool, error) {
	end, err := EndOfMonth(mmyy, loc)
	if err != nil {
		return false, err
	}
	return at.In(end.Location()).After(end), nil
}

// CardFace returns the MM/YY expiry for a card issued at 'issue' and valid for 'years'.
func CardFace(issue time.Time, years int) string {
	t := issue.In(defaultLoc)
	return fmt.Sprintf("%02d/%02d", int(t.Month()), (t.Year()+years)%100)
}
