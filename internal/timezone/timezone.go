package timezone

import "time"

const (
	DefaultTimezone = "UTC"
	DateLayout      = "2006-01-02"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// DayRange turns inclusive YYYY-MM-DD bounds into [from, to) instants in tz.
// Empty bounds stay nil.
func DayRange(tz, fromStr, toStr string) (from, to *time.Time, err error) {
	loc := Location(tz)

	if fromStr != "" {
		f, err := time.ParseInLocation(DateLayout, fromStr, loc)
		if err != nil {
			return nil, nil, err
		}
		from = &f
	}

	if toStr != "" {
		t, err := time.ParseInLocation(DateLayout, toStr, loc)
		if err != nil {
			return nil, nil, err
		}
		t = t.AddDate(0, 0, 1)
		to = &t
	}

	return from, to, nil
}
