package models

import "time"

// DateLayout is the wire format for calendar dates sent to the gateway
const DateLayout = "2006-01-02"

// DateRange is a closed calendar-date interval derived from an utterance.
// Description carries the spoken phrase that produced it ("this month",
// "yesterday", ...) so responses can echo it back to the user.
type DateRange struct {
	StartDate   time.Time
	EndDate     time.Time
	Description string
}

// StartString returns the start date in gateway wire format
func (r DateRange) StartString() string {
	return r.StartDate.Format(DateLayout)
}

// EndString returns the end date in gateway wire format
func (r DateRange) EndString() string {
	return r.EndDate.Format(DateLayout)
}

// Contains reports whether a YYYY-MM-DD date string falls inside the range.
// Malformed dates are treated as outside the range.
func (r DateRange) Contains(date string) bool {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	start, _ := time.Parse(DateLayout, r.StartString())
	end, _ := time.Parse(DateLayout, r.EndString())
	return !d.Before(start) && !d.After(end)
}
