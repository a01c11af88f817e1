package clock

import "time"

// Local reports the current time in a fixed location (the studio timezone).
type Local struct {
	loc *time.Location
}

func NewLocal(loc *time.Location) Local {
	if loc == nil {
		loc = time.UTC
	}
	return Local{loc: loc}
}

func (c Local) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
