package service

import (
	"time"

	"github.com/pkg/errors"
)

// LeaveUnits returns the inclusive day count of a leave period with
// optional half-day start/end boundaries.
func LeaveUnits(start, end time.Time, startHalf, endHalf bool) (float64, error) {
	if end.Before(start) {
		return 0, errors.New("end date before start date")
	}

	units := end.Sub(start).Hours()/24 + 1

	if start.Equal(end) && startHalf && endHalf {
		return 0, errors.New("invalid half-day range")
	}
	if startHalf {
		units -= 0.5
	}
	if endHalf {
		units -= 0.5
	}
	if units <= 0 {
		return 0, errors.New("invalid half-day range")
	}

	return units, nil
}
