package services

import (
	"time"

	"fintrack/internal/models"
)

// periodResolver maps range tokens to periods ending today. "Today" is the
// calendar date on the server clock; the period itself is expressed as UTC
// midnights so it compares directly with stored transaction dates.
type periodResolver struct {
	now func() time.Time
}

type PeriodResolverOption func(*periodResolver)

// WithClock replaces the server clock. The returned time's location decides
// which calendar date counts as today.
func WithClock(now func() time.Time) PeriodResolverOption {
	return func(r *periodResolver) {
		r.now = now
	}
}

func NewPeriodResolver(opts ...PeriodResolverOption) PeriodResolverInterface {
	r := &periodResolver{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Normalize returns the token itself when known, the default range otherwise
func (r *periodResolver) Normalize(rangeToken string) string {
	if models.IsValidRangeToken(rangeToken) {
		return rangeToken
	}
	return models.DefaultRange
}

// Resolve never fails: unknown tokens resolve as the default range
func (r *periodResolver) Resolve(rangeToken string) models.Period {
	y, m, d := r.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var start time.Time
	switch r.Normalize(rangeToken) {
	case models.RangeLast7Days:
		start = today.AddDate(0, 0, -7)
	case models.RangeLast3Months:
		start = addMonthsClamped(today, -3)
	case models.RangeLast6Months:
		start = addMonthsClamped(today, -6)
	case models.RangeLastYear:
		start = addMonthsClamped(today, -12)
	default:
		start = today.AddDate(0, 0, -30)
	}

	return models.Period{Start: start, End: today}
}

// PreviousPeriod is the period of equal length that ends where p starts.
// Its end day belongs to p and is excluded.
func (r *periodResolver) PreviousPeriod(p models.Period) models.Period {
	length := p.Days()
	return models.Period{
		Start:        p.Start.AddDate(0, 0, -length),
		End:          p.Start,
		EndExclusive: true,
	}
}

// addMonthsClamped shifts t by months, clamping the day to the last day of
// the target month (March 31 minus one month is February 28 or 29)
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
