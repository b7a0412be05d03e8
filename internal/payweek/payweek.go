// Package payweek turns raw clock records into weekly pay and attendance
// summaries. Everything here is a pure function of its inputs: callers
// load records and the pay rate, the package never touches storage.
package payweek

import (
	"net/http"
	"sort"
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/apperror"
	"github.com/shopspring/decimal"
)

const PeriodLayout = "Jan 2, 2006"

var (
	secondsPerMinute = decimal.NewFromInt(60)
	secondsPerHour   = decimal.NewFromInt(3600)

	ErrNegativePayRate = apperror.New(
		apperror.CodeInvalidInput,
		"Pay rate must not be negative",
		http.StatusBadRequest,
	)
)

// OutputPlaces is the precision of every hours, minutes and pay figure
// that leaves the engine.
const OutputPlaces = 2

// Record is the engine's view of a clock record. DurationSeconds is nil
// while the record is still clocked in.
type Record struct {
	ID              string
	ClockIn         time.Time
	ClockOut        *time.Time
	DurationSeconds *int64
}

// Week is one Monday-to-Sunday bucket. TotalSeconds is exact; hours and
// pay are derived from it with a single rounding each.
type Week struct {
	Start        time.Time
	End          time.Time
	TotalSeconds int64
	PayRate      decimal.Decimal
}

func (w Week) Period() string {
	return w.Start.Format(PeriodLayout) + " - " + w.End.Format(PeriodLayout)
}

func (w Week) Hours() decimal.Decimal { return Hours(w.TotalSeconds) }

func (w Week) Pay() decimal.Decimal { return Pay(w.TotalSeconds, w.PayRate) }

func (w Week) HoursString() string { return w.Hours().StringFixed(OutputPlaces) }

func (w Week) PayString() string { return w.Pay().StringFixed(OutputPlaces) }

// WeekStart returns Monday 00:00 UTC of the week containing t.
func WeekStart(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DurationSeconds is the stored length of a shift: whole seconds,
// sub-second remainders dropped, never negative. Every writer of a
// record's duration goes through here.
func DurationSeconds(clockIn, clockOut time.Time) int64 {
	seconds := int64(clockOut.Sub(clockIn) / time.Second)
	if seconds < 0 {
		return 0
	}
	return seconds
}

// Minutes, Hours and Pay divide exactly once and round half away from
// zero to OutputPlaces. Sums must be taken over seconds, never over
// their results.
func Minutes(seconds int64) decimal.Decimal {
	return decimal.NewFromInt(seconds).DivRound(secondsPerMinute, OutputPlaces)
}

func Hours(seconds int64) decimal.Decimal {
	return decimal.NewFromInt(seconds).DivRound(secondsPerHour, OutputPlaces)
}

func Pay(seconds int64, payRate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(seconds).Mul(payRate).DivRound(secondsPerHour, OutputPlaces)
}

func secondsOf(r Record) int64 {
	if r.DurationSeconds == nil {
		return 0
	}
	return *r.DurationSeconds
}

// sortedByClockIn returns a copy ordered by clock-in; ties fall back to ID
// so the output never depends on input order.
func sortedByClockIn(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ClockIn.Equal(out[j].ClockIn) {
			return out[i].ID < out[j].ID
		}
		return out[i].ClockIn.Before(out[j].ClockIn)
	})
	return out
}

// Summarize buckets records by the week of their clock-in and prices each
// week at payRate. A shift that runs past Sunday midnight is counted
// entirely in the week it started. Weeks come back oldest first; no
// records means an empty, non-nil slice.
func Summarize(records []Record, payRate decimal.Decimal) ([]Week, error) {
	if payRate.IsNegative() {
		return nil, ErrNegativePayRate
	}

	weeks := make([]Week, 0)
	index := make(map[time.Time]int)

	for _, r := range sortedByClockIn(records) {
		key := WeekStart(r.ClockIn)
		i, ok := index[key]
		if !ok {
			weeks = append(weeks, Week{
				Start:   key,
				End:     key.AddDate(0, 0, 6),
				PayRate: payRate,
			})
			i = len(weeks) - 1
			index[key] = i
		}
		weeks[i].TotalSeconds += secondsOf(r)
	}

	return weeks, nil
}
