package payweek

import (
	"time"

	"github.com/shopspring/decimal"
)

type Timecard struct {
	ID              string
	ClockIn         time.Time
	ClockOut        *time.Time
	DurationSeconds int64
}

func (t Timecard) HoursString() string {
	return Hours(t.DurationSeconds).StringFixed(OutputPlaces)
}

type Day struct {
	Date         time.Time
	TotalSeconds int64
	Timecards    []Timecard
}

func (d Day) HoursString() string {
	return Hours(d.TotalSeconds).StringFixed(OutputPlaces)
}

type CurrentWeek struct {
	Start        time.Time
	End          time.Time
	TotalSeconds int64
	PayRate      decimal.Decimal
	// Days holds only days with at least one clock-in, newest first.
	Days []Day
}

func (w CurrentWeek) HoursString() string {
	return Hours(w.TotalSeconds).StringFixed(OutputPlaces)
}

func (w CurrentWeek) PayString() string {
	return Pay(w.TotalSeconds, w.PayRate).StringFixed(OutputPlaces)
}

// SummarizeCurrentWeek keeps the records whose clock-in falls in the week
// containing now ([Monday 00:00, next Monday 00:00) UTC) and breaks them
// down per calendar day. Timecards inside a day are ordered by clock-in.
func SummarizeCurrentWeek(records []Record, payRate decimal.Decimal, now time.Time) (CurrentWeek, error) {
	if payRate.IsNegative() {
		return CurrentWeek{}, ErrNegativePayRate
	}

	start := WeekStart(now)
	end := start.AddDate(0, 0, 7)

	week := CurrentWeek{
		Start:   start,
		End:     start.AddDate(0, 0, 6),
		PayRate: payRate,
		Days:    make([]Day, 0),
	}

	index := make(map[time.Time]int)
	for _, r := range sortedByClockIn(records) {
		if r.ClockIn.Before(start) || !r.ClockIn.Before(end) {
			continue
		}

		key := StartOfDay(r.ClockIn)
		i, ok := index[key]
		if !ok {
			week.Days = append(week.Days, Day{Date: key})
			i = len(week.Days) - 1
			index[key] = i
		}

		seconds := secondsOf(r)
		week.Days[i].TotalSeconds += seconds
		week.Days[i].Timecards = append(week.Days[i].Timecards, Timecard{
			ID:              r.ID,
			ClockIn:         r.ClockIn,
			ClockOut:        r.ClockOut,
			DurationSeconds: seconds,
		})
		week.TotalSeconds += seconds
	}

	// records were visited ascending, so reversing gives newest day first
	for l, r := 0, len(week.Days)-1; l < r; l, r = l+1, r-1 {
		week.Days[l], week.Days[r] = week.Days[r], week.Days[l]
	}

	return week, nil
}
