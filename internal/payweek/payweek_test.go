package payweek

import (
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func shift(id, clockIn string, minutes int64) Record {
	return shiftFor(id, clockIn, time.Duration(minutes)*time.Minute)
}

func shiftFor(id, clockIn string, length time.Duration) Record {
	in := at(clockIn)
	out := in.Add(length)
	d := DurationSeconds(in, out)
	return Record{ID: id, ClockIn: in, ClockOut: &out, DurationSeconds: &d}
}

func open(id, clockIn string) Record {
	return Record{ID: id, ClockIn: at(clockIn)}
}

type weekView struct {
	Period string
	Hours  string
	Pay    string
}

func view(weeks []Week) []weekView {
	out := make([]weekView, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, weekView{Period: w.Period(), Hours: w.HoursString(), Pay: w.PayString()})
	}
	return out
}

func TestSummarize_TwoShiftsInOneWeek(t *testing.T) {
	records := []Record{
		shift("a", "2024-05-06T09:00:00Z", 480),
		shift("b", "2024-05-08T09:00:00Z", 480),
	}

	weeks, err := Summarize(records, decimal.NewFromInt(20))

	assert.NoError(t, err)
	assert.Equal(t, []weekView{
		{Period: "May 6, 2024 - May 12, 2024", Hours: "16.00", Pay: "320.00"},
	}, view(weeks))
	assert.True(t, weeks[0].Start.Equal(at("2024-05-06T00:00:00Z")))
	assert.True(t, weeks[0].End.Equal(at("2024-05-12T00:00:00Z")))
}

func TestSummarize_Empty(t *testing.T) {
	weeks, err := Summarize(nil, decimal.NewFromInt(20))

	assert.NoError(t, err)
	assert.NotNil(t, weeks)
	assert.Len(t, weeks, 0)
}

func TestSummarize_NegativePayRate(t *testing.T) {
	weeks, err := Summarize([]Record{shift("a", "2024-05-06T09:00:00Z", 60)}, decimal.NewFromInt(-1))

	assert.ErrorIs(t, err, ErrNegativePayRate)
	assert.Nil(t, weeks)
}

func TestSummarize_OpenRecordCountsAsZero(t *testing.T) {
	records := []Record{
		shift("a", "2024-05-06T09:00:00Z", 120),
		open("b", "2024-05-07T09:00:00Z"),
		open("c", "2024-05-14T09:00:00Z"),
	}

	weeks, err := Summarize(records, decimal.NewFromInt(15))

	assert.NoError(t, err)
	assert.Equal(t, []weekView{
		{Period: "May 6, 2024 - May 12, 2024", Hours: "2.00", Pay: "30.00"},
		{Period: "May 13, 2024 - May 19, 2024", Hours: "0.00", Pay: "0.00"},
	}, view(weeks))
}

func TestSummarize_ShiftCrossingSundayMidnightStaysInStartWeek(t *testing.T) {
	records := []Record{
		shift("late", "2024-05-12T23:00:00Z", 120),
	}

	weeks, err := Summarize(records, decimal.NewFromInt(10))

	assert.NoError(t, err)
	assert.Equal(t, []weekView{
		{Period: "May 6, 2024 - May 12, 2024", Hours: "2.00", Pay: "20.00"},
	}, view(weeks))
}

func TestSummarize_WeeksAscendingRegardlessOfInputOrder(t *testing.T) {
	base := []Record{
		shift("a", "2024-04-29T09:00:00Z", 60),
		shift("b", "2024-05-06T09:00:00Z", 90),
		shift("c", "2024-05-08T09:00:00Z", 30),
		shift("d", "2024-05-20T09:00:00Z", 45),
		open("e", "2024-05-21T09:00:00Z"),
	}
	want, err := Summarize(base, decimal.RequireFromString("18.75"))
	assert.NoError(t, err)

	permutations := [][]int{
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 3, 0, 4, 2},
	}
	for _, p := range permutations {
		shuffled := make([]Record, len(base))
		for i, idx := range p {
			shuffled[i] = base[idx]
		}

		got, err := Summarize(shuffled, decimal.RequireFromString("18.75"))

		assert.NoError(t, err)
		assert.Equal(t, view(want), view(got))
	}

	periods := view(want)
	assert.Equal(t, "Apr 29, 2024 - May 5, 2024", periods[0].Period)
	assert.Equal(t, "May 6, 2024 - May 12, 2024", periods[1].Period)
	assert.Equal(t, "May 20, 2024 - May 26, 2024", periods[2].Period)
}

func TestSummarize_RoundsOnceAtOutput(t *testing.T) {
	records := []Record{
		shift("a", "2024-05-06T09:00:00Z", 1),
		shift("b", "2024-05-07T09:00:00Z", 1),
		shift("c", "2024-05-08T09:00:00Z", 1),
	}

	weeks, err := Summarize(records, decimal.NewFromInt(10))

	// per-record rounding would give 0.17 * 3 = 0.51
	assert.NoError(t, err)
	assert.Equal(t, "0.50", weeks[0].PayString())
	assert.Equal(t, "0.05", weeks[0].HoursString())
}

func TestSummarize_ThreeTwentyMinuteShifts(t *testing.T) {
	records := []Record{
		shift("a", "2024-05-06T09:00:00Z", 20),
		shift("b", "2024-05-06T10:00:00Z", 20),
		shift("c", "2024-05-06T11:00:00Z", 20),
	}

	weeks, err := Summarize(records, decimal.NewFromInt(10))

	assert.NoError(t, err)
	assert.Equal(t, "1.00", weeks[0].HoursString())
	assert.Equal(t, "10.00", weeks[0].PayString())
}

func TestSummarize_DoesNotMutateInputAndIsRepeatable(t *testing.T) {
	records := []Record{
		shift("b", "2024-05-08T09:00:00Z", 30),
		shift("a", "2024-05-06T09:00:00Z", 60),
	}

	first, err := Summarize(records, decimal.NewFromInt(12))
	assert.NoError(t, err)
	second, err := Summarize(records, decimal.NewFromInt(12))
	assert.NoError(t, err)

	assert.Equal(t, view(first), view(second))
	assert.Equal(t, "b", records[0].ID)
	assert.Equal(t, "a", records[1].ID)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "monday midnight", in: at("2024-05-06T00:00:00Z"), want: at("2024-05-06T00:00:00Z")},
		{name: "sunday night", in: at("2024-05-12T23:59:59Z"), want: at("2024-05-06T00:00:00Z")},
		{name: "offset zone normalised to utc", in: at("2024-05-13T01:00:00+05:00"), want: at("2024-05-06T00:00:00Z")},
		{name: "year boundary", in: at("2025-01-01T12:00:00Z"), want: at("2024-12-30T00:00:00Z")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.in)
			assert.True(t, got.Equal(tt.want), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestDurationSeconds(t *testing.T) {
	in := at("2024-05-06T09:00:00Z")

	assert.Equal(t, int64(28800), DurationSeconds(in, in.Add(8*time.Hour)))
	assert.Equal(t, int64(90), DurationSeconds(in, in.Add(90*time.Second+999*time.Millisecond)))
	assert.Equal(t, int64(0), DurationSeconds(in, in.Add(500*time.Millisecond)))
	assert.Equal(t, int64(0), DurationSeconds(in, in.Add(-time.Minute)))
}

func TestMinutesHoursPay(t *testing.T) {
	assert.Equal(t, "1.50", Minutes(90).StringFixed(OutputPlaces))
	assert.Equal(t, "0.02", Minutes(1).StringFixed(OutputPlaces))
	assert.Equal(t, "8.00", Hours(28802).StringFixed(OutputPlaces))
	// 18s at 1.00/h is exactly 0.005
	assert.Equal(t, "0.01", Pay(18, decimal.NewFromInt(1)).StringFixed(OutputPlaces))
}

func TestSummarize_LeftoverSecondsRoundOnce(t *testing.T) {
	tests := []struct {
		name      string
		shifts    int
		length    time.Duration
		rate      string
		wantHours string
		wantPay   string
	}{
		// 32h00m08s * 24.75 = 792.055
		{name: "four 8h00m02s shifts", shifts: 4, length: 8*time.Hour + 2*time.Second, rate: "24.75", wantHours: "32.00", wantPay: "792.06"},
		// 24h01m * 15.30 = 367.455
		{name: "three 8h00m20s shifts", shifts: 3, length: 8*time.Hour + 20*time.Second, rate: "15.30", wantHours: "24.02", wantPay: "367.46"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]Record, 0, tt.shifts)
			for i := 0; i < tt.shifts; i++ {
				clockIn := at("2024-05-06T06:00:00Z").AddDate(0, 0, i).Format(time.RFC3339)
				records = append(records, shiftFor(fmt.Sprintf("r%d", i), clockIn, tt.length))
			}

			weeks, err := Summarize(records, decimal.RequireFromString(tt.rate))

			assert.NoError(t, err)
			if assert.Len(t, weeks, 1) {
				assert.Equal(t, tt.wantHours, weeks[0].HoursString())
				assert.Equal(t, tt.wantPay, weeks[0].PayString())
			}
		})
	}
}

// exactPay prices seconds at rate with rational arithmetic and rounds half
// away from zero, the reference every emitted pay figure must match.
func exactPay(seconds int64, rate string) string {
	r, ok := new(big.Rat).SetString(rate)
	if !ok {
		panic("bad rate " + rate)
	}
	total := new(big.Rat).Mul(new(big.Rat).SetInt64(seconds), r)
	total.Quo(total, big.NewRat(3600, 1))
	return total.FloatString(OutputPlaces)
}

func exactHours(seconds int64) string {
	return big.NewRat(seconds, 3600).FloatString(OutputPlaces)
}

func TestSummarize_MatchesExactArithmetic(t *testing.T) {
	rates := []string{"10.00", "12.34", "15.30", "17.99", "24.75", "30.00"}
	length := 7*time.Hour + 59*time.Minute

	for shifts := 1; shifts <= 14; shifts++ {
		for leftover := 1; leftover <= 59; leftover++ {
			records := make([]Record, 0, shifts)
			for i := 0; i < shifts; i++ {
				// two shifts a day keeps everything inside one week
				clockIn := at("2024-05-06T00:00:00Z").Add(time.Duration(i) * 12 * time.Hour).Format(time.RFC3339)
				records = append(records, shiftFor(fmt.Sprintf("r%d", i), clockIn, length+time.Duration(leftover)*time.Second))
			}
			totalSeconds := int64(shifts) * int64((length+time.Duration(leftover)*time.Second)/time.Second)

			for _, rate := range rates {
				weeks, err := Summarize(records, decimal.RequireFromString(rate))
				if !assert.NoError(t, err) || !assert.Len(t, weeks, 1) {
					return
				}
				assert.Equal(t, totalSeconds, weeks[0].TotalSeconds)
				assert.Equal(t, exactHours(totalSeconds), weeks[0].HoursString(), "shifts=%d leftover=%ds", shifts, leftover)
				assert.Equal(t, exactPay(totalSeconds, rate), weeks[0].PayString(), "shifts=%d leftover=%ds rate=%s", shifts, leftover, rate)
			}
		}
	}
}
