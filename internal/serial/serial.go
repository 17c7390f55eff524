// Package serial converts spreadsheet serial-day numbers to calendar fields
// and back.
//
// In the default 1900 date system a serial is the number of days since
// 1899-12-30, with the fractional part representing the time of day.  Using
// that base reproduces the historical spreadsheet calendar for every serial
// from 61 (1900-03-01) onwards, which is what Lotus 1-2-3's phantom
// 1900-02-29 forced on every compatible program.  Serials below 61 render one
// day earlier than the legacy program shows; that is accepted.
//
// In the 1904 date system serial 0 is 1904-01-01 and no leap-day quirk
// applies.
package serial

import (
	"fmt"
	"math"
	"time"
)

const (
	msPerDay  = 86_400_000
	secPerDay = 86_400
)

// MaxSerial is one above the last serial a spreadsheet accepts
// (9999-12-31 in the 1900 date system).
const MaxSerial = 2_958_466

var (
	base1900 = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	base1904 = time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)
)

// Fields is the calendar breakdown of one serial.
type Fields struct {
	Year, Month, Day int
	Weekday          int // 0 = Sunday
	Hour, Minute     int
	Second           int
	Millisecond      int
}

func epoch(date1904 bool) time.Time {
	if date1904 {
		return base1904
	}
	return base1900
}

// Split converts serial into calendar fields.  When subsecond is false the
// time of day is rounded to the nearest whole second; otherwise to the
// nearest millisecond.  Rounding that reaches midnight rolls into the next
// day.  Day counts beyond ±MaxSerial are clamped.
func Split(v float64, date1904, subsecond bool) Fields {
	days := math.Floor(v)
	ms := dayFraction(v-days, subsecond)
	days = math.Max(-MaxSerial, math.Min(days, MaxSerial))
	if ms >= msPerDay {
		days++
		ms -= msPerDay
	}

	t := epoch(date1904).AddDate(0, 0, int(days))
	return Fields{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Weekday:     int(t.Weekday()),
		Hour:        int(ms / 3_600_000),
		Minute:      int(ms / 60_000 % 60),
		Second:      int(ms / 1000 % 60),
		Millisecond: int(ms % 1000),
	}
}

// dayFraction converts a fractional day in [0,1) to milliseconds.
func dayFraction(frac float64, subsecond bool) int64 {
	if subsecond {
		return int64(math.Round(frac * msPerDay))
	}
	return int64(math.Round(frac*secPerDay)) * 1000
}

// Elapsed returns the unwrapped number of whole hours ('h'), minutes ('m')
// or seconds ('s') represented by serial, counted from serial zero.  The
// result is not reduced modulo a day or hour.
func Elapsed(v float64, unit byte) int64 {
	total := int64(math.Round(math.Abs(v) * secPerDay))
	var n int64
	switch unit {
	case 'h':
		n = total / 3600
	case 'm':
		n = total / 60
	default:
		n = total
	}
	if v < 0 {
		return -n
	}
	return n
}

// ToTime converts serial to a UTC [time.Time] with millisecond precision.
func ToTime(v float64, date1904 bool) (time.Time, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return time.Time{}, fmt.Errorf("serial: invalid value %v", v)
	}
	f := Split(v, date1904, true)
	return time.Date(f.Year, time.Month(f.Month), f.Day,
		f.Hour, f.Minute, f.Second, f.Millisecond*int(time.Millisecond), time.UTC), nil
}

// FromTime converts the wall-clock reading of t into a serial.  The time
// zone of t is ignored; 2024-01-01 09:00 in any zone yields the same serial.
func FromTime(t time.Time, date1904 bool) float64 {
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	secs := wall.Unix() - epoch(date1904).Unix()
	return float64(secs)/secPerDay + float64(wall.Nanosecond())/(secPerDay*1e9)
}
