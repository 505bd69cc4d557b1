package dates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/antarctica/mdlib/pkg/mdlib"
)

// Precision marks a date known only to the year or month.
type Precision string

const (
	PrecisionNone  Precision = ""
	PrecisionYear  Precision = "year"
	PrecisionMonth Precision = "month"
)

const (
	layoutYear     = "2006"
	layoutMonth    = "2006-01"
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02T15:04:05.999999999"
	layoutZoned    = "2006-01-02T15:04:05.999999999-07:00"
)

// Date is a calendar date or a datetime.
//
// HasTime distinguishes a datetime from a date. Zoned records whether a
// datetime carried a UTC offset. Precision applies to dates only.
type Date struct {
	Time      time.Time
	Precision Precision
	HasTime   bool
	Zoned     bool
}

// NewDate returns a precise date (no time component).
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// NewDateTime returns a zoned datetime.
func NewDateTime(t time.Time) Date {
	return Date{Time: t, HasTime: true, Zoned: true}
}

// IsZero reports whether d holds no value.
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

// WithPrecision returns d truncated to p. Datetimes are returned unchanged.
func (d Date) WithPrecision(p Precision) Date {
	if d.HasTime {
		return d
	}
	t := d.Time
	switch p {
	case PrecisionYear:
		t = time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	case PrecisionMonth:
		t = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return Date{Time: t, Precision: p}
}

// String returns the encoded form of d.
func (d Date) String() string {
	return EncodeDateString(d)
}

// DecodeDateString parses an ISO 8601 date or datetime.
//
// Strings with a time component are datetimes. Otherwise the number of
// '-' separated segments selects year, year-month or full date.
func DecodeDateString(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("%w: empty value", mdlib.ErrInvalidDate)
	}

	if strings.Contains(s, "T") {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return Date{Time: t, HasTime: true, Zoned: true}, nil
		}
		t, err := time.Parse(layoutDateTime, s)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q is not an ISO 8601 datetime", mdlib.ErrInvalidDate, s)
		}
		return Date{Time: t, HasTime: true}, nil
	}

	var (
		layout    string
		precision Precision
	)
	switch len(strings.Split(s, "-")) {
	case 1:
		layout, precision = layoutYear, PrecisionYear
	case 2:
		layout, precision = layoutMonth, PrecisionMonth
	case 3:
		layout = layoutDate
	default:
		return Date{}, fmt.Errorf("%w: %q is not an ISO 8601 date", mdlib.ErrInvalidDate, s)
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q is not an ISO 8601 date", mdlib.ErrInvalidDate, s)
	}
	return Date{Time: t, Precision: precision}, nil
}

// EncodeDateString formats d, truncating dates to their precision.
func EncodeDateString(d Date) string {
	if d.HasTime {
		if d.Zoned {
			return d.Time.Format(layoutZoned)
		}
		return d.Time.Format(layoutDateTime)
	}
	switch d.Precision {
	case PrecisionYear:
		return d.Time.Format(layoutYear)
	case PrecisionMonth:
		return d.Time.Format(layoutMonth)
	default:
		return d.Time.Format(layoutDate)
	}
}

// MarshalJSON encodes d as its ISO 8601 string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(EncodeDateString(d))
}

// UnmarshalJSON decodes an ISO 8601 string, inferring precision.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", mdlib.ErrInvalidDate, err)
	}
	v, err := DecodeDateString(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// DateField is the configuration form of a date:
//
//	{"date": "2018", "date_precision": "year"}
type DateField struct {
	Date Date
}

type dateFieldJSON struct {
	Date          string    `json:"date"`
	DatePrecision Precision `json:"date_precision,omitempty"`
}

// Field wraps d as a DateField.
func Field(d Date) DateField {
	return DateField{Date: d}
}

func (f DateField) MarshalJSON() ([]byte, error) {
	return json.Marshal(dateFieldJSON{
		Date:          EncodeDateString(f.Date),
		DatePrecision: f.Date.Precision,
	})
}

// UnmarshalJSON infers precision from the date text; an explicit
// date_precision truncates the date to that precision.
func (f *DateField) UnmarshalJSON(data []byte) error {
	var raw dateFieldJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", mdlib.ErrInvalidDate, err)
	}
	d, err := DecodeDateString(raw.Date)
	if err != nil {
		return err
	}
	if raw.DatePrecision != PrecisionNone {
		d = d.WithPrecision(raw.DatePrecision)
	}
	f.Date = d
	return nil
}
