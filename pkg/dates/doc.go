// Package dates encodes and decodes ISO 8601 dates and datetimes,
// including reduced precision dates given as a year ("2018") or a
// year and month ("2018-03").
//
// A decoded reduced precision date is padded to the first day of its
// period and tagged with its Precision so that encoding it again
// reproduces the original text.
package dates
