package checksum

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"math"
	"strconv"
)

// Calculator is an interface for computing content checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of the canonical JSON form of
	// content. Content that is not JSON is hashed raw.
	CalculateNormalized(content []byte) string
}

// SHA1 implements checksum calculation using SHA-1.
//
// SHA-1 is used as an identifier, not for integrity; ids written into
// existing records depend on it.
//
// SHA1 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA1 struct{}

// New creates a new SHA-1 based calculator.
func New() SHA1 {
	return SHA1{}
}

// CalculateRaw computes SHA-1 of raw content.
func (c SHA1) CalculateRaw(content []byte) string {
	hash := sha1.Sum(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-1 of canonical JSON content.
func (c SHA1) CalculateNormalized(content []byte) string {
	canonical, err := CanonicalJSON(content)
	if err != nil {
		return c.CalculateRaw(content)
	}
	return c.CalculateRaw(canonical)
}

// Sum marshals v to JSON and returns its normalized checksum.
func (c SHA1) Sum(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	canonical, err := CanonicalJSON(data)
	if err != nil {
		return "", err
	}
	return c.CalculateRaw(canonical), nil
}

// CanonicalJSON rewrites a JSON document with sorted keys, compact
// separators and integral numbers written as integers.
func CanonicalJSON(content []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalize(v)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// normalize walks a decoded document rewriting numbers. encoding/json
// already emits map keys in sorted order.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = normalize(item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = normalize(item)
		}
		return t
	case json.Number:
		return normalizeNumber(t)
	default:
		return v
	}
}

func normalizeNumber(n json.Number) json.Number {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil || math.IsInf(f, 0) {
		return n
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return json.Number(strconv.FormatInt(int64(f), 10))
	}
	return json.Number(strconv.FormatFloat(f, 'g', -1, 64))
}
