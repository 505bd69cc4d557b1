// Package checksum provides content hashing with JSON normalisation.
//
// The package implements a dual checksum strategy:
//
//   - Raw checksum: Hash of the exact bytes (detects all changes)
//   - Normalized checksum: Hash of the canonical JSON form of the content
//     (formatting, key order and numeric spelling independent)
//
// # Normalization Strategy
//
// Canonical JSON is produced by:
//  1. Decoding the content, keeping numbers as literals
//  2. Rewriting integral numbers as integers ("40.0", "4e1" become "40")
//  3. Re-encoding with object keys in sorted order and no insignificant whitespace
//
// This gives distribution options a stable identity across records whose
// transfer sizes were written as 40 or 40.0, or whose keys were reordered.
//
// # Example Usage
//
//	calculator := checksum.New()
//	id, err := calculator.Sum(option)
//
// # Thread Safety
//
// SHA1 is safe for concurrent use by multiple goroutines.
package checksum
