// Package similarity finds palette entries whose colors are nearly identical.
package similarity

import (
	"errors"
	"fmt"

	"github.com/lunit-heesungyang/scss-color-similarity/internal/color"
	"github.com/lunit-heesungyang/scss-color-similarity/internal/model"
)

// DefaultThreshold is the distance below which two colors count as similar.
const DefaultThreshold = 10.0

// DecodeError records a palette entry that was skipped because its hex
// value could not be decoded.
type DecodeError struct {
	Variable model.ColorVariable
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("$%s (line %d): %v", e.Variable.Name, e.Variable.Line, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type decoded struct {
	v   model.ColorVariable
	rgb color.RGB
}

// FindSimilar returns every pair of palette entries closer than threshold,
// in palette order (outer entry first, then inner).
//
// Entries that fail to decode are left out of the comparison; they are
// reported as a joined error of *DecodeError values alongside the pairs
// found among the remaining entries.
func FindSimilar(p *model.Palette, threshold float64) ([]model.SimilarPair, error) {
	var (
		entries []decoded
		errs    []error
	)
	for _, v := range p.Variables() {
		rgb, err := color.HexToRGB(v.Hex)
		if err != nil {
			errs = append(errs, &DecodeError{Variable: v, Err: err})
			continue
		}
		entries = append(entries, decoded{v: v, rgb: rgb})
	}

	pairs := make([]model.SimilarPair, 0)
	EachPair(len(entries), func(i, j int) {
		d := color.Distance(entries[i].rgb, entries[j].rgb)
		if d < threshold {
			pairs = append(pairs, model.SimilarPair{
				A:        entries[i].v,
				B:        entries[j].v,
				Distance: d,
			})
		}
	})

	return pairs, errors.Join(errs...)
}

// EachPair calls fn for every unordered index pair i < j of n items,
// n*(n-1)/2 calls in total.
func EachPair(n int, fn func(i, j int)) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			fn(i, j)
		}
	}
}

// Skipped extracts the entries reported by FindSimilar's error.
func Skipped(err error) []*DecodeError {
	if err == nil {
		return nil
	}
	var out []*DecodeError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			var de *DecodeError
			if errors.As(e, &de) {
				out = append(out, de)
			}
		}
		return out
	}
	var de *DecodeError
	if errors.As(err, &de) {
		out = append(out, de)
	}
	return out
}
