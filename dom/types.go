package dom

// Range is a half-open selection over a form control value, measured in
// grapheme clusters. Start <= End once normalized.
type Range struct {
	Start int
	End   int
}

func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

// Len returns the number of clusters covered by r.
func (r Range) Len() int {
	n := NormalizeRange(r)
	return n.End - n.Start
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampRange clamps both ends of r into [0, n] and normalizes it.
func ClampRange(r Range, n int) Range {
	return NormalizeRange(Range{
		Start: clampInt(r.Start, 0, n),
		End:   clampInt(r.End, 0, n),
	})
}
