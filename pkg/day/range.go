package day

// Range is a pair of optional endpoints. A Range with only From set is a
// selection still in progress.
type Range struct {
	From Day
	To   Day
}

// NewRange orders a and b so From is never after To.
func NewRange(a, b Day) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{From: a, To: b}
}

// IsEmpty reports whether neither endpoint is set.
func (r Range) IsEmpty() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// IsComplete reports whether both endpoints are set.
func (r Range) IsComplete() bool {
	return !r.From.IsZero() && !r.To.IsZero()
}

// Contains reports whether d is within a complete range, inclusive.
func (r Range) Contains(d Day) bool {
	if !r.IsComplete() {
		return false
	}
	return Between(d, r.From, r.To)
}

// Days counts the days covered by a complete range, inclusive.
func (r Range) Days() int {
	if !r.IsComplete() {
		return 0
	}
	lo, hi := Min(r.From, r.To), Max(r.From, r.To)
	return int(hi.Time().Sub(lo.Time()).Hours()/24) + 1
}
