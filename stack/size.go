package stack

// Size is the effect of emitted code on the operand stack.
//
// SizeImpact is the net change in depth, in slots. MaximalSize is the
// highest depth reached above the starting depth while the code runs.
// Sizes are values; combine them with Aggregate.
type Size struct {
	impact  int
	maximal int
}

// Zero is the size of code that leaves the stack untouched.
var Zero = Size{}

// NewSize creates a Size.
func NewSize(impact, maximal int) Size {
	return Size{impact: impact, maximal: maximal}
}

// SizeImpact returns the net depth change.
func (s Size) SizeImpact() int {
	return s.impact
}

// MaximalSize returns the peak depth above the starting depth.
func (s Size) MaximalSize() int {
	return s.maximal
}

// Aggregate returns the size of s followed by next.
func (s Size) Aggregate(next Size) Size {
	return Size{
		impact:  s.impact + next.impact,
		maximal: max(s.maximal, s.impact+next.maximal),
	}
}
