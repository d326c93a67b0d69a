package stack

import (
	"go.uber.org/zap"

	"github.com/wippyai/bytegen/bytecode"
	"github.com/wippyai/bytegen/errors"
)

// Tracker applies manipulations in sequence and verifies the running
// operand stack depth against a declared maximum.
//
// Not safe for concurrent use.
type Tracker struct {
	depth    int
	peak     int
	maxStack int
	applied  int
}

// NewTracker creates a Tracker for a method declaring maxStack slots.
func NewTracker(maxStack int) *Tracker {
	return &Tracker{maxStack: maxStack}
}

// Push accounts for a value loaded by code emitted elsewhere.
func (t *Tracker) Push(w Width) error {
	return t.account(w.ToIncreasingSize())
}

// Apply checks that m is valid, applies it and accounts for its size.
//
// Apply is atomic: m is first applied to a scratch recorder, and only when
// every step verifies are its instructions replayed to v and the new depth
// committed. On error v has received nothing and the tracker is unchanged.
// Session state registered on ctx during the failed attempt is kept.
//
// Compound parts are verified one at a time, so a sequence that dips below
// zero partway through is reported even when its aggregate recovers.
func (t *Tracker) Apply(m Manipulation, v bytecode.Visitor, ctx Context) error {
	if !m.IsValid() {
		return errors.New(errors.PhaseVerify, errors.KindInvalidState).
			Value(t.applied).
			Detail("manipulation %d is not valid", t.applied).
			Build()
	}

	var rec bytecode.Recorder
	next := *t
	if err := next.step(m, &rec, ctx); err != nil {
		return err
	}
	rec.Replay(v)
	*t = next
	return nil
}

func (t *Tracker) step(m Manipulation, v bytecode.Visitor, ctx Context) error {
	if c, ok := m.(Compound); ok {
		for _, part := range c {
			if err := t.step(part, v, ctx); err != nil {
				return err
			}
		}
		return nil
	}
	if c, ok := m.(Consumer); ok && c.Consumed() > t.depth {
		Logger().Debug("stack underflow",
			zap.Int("depth", t.depth),
			zap.Int("consumed", c.Consumed()))
		return errors.StackUnderflow(t.depth, -c.Consumed())
	}
	size := m.Apply(v, ctx)
	t.applied++
	return t.account(size)
}

func (t *Tracker) account(size Size) error {
	peak := t.depth + size.MaximalSize()
	after := t.depth + size.SizeImpact()

	if after < 0 {
		Logger().Debug("stack underflow",
			zap.Int("depth", t.depth),
			zap.Int("impact", size.SizeImpact()))
		return errors.StackUnderflow(t.depth, size.SizeImpact())
	}
	if peak > t.maxStack {
		Logger().Debug("stack overflow",
			zap.Int("peak", peak),
			zap.Int("max_stack", t.maxStack))
		return errors.StackOverflow(peak, t.maxStack)
	}

	t.depth = after
	t.peak = max(t.peak, peak)
	return nil
}

// Depth returns the current depth.
func (t *Tracker) Depth() int {
	return t.depth
}

// Peak returns the highest depth reached so far.
func (t *Tracker) Peak() int {
	return t.peak
}

// Applied returns the number of manipulations applied, counting each
// Compound part separately.
func (t *Tracker) Applied() int {
	return t.applied
}
