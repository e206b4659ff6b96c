package void2d

import "github.com/pkg/errors"

// A BatchGroup is a contiguous range of batches sharing the same vertex
// layout and program. Current is the batch of the group that receives drawing
// primitives, as an index relative to Start.
//
type BatchGroup struct {
	Name    string
	Start   int
	Count   int
	Current int
}

// End returns the index following the last batch of the group.
//
func (g BatchGroup) End() int { return g.Start + g.Count }

// Index returns the absolute batch index of the group's i-th batch.
//
func (g BatchGroup) Index(i int) (int, error) {
	if i < 0 || i >= g.Count {
		return NoSlot, &IndexError{What: g.Name + " batch", Index: i, Limit: g.Count}
	}
	return g.Start + i, nil
}

// Select sets the current batch of the group. It returns false and leaves the
// group unchanged if i is out of range.
//
func (g *BatchGroup) Select(i int) bool {
	if i < 0 || i >= g.Count {
		return false
	}
	g.Current = i
	return true
}

// checkPartition verifies that groups cover [0, n) without overlap, in order.
//
func checkPartition(n int, groups ...BatchGroup) error {
	next := 0
	for _, g := range groups {
		if g.Count <= 0 {
			return errors.Errorf("batch group %q is empty", g.Name)
		}
		if g.Start != next {
			return errors.Errorf("batch group %q starts at %d, expected %d", g.Name, g.Start, next)
		}
		if g.Current < 0 || g.Current >= g.Count {
			return errors.Errorf("batch group %q: current batch %d out of range", g.Name, g.Current)
		}
		next = g.End()
	}
	if next != n {
		return errors.Errorf("batch groups cover %d batches out of %d", next, n)
	}
	return nil
}
