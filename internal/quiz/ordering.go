package quiz

import (
	"errors"
	"fmt"
	"slices"
)

var ErrInvalidPosition = errors.New("invalid item position")

const noPosition = -1

type ItemStatus string

const (
	ItemCorrect   ItemStatus = "correct"
	ItemIncorrect ItemStatus = "incorrect"
)

// Ordering is the arrangement of a drag-drop question. Items are tracked by
// their original index; positions refer to the current arrangement.
type Ordering struct {
	order  []int
	source int
	target int
}

func NewOrdering(n int) *Ordering {
	o := &Ordering{order: make([]int, n)}
	o.Reset()
	return o
}

// OrderingFrom restores an arrangement. order must be a permutation of 0..n-1.
func OrderingFrom(order []int) (*Ordering, error) {
	if !isPermutation(order) {
		return nil, fmt.Errorf("%w: %v is not a permutation", ErrInvalidPosition, order)
	}
	return &Ordering{order: slices.Clone(order), source: noPosition, target: noPosition}, nil
}

func isPermutation(order []int) bool {
	seen := make([]bool, len(order))
	for _, v := range order {
		if v < 0 || v >= len(order) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func (o *Ordering) clone() *Ordering {
	c := *o
	c.order = slices.Clone(o.order)
	return &c
}

func (o *Ordering) Len() int { return len(o.order) }

func (o *Ordering) valid(pos int) bool { return pos >= 0 && pos < len(o.order) }

func (o *Ordering) DragStart(pos int) {
	if o.valid(pos) {
		o.source = pos
	}
}

func (o *Ordering) DragOver(pos int) {
	if o.valid(pos) {
		o.target = pos
	}
}

func (o *Ordering) DragEnd() {
	o.source = noPosition
	o.target = noPosition
}

// Hover returns the position currently dragged over, or -1.
func (o *Ordering) Hover() int { return o.target }

// Drop moves the dragged item to pos. When the item moves forward it lands
// one slot before pos, since removing it shifts the tail left.
func (o *Ordering) Drop(pos int) {
	defer o.DragEnd()
	if o.source == noPosition || o.source == pos || !o.valid(pos) {
		return
	}
	item := o.order[o.source]
	rest := slices.Delete(slices.Clone(o.order), o.source, o.source+1)
	insert := pos
	if o.source < pos {
		insert = pos - 1
	}
	o.order = slices.Insert(rest, insert, item)
}

// Move is a single drag gesture from one position onto another.
func (o *Ordering) Move(from, to int) error {
	if !o.valid(from) || !o.valid(to) {
		return fmt.Errorf("%w: move %d -> %d with %d items", ErrInvalidPosition, from, to, len(o.order))
	}
	o.DragStart(from)
	o.DragOver(to)
	o.Drop(to)
	return nil
}

// Current returns the original indexes in their current order.
func (o *Ordering) Current() []int { return slices.Clone(o.order) }

func (o *Ordering) Check(correct []int) bool { return slices.Equal(o.order, correct) }

func (o *Ordering) ItemStatus(correct []int) []ItemStatus {
	out := make([]ItemStatus, len(o.order))
	for i, v := range o.order {
		if i < len(correct) && correct[i] == v {
			out[i] = ItemCorrect
		} else {
			out[i] = ItemIncorrect
		}
	}
	return out
}

func (o *Ordering) Reset() {
	for i := range o.order {
		o.order[i] = i
	}
	o.DragEnd()
}
