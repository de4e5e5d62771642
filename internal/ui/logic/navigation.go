// Package logic holds the pure selection and viewport state machine.
// Nothing here touches the terminal or the filesystem.
package logic

// Navigator tracks the selected result and the scroll offset, keeping
// the cursor inside the visible window. Invariants:
//
//	-1 <= Cursor() < Count()   (Cursor is -1 only when the list is empty)
//	 0 <= Offset() <= max(0, Count()-1)
type Navigator struct {
	cursor int
	offset int
	count  int
}

// NewNavigator returns a navigator over an empty result list.
func NewNavigator() *Navigator {
	return &Navigator{cursor: -1}
}

// Cursor returns the selected index, -1 when there are no results.
func (n *Navigator) Cursor() int { return n.cursor }

// Offset returns the scroll offset (index of the first visible row).
func (n *Navigator) Offset() int { return n.offset }

// Count returns the current result count.
func (n *Navigator) Count() int { return n.count }

// SetCount replaces the result list size after a query or mode change.
// Selection resets to the top; scroll resets to zero.
func (n *Navigator) SetCount(count int) {
	n.count = count
	n.offset = 0
	if count == 0 {
		n.cursor = -1
	} else {
		n.cursor = 0
	}
}

// Move shifts the selection by delta, clamped to the list bounds.
// No-op on an empty list.
func (n *Navigator) Move(delta int) {
	if n.count == 0 {
		return
	}
	n.cursor += delta
	if n.cursor < 0 {
		n.cursor = 0
	}
	if n.cursor >= n.count {
		n.cursor = n.count - 1
	}
}

// JumpTop selects the first result.
func (n *Navigator) JumpTop() {
	if n.count == 0 {
		return
	}
	n.cursor = 0
	n.offset = 0
}

// JumpBottom selects the last result.
func (n *Navigator) JumpBottom() {
	if n.count == 0 {
		return
	}
	n.cursor = n.count - 1
}

// Window computes the visible [start, end) range for a viewport of the
// given row count, sliding the offset only when the cursor would leave
// the current window.
func (n *Navigator) Window(rows int) (start, end int) {
	if rows < 1 {
		rows = 1
	}
	if n.count == 0 {
		return 0, 0
	}
	if n.cursor >= 0 && n.cursor < n.offset {
		n.offset = n.cursor
	} else if n.cursor >= n.offset+rows {
		n.offset = n.cursor - rows + 1
	}
	if n.offset > n.count-1 {
		n.offset = n.count - 1
	}
	if n.offset < 0 {
		n.offset = 0
	}
	end = n.offset + rows
	if end > n.count {
		end = n.count
	}
	return n.offset, end
}
