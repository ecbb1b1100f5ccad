package domain

// ClosedCursor is the cursor value while no session is open
const ClosedCursor = -1

// ClampCursor limits index to [0, length-1]. It returns ClosedCursor for an
// empty collection.
func ClampCursor(index, length int) int {
	if length <= 0 {
		return ClosedCursor
	}
	if index < 0 {
		return 0
	}
	if index > length-1 {
		return length - 1
	}
	return index
}

// HasPrevious reports whether the cursor can move back
func HasPrevious(cursor int) bool {
	return cursor > 0
}

// HasNext reports whether the cursor can move forward, either inside the
// loaded items or by loading more of them
func HasNext(cursor int, c *Collection) bool {
	if c == nil || cursor == ClosedCursor {
		return false
	}
	return cursor < c.Len()-1 || c.CanGrow()
}

// InLookahead reports whether cursor is within window positions of the last
// loaded item
func InLookahead(cursor, loaded, window int) bool {
	return cursor >= loaded-window
}
