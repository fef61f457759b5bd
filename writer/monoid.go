package writer

// Log is an append-only slice monoid. Combine never aliases either operand.
type Log[T any] []T

// Empty returns a nil Log.
func (Log[T]) Empty() Log[T] {
	return nil
}

// Combine returns a fresh Log holding l followed by other.
func (l Log[T]) Combine(other Log[T]) Log[T] {
	if len(l) == 0 && len(other) == 0 {
		return nil
	}
	out := make(Log[T], 0, len(l)+len(other))
	out = append(out, l...)
	return append(out, other...)
}

// Text is a string monoid under concatenation.
type Text string

// Empty returns "".
func (Text) Empty() Text {
	return ""
}

// Combine concatenates t and other.
func (t Text) Combine(other Text) Text {
	return t + other
}

// Count is an int monoid under addition, useful for counting steps.
type Count int

// Empty returns 0.
func (Count) Empty() Count {
	return 0
}

// Combine adds c and other.
func (c Count) Combine(other Count) Count {
	return c + other
}
