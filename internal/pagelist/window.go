package pagelist

// Window holds the bounds of a numbered page list.
// Start..End is the run of pages printed one by one. LeftAnchor and RightAnchor
// are the pages the collapse markers on either side of that run point to.
type Window struct {
	Start       int
	End         int
	LeftAnchor  int
	RightAnchor int
}

// ComputeWindow calculates the visible range for a list of total entries with
// current being viewed. length is the desired number of entries including the
// prev/next (and first/last when firstLast is set) links; 0 shows everything.
// A length too short to hold a numbered entry besides those links is raised
// to that minimum, so Start never passes End.
// It is only meaningful for total > 1.
func ComputeWindow(total, current, length int, firstLast bool) Window {
	extra := 2
	if firstLast {
		extra += 2
	}
	if length <= 0 {
		length = total
	}
	// A shorter list would leave no room for a single numbered entry.
	if length < extra+1 {
		length = extra + 1
	}

	half := roundHalfAway(extra, 2)
	span := floorDiv(length-extra, 2)

	start := max(half, min(current-span-(2-half), total-length+extra-1))
	end := min(total, max(length-half, current+span))

	return Window{
		Start:       start,
		End:         end,
		LeftAnchor:  roundHalfAway(start-2, 2) + 1,
		RightAnchor: total - roundHalfAway(total-end, 2),
	}
}

// roundHalfAway returns num/den rounded to the nearest integer, ties away from zero.
// den must be positive.
func roundHalfAway(num, den int) int {
	if num < 0 {
		return -((-2*num + den) / (2 * den))
	}
	return (2*num + den) / (2 * den)
}

func floorDiv(num, den int) int {
	q := num / den
	if (num%den != 0) && ((num < 0) != (den < 0)) {
		q--
	}
	return q
}
