package loop

// signedArea2 returns twice the signed shoelace area of the loop polygon
// through the cell centres, with x = column and y = row. The sign is
// positive when the walk runs clockwise on screen.
func (l *Loop) signedArea2() int {
	n := len(l.Steps)
	sum := 0
	for i := 0; i < n; i++ {
		a, b := l.Steps[i].Pos, l.Steps[(i+1)%n].Pos
		sum += a.Col*b.Row - b.Col*a.Row
	}
	return sum
}

// Area returns the area of the polygon traced by the loop cell centres.
func (l *Loop) Area() int {
	a := l.signedArea2()
	if a < 0 {
		a = -a
	}
	return a / 2
}

// Clockwise reports whether the walk runs clockwise on screen.
func (l *Loop) Clockwise() bool {
	return l.signedArea2() > 0
}

// Enclosed counts the grid cells strictly inside the loop with Pick's
// theorem (A = I + B/2 - 1), independently of any flood fill.
func (l *Loop) Enclosed() int {
	if len(l.Steps) == 0 {
		return 0
	}
	return l.Area() - len(l.Steps)/2 + 1
}
