package pipe

import "fmt"

// Perpendicular returns the lateral directions of a pipe shape.
// Straight tiles have one canonical side (East for |, South for -).
// Elbows return their two closed directions, i.e. the outer side of the bend.
func (t Tile) Perpendicular() ([]Direction, error) {
	switch t {
	case Vertical:
		return []Direction{East}, nil
	case Horizontal:
		return []Direction{South}, nil
	case NorthEast:
		return []Direction{South, West}, nil
	case NorthWest:
		return []Direction{South, East}, nil
	case SouthWest:
		return []Direction{North, East}, nil
	case SouthEast:
		return []Direction{North, West}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoSides, t)
}

// NextPerpendicular carries a lateral side through t: given the side
// relative to the leg the traveller entered on, it returns the same side
// relative to the leg the traveller leaves on.
//
// Straight tiles keep the side. Elbows reflect it across their diagonal,
// which makes the mapping an involution: applying it to the leaving side
// returns the entering side.
func (t Tile) NextPerpendicular(side Direction) (Direction, error) {
	switch t {
	case Vertical, Horizontal:
		return side, nil
	case NorthEast, SouthWest:
		switch side {
		case North:
			return East, nil
		case East:
			return North, nil
		case South:
			return West, nil
		case West:
			return South, nil
		}
	case NorthWest, SouthEast:
		switch side {
		case North:
			return West, nil
		case West:
			return North, nil
		case South:
			return East, nil
		case East:
			return South, nil
		}
	}
	return side, fmt.Errorf("%w: %s", ErrNoSides, t)
}
