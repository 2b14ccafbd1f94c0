package pipe

import "fmt"

// Transition moves a traveller through tile t located at pos.
// in is the direction of travel when entering the tile; out is the
// direction of travel when leaving it and next = pos.Step(out).
//
// Straight tiles keep the direction of travel. Elbows turn it towards their
// other opening. Any entry a tile cannot accept returns ErrInvalidEntry;
// Ground returns ErrGround and Start returns ErrUnresolvedStart, since its
// shape is only known once the loop has been located.
// next is not bounds-checked.
func Transition(t Tile, in Direction, pos Pos) (out Direction, next Pos, err error) {
	switch t {
	case Vertical:
		switch in {
		case North, South:
			return in, pos.Step(in), nil
		}
	case Horizontal:
		switch in {
		case West, East:
			return in, pos.Step(in), nil
		}
	case NorthEast:
		switch in {
		case South:
			return East, pos.Step(East), nil
		case West:
			return North, pos.Step(North), nil
		}
	case NorthWest:
		switch in {
		case South:
			return West, pos.Step(West), nil
		case East:
			return North, pos.Step(North), nil
		}
	case SouthEast:
		switch in {
		case North:
			return East, pos.Step(East), nil
		case West:
			return South, pos.Step(South), nil
		}
	case SouthWest:
		switch in {
		case North:
			return West, pos.Step(West), nil
		case East:
			return South, pos.Step(South), nil
		}
	case Ground:
		return in, pos, fmt.Errorf("%w at %s", ErrGround, pos)
	case Start:
		return in, pos, ErrUnresolvedStart
	}
	return in, pos, fmt.Errorf("%w: tile %s travelling %s at %s", ErrInvalidEntry, t, in, pos)
}
