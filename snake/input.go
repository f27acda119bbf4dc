package snake

import "fmt"

// Direction indexes the directional inputs
type Direction int

const (
	DirForward Direction = iota
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirForward:
		return "forward"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Input is the set of held directional inputs
type Input struct {
	Forward bool
	Left    bool
	Right   bool
}

// Any reports whether at least one direction is held
func (in Input) Any() bool {
	return in.Forward || in.Left || in.Right
}

// SetMoveDirection sets one directional input; the body moves while any input is held
func (b *Body) SetMoveDirection(dir Direction, pressed bool) error {
	switch dir {
	case DirForward:
		b.input.Forward = pressed
	case DirLeft:
		b.input.Left = pressed
	case DirRight:
		b.input.Right = pressed
	default:
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	b.moving = b.input.Any()
	return nil
}

// ToggleMoveDirection flips one directional input, for drivers without key release events
func (b *Body) ToggleMoveDirection(dir Direction) error {
	held, err := b.inputHeld(dir)
	if err != nil {
		return err
	}
	return b.SetMoveDirection(dir, !held)
}

func (b *Body) inputHeld(dir Direction) (bool, error) {
	switch dir {
	case DirForward:
		return b.input.Forward, nil
	case DirLeft:
		return b.input.Left, nil
	case DirRight:
		return b.input.Right, nil
	}
	return false, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
}

// Input returns the held directional inputs
func (b *Body) Input() Input { return b.input }
