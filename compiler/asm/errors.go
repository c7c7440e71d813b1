package asm

import (
	"fmt"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
)

type (
	// ShapeError means an instruction doesn't match the operand shape
	// guaranteed for its opcode. It's a bug in whoever built the instruction.
	ShapeError struct {
		Op    string
		Arg   int // -1 if it's about operand count
		Want  string
		Found string

		From loc.PC
	}
)

// NewArgCountError reports wrong operand count.
// depth is the number of frames between the check site and the caller of NewArgCountError.
func NewArgCountError(depth int, op string, want, found int) *ShapeError {
	return &ShapeError{
		Op:    op,
		Arg:   -1,
		Want:  fmt.Sprintf("%d operands", want),
		Found: fmt.Sprintf("%d", found),
		From:  loc.Caller(1 + depth),
	}
}

func NewArgKindError(depth int, op string, arg int, want Kind, found Operand) *ShapeError {
	return &ShapeError{
		Op:    op,
		Arg:   arg,
		Want:  want.String(),
		Found: describe(found),
		From:  loc.Caller(1 + depth),
	}
}

func (e *ShapeError) Error() string {
	if e.Arg < 0 {
		return fmt.Sprintf("invalid %s instruction: %s expected, got %s", e.Op, e.Want, e.Found)
	}

	return fmt.Sprintf("invalid %s instruction: operand %d: %s expected, got %s", e.Op, e.Arg, e.Want, e.Found)
}

func IsShapeError(err error) bool {
	var e *ShapeError

	return errors.As(err, &e)
}

func describe(x Operand) string {
	switch x := x.(type) {
	case nil:
		return "nothing"
	case Reg:
		return "register " + x.String()
	case Imm:
		return fmt.Sprintf("immediate %d", int64(x))
	case FrameIndex:
		return "frame index " + x.String()
	case Sym:
		return "symbol " + string(x)
	}

	return fmt.Sprintf("%T", x)
}
