package listing

import (
	"errors"

	"github.com/ezrec/piocodec/translate"
)

var f = translate.From

var (
	ErrLabelResult = errors.New(f("label is not a string"))
	ErrLabelEmpty  = errors.New(f("label is empty"))
)

type ErrHexWord string

func (err ErrHexWord) Error() string {
	return f("'%v' is not a hex word", string(err))
}

// ErrInput indicates the location of a malformed input word.
type ErrInput struct {
	LineNo int // Hex input line, or 0 for binary input.
	Offset int // Byte offset for binary input.
	Err    error
}

func (err *ErrInput) Error() string {
	if err.LineNo != 0 {
		return f("line %d %v", err.LineNo, err.Err)
	}
	return f("offset %d %v", err.Offset, err.Err)
}

func (err *ErrInput) Unwrap() error {
	return err.Err
}

// ErrExpr reports a label expression that failed to evaluate.
type ErrExpr struct {
	Expr string
	Addr uint8
	Err  error
}

func (err *ErrExpr) Error() string {
	return f("label $(%v) at %d: %v", err.Expr, err.Addr, err.Err)
}

func (err *ErrExpr) Unwrap() error {
	return err.Err
}
