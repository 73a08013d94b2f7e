package pio

import (
	"errors"

	"github.com/ezrec/piocodec/translate"
)

var f = translate.From

var (
	ErrOutOfRange         = errors.New(f("out of range"))
	ErrUnrecognizedOpcode = errors.New(f("unrecognized opcode"))
	ErrUnrecognizedValue  = errors.New(f("unrecognized value"))
	ErrBufferTooSmall     = errors.New(f("buffer too small"))
	ErrUnsupported        = errors.New(f("unsupported"))
)

// ErrField reports an operand that does not fit its field.
type ErrField struct {
	Field string
	Value uint
	Err   error
}

func (err *ErrField) Error() string {
	return f("%v %#x: %v", err.Field, err.Value, err.Err)
}

func (err *ErrField) Unwrap() error {
	return err.Err
}

func outOfRange(field string, value uint) error {
	return &ErrField{Field: field, Value: value, Err: ErrOutOfRange}
}

func unrecognized(field string, value uint) error {
	return &ErrField{Field: field, Value: value, Err: ErrUnrecognizedValue}
}

// ErrWord reports the instruction word that failed to decode.
type ErrWord struct {
	Word uint16
	Err  error
}

func (err *ErrWord) Error() string {
	return f("word 0x%04x: %v", err.Word, err.Err)
}

func (err *ErrWord) Unwrap() error {
	return err.Err
}
