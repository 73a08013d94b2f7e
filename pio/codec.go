package pio

import (
	"encoding/binary"
)

// WordSize is the size in bytes of an encoded instruction.
const WordSize = 2

// Encode returns the instruction word for ins.
func Encode(ins Instruction) uint16 {
	return ins.Word()
}

// EncodeTo writes ins into buf as a little-endian word.
func EncodeTo(buf []byte, ins Instruction) (err error) {
	if len(buf) < WordSize {
		err = ErrBufferTooSmall
		return
	}

	binary.LittleEndian.PutUint16(buf, ins.Word())
	return
}

// AppendEncode appends ins to buf as a little-endian word.
func AppendEncode(buf []byte, ins Instruction) []byte {
	return binary.LittleEndian.AppendUint16(buf, ins.Word())
}

// DecodeFrom decodes the little-endian word at the start of buf.
func DecodeFrom(buf []byte) (ins Instruction, err error) {
	if len(buf) < WordSize {
		err = ErrBufferTooSmall
		return
	}

	return Decode(binary.LittleEndian.Uint16(buf))
}

// Decode decodes an instruction word.
//
// Decoding goes through the New* constructors, so every decoded
// Instruction re-encodes to word. Reserved encodings are rejected with
// ErrUnrecognizedValue, and a nonzero delay/side-set field with
// ErrUnsupported. Errors are wrapped in *ErrWord.
func Decode(word uint16) (ins Instruction, err error) {
	defer func() {
		if err != nil {
			ins = nil
			err = &ErrWord{Word: word, Err: err}
		}
	}()

	if delay := word & maskDelay; delay != 0 {
		err = &ErrField{Field: "delay/side-set", Value: uint(delay >> 8), Err: ErrUnsupported}
		return
	}

	op := Opcode(word & maskOpcode)
	if op == OP_PUSH && word&maskPull != 0 {
		op = OP_PULL
	}

	arg1 := word & maskArg1
	arg2 := uint8(word & maskArg2)

	switch op {
	case OP_JMP:
		ins, err = NewJmp(JmpCond(arg1), arg2)
	case OP_WAIT:
		ins, err = NewWait(WaitPolarity(word&maskPolarity), WaitSource(word&maskWaitSrc), arg2)
	case OP_IN:
		ins, err = NewIn(InSource(arg1), decodeBitCount(arg2))
	case OP_OUT:
		ins, err = NewOut(OutDest(arg1), decodeBitCount(arg2))
	case OP_PUSH, OP_PULL:
		if arg2 != 0 {
			err = unrecognized(op.String(), uint(arg2))
			return
		}
		ifFlag := word&maskIfFlag != 0
		block := word&maskBlock != 0
		if op == OP_PULL {
			ins, err = NewPull(ifFlag, block)
		} else {
			ins, err = NewPush(ifFlag, block)
		}
	case OP_MOV:
		ins, err = NewMov(MovDest(arg1), MovOp(word&maskMovOp), MovSource(word&maskMovSrc))
	case OP_IRQ:
		if word&maskIrqRsvd != 0 {
			err = unrecognized(op.String(), uint(word&maskArg1))
			return
		}
		ins, err = NewIrq(IrqOp(word&maskIrqOp), arg2)
	case OP_SET:
		ins, err = NewSet(SetDest(arg1), arg2)
	default:
		err = ErrUnrecognizedOpcode
	}

	return
}
