package pio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionZero(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		ins  Instruction
		word uint16
		text string
	}){
		{Jmp{}, 0x0000, "jmp 0"},
		{Wait{}, 0x2000, "wait 0 GPIO 0"},
		{In{}, 0x4000, "in PINS, 32"},
		{Out{}, 0x6000, "out PINS, 32"},
		{Push{}, 0x8000, "push noblock"},
		{Pull{}, 0x8080, "pull noblock"},
		{Mov{}, 0xa000, "mov PINS, PINS"},
		{Irq{}, 0xc000, "irq set 0"},
		{Set{}, 0xe000, "set PINS, 0"},
	}

	for _, entry := range table {
		assert.Equal(entry.word, entry.ins.Word(), entry.text)
		assert.Equal(entry.text, entry.ins.String())

		ins, err := Decode(entry.word)
		assert.NoError(err, entry.text)
		assert.Equal(entry.ins, ins, entry.text)
	}
}

func TestNewBitCount(t *testing.T) {
	assert := assert.New(t)

	for bits := uint8(1); bits <= 32; bits++ {
		in, err := NewIn(IN_X, bits)
		assert.NoError(err)
		assert.Equal(bits, in.BitCount())

		out, err := NewOut(OUT_Y, bits)
		assert.NoError(err)
		assert.Equal(bits, out.BitCount())
	}

	out, err := NewOut(OUT_PINS, 32)
	assert.NoError(err)
	assert.Equal(uint16(0), out.Word()&0x1f)

	for _, bits := range []uint8{0, 33, 0xff} {
		_, err = NewIn(IN_PINS, bits)
		assert.ErrorIs(err, ErrOutOfRange)

		var field *ErrField
		if assert.True(errors.As(err, &field)) {
			assert.Equal("bit count", field.Field)
			assert.Equal(uint(bits), field.Value)
		}

		_, err = NewOut(OUT_PINS, bits)
		assert.ErrorIs(err, ErrOutOfRange)
	}
}

func TestNewFieldWidth(t *testing.T) {
	assert := assert.New(t)

	_, err := NewJmp(JMP_ALWAYS, 31)
	assert.NoError(err)
	_, err = NewJmp(JMP_ALWAYS, 32)
	assert.ErrorIs(err, ErrOutOfRange)

	_, err = NewSet(SET_X, 31)
	assert.NoError(err)
	_, err = NewSet(SET_X, 32)
	assert.ErrorIs(err, ErrOutOfRange)

	_, err = NewWait(WAIT_HIGH, WAIT_GPIO, 31)
	assert.NoError(err)
	_, err = NewWait(WAIT_HIGH, WAIT_PIN, 32)
	assert.ErrorIs(err, ErrOutOfRange)

	var field *ErrField
	_, err = NewJmp(JMP_PIN, 40)
	if assert.True(errors.As(err, &field)) {
		assert.Equal("address", field.Field)
		assert.Equal(uint(40), field.Value)
	}
}

func TestNewIrqIndex(t *testing.T) {
	assert := assert.New(t)

	for index := range uint8(8) {
		irq, err := NewIrq(IRQ_SET, index)
		assert.NoError(err)
		assert.Equal(index, irq.Index())
		assert.False(irq.Relative())

		irq, err = NewIrq(IRQ_WAIT, IrqRel(index))
		assert.NoError(err)
		assert.Equal(index, irq.Index())
		assert.True(irq.Relative())

		_, err = NewWait(WAIT_LOW, WAIT_IRQ, IrqRel(index))
		assert.NoError(err)
	}

	for _, index := range []uint8{8, 15, IrqRel(8), 32} {
		_, err := NewIrq(IRQ_CLEAR, index)
		assert.ErrorIs(err, ErrOutOfRange, "%d", index)

		_, err = NewWait(WAIT_LOW, WAIT_IRQ, index)
		assert.ErrorIs(err, ErrOutOfRange, "%d", index)
	}

	// Not an IRQ, so bit 3 is part of the pin number.
	_, err := NewWait(WAIT_LOW, WAIT_PIN, 8)
	assert.NoError(err)
}

func TestNewEnum(t *testing.T) {
	assert := assert.New(t)

	var err error

	_, err = NewJmp(JmpCond(3), 0)
	assert.ErrorIs(err, ErrUnrecognizedValue)

	_, err = NewWait(WaitPolarity(1), WAIT_GPIO, 0)
	assert.ErrorIs(err, ErrUnrecognizedValue)

	_, err = NewWait(WAIT_LOW, WaitSource(3<<5), 0)
	assert.ErrorIs(err, ErrUnrecognizedValue)

	_, err = NewIn(InSource(4<<5), 8)
	assert.ErrorIs(err, ErrUnrecognizedValue)

	_, err = NewIn(InSource(5<<5), 8)
	assert.ErrorIs(err, ErrUnrecognizedValue)

	_, err = NewOut(OutDest(8<<5), 8)
	assert.ErrorIs(err, ErrUnrecognizedValue)

	_, err = NewMov(MovDest(3<<5), MOV_OP_NONE, MOV_SRC_X)
	assert.ErrorIs(err, ErrUnrecognizedValue)

	_, err = NewMov(MOV_DST_X, MovOp(3<<3), MOV_SRC_X)
	assert.ErrorIs(err, ErrUnrecognizedValue)

	_, err = NewMov(MOV_DST_X, MOV_OP_NONE, MovSource(4))
	assert.ErrorIs(err, ErrUnrecognizedValue)

	_, err = NewIrq(IrqOp(1<<7), 0)
	assert.ErrorIs(err, ErrUnrecognizedValue)

	_, err = NewSet(SetDest(3<<5), 0)
	assert.ErrorIs(err, ErrUnrecognizedValue)

	var field *ErrField
	_, err = NewSet(SetDest(5<<5), 0)
	if assert.True(errors.As(err, &field)) {
		assert.Equal("destination", field.Field)
		assert.Equal(uint(5<<5), field.Value)
	}
}

func TestInstructionAccessors(t *testing.T) {
	assert := assert.New(t)

	jmp, _ := NewJmp(JMP_Y_DEC, 17)
	assert.Equal(OP_JMP, jmp.Opcode())
	assert.Equal(JMP_Y_DEC, jmp.Cond())
	assert.Equal(uint8(17), jmp.Addr())

	wait, _ := NewWait(WAIT_HIGH, WAIT_IRQ, IrqRel(2))
	assert.Equal(OP_WAIT, wait.Opcode())
	assert.Equal(WAIT_HIGH, wait.Polarity())
	assert.Equal(WAIT_IRQ, wait.Source())
	assert.Equal(uint8(0x12), wait.Index())

	in, _ := NewIn(IN_ISR, 7)
	assert.Equal(OP_IN, in.Opcode())
	assert.Equal(IN_ISR, in.Source())

	out, _ := NewOut(OUT_EXEC, 16)
	assert.Equal(OP_OUT, out.Opcode())
	assert.Equal(OUT_EXEC, out.Dest())

	push, _ := NewPush(true, false)
	assert.Equal(OP_PUSH, push.Opcode())
	assert.True(push.IfFull())
	assert.False(push.Block())

	pull, _ := NewPull(false, true)
	assert.Equal(OP_PULL, pull.Opcode())
	assert.False(pull.IfEmpty())
	assert.True(pull.Block())

	mov, _ := NewMov(MOV_DST_OSR, MOV_OP_REVERSE, MOV_SRC_STATUS)
	assert.Equal(OP_MOV, mov.Opcode())
	assert.Equal(MOV_DST_OSR, mov.Dest())
	assert.Equal(MOV_OP_REVERSE, mov.Op())
	assert.Equal(MOV_SRC_STATUS, mov.Source())

	irq, _ := NewIrq(IRQ_CLEAR, 5)
	assert.Equal(OP_IRQ, irq.Opcode())
	assert.Equal(IRQ_CLEAR, irq.Op())

	set, _ := NewSet(SET_PINDIRS, 3)
	assert.Equal(OP_SET, set.Opcode())
	assert.Equal(SET_PINDIRS, set.Dest())
	assert.Equal(uint8(3), set.Data())
}

func TestEnumString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("pull", OP_PULL.String())
	assert.Equal("X!=Y", JMP_X_NE_Y.String())
	assert.Equal("", JMP_ALWAYS.String())
	assert.Equal("1", WAIT_HIGH.String())
	assert.Equal("IRQ", WAIT_IRQ.String())
	assert.Equal("NULL", IN_NULL.String())
	assert.Equal("PINDIRS", OUT_PINDIRS.String())
	assert.Equal("EXEC", MOV_DST_EXEC.String())
	assert.Equal("::", MOV_OP_REVERSE.String())
	assert.Equal("STATUS", MOV_SRC_STATUS.String())
	assert.Equal("clear", (IRQ_CLEAR | IRQ_WAIT).String())
	assert.Equal("PINDIRS", SET_PINDIRS.String())

	assert.Equal("pio.JmpCond(0x3)", JmpCond(3).String())
	assert.Equal("pio.Opcode(0x1)", Opcode(1).String())
}
