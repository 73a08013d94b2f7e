package pio

import (
	"fmt"
)

// Instruction word layout.
const (
	maskOpcode   = uint16(0xe000) // bits 13-15
	maskDelay    = uint16(0x1f00) // bits 8-12, delay and side-set
	maskArg1     = uint16(0x00e0) // bits 5-7
	maskArg2     = uint16(0x001f) // bits 0-4
	maskPull     = uint16(1 << 7)
	maskIfFlag   = uint16(1 << 6) // iffull / ifempty
	maskBlock    = uint16(1 << 5)
	maskPolarity = uint16(1 << 7)
	maskWaitSrc  = uint16(0x0060) // bits 5-6
	maskMovOp    = uint16(0x0018) // bits 3-4
	maskMovSrc   = uint16(0x0007) // bits 0-2
	maskIrqOp    = uint16(0x0060) // bits 5-6
	maskIrqRsvd  = uint16(1 << 7)
)

// Opcode is the instruction tag, pre-shifted to bits 13-15.
//
// OP_PULL shares its tag with OP_PUSH and is told apart by bit 7.
type Opcode uint16

const (
	OP_JMP  = Opcode(0 << 13)      // jmp
	OP_WAIT = Opcode(1 << 13)      // wait
	OP_IN   = Opcode(2 << 13)      // in
	OP_OUT  = Opcode(3 << 13)      // out
	OP_PUSH = Opcode(4 << 13)      // push
	OP_PULL = Opcode(4<<13 | 1<<7) // pull
	OP_MOV  = Opcode(5 << 13)      // mov
	OP_IRQ  = Opcode(6 << 13)      // irq
	OP_SET  = Opcode(7 << 13)      // set
)

var opcodeToken = map[Opcode]string{
	OP_JMP:  "jmp",
	OP_WAIT: "wait",
	OP_IN:   "in",
	OP_OUT:  "out",
	OP_PUSH: "push",
	OP_PULL: "pull",
	OP_MOV:  "mov",
	OP_IRQ:  "irq",
	OP_SET:  "set",
}

func (op Opcode) String() string {
	return stringOf(opcodeToken, op)
}

// JmpCond is a JMP condition, bits 5-7.
type JmpCond uint16

const (
	JMP_ALWAYS        = JmpCond(0 << 5)
	JMP_X_ZERO        = JmpCond(1 << 5) // !X
	JMP_X_DEC         = JmpCond(2 << 5) // X--
	JMP_Y_ZERO        = JmpCond(3 << 5) // !Y
	JMP_Y_DEC         = JmpCond(4 << 5) // Y--
	JMP_X_NE_Y        = JmpCond(5 << 5) // X!=Y
	JMP_PIN           = JmpCond(6 << 5) // PIN
	JMP_OSR_NOT_EMPTY = JmpCond(7 << 5) // !OSRE
)

var jmpCondToken = map[JmpCond]string{
	JMP_ALWAYS:        "",
	JMP_X_ZERO:        "!X",
	JMP_X_DEC:         "X--",
	JMP_Y_ZERO:        "!Y",
	JMP_Y_DEC:         "Y--",
	JMP_X_NE_Y:        "X!=Y",
	JMP_PIN:           "PIN",
	JMP_OSR_NOT_EMPTY: "!OSRE",
}

func (cond JmpCond) String() string {
	return stringOf(jmpCondToken, cond)
}

// WaitPolarity is the level a WAIT waits for, bit 7.
type WaitPolarity uint16

const (
	WAIT_LOW  = WaitPolarity(0 << 7) // 0
	WAIT_HIGH = WaitPolarity(1 << 7) // 1
)

var waitPolarityToken = map[WaitPolarity]string{
	WAIT_LOW:  "0",
	WAIT_HIGH: "1",
}

func (pol WaitPolarity) String() string {
	return stringOf(waitPolarityToken, pol)
}

// WaitSource is the WAIT source, bits 5-6.
type WaitSource uint16

const (
	WAIT_GPIO = WaitSource(0 << 5) // GPIO
	WAIT_PIN  = WaitSource(1 << 5) // PIN
	WAIT_IRQ  = WaitSource(2 << 5) // IRQ
)

var waitSourceToken = map[WaitSource]string{
	WAIT_GPIO: "GPIO",
	WAIT_PIN:  "PIN",
	WAIT_IRQ:  "IRQ",
}

func (src WaitSource) String() string {
	return stringOf(waitSourceToken, src)
}

// InSource is the IN source, bits 5-7.
type InSource uint16

const (
	IN_PINS = InSource(0 << 5) // PINS
	IN_X    = InSource(1 << 5) // X
	IN_Y    = InSource(2 << 5) // Y
	IN_NULL = InSource(3 << 5) // NULL
	IN_ISR  = InSource(6 << 5) // ISR
	IN_OSR  = InSource(7 << 5) // OSR
)

var inSourceToken = map[InSource]string{
	IN_PINS: "PINS",
	IN_X:    "X",
	IN_Y:    "Y",
	IN_NULL: "NULL",
	IN_ISR:  "ISR",
	IN_OSR:  "OSR",
}

func (src InSource) String() string {
	return stringOf(inSourceToken, src)
}

// OutDest is the OUT destination, bits 5-7.
type OutDest uint16

const (
	OUT_PINS    = OutDest(0 << 5) // PINS
	OUT_X       = OutDest(1 << 5) // X
	OUT_Y       = OutDest(2 << 5) // Y
	OUT_NULL    = OutDest(3 << 5) // NULL
	OUT_PINDIRS = OutDest(4 << 5) // PINDIRS
	OUT_PC      = OutDest(5 << 5) // PC
	OUT_ISR     = OutDest(6 << 5) // ISR
	OUT_EXEC    = OutDest(7 << 5) // EXEC
)

var outDestToken = map[OutDest]string{
	OUT_PINS:    "PINS",
	OUT_X:       "X",
	OUT_Y:       "Y",
	OUT_NULL:    "NULL",
	OUT_PINDIRS: "PINDIRS",
	OUT_PC:      "PC",
	OUT_ISR:     "ISR",
	OUT_EXEC:    "EXEC",
}

func (dst OutDest) String() string {
	return stringOf(outDestToken, dst)
}

// MovDest is the MOV destination, bits 5-7.
type MovDest uint16

const (
	MOV_DST_PINS = MovDest(0 << 5) // PINS
	MOV_DST_X    = MovDest(1 << 5) // X
	MOV_DST_Y    = MovDest(2 << 5) // Y
	MOV_DST_EXEC = MovDest(4 << 5) // EXEC
	MOV_DST_PC   = MovDest(5 << 5) // PC
	MOV_DST_ISR  = MovDest(6 << 5) // ISR
	MOV_DST_OSR  = MovDest(7 << 5) // OSR
)

var movDestToken = map[MovDest]string{
	MOV_DST_PINS: "PINS",
	MOV_DST_X:    "X",
	MOV_DST_Y:    "Y",
	MOV_DST_EXEC: "EXEC",
	MOV_DST_PC:   "PC",
	MOV_DST_ISR:  "ISR",
	MOV_DST_OSR:  "OSR",
}

func (dst MovDest) String() string {
	return stringOf(movDestToken, dst)
}

// MovOp is the MOV unary operation, bits 3-4.
type MovOp uint16

const (
	MOV_OP_NONE    = MovOp(0 << 3)
	MOV_OP_INVERT  = MovOp(1 << 3) // !
	MOV_OP_REVERSE = MovOp(2 << 3) // ::
)

var movOpToken = map[MovOp]string{
	MOV_OP_NONE:    "",
	MOV_OP_INVERT:  "!",
	MOV_OP_REVERSE: "::",
}

func (op MovOp) String() string {
	return stringOf(movOpToken, op)
}

// MovSource is the MOV source, bits 0-2.
type MovSource uint16

const (
	MOV_SRC_PINS   = MovSource(0) // PINS
	MOV_SRC_X      = MovSource(1) // X
	MOV_SRC_Y      = MovSource(2) // Y
	MOV_SRC_NULL   = MovSource(3) // NULL
	MOV_SRC_STATUS = MovSource(5) // STATUS
	MOV_SRC_ISR    = MovSource(6) // ISR
	MOV_SRC_OSR    = MovSource(7) // OSR
)

var movSourceToken = map[MovSource]string{
	MOV_SRC_PINS:   "PINS",
	MOV_SRC_X:      "X",
	MOV_SRC_Y:      "Y",
	MOV_SRC_NULL:   "NULL",
	MOV_SRC_STATUS: "STATUS",
	MOV_SRC_ISR:    "ISR",
	MOV_SRC_OSR:    "OSR",
}

func (src MovSource) String() string {
	return stringOf(movSourceToken, src)
}

// IrqOp is the pair of IRQ flag bits, Clear (bit 6) and Wait (bit 5).
// Neither bit set raises the flag. Clear wins when both are set.
type IrqOp uint16

const (
	IRQ_SET   = IrqOp(0)      // set
	IRQ_WAIT  = IrqOp(1 << 5) // wait
	IRQ_CLEAR = IrqOp(1 << 6) // clear
)

var irqOpToken = map[IrqOp]string{
	IRQ_SET:              "set",
	IRQ_WAIT:             "wait",
	IRQ_CLEAR:            "clear",
	IRQ_CLEAR | IRQ_WAIT: "clear",
}

func (op IrqOp) String() string {
	return stringOf(irqOpToken, op)
}

// SetDest is the SET destination, bits 5-7.
type SetDest uint16

const (
	SET_PINS    = SetDest(0 << 5) // PINS
	SET_X       = SetDest(1 << 5) // X
	SET_Y       = SetDest(2 << 5) // Y
	SET_PINDIRS = SetDest(4 << 5) // PINDIRS
)

var setDestToken = map[SetDest]string{
	SET_PINS:    "PINS",
	SET_X:       "X",
	SET_Y:       "Y",
	SET_PINDIRS: "PINDIRS",
}

func (dst SetDest) String() string {
	return stringOf(setDestToken, dst)
}

// IRQ index field: bits 0-2 select the flag, bit 4 adds the state machine
// number modulo 4. Bit 3 is reserved.
const (
	IRQ_REL      = uint8(1 << 4)
	irqIndexMask = uint8(0x07)
	irqIndexRsvd = uint8(1 << 3)
	fieldMax5    = uint8(0x1f)
	bitCountMax  = uint8(32)
)

// IrqRel returns the relative form of an IRQ index.
func IrqRel(index uint8) uint8 {
	return index | IRQ_REL
}

// tokenOf looks up the pioasm token for an enumerated field value.
func tokenOf[T ~uint16](field string, table map[T]string, value T) (token string, err error) {
	token, ok := table[value]
	if !ok {
		err = unrecognized(field, uint(value))
	}
	return
}

func stringOf[T ~uint16](table map[T]string, value T) string {
	token, ok := table[value]
	if !ok {
		return fmt.Sprintf("%T(%#x)", value, uint16(value))
	}
	return token
}
