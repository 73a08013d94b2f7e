package pio

// Instruction is a single PIO instruction.
//
// The concrete types are Jmp, Wait, In, Out, Push, Pull, Mov, Irq and Set.
// Values are immutable and compare equal with == when they encode to the
// same word. The zero value of each type is a valid instruction.
type Instruction interface {
	// Opcode returns the instruction tag.
	Opcode() Opcode
	// Word returns the 16-bit instruction word.
	Word() uint16
	// String returns the pioasm text, with jump targets as addresses.
	String() string

	assembly(resolver Resolver) (string, error)
}

// checkField verifies an unsigned operand fits in [lo, hi].
func checkField(field string, value, lo, hi uint8) (err error) {
	if value < lo || value > hi {
		err = outOfRange(field, uint(value))
	}
	return
}

// checkEnum verifies a field value is one of the named values in table.
func checkEnum[T ~uint16](field string, table map[T]string, value T) (err error) {
	_, err = tokenOf(field, table, value)
	return
}

// checkIrqIndex verifies an IRQ index: 0-7, optionally with IRQ_REL.
func checkIrqIndex(field string, index uint8) (err error) {
	if index > fieldMax5 || index&irqIndexRsvd != 0 {
		err = outOfRange(field, uint(index))
	}
	return
}

// Jmp is a conditional jump to an absolute address.
type Jmp struct {
	cond JmpCond
	addr uint8
}

// NewJmp creates a JMP to addr (0-31) taken when cond holds.
func NewJmp(cond JmpCond, addr uint8) (ins Jmp, err error) {
	if err = checkEnum("condition", jmpCondToken, cond); err != nil {
		return
	}
	if err = checkField("address", addr, 0, fieldMax5); err != nil {
		return
	}

	ins = Jmp{cond: cond, addr: addr}
	return
}

func (ins Jmp) Opcode() Opcode { return OP_JMP }
func (ins Jmp) Cond() JmpCond { return ins.cond }
func (ins Jmp) Addr() uint8 { return ins.addr }
func (ins Jmp) String() string { return stringOfInstruction(ins) }
func (ins Jmp) Word() uint16 { return uint16(OP_JMP) | uint16(ins.cond) | uint16(ins.addr) }

// Wait stalls until a GPIO, pin or IRQ flag reaches the polarity.
type Wait struct {
	polarity WaitPolarity
	source   WaitSource
	index    uint8
}

// NewWait creates a WAIT. The index is a GPIO or pin number (0-31), or for
// WAIT_IRQ an IRQ index (0-7, optionally IrqRel).
func NewWait(polarity WaitPolarity, source WaitSource, index uint8) (ins Wait, err error) {
	if err = checkEnum("polarity", waitPolarityToken, polarity); err != nil {
		return
	}
	if err = checkEnum("source", waitSourceToken, source); err != nil {
		return
	}
	if source == WAIT_IRQ {
		err = checkIrqIndex("index", index)
	} else {
		err = checkField("index", index, 0, fieldMax5)
	}
	if err != nil {
		return
	}

	ins = Wait{polarity: polarity, source: source, index: index}
	return
}

func (ins Wait) Opcode() Opcode { return OP_WAIT }
func (ins Wait) Polarity() WaitPolarity { return ins.polarity }
func (ins Wait) Source() WaitSource { return ins.source }
func (ins Wait) String() string { return stringOfInstruction(ins) }

// Index returns the raw index field, including IRQ_REL for IRQ sources.
func (ins Wait) Index() uint8 { return ins.index }

func (ins Wait) Word() uint16 {
	return uint16(OP_WAIT) | uint16(ins.polarity) | uint16(ins.source) | uint16(ins.index)
}

// encodeBitCount maps a 1-32 bit count onto the 5-bit field.
func encodeBitCount(bits uint8) uint8 {
	return bits & fieldMax5
}

// decodeBitCount maps the 5-bit field back onto 1-32.
func decodeBitCount(field uint8) uint8 {
	if field == 0 {
		return bitCountMax
	}
	return field
}

// In shifts bits from a source into the ISR.
type In struct {
	source InSource
	count  uint8 // 0 is 32
}

// NewIn creates an IN of 1-32 bits.
func NewIn(source InSource, bits uint8) (ins In, err error) {
	if err = checkEnum("source", inSourceToken, source); err != nil {
		return
	}
	if err = checkField("bit count", bits, 1, bitCountMax); err != nil {
		return
	}

	ins = In{source: source, count: encodeBitCount(bits)}
	return
}

func (ins In) Opcode() Opcode { return OP_IN }
func (ins In) Source() InSource { return ins.source }
func (ins In) BitCount() uint8 { return decodeBitCount(ins.count) }
func (ins In) String() string { return stringOfInstruction(ins) }
func (ins In) Word() uint16 { return uint16(OP_IN) | uint16(ins.source) | uint16(ins.count) }

// Out shifts bits from the OSR to a destination.
type Out struct {
	dest  OutDest
	count uint8 // 0 is 32
}

// NewOut creates an OUT of 1-32 bits.
func NewOut(dest OutDest, bits uint8) (ins Out, err error) {
	if err = checkEnum("destination", outDestToken, dest); err != nil {
		return
	}
	if err = checkField("bit count", bits, 1, bitCountMax); err != nil {
		return
	}

	ins = Out{dest: dest, count: encodeBitCount(bits)}
	return
}

func (ins Out) Opcode() Opcode { return OP_OUT }
func (ins Out) Dest() OutDest { return ins.dest }
func (ins Out) BitCount() uint8 { return decodeBitCount(ins.count) }
func (ins Out) String() string { return stringOfInstruction(ins) }
func (ins Out) Word() uint16 { return uint16(OP_OUT) | uint16(ins.dest) | uint16(ins.count) }

// fifoFlags encodes the shared PUSH/PULL flag bits.
func fifoFlags(ifFlag, block bool) (word uint16) {
	if ifFlag {
		word |= maskIfFlag
	}
	if block {
		word |= maskBlock
	}
	return
}

// Push moves the ISR into the RX FIFO.
type Push struct {
	ifFull bool
	block  bool
}

// NewPush creates a PUSH.
func NewPush(ifFull, block bool) (ins Push, err error) {
	ins = Push{ifFull: ifFull, block: block}
	return
}

func (ins Push) Opcode() Opcode { return OP_PUSH }
func (ins Push) IfFull() bool { return ins.ifFull }
func (ins Push) Block() bool { return ins.block }
func (ins Push) String() string { return stringOfInstruction(ins) }
func (ins Push) Word() uint16 { return uint16(OP_PUSH) | fifoFlags(ins.ifFull, ins.block) }

// Pull loads the OSR from the TX FIFO.
type Pull struct {
	ifEmpty bool
	block   bool
}

// NewPull creates a PULL.
func NewPull(ifEmpty, block bool) (ins Pull, err error) {
	ins = Pull{ifEmpty: ifEmpty, block: block}
	return
}

func (ins Pull) Opcode() Opcode { return OP_PULL }
func (ins Pull) IfEmpty() bool { return ins.ifEmpty }
func (ins Pull) Block() bool { return ins.block }
func (ins Pull) String() string { return stringOfInstruction(ins) }
func (ins Pull) Word() uint16 { return uint16(OP_PULL) | fifoFlags(ins.ifEmpty, ins.block) }

// Mov copies a source to a destination through an optional operation.
type Mov struct {
	dest   MovDest
	op     MovOp
	source MovSource
}

// NewMov creates a MOV.
func NewMov(dest MovDest, op MovOp, source MovSource) (ins Mov, err error) {
	if err = checkEnum("destination", movDestToken, dest); err != nil {
		return
	}
	if err = checkEnum("operation", movOpToken, op); err != nil {
		return
	}
	if err = checkEnum("source", movSourceToken, source); err != nil {
		return
	}

	ins = Mov{dest: dest, op: op, source: source}
	return
}

func (ins Mov) Opcode() Opcode { return OP_MOV }
func (ins Mov) Dest() MovDest { return ins.dest }
func (ins Mov) Op() MovOp { return ins.op }
func (ins Mov) Source() MovSource { return ins.source }
func (ins Mov) String() string { return stringOfInstruction(ins) }

func (ins Mov) Word() uint16 {
	return uint16(OP_MOV) | uint16(ins.dest) | uint16(ins.op) | uint16(ins.source)
}

// Irq sets, clears or waits on an IRQ flag.
type Irq struct {
	op    IrqOp
	index uint8
}

// NewIrq creates an IRQ on index 0-7, optionally IrqRel.
func NewIrq(op IrqOp, index uint8) (ins Irq, err error) {
	if err = checkEnum("operation", irqOpToken, op); err != nil {
		return
	}
	if err = checkIrqIndex("index", index); err != nil {
		return
	}

	ins = Irq{op: op, index: index}
	return
}

func (ins Irq) Opcode() Opcode { return OP_IRQ }
func (ins Irq) Op() IrqOp { return ins.op }
func (ins Irq) String() string { return stringOfInstruction(ins) }
func (ins Irq) Word() uint16 { return uint16(OP_IRQ) | uint16(ins.op) | uint16(ins.index) }

// Index returns the IRQ flag number, without the relative bit.
func (ins Irq) Index() uint8 { return ins.index & irqIndexMask }

// Relative reports whether the index is relative to the state machine.
func (ins Irq) Relative() bool { return ins.index&IRQ_REL != 0 }

// Set writes immediate data to a destination.
type Set struct {
	dest SetDest
	data uint8
}

// NewSet creates a SET of data (0-31).
func NewSet(dest SetDest, data uint8) (ins Set, err error) {
	if err = checkEnum("destination", setDestToken, dest); err != nil {
		return
	}
	if err = checkField("data", data, 0, fieldMax5); err != nil {
		return
	}

	ins = Set{dest: dest, data: data}
	return
}

func (ins Set) Opcode() Opcode { return OP_SET }
func (ins Set) Dest() SetDest { return ins.dest }
func (ins Set) Data() uint8 { return ins.data }
func (ins Set) String() string { return stringOfInstruction(ins) }
func (ins Set) Word() uint16 { return uint16(OP_SET) | uint16(ins.dest) | uint16(ins.data) }
