package cpu

// opcode describes one legal 6502 instruction byte: which exec
// function to run, which addressing mode to decode it with, the base
// cycle count (before any page-cross or branch-taken bonus), and its
// mnemonic for debugger/disassembly use.
type opcode struct {
	name   string
	mode   addressingMode
	cycles uint8
	exec   func(*CPU, addressingMode) int
}

// opcodeTable covers every documented 6502 opcode. Undocumented/
// illegal opcodes have no entry; Step treats a missing entry as a
// 2-cycle NOP.
var opcodeTable = map[uint8]opcode{
	0xA9: {"LDA", modeImmediate, 2, (*CPU).lda},
	0xA5: {"LDA", modeZeroPage, 3, (*CPU).lda},
	0xB5: {"LDA", modeZeroPageX, 4, (*CPU).lda},
	0xAD: {"LDA", modeAbsolute, 4, (*CPU).lda},
	0xBD: {"LDA", modeAbsoluteX, 4, (*CPU).lda},
	0xB9: {"LDA", modeAbsoluteY, 4, (*CPU).lda},
	0xA1: {"LDA", modeIndirectX, 6, (*CPU).lda},
	0xB1: {"LDA", modeIndirectY, 5, (*CPU).lda},

	0xA2: {"LDX", modeImmediate, 2, (*CPU).ldx},
	0xA6: {"LDX", modeZeroPage, 3, (*CPU).ldx},
	0xB6: {"LDX", modeZeroPageY, 4, (*CPU).ldx},
	0xAE: {"LDX", modeAbsolute, 4, (*CPU).ldx},
	0xBE: {"LDX", modeAbsoluteY, 4, (*CPU).ldx},

	0xA0: {"LDY", modeImmediate, 2, (*CPU).ldy},
	0xA4: {"LDY", modeZeroPage, 3, (*CPU).ldy},
	0xB4: {"LDY", modeZeroPageX, 4, (*CPU).ldy},
	0xAC: {"LDY", modeAbsolute, 4, (*CPU).ldy},
	0xBC: {"LDY", modeAbsoluteX, 4, (*CPU).ldy},

	0x85: {"STA", modeZeroPage, 3, (*CPU).sta},
	0x95: {"STA", modeZeroPageX, 4, (*CPU).sta},
	0x8D: {"STA", modeAbsolute, 4, (*CPU).sta},
	0x9D: {"STA", modeAbsoluteX, 5, (*CPU).sta},
	0x99: {"STA", modeAbsoluteY, 5, (*CPU).sta},
	0x81: {"STA", modeIndirectX, 6, (*CPU).sta},
	0x91: {"STA", modeIndirectY, 6, (*CPU).sta},

	0x86: {"STX", modeZeroPage, 3, (*CPU).stx},
	0x96: {"STX", modeZeroPageY, 4, (*CPU).stx},
	0x8E: {"STX", modeAbsolute, 4, (*CPU).stx},

	0x84: {"STY", modeZeroPage, 3, (*CPU).sty},
	0x94: {"STY", modeZeroPageX, 4, (*CPU).sty},
	0x8C: {"STY", modeAbsolute, 4, (*CPU).sty},

	0xAA: {"TAX", modeImplied, 2, (*CPU).tax},
	0xA8: {"TAY", modeImplied, 2, (*CPU).tay},
	0x8A: {"TXA", modeImplied, 2, (*CPU).txa},
	0x98: {"TYA", modeImplied, 2, (*CPU).tya},
	0xBA: {"TSX", modeImplied, 2, (*CPU).tsx},
	0x9A: {"TXS", modeImplied, 2, (*CPU).txs},

	0x48: {"PHA", modeImplied, 3, (*CPU).pha},
	0x68: {"PLA", modeImplied, 4, (*CPU).pla},
	0x08: {"PHP", modeImplied, 3, (*CPU).php},
	0x28: {"PLP", modeImplied, 4, (*CPU).plp},

	0x69: {"ADC", modeImmediate, 2, (*CPU).adc},
	0x65: {"ADC", modeZeroPage, 3, (*CPU).adc},
	0x75: {"ADC", modeZeroPageX, 4, (*CPU).adc},
	0x6D: {"ADC", modeAbsolute, 4, (*CPU).adc},
	0x7D: {"ADC", modeAbsoluteX, 4, (*CPU).adc},
	0x79: {"ADC", modeAbsoluteY, 4, (*CPU).adc},
	0x61: {"ADC", modeIndirectX, 6, (*CPU).adc},
	0x71: {"ADC", modeIndirectY, 5, (*CPU).adc},

	0xE9: {"SBC", modeImmediate, 2, (*CPU).sbc},
	0xE5: {"SBC", modeZeroPage, 3, (*CPU).sbc},
	0xF5: {"SBC", modeZeroPageX, 4, (*CPU).sbc},
	0xED: {"SBC", modeAbsolute, 4, (*CPU).sbc},
	0xFD: {"SBC", modeAbsoluteX, 4, (*CPU).sbc},
	0xF9: {"SBC", modeAbsoluteY, 4, (*CPU).sbc},
	0xE1: {"SBC", modeIndirectX, 6, (*CPU).sbc},
	0xF1: {"SBC", modeIndirectY, 5, (*CPU).sbc},

	0x29: {"AND", modeImmediate, 2, (*CPU).and},
	0x25: {"AND", modeZeroPage, 3, (*CPU).and},
	0x35: {"AND", modeZeroPageX, 4, (*CPU).and},
	0x2D: {"AND", modeAbsolute, 4, (*CPU).and},
	0x3D: {"AND", modeAbsoluteX, 4, (*CPU).and},
	0x39: {"AND", modeAbsoluteY, 4, (*CPU).and},
	0x21: {"AND", modeIndirectX, 6, (*CPU).and},
	0x31: {"AND", modeIndirectY, 5, (*CPU).and},

	0x09: {"ORA", modeImmediate, 2, (*CPU).ora},
	0x05: {"ORA", modeZeroPage, 3, (*CPU).ora},
	0x15: {"ORA", modeZeroPageX, 4, (*CPU).ora},
	0x0D: {"ORA", modeAbsolute, 4, (*CPU).ora},
	0x1D: {"ORA", modeAbsoluteX, 4, (*CPU).ora},
	0x19: {"ORA", modeAbsoluteY, 4, (*CPU).ora},
	0x01: {"ORA", modeIndirectX, 6, (*CPU).ora},
	0x11: {"ORA", modeIndirectY, 5, (*CPU).ora},

	0x49: {"EOR", modeImmediate, 2, (*CPU).eor},
	0x45: {"EOR", modeZeroPage, 3, (*CPU).eor},
	0x55: {"EOR", modeZeroPageX, 4, (*CPU).eor},
	0x4D: {"EOR", modeAbsolute, 4, (*CPU).eor},
	0x5D: {"EOR", modeAbsoluteX, 4, (*CPU).eor},
	0x59: {"EOR", modeAbsoluteY, 4, (*CPU).eor},
	0x41: {"EOR", modeIndirectX, 6, (*CPU).eor},
	0x51: {"EOR", modeIndirectY, 5, (*CPU).eor},

	0x24: {"BIT", modeZeroPage, 3, (*CPU).bit},
	0x2C: {"BIT", modeAbsolute, 4, (*CPU).bit},

	0xC9: {"CMP", modeImmediate, 2, (*CPU).cmp},
	0xC5: {"CMP", modeZeroPage, 3, (*CPU).cmp},
	0xD5: {"CMP", modeZeroPageX, 4, (*CPU).cmp},
	0xCD: {"CMP", modeAbsolute, 4, (*CPU).cmp},
	0xDD: {"CMP", modeAbsoluteX, 4, (*CPU).cmp},
	0xD9: {"CMP", modeAbsoluteY, 4, (*CPU).cmp},
	0xC1: {"CMP", modeIndirectX, 6, (*CPU).cmp},
	0xD1: {"CMP", modeIndirectY, 5, (*CPU).cmp},

	0xE0: {"CPX", modeImmediate, 2, (*CPU).cpx},
	0xE4: {"CPX", modeZeroPage, 3, (*CPU).cpx},
	0xEC: {"CPX", modeAbsolute, 4, (*CPU).cpx},

	0xC0: {"CPY", modeImmediate, 2, (*CPU).cpy},
	0xC4: {"CPY", modeZeroPage, 3, (*CPU).cpy},
	0xCC: {"CPY", modeAbsolute, 4, (*CPU).cpy},

	0xE6: {"INC", modeZeroPage, 5, (*CPU).inc},
	0xF6: {"INC", modeZeroPageX, 6, (*CPU).inc},
	0xEE: {"INC", modeAbsolute, 6, (*CPU).inc},
	0xFE: {"INC", modeAbsoluteX, 7, (*CPU).inc},

	0xC6: {"DEC", modeZeroPage, 5, (*CPU).dec},
	0xD6: {"DEC", modeZeroPageX, 6, (*CPU).dec},
	0xCE: {"DEC", modeAbsolute, 6, (*CPU).dec},
	0xDE: {"DEC", modeAbsoluteX, 7, (*CPU).dec},

	0xE8: {"INX", modeImplied, 2, (*CPU).inx},
	0xC8: {"INY", modeImplied, 2, (*CPU).iny},
	0xCA: {"DEX", modeImplied, 2, (*CPU).dex},
	0x88: {"DEY", modeImplied, 2, (*CPU).dey},

	0x0A: {"ASL", modeAccumulator, 2, (*CPU).asl},
	0x06: {"ASL", modeZeroPage, 5, (*CPU).asl},
	0x16: {"ASL", modeZeroPageX, 6, (*CPU).asl},
	0x0E: {"ASL", modeAbsolute, 6, (*CPU).asl},
	0x1E: {"ASL", modeAbsoluteX, 7, (*CPU).asl},

	0x4A: {"LSR", modeAccumulator, 2, (*CPU).lsr},
	0x46: {"LSR", modeZeroPage, 5, (*CPU).lsr},
	0x56: {"LSR", modeZeroPageX, 6, (*CPU).lsr},
	0x4E: {"LSR", modeAbsolute, 6, (*CPU).lsr},
	0x5E: {"LSR", modeAbsoluteX, 7, (*CPU).lsr},

	0x2A: {"ROL", modeAccumulator, 2, (*CPU).rol},
	0x26: {"ROL", modeZeroPage, 5, (*CPU).rol},
	0x36: {"ROL", modeZeroPageX, 6, (*CPU).rol},
	0x2E: {"ROL", modeAbsolute, 6, (*CPU).rol},
	0x3E: {"ROL", modeAbsoluteX, 7, (*CPU).rol},

	0x6A: {"ROR", modeAccumulator, 2, (*CPU).ror},
	0x66: {"ROR", modeZeroPage, 5, (*CPU).ror},
	0x76: {"ROR", modeZeroPageX, 6, (*CPU).ror},
	0x6E: {"ROR", modeAbsolute, 6, (*CPU).ror},
	0x7E: {"ROR", modeAbsoluteX, 7, (*CPU).ror},

	0x90: {"BCC", modeRelative, 2, (*CPU).bcc},
	0xB0: {"BCS", modeRelative, 2, (*CPU).bcs},
	0xD0: {"BNE", modeRelative, 2, (*CPU).bne},
	0xF0: {"BEQ", modeRelative, 2, (*CPU).beq},
	0x10: {"BPL", modeRelative, 2, (*CPU).bpl},
	0x30: {"BMI", modeRelative, 2, (*CPU).bmi},
	0x50: {"BVC", modeRelative, 2, (*CPU).bvc},
	0x70: {"BVS", modeRelative, 2, (*CPU).bvs},

	0x4C: {"JMP", modeAbsolute, 3, (*CPU).jmp},
	0x6C: {"JMP", modeIndirect, 5, (*CPU).jmp},
	0x20: {"JSR", modeAbsolute, 6, (*CPU).jsr},
	0x60: {"RTS", modeImplied, 6, (*CPU).rts},

	0x00: {"BRK", modeImplied, 7, (*CPU).brk},
	0x40: {"RTI", modeImplied, 6, (*CPU).rti},

	0x18: {"CLC", modeImplied, 2, (*CPU).clc},
	0x38: {"SEC", modeImplied, 2, (*CPU).sec},
	0x58: {"CLI", modeImplied, 2, (*CPU).cli},
	0x78: {"SEI", modeImplied, 2, (*CPU).sei},
	0xB8: {"CLV", modeImplied, 2, (*CPU).clv},
	0xD8: {"CLD", modeImplied, 2, (*CPU).cld},
	0xF8: {"SED", modeImplied, 2, (*CPU).sed},

	0xEA: {"NOP", modeImplied, 2, (*CPU).nop},
}
