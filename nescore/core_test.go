package nescore

import (
	"testing"

	"github.com/nes-core/nescore/cartridge"
)

func newTestCore(t *testing.T) *Core {
	t.Helper()
	prg := make([]byte, cartridge.PRGBlockSize)
	// Reset vector -> $8000, which holds a NOP; the rest of PRG is zero
	// (BRK). A single 16 KiB bank is mirrored, so $FFFC is offset 0x3FFC.
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80
	prg[0x0000] = 0xEA // NOP

	c, err := cartridge.New(prg, nil, 0, cartridge.Horizontal)
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}
	core, err := New(c)
	if err != nil {
		t.Fatalf("nescore.New: %v", err)
	}
	return core
}

func TestNewWiresCPUToResetVector(t *testing.T) {
	core := newTestCore(t)
	core.Step() // services RESET
	_, _, _, _, _, pc := core.CPU.Registers()
	if pc != 0x8000 {
		t.Errorf("PC = %#04x, want 0x8000", pc)
	}
}

func TestStepFrameCompletesAndProducesAFrame(t *testing.T) {
	core := newTestCore(t)
	frame := core.StepFrame()
	w, h := core.PPU.Resolution()
	if len(frame) != w*h*3 {
		t.Errorf("frame length = %d, want %d", len(frame), w*h*3)
	}
}

func TestResetRelatchesCPUAndPPU(t *testing.T) {
	core := newTestCore(t)
	core.StepFrame()
	core.Reset()
	core.Step() // services the freshly-latched RESET
	_, _, _, _, _, pc := core.CPU.Registers()
	if pc != 0x8000 {
		t.Errorf("PC after Reset = %#04x, want 0x8000", pc)
	}
}
