// Package nescore is the coupling fabric that wires a Bus, CPU and
// PPU together and drives the 3 PPU-dots-per-CPU-cycle clock
// relationship real NES hardware runs at.
package nescore

import (
	"fmt"

	"github.com/nes-core/nescore/bus"
	"github.com/nes-core/nescore/cartridge"
	"github.com/nes-core/nescore/cpu"
	"github.com/nes-core/nescore/ppu"
)

// Core owns one NES session: a cartridge's mapper wired into a Bus,
// and a CPU and PPU both built around that Bus.
type Core struct {
	Bus *bus.Bus
	CPU *cpu.CPU
	PPU *ppu.PPU
}

// New constructs a Core from a cartridge, looking up its mapper and
// wiring Bus/CPU/PPU construction in the order the mapper/PPU-port
// dependency requires: Bus first, then PPU (which needs the Bus for
// VRAM/OAM), then AttachPPU so the Bus can forward CPU register I/O,
// then CPU (which needs the Bus for all memory access).
func New(cart *cartridge.Cartridge) (*Core, error) {
	mapper, err := cartridge.NewMapper(cart)
	if err != nil {
		return nil, fmt.Errorf("nescore: %w", err)
	}

	b := bus.New(mapper)
	p := ppu.New(b)
	b.AttachPPU(p)
	c := cpu.New(b)

	return &Core{Bus: b, CPU: c, PPU: p}, nil
}

// Reset latches a CPU RESET and returns the PPU to its power-on
// scanline/dot position.
func (co *Core) Reset() {
	co.CPU.Reset()
	co.PPU.Reset()
}

// StepFrame runs the CPU/PPU pair, three PPU dots per CPU cycle,
// until one PPU frame completes, and returns its framebuffer (tightly
// packed RGB, row-major).
func (co *Core) StepFrame() []uint8 {
	for {
		cycles := co.CPU.Step()
		for i := 0; i < cycles*3; i++ {
			co.PPU.Tick()
			if co.PPU.PollNMI() {
				co.CPU.RequestNMI()
			}
			if frame, ok := co.PPU.ConsumeFrame(); ok {
				return frame
			}
		}
	}
}

// Step advances exactly one CPU instruction (plus its matching PPU
// dots), for single-step debugging. It reports whether a frame
// completed during that instruction.
func (co *Core) Step() (frame []uint8, frameDone bool) {
	cycles := co.CPU.Step()
	for i := 0; i < cycles*3; i++ {
		co.PPU.Tick()
		if co.PPU.PollNMI() {
			co.CPU.RequestNMI()
		}
		if f, ok := co.PPU.ConsumeFrame(); ok {
			frame, frameDone = f, true
		}
	}
	return frame, frameDone
}
