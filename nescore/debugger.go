package nescore

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Debugger is a minimal interactive console around a Core: single
// stepping, breakpoints, and memory/stack inspection, in the shape of
// the teacher's BIOS-style menu loop.
type Debugger struct {
	core   *Core
	breaks map[uint16]struct{}
	in     *bufio.Reader
}

// NewDebugger wraps core with an interactive console reading from
// stdin.
func NewDebugger(core *Core) *Debugger {
	return &Debugger{
		core:   core,
		breaks: make(map[uint16]struct{}),
		in:     bufio.NewReader(os.Stdin),
	}
}

func (d *Debugger) readAddress(prompt string) uint16 {
	fmt.Print(prompt)
	var a uint16
	fmt.Fscanf(d.in, "%x\n", &a)
	return a
}

// Run presents the menu loop until the user quits or ctx is canceled.
func (d *Debugger) Run(ctx context.Context) {
	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigQuit)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sigQuit:
			return
		default:
		}

		a, x, y, s, p, pc := d.core.CPU.Registers()
		fmt.Printf("A=%02x X=%02x Y=%02x S=%02x P=%02x PC=%04x\n\n", a, x, y, s, p, pc)
		fmt.Println("(B)reak - add breakpoint")
		fmt.Println("(C)lear - clear breakpoints")
		fmt.Println("(R)un - run until a breakpoint is hit")
		fmt.Println("(S)tep - execute one instruction")
		fmt.Println("R(e)set - hit the reset button")
		fmt.Println("(M)emory - display a memory range")
		fmt.Println("S(t)ack - show the top of the stack")
		fmt.Println("(Q)uit")
		fmt.Print("Choice: ")

		var in string
		fmt.Fscanf(d.in, "%s\n", &in)
		if len(in) == 0 {
			continue
		}

		switch in[0] {
		case 'b', 'B':
			d.breaks[d.readAddress("Breakpoint (e.g. ff15): ")] = struct{}{}
		case 'c', 'C':
			d.breaks = make(map[uint16]struct{})
		case 'q', 'Q':
			return
		case 'r', 'R':
			d.runUntilBreak(ctx)
		case 's', 'S':
			d.core.Step()
		case 'e', 'E':
			d.core.Reset()
		case 't', 'T':
			d.printStack()
		case 'm', 'M':
			low := d.readAddress("Low address (e.g. f00d): ")
			high := d.readAddress("High address (e.g. beef): ")
			d.printMemory(low, high)
		}
	}
}

func (d *Debugger) runUntilBreak(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		d.core.Step()
		_, _, _, _, _, pc := d.core.CPU.Registers()
		if _, ok := d.breaks[pc]; ok {
			fmt.Printf("hit breakpoint at %04x\n", pc)
			return
		}
	}
}

func (d *Debugger) printStack() {
	_, _, _, s, _, _ := d.core.CPU.Registers()
	fmt.Println()
	for i := 0; i < 3; i++ {
		addr := 0x0100 + uint16(s) + uint16(i) + 1
		fmt.Printf("%04x: %02x ", addr, d.core.Bus.Read8(addr))
		if addr == 0x01FF {
			break
		}
	}
	fmt.Println()
}

func (d *Debugger) printMemory(low, high uint16) {
	fmt.Println()
	col := 0
	for addr := low; ; addr++ {
		fmt.Printf("%04x: %02x ", addr, d.core.Bus.Read8(addr))
		col++
		if col%8 == 0 {
			fmt.Println()
		}
		if addr == high || addr == 0xFFFF {
			break
		}
	}
	fmt.Println()
}
