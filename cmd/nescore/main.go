// Command nescore runs an iNES ROM through the core and displays it
// in an ebiten window.
package main

import (
	"context"
	"flag"
	"image"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nes-core/nescore/nescore"
	"github.com/nes-core/nescore/nesrom"
)

var (
	romPath = flag.String("rom", "", "path to an iNES ROM file to run")
	debug   = flag.Bool("debug", false, "attach an interactive debugger instead of running free")
)

// game adapts a *nescore.Core to the ebiten.Game interface, the same
// shape the teacher's console.Bus embedded directly.
type game struct {
	core  *nescore.Core
	frame []uint8
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.core.PPU.Resolution()
}

// Update drives the emulation: ebiten calls it roughly 60 times a
// second, and each call runs the core forward exactly one frame.
func (g *game) Update() error {
	g.frame = g.core.StepFrame()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}
	w, h := g.core.PPU.Resolution()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		img.Pix[i*4+0] = g.frame[i*3+0]
		img.Pix[i*4+1] = g.frame[i*3+1]
		img.Pix[i*4+2] = g.frame[i*3+2]
		img.Pix[i*4+3] = 0xFF
	}
	screen.WritePixels(img.Pix)
}

func main() {
	flag.Parse()
	if *romPath == "" {
		log.Fatal("nescore: -rom is required")
	}

	cart, err := nesrom.Load(*romPath)
	if err != nil {
		log.Fatalf("nescore: loading ROM: %v", err)
	}

	core, err := nescore.New(cart)
	if err != nil {
		log.Fatalf("nescore: %v", err)
	}
	core.Reset()

	if *debug {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		nescore.NewDebugger(core).Run(ctx)
		os.Exit(0)
	}

	w, h := core.PPU.Resolution()
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle("nescore")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&game{core: core}); err != nil {
		log.Fatal(err)
	}
}
