package nesrom

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/nes-core/nescore/cartridge"
)

func buildINES(t *testing.T, prgBanks, chrBanks int, flags6, flags7 uint8) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("NES\x1A")
	buf.WriteByte(uint8(prgBanks))
	buf.WriteByte(uint8(chrBanks))
	buf.WriteByte(flags6)
	buf.WriteByte(flags7)
	buf.Write(make([]byte, 8)) // bytes 8-15, unused here

	prg := make([]byte, prgBlockSize*prgBanks)
	if prgBanks > 0 {
		prg[0] = 0xEA
	}
	buf.Write(prg)
	buf.Write(make([]byte, chrBlockSize*chrBanks))

	return buf.Bytes()
}

func writeTempROM(t *testing.T, data []byte) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "*.nes")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return f.Name()
}

func TestLoadNROMCartridge(t *testing.T) {
	path := writeTempROM(t, buildINES(t, 2, 1, 0x00, 0x00))

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.MapperID != 0 {
		t.Errorf("MapperID = %d, want 0", c.MapperID)
	}
	if c.PRGBanks() != 2 {
		t.Errorf("PRGBanks() = %d, want 2", c.PRGBanks())
	}
	if c.Mirroring != cartridge.Horizontal {
		t.Errorf("Mirroring = %v, want horizontal", c.Mirroring)
	}
	if c.PRG[0] != 0xEA {
		t.Errorf("PRG[0] = %#02x, want 0xEA", c.PRG[0])
	}
}

func TestLoadSubstitutesCHRRAMWhenZero(t *testing.T) {
	path := writeTempROM(t, buildINES(t, 1, 0, 0x00, 0x00))

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.CHRIsRAM() {
		t.Errorf("CHRIsRAM() = false, want true for a zero-CHR header")
	}
}

func TestLoadVerticalMirroringAndHighMapperNibble(t *testing.T) {
	path := writeTempROM(t, buildINES(t, 1, 1, 0x01|0x10, 0x00))

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Mirroring != cartridge.Vertical {
		t.Errorf("Mirroring = %v, want vertical", c.Mirroring)
	}
	if c.MapperID != 1 {
		t.Errorf("MapperID = %d, want 1", c.MapperID)
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	data := buildINES(t, 1, 1, 0, 0)
	data[0] = 'X'
	path := writeTempROM(t, data)

	if _, err := Load(path); !errors.Is(err, ErrNotINES) {
		t.Errorf("got %v, want ErrNotINES", err)
	}
}
