package cartridge

import (
	"errors"
	"testing"
)

func TestNewRejectsBadPRGLength(t *testing.T) {
	if _, err := New(make([]byte, 100), nil, 0, Horizontal); !errors.Is(err, ErrBadCartridge) {
		t.Errorf("got %v, want ErrBadCartridge", err)
	}
}

func TestNewSubstitutesCHRRAM(t *testing.T) {
	c, err := New(make([]byte, PRGBlockSize), nil, 0, Horizontal)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !c.CHRIsRAM() || len(c.CHR) != CHRBlockSize {
		t.Errorf("got CHR len %d, isRAM %v; want %d, true", len(c.CHR), c.CHRIsRAM(), CHRBlockSize)
	}
}

func TestNewMapperUnsupported(t *testing.T) {
	c, err := New(make([]byte, PRGBlockSize), nil, 99, Horizontal)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := NewMapper(c); !errors.Is(err, ErrUnsupportedMapper) {
		t.Errorf("got %v, want ErrUnsupportedMapper", err)
	}
}

func TestMapper0SingleBankMirrors(t *testing.T) {
	prg := make([]byte, PRGBlockSize)
	prg[0] = 0x42
	c, err := New(prg, nil, 0, Horizontal)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m, err := NewMapper(c)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}

	if got := m.ReadPRG(0x8000); got != 0x42 {
		t.Errorf("ReadPRG(0x8000) = %#02x, want 0x42", got)
	}
	if got := m.ReadPRG(0xC000); got != 0x42 {
		t.Errorf("ReadPRG(0xC000) = %#02x, want 0x42 (mirrored)", got)
	}
}

func TestMapper0PRGWriteIgnored(t *testing.T) {
	prg := make([]byte, PRGBlockSize)
	c, _ := New(prg, nil, 0, Horizontal)
	m, _ := NewMapper(c)

	m.WritePRG(0x8000, 0xFF)
	if got := m.ReadPRG(0x8000); got != 0 {
		t.Errorf("ReadPRG(0x8000) = %#02x after write, want 0 (ignored)", got)
	}
}

func TestMapper0CHRRAMWritable(t *testing.T) {
	prg := make([]byte, PRGBlockSize)
	c, _ := New(prg, nil, 0, Horizontal)
	m, _ := NewMapper(c)

	m.WriteCHR(0x10, 0x7E)
	if got := m.ReadCHR(0x10); got != 0x7E {
		t.Errorf("ReadCHR(0x10) = %#02x, want 0x7E", got)
	}
}
