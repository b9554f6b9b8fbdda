package pixpipe

import (
	"testing"
)

func TestNewPixel(t *testing.T) {
	p := NewPixel(0x11, 0x22, 0x33, 0x44)
	if uint32(p) != 0x44332211 {
		t.Errorf("NewPixel = %#08x, want 0x44332211", uint32(p))
	}

	r, g, b, a := p.RGBA()
	if r != 0x11 || g != 0x22 || b != 0x33 || a != 0x44 {
		t.Errorf("RGBA() = (%#x, %#x, %#x, %#x), want (0x11, 0x22, 0x33, 0x44)", r, g, b, a)
	}
}

func TestPixelChannelGetters(t *testing.T) {
	p := Pixel(0xA0B0C0D0)

	tests := []struct {
		ch   Channel
		get  func(Pixel) uint8
		want uint8
	}{
		{Red, Pixel.Red, 0xD0},
		{Green, Pixel.Green, 0xC0},
		{Blue, Pixel.Blue, 0xB0},
		{Alpha, Pixel.Alpha, 0xA0},
	}

	for _, tt := range tests {
		t.Run(tt.ch.String(), func(t *testing.T) {
			if got := tt.get(p); got != tt.want {
				t.Errorf("getter = %#x, want %#x", got, tt.want)
			}
			if got := p.Channel(tt.ch); got != tt.want {
				t.Errorf("Channel(%v) = %#x, want %#x", tt.ch, got, tt.want)
			}
		})
	}
}

// TestPixelChannelIsolation sets every channel to every value on a set of
// seed pixels and checks that the other three channels are untouched.
func TestPixelChannelIsolation(t *testing.T) {
	seeds := []Pixel{0x00000000, 0xFFFFFFFF, 0x12345678, 0x80808080, 0xDEADBEEF, 0x01FF00FE}
	channels := []Channel{Red, Green, Blue, Alpha}

	for _, seed := range seeds {
		for _, c := range channels {
			for v := 0; v < 256; v++ {
				p := seed
				p.SetChannel(c, uint8(v))

				if got := p.Channel(c); got != uint8(v) {
					t.Fatalf("seed %#08x: set %v=%d, read back %d", uint32(seed), c, v, got)
				}
				for _, d := range channels {
					if d == c {
						continue
					}
					if got, want := p.Channel(d), seed.Channel(d); got != want {
						t.Fatalf("seed %#08x: set %v=%d changed %v from %d to %d",
							uint32(seed), c, v, d, want, got)
					}
				}
			}
		}
	}
}

func TestPixelNamedSetters(t *testing.T) {
	p := Pixel(0x44332211)

	p.SetGreen(0xEE)
	if p != 0x4433EE11 {
		t.Errorf("SetGreen: got %#08x, want 0x4433EE11", uint32(p))
	}
	p.SetRed(0x00)
	if p != 0x4433EE00 {
		t.Errorf("SetRed: got %#08x, want 0x4433EE00", uint32(p))
	}
	p.SetBlue(0xFF)
	if p != 0x44FFEE00 {
		t.Errorf("SetBlue: got %#08x, want 0x44FFEE00", uint32(p))
	}
	p.SetAlpha(0x7F)
	if p != 0x7FFFEE00 {
		t.Errorf("SetAlpha: got %#08x, want 0x7FFFEE00", uint32(p))
	}
}

func TestPixelWithChannel(t *testing.T) {
	orig := Pixel(0x44332211)

	got := orig.WithRed(1).WithGreen(2).WithBlue(3).WithAlpha(4)
	if got != NewPixel(1, 2, 3, 4) {
		t.Errorf("With* chain = %v, want rgba(1, 2, 3, 4)", got)
	}
	if orig != 0x44332211 {
		t.Errorf("With* modified receiver: %#08x", uint32(orig))
	}
}

func TestPixelInvalidChannel(t *testing.T) {
	p := Pixel(0x44332211)
	bad := Channel(7)

	if bad.IsValid() {
		t.Fatal("Channel(7).IsValid() = true")
	}
	if got := p.Channel(bad); got != 0 {
		t.Errorf("Channel(invalid) = %d, want 0", got)
	}
	if got := p.WithChannel(bad, 0xFF); got != p {
		t.Errorf("WithChannel(invalid) = %v, want unchanged %v", got, p)
	}
	if bad.String() != "unknown" {
		t.Errorf("String() = %q, want unknown", bad.String())
	}
}

func TestPixelString(t *testing.T) {
	if got := NewPixel(1, 2, 3, 255).String(); got != "rgba(1, 2, 3, 255)" {
		t.Errorf("String() = %q", got)
	}
}

func TestPixelConstants(t *testing.T) {
	if Opaque.Alpha() != 255 || Opaque.Red() != 0 || Opaque.Green() != 0 || Opaque.Blue() != 0 {
		t.Errorf("Opaque = %v, want opaque black", Opaque)
	}
	if Transparent.Alpha() != 0 {
		t.Errorf("Transparent alpha = %d", Transparent.Alpha())
	}
	if White != NewPixel(255, 255, 255, 255) {
		t.Errorf("White = %v", White)
	}
}

func TestClampChannel(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{-1, 0},
		{-0.5, 0},
		{0.99, 0},
		{1, 1},
		{120.00000000000001, 120},
		{103.2, 103},
		{254.999, 254},
		{255, 255},
		{400, 255},
		{1e300, 255},
	}

	for _, tt := range tests {
		if got := ClampChannel(tt.in); got != tt.want {
			t.Errorf("ClampChannel(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampChannelNaN(t *testing.T) {
	var zero float64
	if got := ClampChannel(zero / zero); got != 0 {
		t.Errorf("ClampChannel(NaN) = %d, want 0", got)
	}
}
