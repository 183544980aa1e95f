package micro

import "testing"

func TestNewFrameBuffer(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	if fb.Width() != 4 || fb.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", fb.Width(), fb.Height())
	}
	if fb.Len() != 12 {
		t.Errorf("Len = %d, want 12", fb.Len())
	}
	if n := fb.CountSet(); n != 0 {
		t.Errorf("CountSet = %d, want 0", n)
	}
	for i, c := range fb.Pix() {
		if c != Unset {
			t.Fatalf("pix[%d] = %d, want Unset", i, c)
		}
	}
}

func TestNewFrameBufferDegenerate(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative", -3, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewFrameBuffer(tt.w, tt.h)
			if fb.Width() != 0 || fb.Height() != 0 || fb.Len() != 0 {
				t.Fatalf("got %dx%d len %d, want empty", fb.Width(), fb.Height(), fb.Len())
			}
			fb.Set(0, 0, 1) // must not panic
			if _, ok := fb.At(0, 0); ok {
				t.Error("empty buffer reported a set pixel")
			}
		})
	}
}

func TestFrameBufferSetAt(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		stored bool
	}{
		{"origin", 0, 0, true},
		{"far corner", 9, 7, true},
		{"left of", -1, 0, false},
		{"above", 0, -1, false},
		{"right of", 10, 0, false},
		{"below", 0, 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewFrameBuffer(10, 8)
			fb.Set(tt.x, tt.y, 5)
			c, ok := fb.At(tt.x, tt.y)
			if ok != tt.stored {
				t.Fatalf("At ok = %v, want %v", ok, tt.stored)
			}
			if tt.stored && c != 5 {
				t.Errorf("At = %d, want 5", c)
			}
			want := 0
			if tt.stored {
				want = 1
			}
			if got := fb.CountSet(); got != want {
				t.Errorf("CountSet = %d, want %d", got, want)
			}
		})
	}
}

func TestFrameBufferRowMajor(t *testing.T) {
	fb := NewFrameBuffer(5, 4)
	fb.Set(2, 3, 9)
	if fb.Pix()[2+3*5] != 9 {
		t.Error("pixel (2,3) not stored at index x + y*W")
	}
}

func TestFrameBufferSetUnsetClears(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Set(1, 1, 3)
	fb.Set(1, 1, Unset)
	if _, ok := fb.At(1, 1); ok {
		t.Error("writing Unset should clear the pixel")
	}
}

func TestFrameBufferFillClear(t *testing.T) {
	fb := NewFrameBuffer(3, 3)
	fb.Fill(0)
	if fb.CountSet() != 9 {
		t.Errorf("CountSet after Fill(0) = %d, want 9", fb.CountSet())
	}
	if c, ok := fb.At(1, 1); !ok || c != 0 {
		t.Errorf("At(1,1) = (%d, %v), want (0, true)", c, ok)
	}
	fb.Clear()
	if fb.CountSet() != 0 {
		t.Errorf("CountSet after Clear = %d, want 0", fb.CountSet())
	}
}

func TestFrameBufferCloneEqual(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.Set(1, 2, 7)
	c := fb.Clone()
	if !fb.Equal(c) {
		t.Fatal("clone not equal to source")
	}
	c.Set(0, 0, 1)
	if fb.Equal(c) {
		t.Error("modifying the clone changed equality")
	}
	if _, ok := fb.At(0, 0); ok {
		t.Error("clone shares storage with source")
	}
	if fb.Equal(NewFrameBuffer(4, 5)) {
		t.Error("buffers of different size reported equal")
	}
	if fb.Equal(nil) {
		t.Error("nil reported equal")
	}
}
