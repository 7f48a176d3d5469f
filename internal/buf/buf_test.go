package buf

import (
	"math"
	"testing"
)

func TestLoadKnownBytes(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := Load[uint8](data, 0); got != 0x01 {
		t.Fatalf("Load[uint8] = 0x%x, want 0x01", got)
	}
	if got := Load[uint16](data, 0); got != 0x2301 {
		t.Fatalf("Load[uint16] = 0x%x, want 0x2301", got)
	}
	if got := Load[uint32](data, 0); got != 0x67452301 {
		t.Fatalf("Load[uint32] = 0x%x, want 0x67452301", got)
	}
	if got := Load[uint64](data, 0); got != 0xefcdab8967452301 {
		t.Fatalf("Load[uint64] = 0x%x, want 0xefcdab8967452301", got)
	}
	if got := Load[int32](data, 4); got != int32(0xefcdab89-(1<<32)) {
		t.Fatalf("Load[int32] = %d, want sign-extended 0xefcdab89", got)
	}
}

func TestStoreEncodesLittleEndian(t *testing.T) {
	b := make([]byte, 8)

	Store[uint32](b, 2, 0x67452301)
	want := []byte{0x00, 0x00, 0x01, 0x23, 0x45, 0x67, 0x00, 0x00}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("byte %d = 0x%02x, want 0x%02x", i, b[i], want[i])
		}
	}

	Store[int16](b, 0, -2)
	if b[0] != 0xfe || b[1] != 0xff {
		t.Fatalf("int16 -2 encoded as % x, want fe ff", b[:2])
	}
}

func TestFloatRoundTrip(t *testing.T) {
	b := make([]byte, 8)

	Store(b, 0, 3.5)
	if got := Load[float64](b, 0); got != 3.5 {
		t.Fatalf("float64 round trip = %v, want 3.5", got)
	}

	Store(b, 0, float32(-0.25))
	if got := Load[float32](b, 0); got != -0.25 {
		t.Fatalf("float32 round trip = %v, want -0.25", got)
	}

	Store(b, 0, math.Inf(1))
	if got := Load[float64](b, 0); !math.IsInf(got, 1) {
		t.Fatalf("float64 +Inf round trip = %v", got)
	}
}

func TestAddWrapsNatively(t *testing.T) {
	b := make([]byte, 8)

	Store[uint8](b, 0, 255)
	if got := Add[uint8](b, 0, 1); got != 0 {
		t.Fatalf("uint8 255+1 = %d, want 0 (wraparound)", got)
	}

	Store[int8](b, 0, 127)
	if got := Add[int8](b, 0, 1); got != -128 {
		t.Fatalf("int8 127+1 = %d, want -128 (wraparound)", got)
	}

	Store[uint64](b, 0, 10)
	if got := Add(b, 0, uint64(32)); got != 42 {
		t.Fatalf("uint64 10+32 = %d, want 42", got)
	}
	if got := Load[uint64](b, 0); got != 42 {
		t.Fatalf("Add must persist: Load = %d, want 42", got)
	}
}

func TestSizeOf(t *testing.T) {
	if SizeOf[uint8]() != 1 || SizeOf[int8]() != 1 {
		t.Fatal("1-byte kinds")
	}
	if SizeOf[uint16]() != 2 || SizeOf[int16]() != 2 {
		t.Fatal("2-byte kinds")
	}
	if SizeOf[uint32]() != 4 || SizeOf[int32]() != 4 || SizeOf[float32]() != 4 {
		t.Fatal("4-byte kinds")
	}
	if SizeOf[uint64]() != 8 || SizeOf[int64]() != 8 || SizeOf[float64]() != 8 {
		t.Fatal("8-byte kinds")
	}
}

func TestLoadOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Load past the end of the buffer should panic, not return 0")
		}
	}()
	_ = Load[uint64](make([]byte, 4), 0)
}

func TestMulOverflowSafe(t *testing.T) {
	if v, ok := MulOverflowSafe(1024, 8); !ok || v != 8192 {
		t.Fatalf("MulOverflowSafe(1024, 8) = %d, %v", v, ok)
	}
	if v, ok := MulOverflowSafe(0, math.MaxInt); !ok || v != 0 {
		t.Fatalf("MulOverflowSafe(0, MaxInt) = %d, %v", v, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2, 3); ok {
		t.Fatal("MulOverflowSafe should detect positive overflow")
	}
	if _, ok := MulOverflowSafe(math.MinInt, -1); ok {
		t.Fatal("MulOverflowSafe should detect MinInt * -1 overflow")
	}
}
