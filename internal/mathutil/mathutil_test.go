package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidenNarrow(t *testing.T) {
	a := assert.New(t)
	a.Equal(Wide{Neg: true, Mag: 128}, Widen(int8(-128)))
	a.Equal(Wide{Mag: 255}, Widen(uint8(255)))
	a.Equal(Wide{Neg: true, Mag: 1 << 63}, Widen(int64(math.MinInt64)))
	a.Equal(Wide{Mag: math.MaxUint64}, Widen(uint64(math.MaxUint64)))

	a.Equal(int8(-128), Narrow[int8](Wide{Neg: true, Mag: 128}))
	a.Equal(int8(-56), Narrow[int8](Wide{Mag: 200}))
	a.Equal(uint8(255), Narrow[uint8](Wide{Neg: true, Mag: 1}))
	a.Equal(int32(0), Narrow[int32](Wide{Neg: true}))
	a.Equal(int64(math.MinInt64), Narrow[int64](Widen(int64(math.MinInt64))))
}

func TestTypeInfo(t *testing.T) {
	a := assert.New(t)
	a.True(IsSigned[int8]())
	a.True(IsSigned[int64]())
	a.False(IsSigned[uint16]())
	a.False(IsSigned[uintptr]())
	a.Equal(8, BitSize[uint8]())
	a.Equal(64, BitSize[int64]())
	a.Equal(int8(127), MaxOf[int8]())
	a.Equal(uint16(math.MaxUint16), MaxOf[uint16]())
	a.Equal(int64(math.MaxInt64), MaxOf[int64]())
	a.Equal(int8(math.MinInt8), MinOf[int8]())
	a.Equal(int64(math.MinInt64), MinOf[int64]())
	a.Equal(uint32(0), MinOf[uint32]())
}

func TestWidenFloat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   float64
		res Wide
	}{
		{0, Wide{}},
		{2.9, Wide{Mag: 2}},
		{-2.9, Wide{Neg: true, Mag: 2}},
		{math.Pow(2, 63), Wide{Mag: 1 << 63}},
		{math.Pow(2, 70), Wide{Mag: math.MaxUint64}},
		{math.Inf(-1), Wide{Neg: true, Mag: math.MaxUint64}},
		{math.NaN(), Wide{}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, WidenFloat(test.f))
		})
	}
}

func TestShift(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		w   Wide
		n   int
		res Wide
	}{
		{Wide{Mag: 5}, 0, Wide{Mag: 5}},
		{Wide{Mag: 5}, 1, Wide{Mag: 2}},
		{Wide{Neg: true, Mag: 5}, 1, Wide{Neg: true, Mag: 2}},
		{Wide{Mag: 5}, -2, Wide{Mag: 20}},
		{Wide{Mag: 5}, 64, Wide{}},
		{Wide{Mag: 5}, -64, Wide{}},
		{Wide{Mag: 1 << 63}, -1, Wide{}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res.Mag, test.w.Shift(test.n).Mag)
		})
	}
}

func TestMulShift(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b Wide
		n    int
		res  Wide
	}{
		{Wide{Mag: 512}, Wide{Mag: 128}, 8, Wide{Mag: 256}},
		{Wide{Neg: true, Mag: 3}, Wide{Mag: 3}, 1, Wide{Neg: true, Mag: 4}},
		{Wide{Mag: math.MaxUint64}, Wide{Mag: math.MaxUint64}, 64, Wide{Mag: math.MaxUint64 - 1}},
		{Wide{Mag: 1 << 62}, Wide{Mag: 1 << 62}, 63, Wide{Mag: 1 << 61}},
		{Wide{Mag: 3}, Wide{Mag: 5}, -2, Wide{Mag: 60}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, MulShift(test.a, test.b, test.n))
		})
	}
}

func TestShiftDiv(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b Wide
		n    int
		res  Wide
	}{
		{Wide{Mag: 768}, Wide{Mag: 128}, 8, Wide{Mag: 1536}},
		{Wide{Mag: 1}, Wide{Mag: 3}, 64, Wide{Mag: 6148914691236517205}},
		{Wide{Neg: true, Mag: 7}, Wide{Mag: 2}, 0, Wide{Neg: true, Mag: 3}},
		{Wide{Mag: 100}, Wide{Mag: 5}, -2, Wide{Mag: 5}},
		{Wide{Mag: 100}, Wide{Mag: 1 << 62}, -3, Wide{}},
		{Wide{Mag: 100}, Wide{Mag: 1}, -64, Wide{}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, ShiftDiv(test.a, test.b, test.n))
		})
	}
	a.Panics(func() {
		ShiftDiv(Wide{Mag: 1}, Wide{}, 8)
	})
}

func TestShl128Shr128(t *testing.T) {
	a := assert.New(t)
	hi, lo := Shl128(0, 1, 64)
	a.Equal(uint64(1), hi)
	a.Equal(uint64(0), lo)
	hi, lo = Shl128(0, math.MaxUint64, 4)
	a.Equal(uint64(0xf), hi)
	a.Equal(uint64(math.MaxUint64-0xf), lo)
	hi, lo = Shr128(hi, lo, 4)
	a.Equal(uint64(0), hi)
	a.Equal(uint64(math.MaxUint64), lo)
	hi, lo = Shr128(1, 0, 65)
	a.Equal(uint64(0), hi)
	a.Equal(uint64(0), lo)
	hi, lo = Shl128(1, 1, 128)
	a.Equal(uint64(0), hi|lo)
}

func TestAddDiv128(t *testing.T) {
	a := assert.New(t)
	hi, lo := Add128(0, math.MaxUint64, 1)
	a.Equal(uint64(1), hi)
	a.Equal(uint64(0), lo)
	qhi, qlo := Div128(4, 0, 2)
	a.Equal(uint64(2), qhi)
	a.Equal(uint64(0), qlo)
	qhi, qlo = Div128(1, 0, 3)
	a.Equal(uint64(0), qhi)
	a.Equal(uint64(6148914691236517205), qlo)
}

func TestSaturate(t *testing.T) {
	a := assert.New(t)
	a.Equal(int8(127), Saturate[int8](Wide{Mag: 400}))
	a.Equal(int8(127), Saturate[int8](Wide{Mag: 127}))
	a.Equal(int8(5), Saturate[int8](Wide{Mag: 5}))
	a.Equal(int8(-128), Saturate[int8](Wide{Neg: true, Mag: 400}))
	a.Equal(int8(-128), Saturate[int8](Wide{Neg: true, Mag: 128}))
	a.Equal(int8(-127), Saturate[int8](Wide{Neg: true, Mag: 127}))
	a.Equal(int8(0), Saturate[int8](Wide{Neg: true}))
	a.Equal(uint8(0), Saturate[uint8](Wide{Neg: true, Mag: 1}))
	a.Equal(uint64(math.MaxUint64), Saturate[uint64](Wide{Mag: math.MaxUint64}))
	a.Equal(int64(math.MinInt64), Saturate[int64](Wide{Neg: true, Mag: math.MaxUint64}))

	a.Equal(Wide{Mag: math.MaxUint64}, Wide{Mag: 1}.ShiftSat(-64))
	a.Equal(Wide{Mag: 1 << 63}, Wide{Mag: 1}.ShiftSat(-63))
	a.Equal(Wide{Neg: true, Mag: math.MaxUint64}, Wide{Neg: true, Mag: 3}.ShiftSat(-63))
	a.Equal(Wide{}, Wide{}.ShiftSat(-100))
	a.Equal(Wide{Mag: 2}, Wide{Mag: 9}.ShiftSat(2))
}

func TestDist128(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b   Wide
		sa, sb uint
		hi, lo uint64
		ok     bool
	}{
		{Wide{Mag: 5}, Wide{Mag: 3}, 0, 0, 0, 2, true},
		{Wide{Mag: 3}, Wide{Mag: 5}, 0, 0, 0, 2, true},
		{Wide{Mag: 3}, Wide{Neg: true, Mag: 5}, 0, 0, 0, 8, true},
		{Wide{Mag: 1<<62 + 500}, Wide{Mag: 1 << 46}, 0, 16, 0, 500, true},
		{Wide{Mag: math.MaxUint64}, Wide{Mag: 1}, 0, 64, 0, 1, true},
		{Wide{Mag: 3}, Wide{Mag: 13}, 2, 0, 0, 1, true},
		{Wide{Neg: true, Mag: 1 << 63}, Wide{Mag: 1 << 63}, 64, 64, 1 << 63, 0, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			hi, lo, ok := Dist128(test.a, test.sa, test.b, test.sb)
			a.Equal(test.ok, ok)
			if test.ok {
				a.Equal(test.hi, hi)
				a.Equal(test.lo, lo)
			}
		})
	}
	a.True(Less128(0, math.MaxUint64, 1, 0))
	a.False(Less128(1, 0, 1, 0))
	a.False(Less128(2, 0, 1, math.MaxUint64))
}

func BenchmarkMulShift(b *testing.B) {
	x, y := Widen(int64(123456789)), Widen(int64(-987654321))
	var dummy uint64
	for i := 0; i < b.N; i++ {
		dummy += MulShift(x, y, 16).Mag
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}
