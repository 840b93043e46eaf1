// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

// Precision is implemented by zero-size marker types,
// which define the number of fractional bits N of a Value.
// A negative N means, that each unit of the datum is worth 2^-N,
// and the fractional part is discarded.
type Precision interface {
	Frac() int
}

// Fractional precisions.
type (
	Frac2  struct{}
	Frac4  struct{}
	Frac6  struct{}
	Frac7  struct{}
	Frac8  struct{}
	Frac14 struct{}
	Frac15 struct{}
	Frac16 struct{}
	Frac30 struct{}
	Frac31 struct{}
	Frac32 struct{}
	Frac62 struct{}
	Frac63 struct{}
	Frac64 struct{}
)

func (Frac2) Frac() int  { return 2 }
func (Frac4) Frac() int  { return 4 }
func (Frac6) Frac() int  { return 6 }
func (Frac7) Frac() int  { return 7 }
func (Frac8) Frac() int  { return 8 }
func (Frac14) Frac() int { return 14 }
func (Frac15) Frac() int { return 15 }
func (Frac16) Frac() int { return 16 }
func (Frac30) Frac() int { return 30 }
func (Frac31) Frac() int { return 31 }
func (Frac32) Frac() int { return 32 }
func (Frac62) Frac() int { return 62 }
func (Frac63) Frac() int { return 63 }
func (Frac64) Frac() int { return 64 }

// Integer scaling precisions: the datum counts multiples of 2, 4, 16 or 256.
type (
	Whole1 struct{}
	Whole2 struct{}
	Whole4 struct{}
	Whole8 struct{}
)

func (Whole1) Frac() int { return -1 }
func (Whole2) Frac() int { return -2 }
func (Whole4) Frac() int { return -4 }
func (Whole8) Frac() int { return -8 }

// Plain numbers.
type (
	Plain8  = Value[int8, Frac2]   // range: [-32, 31.75], step 1/4.
	Plain16 = Value[int16, Frac4]  // range: [-2048, 2047.9375], step 1/16.
	Plain32 = Value[int32, Frac8]  // range: [-8388608, 8388608), step 1/256.
	Plain64 = Value[int64, Frac16] // range: [-140737488355328, 140737488355328), step 1/65536.

	UPlain8  = Value[uint8, Frac2]   // range: [0, 63.75], step 1/4.
	UPlain16 = Value[uint16, Frac4]  // range: [0, 4095.9375], step 1/16.
	UPlain32 = Value[uint32, Frac8]  // range: [0, 16777216), step 1/256.
	UPlain64 = Value[uint64, Frac16] // range: [0, 281474976710656), step 1/65536.
)

// Unit numbers.
type (
	Unit8  = Value[int8, Frac7]   // range: [-1, 1), step 1/128.
	Unit16 = Value[int16, Frac15] // range: [-1, 1), step 1/32768.
	Unit32 = Value[int32, Frac31] // range: [-1, 1), step 1/2147483648.
	Unit64 = Value[int64, Frac63] // range: [-1, 1), step 1/9223372036854775808.

	UUnit8  = Value[uint8, Frac8]   // range: [0, 1), step 1/256.
	UUnit16 = Value[uint16, Frac16] // range: [0, 1), step 1/65536.
	UUnit32 = Value[uint32, Frac32] // range: [0, 1), step 1/4294967296.
	UUnit64 = Value[uint64, Frac64] // range: [0, 1), step 1/18446744073709551616.
)

// Angles and probabilities.
type (
	Angle8  = Value[int8, Frac6]   // range: [-2, 2), step 1/64.
	Angle16 = Value[int16, Frac14] // range: [-2, 2), step 1/16384.
	Angle32 = Value[int32, Frac30] // range: [-2, 2), step 1/1073741824.
	Angle64 = Value[int64, Frac62] // range: [-2, 2), step 1/4611686018427387904.

	Prob8  = Value[uint8, Frac7]   // range: [0, 2), step 1/128.
	Prob16 = Value[uint16, Frac15] // range: [0, 2), step 1/32768.
	Prob32 = Value[uint32, Frac31] // range: [0, 2), step 1/2147483648.
	Prob64 = Value[uint64, Frac63] // range: [0, 2), step 1/9223372036854775808.
)
