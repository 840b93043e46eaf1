// Copyright 2020 Aleksandr Demakin. All rights reserved.

package flags

import "fmt"

type access uint8

const (
	accessRead access = 1 << iota
	accessWrite
)

func ExampleBits() {
	f := New(accessRead)
	f.Set(accessWrite)
	fmt.Println(f, f.Check(accessWrite))
	f.Unset(accessRead)
	fmt.Println(f.Value() == accessWrite, f.Underlying())

	// Output:
	// 0b00000011 true
	// true 2
}
