// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"encoding/json"
	"fmt"
)

func ExampleValue() {
	a := FromInt[Plain32](2)
	b := FromFloat[Plain32](0.5)
	fmt.Println(a.Add(b), a.Mul(b), a.Div(b), a.DivInt(10))

	c := FromFloat[Plain32](-2.9)
	fmt.Printf("int = %v, floor = %v, raw = %v\n", c.Int(), c.Floor(), c.Raw())

	root, err := Sqrt(FromInt[Plain32](81))
	if err != nil {
		panic(err)
	}
	fmt.Printf("sqrt(81) = %v\n", root)

	fmt.Printf("pi as Plain16 = %v\n", Convert[Plain16](FromFloat[Plain32](3.14159)))

	data, err := json.Marshal(b)
	if err != nil {
		panic(err)
	}
	fmt.Printf("json for value: %s\n", string(data))

	// Output:
	// 2.5 1 4 0.19921875
	// int = -2, floor = -3, raw = -742
	// sqrt(81) = 9
	// pi as Plain16 = 3.125
	// json for value: 128
}

func ExampleValue_negativePrecision() {
	type coarse = Value[int8, Whole2]
	v := FromInt[coarse](103)
	fmt.Println(v, v.Raw(), v.Int())
	fmt.Println(v.Add(FromInt[coarse](3)), v.AddInt(4))

	// Output:
	// 100 25 100
	// 100 104
}
