package xeui_test

import (
	"errors"
	"fmt"

	"github.com/omeyang/xeui/pkg/util/xeui"
)

func ExampleParse48() {
	inputs := []string{
		"0A-1B-2C-3D-4E-5F",
		"0a:1b:2c:3d:4e:5f",
		"0A1B.2C3D.4E5F",
	}

	for _, s := range inputs {
		addr, err := xeui.Parse48(s)
		if err != nil {
			fmt.Printf("Parse48(%q) error: %v\n", s, err)
			continue
		}
		fmt.Printf("Parse48(%q) = %s\n", s, addr)
	}

	// Output:
	// Parse48("0A-1B-2C-3D-4E-5F") = 0A-1B-2C-3D-4E-5F
	// Parse48("0a:1b:2c:3d:4e:5f") = 0A-1B-2C-3D-4E-5F
	// Parse48("0A1B.2C3D.4E5F") = 0A-1B-2C-3D-4E-5F
}

func ExampleEUI64_Dot() {
	eui := xeui.EUI64From8([8]byte{0x00, 0xFF, 0x0A, 0x1B, 0x2C, 0x3D, 0x4E, 0x5F})

	fmt.Println("Canonical:", eui.Canonical())
	fmt.Println("Colon:", eui.Colon())
	fmt.Println("Dot:", eui.Dot())

	// Output:
	// Canonical: 00-FF-0A-1B-2C-3D-4E-5F
	// Colon: 00:FF:0A:1B:2C:3D:4E:5F
	// Dot: 00FF.0A1B.2C3D.4E5F
}

func ExampleParseError() {
	for _, s := range []string{"0A-1B-2C-3D-4x-5F", "0A-1B-2C-3D-4E", "0A-1B-2C-3D-4E-5"} {
		_, err := xeui.Parse48(s)
		switch {
		case errors.Is(err, xeui.ErrInvalidHexCharacter):
			fmt.Println(s, "-> invalid hex character")
		case errors.Is(err, xeui.ErrInvalidStringLength):
			fmt.Println(s, "-> invalid length")
		case errors.Is(err, xeui.ErrOddLength):
			fmt.Println(s, "-> odd length")
		}
	}

	// Output:
	// 0A-1B-2C-3D-4x-5F -> invalid hex character
	// 0A-1B-2C-3D-4E -> invalid length
	// 0A-1B-2C-3D-4E-5 -> odd length
}

func ExampleParseAny() {
	for _, s := range []string{"0a1b.2c3d.4e5f", "00ff.0a1b.2c3d.4e5f"} {
		addr, err := xeui.ParseAny(s)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%d bytes: %s\n", addr.Len(), addr.Colon())
	}

	// Output:
	// 6 bytes: 0A:1B:2C:3D:4E:5F
	// 8 bytes: 00:FF:0A:1B:2C:3D:4E:5F
}
