package addrspec_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/KromDaniel/addrspec/pkg/addrspec"
)

func ExampleParse() {
	addr, err := addrspec.Parse("someone@example.com")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(addr.Local())
	fmt.Println(addr.Domain())
	// Output:
	// someone
	// example.com
}

func ExampleParse_invalid() {
	_, err := addrspec.Parse("a@b.com extra")
	fmt.Println(errors.Is(err, addrspec.ErrInvalidAddress))
	fmt.Println(err)
	// Output:
	// true
	// addrspec: invalid address "a@b.com extra": unexpected ' ' at offset 7, want atext or '.'
}

func ExampleAddress_WriteTo() {
	addr := addrspec.MustParse("a@[192.168.1.1]")
	addr.WriteTo(os.Stdout)
	// Output:
	// a@[192.168.1.1]
}
