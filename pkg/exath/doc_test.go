package exath_test

import (
	"fmt"

	"github.com/fabian2000/exath-go/pkg/exath"
)

func Example() {
	result, err := exath.Evaluate("2 + 3 * 4", exath.Rad)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result)
	// Output: 14
}

func Example_session() {
	s := exath.NewSession(exath.Rad)
	if _, err := s.Eval("a = 5"); err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := s.Eval("f(x) = x^2 + 1"); err != nil {
		fmt.Println("error:", err)
		return
	}
	result, err := s.Eval("f(a)")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result)
	// Output: 25.999999999999996
}
