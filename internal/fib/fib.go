// Package fib is the CPU-bound demonstration payload.
package fib

import "math/big"

// Fib returns the n-th Fibonacci number, with Fib(0) = 0 and Fib(1) = 1.
func Fib(n uint) *big.Int {
	a, b := new(big.Int), big.NewInt(1)
	for range n {
		a, b = b, a
		a.Add(a, b)
	}
	return a
}
