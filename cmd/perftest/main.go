package main

import (
	"fmt"
	"math/big"
	"os"
	"time"

	"chinese-numeral-converter/pkg/numeral"
)

// Compare formatting throughput across the TenThousand, Middle and High
// counting conventions (Low cannot render the largest fixture), since
// each walks a differently-shaped large-unit ladder and recurses to a
// different depth for the same input.
func main() {
	fmt.Println("=== Chinese Numeral Converter Performance Comparison ===")

	testValues := []string{
		"5", "42", "101", "999",
		"1000", "12345", "54824722", "123456789",
		"1000000000", "2355200847", "9876543210",
		"123456789012345678901234567890",
	}

	values := make([]*big.Int, len(testValues))
	for i, s := range testValues {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			fmt.Printf("bad fixture: %s\n", s)
			os.Exit(1)
		}
		values[i] = v
	}

	iterations := 100000
	fmt.Printf("Running %d iterations per convention\n\n", iterations)

	conventions := []numeral.Convention{numeral.TenThousand, numeral.Middle, numeral.High}
	for _, convention := range conventions {
		fmt.Printf("Testing %s convention...\n", convention)
		start := time.Now()
		var last string
		for i := 0; i < iterations; i++ {
			v := values[i%len(values)]
			last = numeral.FormatUnsigned(v, numeral.Traditional, numeral.Informal, convention)
		}
		duration := time.Since(start)
		avg := duration.Nanoseconds() / int64(iterations)
		fmt.Printf("Total time: %v\n", duration)
		fmt.Printf("Average time per format: %d ns\n", avg)
		fmt.Printf("Last rendered: %s\n\n", last)
	}
}
