// Package randnum generates random format/parse round-trip fixtures and
// writes them to a file, for ad-hoc soak testing outside the unit suite.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"chinese-numeral-converter/pkg/numeral"
)

func main() {
	rand.Seed(time.Now().UnixNano())

	file, err := os.Create("random_numerals.txt")
	if err != nil {
		log.Fatalf("Failed to create file: %v", err)
	}
	defer file.Close()

	const (
		min   = 20_000
		max   = 20_000_000_000
		count = 100_000
	)

	conventions := []numeral.Convention{numeral.TenThousand, numeral.Middle, numeral.High}
	variants := []numeral.Variant{numeral.Traditional, numeral.Simplified}
	cases := []numeral.Case{numeral.Informal, numeral.Formal}

	for i := 0; i < count; i++ {
		randNum := rand.Int63n(max-min+1) + min
		convention := conventions[rand.Intn(len(conventions))]
		variant := variants[rand.Intn(len(variants))]
		caseStyle := cases[rand.Intn(len(cases))]

		rendered := numeral.FormatI64(randNum, variant, caseStyle, convention)

		line := fmt.Sprintf("%d\t%s\t%s\t%s\t%s\n", randNum, variant, caseStyle, convention, rendered)
		if _, err := file.WriteString(line); err != nil {
			log.Printf("Error writing to file: %v", err)
			continue
		}

		if (i+1)%10_000 == 0 {
			fmt.Printf("Generated %d fixtures...\n", i+1)
		}
	}

	fmt.Printf("Successfully generated %d round-trip fixtures between %d and %d in random_numerals.txt\n",
		count, min, max)
}
