// Package main provides the entry point for rvhazard.
// rvhazard is a RISC-V instruction classifier and data hazard stall inserter.
//
// For the full CLI, use: go run ./cmd/rvhazard
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("rvhazard - RISC-V hazard analyzer")
	fmt.Println("")
	fmt.Println("Usage: rvhazard [options] [program.hex]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -config       Path to configuration JSON file")
	fmt.Println("  -o-noforward  Result file for the pipeline without forwarding")
	fmt.Println("  -o-forward    Result file for the pipeline with forwarding")
	fmt.Println("  -json         Print the report as JSON")
	fmt.Println("  -list         Print numbered listings of both result streams")
	fmt.Println("  -no-icache    Disable instruction fetch replay")
	fmt.Println("  -v            Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/rvhazard' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/rvhazard' instead.")
	}
}
