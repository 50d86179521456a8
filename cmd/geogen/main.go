package main

import (
	"fmt"
	"os"
	"path/filepath"

	"geometry/internal/geometry/geogen"
)

// ============================================================
// GeoGen Translator
// ============================================================

const usage = `Usage:
    geogen input output

    input   Readable output of GeoGen to convert.
    output  Output directory, one .geo file per theorem.`

func main() {
	if len(os.Args) != 3 {
		fmt.Println(usage)
		os.Exit(1)
	}
	input, output := os.Args[1], os.Args[2]

	data, err := os.ReadFile(input)
	if err != nil {
		fmt.Printf("Cannot read file: %v\n", err)
		os.Exit(2)
	}

	theorems, err := geogen.Convert(string(data), filepath.Base(input))
	if err != nil {
		fmt.Printf("Conversion failed: %v\n", err)
		os.Exit(3)
	}

	paths, err := geogen.NewFileStorage(output).Save(theorems)
	if err != nil {
		fmt.Printf("Write failed: %v\n", err)
		os.Exit(4)
	}
	for _, path := range paths {
		fmt.Println(path)
	}
}
