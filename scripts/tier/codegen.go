package main

import (
	"bufio"
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

func main() {
	// Build the ordered symbol alphabet
	syms := buildSymbols()

	// Generate Go code from the symbols using a template
	code, err := generateGoCode(filepath.Join("scripts", "tier", "tier_data.tmpl"), syms)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("tier_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

// buildSymbols returns the tier symbols in tier order.
// Tier 0 has no symbol, tiers 1-26 use a-z and tiers 27-52 use A-Z.
func buildSymbols() []string {
	syms := []string{""}
	for c := 'a'; c <= 'z'; c++ {
		syms = append(syms, string(c))
	}
	for c := 'A'; c <= 'Z'; c++ {
		syms = append(syms, string(c))
	}
	return syms
}

func generateGoCode(filename string, syms []string) ([]byte, error) {
	// Create a new template object from the template file
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, syms)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
