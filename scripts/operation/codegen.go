package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

type operation struct {
	Name        string
	Code        string
	Symbol      string
	Class       string
	Description string
	Keys        []string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "operation", "operation_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of operation objects
	ops := convertDataToOperations(data)

	// Generate Go code from the operation objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "operation", "operation_data.tmpl"), ops)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("operation_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

// convertDataToOperations keeps the CSV order, since the first record
// must become the zero value of the Operation type.
func convertDataToOperations(data [][]string) []operation {
	seen := map[string]bool{}
	ops := []operation{}
	for _, rec := range data {
		op := operation{
			Name:        rec[0],
			Code:        rec[1],
			Symbol:      rec[2],
			Class:       rec[4],
			Description: rec[5],
		}
		// Lookup keys must be unique, the first operation wins
		for _, key := range []string{rec[1], strings.ToUpper(rec[1]), rec[2], rec[3]} {
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			op.Keys = append(op.Keys, key)
		}
		ops = append(ops, op)
	}
	return ops
}

func generateGoCode(filename string, ops []operation) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, ops)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
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
	return writer.Flush()
}
