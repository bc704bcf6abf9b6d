package jsonl

import (
	"bufio"
	"io"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/datasource"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	HeaderLines   int // The number of lines to ignore from the beginning of each file. Defaults to 0.
	MaxBufferSize int // Maximum size in bytes of the buffer used to read lines from the file
}

// Parser produces Columns from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Columns are parsed from each row of JSON using their column name, which should be a gjson path. Values within the JSON which do not correspond to a Schema column are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// scan invokes onRow for each non-blank line, returning the number of rows visited
func (p *Parser) scan(r io.Reader, onRow func(line string) error) (int, error) {
	// start parsing by creating a scanner
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			return 0, err
		}
	}
	numRows := 0
	for scanner.Scan() {
		line := scanner.Text()
		if isBlank(line) {
			continue
		}
		if err := onRow(line); err != nil {
			return numRows, err
		}
		numRows++
	}
	return numRows, scanner.Err()
}

// CountRows returns the number of rows in JSONL data
func (p *Parser) CountRows(r io.Reader) (int, error) {
	return p.scan(r, func(line string) error { return nil })
}

// Parse parses JSONL data, materializing only the requested columns
func (p *Parser) Parse(r io.Reader, schema hiero.Schema, colNames []string, capacity int) ([]hiero.Column, error) {
	if err := datasource.ValidateRequest(schema, colNames); err != nil {
		return nil, err
	}
	builders, err := datasource.CreateBuilders(schema, colNames, capacity)
	if err != nil {
		return nil, err
	}
	_, err = p.scan(r, func(line string) error {
		results := gjson.GetMany(line, colNames...)
		for i, b := range builders {
			val, err := parseValue(b.Description(), results[i])
			if err != nil {
				return err
			}
			if err = b.Append(val); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return datasource.SealAll(builders)
}
