package dsv

import (
	"encoding/csv"
	"io"

	"github.com/go-sif/hiero"
	"github.com/go-sif/hiero/datasource"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	HeaderLines int    // The number of lines to ignore from the beginning of each file. Defaults to 0.
	Delimiter   rune   // The delimiter separating columns in the file. Defaults to ,
	Comment     rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue    string // A special string which represents nil values in the dataset. Defaults to "" (the empty string).
}

// Parser produces Columns from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

func (p *Parser) scan(r io.Reader, schema hiero.Schema, onRecord func(record []string) error) (int, error) {
	// start parsing by creating a reader
	reader := csv.NewReader(r)
	reader.Comma = p.conf.Delimiter
	reader.Comment = p.conf.Comment
	reader.FieldsPerRecord = schema.NumColumns()
	reader.ReuseRecord = true

	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		_, err := reader.Read()
		if err == io.EOF {
			return 0, nil
		} else if err != nil {
			return 0, err
		}
	}

	numRows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return numRows, nil
		} else if err != nil {
			return numRows, err
		}
		if err = onRecord(record); err != nil {
			return numRows, err
		}
		numRows++
	}
}

// CountRows returns the number of records in DSV data, excluding header lines
func (p *Parser) CountRows(r io.Reader, schema hiero.Schema) (int, error) {
	return p.scan(r, schema, func(record []string) error { return nil })
}

// Parse parses DSV data, materializing only the requested columns. Every record
// must contain exactly one field per column in the Schema, in Schema order.
func (p *Parser) Parse(r io.Reader, schema hiero.Schema, colNames []string, capacity int) ([]hiero.Column, error) {
	if err := datasource.ValidateRequest(schema, colNames); err != nil {
		return nil, err
	}
	builders, err := datasource.CreateBuilders(schema, colNames, capacity)
	if err != nil {
		return nil, err
	}
	positions := fieldPositions(schema, colNames)
	_, err = p.scan(r, schema, func(record []string) error {
		for i, b := range builders {
			val, err := scanValue(p.conf, b.Description(), record[positions[i]])
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
