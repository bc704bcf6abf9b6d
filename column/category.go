package column

import (
	"github.com/go-sif/hiero"
)

// categoryColumn stores each value as a code into a dictionary of distinct values
type categoryColumn struct {
	baseColumn
	codes      []int32
	dictionary []string
}

func (c *categoryColumn) Get(row int) (interface{}, error) {
	if missing, err := c.IsMissing(row); err != nil || missing {
		return nil, err
	}
	return c.dictionary[c.codes[row]], nil
}

func (c *categoryColumn) GetString(row int) (string, error) {
	if err := c.checkReadable(row); err != nil {
		return "", err
	}
	return c.dictionary[c.codes[row]], nil
}

// GetCode returns the dictionary index of the value in the given row
func (c *categoryColumn) GetCode(row int) (int, error) {
	if err := c.checkReadable(row); err != nil {
		return 0, err
	}
	return int(c.codes[row]), nil
}

// Dictionary returns the distinct values of this Column, in order of first appearance
func (c *categoryColumn) Dictionary() []string {
	dict := make([]string, len(c.dictionary))
	copy(dict, c.dictionary)
	return dict
}

// encode deduplicates values into a dictionary, skipping missing rows
func encode(base baseColumn, values []string) hiero.Column {
	codes := make([]int32, len(values))
	lookup := make(map[string]int32)
	dictionary := make([]string, 0)
	for i, v := range values {
		if base.missing != nil && base.missing.Contains(uint32(i)) {
			codes[i] = -1
			continue
		}
		code, ok := lookup[v]
		if !ok {
			code = int32(len(dictionary))
			lookup[v] = code
			dictionary = append(dictionary, v)
		}
		codes[i] = code
	}
	return &categoryColumn{baseColumn: base, codes: codes, dictionary: dictionary}
}
