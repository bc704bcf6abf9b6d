package parquet

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-sif/hiero"
	hieroerrors "github.com/go-sif/hiero/errors"
	"github.com/parquet-go/parquet-go"
)

const valueBufferSize = 1024

// julianUnixEpoch is the julian day number of 1970-01-01
const julianUnixEpoch = 2440588

// kindOf maps a physical Parquet type onto a ContentsKind
func kindOf(name string, t parquet.Type) (hiero.ContentsKind, error) {
	switch t.Kind() {
	case parquet.Int32:
		return hiero.IntegerKind, nil
	case parquet.Int64, parquet.Float, parquet.Double:
		return hiero.DoubleKind, nil
	case parquet.ByteArray, parquet.FixedLenByteArray, parquet.Boolean:
		return hiero.StringKind, nil
	case parquet.Int96:
		return hiero.DateKind, nil
	default:
		return 0, fmt.Errorf("Column %s has unsupported parquet type %s", name, t)
	}
}

// readChunk appends every value in a column chunk to a builder
func readChunk(chunk parquet.ColumnChunk, b hiero.AppendableColumn) error {
	pages := chunk.Pages()
	defer pages.Close()
	buf := make([]parquet.Value, valueBufferSize)
	for {
		page, err := pages.ReadPage()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		err = readPage(page, buf, b)
		parquet.Release(page)
		if err != nil {
			return err
		}
	}
}

func readPage(page parquet.Page, buf []parquet.Value, b hiero.AppendableColumn) error {
	values := page.Values()
	for {
		n, err := values.ReadValues(buf)
		for _, v := range buf[:n] {
			val, convErr := convert(b.Description(), v)
			if convErr != nil {
				return convErr
			}
			if appendErr := b.Append(val); appendErr != nil {
				return appendErr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
	}
}

// convert extracts a Go value from a parquet Value, returning nil for nulls
func convert(desc hiero.ColumnDescription, v parquet.Value) (interface{}, error) {
	if v.IsNull() {
		return nil, nil
	}
	switch v.Kind() {
	case parquet.Int32:
		return int(v.Int32()), nil
	case parquet.Int64:
		return float64(v.Int64()), nil
	case parquet.Float:
		return float64(v.Float()), nil
	case parquet.Double:
		return v.Double(), nil
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray()), nil
	case parquet.Boolean:
		if v.Boolean() {
			return "true", nil
		}
		return "false", nil
	case parquet.Int96:
		i96 := v.Int96()
		nanos := int64(i96[1])<<32 | int64(i96[0])
		days := int64(i96[2]) - julianUnixEpoch
		return time.Unix(days*86400, nanos).UTC(), nil
	default:
		return nil, hieroerrors.UnsupportedValueError{Name: desc.Name, Kind: desc.Kind.String(), Value: v.String()}
	}
}
