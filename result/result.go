// Package result serializes sketch results, which represent themselves as
// self-describing values through hiero.Valuer.
package result

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-sif/hiero"
	json "github.com/json-iterator/go"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Value returns the self-describing representation of a result. Results which do not
// implement hiero.Valuer are returned unchanged.
func Value(r interface{}) interface{} {
	if valuer, ok := r.(hiero.Valuer); ok {
		return valuer.ToValue()
	}
	return r
}

// ToJSON encodes a result as JSON
func ToJSON(r interface{}) ([]byte, error) {
	data, err := json.ConfigCompatibleWithStandardLibrary.Marshal(Value(r))
	if err != nil {
		return nil, fmt.Errorf("Unable to encode result as JSON: %w", err)
	}
	return data, nil
}

// ToProto converts a result into a protobuf Value
func ToProto(r interface{}) (*structpb.Value, error) {
	v, err := structpb.NewValue(normalize(Value(r)))
	if err != nil {
		return nil, fmt.Errorf("Unable to convert result to a protobuf value: %w", err)
	}
	return v, nil
}

// Codec identifies the compression applied to encoded results
type Codec int

const (
	// LZ4 frames encoded results with lz4
	LZ4 Codec = iota
	// Zstd frames encoded results with zstandard
	Zstd
)

// ParseCodec translates a codec name, "lz4" or "zstd", to a Codec
func ParseCodec(name string) (Codec, error) {
	switch name {
	case "lz4":
		return LZ4, nil
	case "zstd":
		return Zstd, nil
	default:
		return 0, fmt.Errorf("Unknown codec %q", name)
	}
}

// Encode converts a result into lz4-compressed protobuf bytes
func Encode(r interface{}) ([]byte, error) {
	return EncodeWith(r, LZ4)
}

// EncodeWith converts a result into protobuf bytes compressed with the given codec
func EncodeWith(r interface{}, codec Codec) ([]byte, error) {
	v, err := ToProto(r)
	if err != nil {
		return nil, err
	}
	data, err := proto.Marshal(v)
	if err != nil {
		return nil, err
	}
	switch codec {
	case LZ4:
		var buf bytes.Buffer
		compressor := lz4.NewWriter(&buf)
		if _, err = compressor.Write(data); err != nil {
			return nil, err
		}
		if err = compressor.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case Zstd:
		compressor, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
		if err != nil {
			return nil, err
		}
		defer compressor.Close()
		return compressor.EncodeAll(data, nil), nil
	default:
		return nil, fmt.Errorf("Unknown codec %d", codec)
	}
}

// Decode reverses Encode, producing a protobuf Value
func Decode(data []byte) (*structpb.Value, error) {
	return DecodeWith(data, LZ4)
}

// DecodeWith reverses EncodeWith, producing a protobuf Value
func DecodeWith(data []byte, codec Codec) (*structpb.Value, error) {
	var raw []byte
	var err error
	switch codec {
	case LZ4:
		raw, err = io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	case Zstd:
		var decompressor *zstd.Decoder
		decompressor, err = zstd.NewReader(nil)
		if err == nil {
			raw, err = decompressor.DecodeAll(data, nil)
			decompressor.Close()
		}
	default:
		err = fmt.Errorf("Unknown codec %d", codec)
	}
	if err != nil {
		return nil, fmt.Errorf("Unable to decompress result: %w", err)
	}
	v := &structpb.Value{}
	if err = proto.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("Unable to decode result: %w", err)
	}
	return v, nil
}

// normalize converts nested slices and maps of concrete types into the
// []interface{} and map[string]interface{} forms understood by structpb
func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			out[k] = normalize(inner)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = normalize(inner)
		}
		return out
	case []int:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = inner
		}
		return out
	case []float64:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = inner
		}
		return out
	case []string:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = inner
		}
		return out
	case hiero.Valuer:
		return normalize(val.ToValue())
	default:
		return v
	}
}
