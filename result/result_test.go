package result

import (
	"testing"

	"github.com/go-sif/hiero/sketches"
	hierotest "github.com/go-sif/hiero/testing"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func histogram(t *testing.T) *sketches.Groups[*sketches.CountResult] {
	b, err := sketches.NewExplicitBuckets("Age", 0, 15, 25, 35)
	require.Nil(t, err)
	r, err := sketches.Histogram(b).Create(hierotest.SmallTable())
	require.Nil(t, err)
	return r
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(histogram(t))
	require.Nil(t, err)
	require.JSONEq(t, `{"buckets":[1,1,1],"overflow":0}`, string(data))
}

func TestEncodeDecode(t *testing.T) {
	r := histogram(t)
	data, err := Encode(r)
	require.Nil(t, err)
	v, err := Decode(data)
	require.Nil(t, err)
	require.Equal(t, map[string]interface{}{
		"buckets":  []interface{}{1.0, 1.0, 1.0},
		"overflow": 0.0,
	}, v.AsInterface())
}

func TestToProtoNested(t *testing.T) {
	b, err := sketches.NewStringBuckets("Name", "John", "Mike", "Tom")
	require.Nil(t, err)
	s := sketches.GroupBy[*sketches.SumResult, *sketches.ColumnWorkspace](b, sketches.Sum("Age"))
	r, err := s.Create(hierotest.SmallTable())
	require.Nil(t, err)
	v, err := ToProto(r)
	require.Nil(t, err)
	mike := v.GetStructValue().Fields["buckets"].GetListValue().Values[1].GetStructValue()
	require.Equal(t, 20.0, mike.Fields["sum"].GetNumberValue())
	require.Equal(t, 1.0, mike.Fields["count"].GetNumberValue())
}

func TestValuePassesThroughPlainValues(t *testing.T) {
	require.Equal(t, 3, Value(3))
	_, err := ToProto(struct{}{})
	require.NotNil(t, err)
}

func TestEncodeDecodeWithCodecs(t *testing.T) {
	expected, err := ToProto(histogram(t))
	require.Nil(t, err)
	for _, name := range []string{"lz4", "zstd"} {
		codec, err := ParseCodec(name)
		require.Nil(t, err)
		data, err := EncodeWith(histogram(t), codec)
		require.Nil(t, err)
		decoded, err := DecodeWith(data, codec)
		require.Nil(t, err)
		require.True(t, proto.Equal(expected, decoded), name)
	}
	_, err = ParseCodec("gzip")
	require.NotNil(t, err)
	_, err = DecodeWith([]byte("not compressed"), Zstd)
	require.NotNil(t, err)
}
