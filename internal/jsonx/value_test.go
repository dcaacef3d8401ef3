package jsonx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnmarshal_MixedArray(t *testing.T) {
	var vals []Value
	err := json.Unmarshal([]byte(`["body", 0, true, null, 1.5]`), &vals)
	require.NoError(t, err)
	require.Len(t, vals, 5)

	require.Equal(t, KindString, vals[0].Kind)
	require.Equal(t, "body", vals[0].Str)
	require.Equal(t, KindNumber, vals[1].Kind)
	require.Equal(t, float64(0), vals[1].Num)
	require.Equal(t, KindBool, vals[2].Kind)
	require.True(t, vals[2].Bool)
	require.Equal(t, KindNull, vals[3].Kind)
	require.Equal(t, 1.5, vals[4].Num)
}

func TestUnmarshal_NestedObject(t *testing.T) {
	var v Value
	err := json.Unmarshal([]byte(`{"loc": ["body", "email"], "n": 2}`), &v)
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind)
	require.Equal(t, KindArray, v.Obj["loc"].Kind)
	require.Equal(t, "email", v.Obj["loc"].Arr[1].Str)
	require.Equal(t, float64(2), v.Obj["n"].Num)
}

func TestMarshal_RoundTrip(t *testing.T) {
	in := []byte(`["body",0,true,null]`)
	var vals []Value
	require.NoError(t, json.Unmarshal(in, &vals))
	out, err := json.Marshal(vals)
	require.NoError(t, err)
	require.JSONEq(t, string(in), string(out))
}

func TestText(t *testing.T) {
	require.Equal(t, "email", String("email").Text())
	require.Equal(t, "0", Number(0).Text())
	require.Equal(t, "null", Value{}.Text())
}

func TestUnmarshal_InvalidInput(t *testing.T) {
	var v Value
	require.Error(t, json.Unmarshal([]byte(``), &v))
}
