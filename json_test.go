package bigreal

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v    Value
		want string
	}{
		{New(1, 2), `"0.5"`},
		{FromInt64(-3), `"-3"`},
		{New(-1, 2), `"-0.5"`},
		{NaN, `"NaN"`},
		{Inf, `"Infinity"`},
		{NegInf, `"-Infinity"`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a := assert.New(t)
			data, err := json.Marshal(test.v)
			a.NoError(err)
			a.Equal(test.want, string(data))
			var back Value
			a.NoError(json.Unmarshal(data, &back))
			a.True(back.Eq(test.v))
		})
	}
	// non-terminating fractions are cut
	data, err := json.Marshal(New(1, 3))
	a.NoError(err)
	var back Value
	a.NoError(json.Unmarshal(data, &back))
	a.False(back.Eq(New(1, 3)))
}

func TestJSONRational(t *testing.T) {
	JSONMode = JSONModeRational
	defer func() { JSONMode = JSONModeString }()

	a := assert.New(t)
	data, err := json.Marshal(New(2, 6))
	a.NoError(err)
	a.Equal(`{"n":"1","d":"3"}`, string(data))

	for i, v := range []Value{New(1, 3), FromInt64(-7), NaN, Inf, NegInf, Zero} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a := assert.New(t)
			data, err := json.Marshal(v)
			a.NoError(err)
			var back Value
			a.NoError(json.Unmarshal(data, &back))
			a.True(back.Eq(v), "%s", string(data))
		})
	}
}

func TestJSONUnmarshal(t *testing.T) {
	a := assert.New(t)
	var v Value
	a.NoError(json.Unmarshal([]byte(`1.25`), &v))
	a.True(v.Eq(New(5, 4)))
	a.NoError(json.Unmarshal([]byte(`"1e2"`), &v))
	a.True(v.Eq(FromInt64(100)))
	a.NoError(json.Unmarshal([]byte(`{"n":"-3","d":"4"}`), &v))
	a.True(v.Eq(New(-3, 4)))
	a.Error(json.Unmarshal([]byte(`{"n":"x","d":"4"}`), &v))
	a.Error(json.Unmarshal([]byte(`"abc"`), &v))

	// null leaves the value untouched
	v = New(5, 4)
	a.NoError(json.Unmarshal([]byte(`null`), &v))
	a.True(v.Eq(New(5, 4)))

	type wrapper struct {
		Price Value `json:"price"`
	}
	var w wrapper
	a.NoError(json.Unmarshal([]byte(`{"price":"19.99"}`), &w))
	a.True(w.Price.Eq(New(1999, 100)))
	data, err := json.Marshal(w)
	a.NoError(err)
	a.Equal(`{"price":"19.99"}`, string(data))
}
