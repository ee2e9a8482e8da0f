package decycle

import (
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cyclejson/internal/ir"
	"github.com/roach88/cyclejson/internal/jsonenc"
)

// jsonify renders an acyclic expectation with the plain encoder.
func jsonify(t *testing.T, v ir.Value, indent any) string {
	t.Helper()
	gap, err := jsonenc.NormalizeIndent(indent)
	require.NoError(t, err)
	out, err := jsonenc.Encode(v, jsonenc.WithIndent(gap))
	require.NoError(t, err)
	return out
}

// encode runs Encode with no replacer and the default resolver.
func encode(t *testing.T, v ir.Value, indent any) string {
	t.Helper()
	out, err := Encode(v, Replacer{}, indent, nil)
	require.NoError(t, err)
	return out
}

func str(s string) ir.Value { return ir.String(s) }

func TestEncodeUsesIndent(t *testing.T) {
	obj := ir.NewObject(ir.O("name", str("Alice")))
	obj.Set("self", obj)

	expected := ir.NewObject(
		ir.O("name", str("Alice")),
		ir.O("self", str("[Circular ~]")),
	)

	tests := []struct {
		name   string
		indent any
	}{
		{"nil", nil},
		{"one", 1},
		{"two", 2},
		{"empty string", ""},
		{"space", " "},
		{"two spaces", "  "},
		{"tab", "\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, jsonify(t, expected, tt.indent), encode(t, obj, tt.indent))
		})
	}
}

func TestEncodeSelfReference(t *testing.T) {
	v := ir.NewObject(ir.O("a", ir.Int(1)))
	v.Set("self", v)

	assert.Equal(t, `{"a":1,"self":"[Circular ~]"}`, encode(t, v, 0))
}

func TestEncodeCircularObjects(t *testing.T) {
	tests := []struct {
		name     string
		build    func() ir.Value
		expected ir.Value
	}{
		{
			name: "with intermediaries",
			build: func() ir.Value {
				obj := ir.NewObject(ir.O("name", str("Alice")))
				obj.Set("identity", ir.NewObject(ir.O("self", obj)))
				return obj
			},
			expected: ir.NewObject(
				ir.O("name", str("Alice")),
				ir.O("identity", ir.NewObject(ir.O("self", str("[Circular ~]")))),
			),
		},
		{
			name: "deeper",
			build: func() ir.Value {
				child := ir.NewObject(ir.O("name", str("Bob")))
				child.Set("self", child)
				return ir.NewObject(ir.O("name", str("Alice")), ir.O("child", child))
			},
			expected: ir.NewObject(
				ir.O("name", str("Alice")),
				ir.O("child", ir.NewObject(
					ir.O("name", str("Bob")),
					ir.O("self", str("[Circular ~.child]")),
				)),
			),
		},
		{
			name: "deeper with intermediaries",
			build: func() ir.Value {
				child := ir.NewObject(ir.O("name", str("Bob")))
				child.Set("identity", ir.NewObject(ir.O("self", child)))
				return ir.NewObject(ir.O("name", str("Alice")), ir.O("child", child))
			},
			expected: ir.NewObject(
				ir.O("name", str("Alice")),
				ir.O("child", ir.NewObject(
					ir.O("name", str("Bob")),
					ir.O("identity", ir.NewObject(ir.O("self", str("[Circular ~.child]")))),
				)),
			),
		},
		{
			name: "in an array",
			build: func() ir.Value {
				obj := ir.NewObject(ir.O("name", str("Alice")))
				obj.Set("self", ir.NewArray(obj, obj))
				return obj
			},
			expected: ir.NewObject(
				ir.O("name", str("Alice")),
				ir.O("self", ir.NewArray(str("[Circular ~]"), str("[Circular ~]"))),
			),
		},
		{
			name: "deeper in an array",
			build: func() ir.Value {
				bob := ir.NewObject(ir.O("name", str("Bob")))
				bob.Set("self", bob)
				eve := ir.NewObject(ir.O("name", str("Eve")))
				eve.Set("self", eve)
				return ir.NewObject(
					ir.O("name", str("Alice")),
					ir.O("children", ir.NewArray(bob, eve)),
				)
			},
			expected: ir.NewObject(
				ir.O("name", str("Alice")),
				ir.O("children", ir.NewArray(
					ir.NewObject(ir.O("name", str("Bob")), ir.O("self", str("[Circular ~.children.0]"))),
					ir.NewObject(ir.O("name", str("Eve")), ir.O("self", str("[Circular ~.children.1]"))),
				)),
			),
		},
		{
			name: "circular arrays",
			build: func() ir.Value {
				arr := ir.NewArray()
				arr.Append(arr, arr)
				return arr
			},
			expected: ir.NewArray(str("[Circular ~]"), str("[Circular ~]")),
		},
		{
			name: "circular arrays with intermediaries",
			build: func() ir.Value {
				arr := ir.NewArray()
				arr.Append(
					ir.NewObject(ir.O("name", str("Alice")), ir.O("self", arr)),
					ir.NewObject(ir.O("name", str("Bob")), ir.O("self", arr)),
				)
				return arr
			},
			expected: ir.NewArray(
				ir.NewObject(ir.O("name", str("Alice")), ir.O("self", str("[Circular ~]"))),
				ir.NewObject(ir.O("name", str("Bob")), ir.O("self", str("[Circular ~]"))),
			),
		},
		{
			name: "repeated objects in objects",
			build: func() ir.Value {
				alice := ir.NewObject(ir.O("name", str("Alice")))
				return ir.NewObject(ir.O("alice1", alice), ir.O("alice2", alice))
			},
			expected: ir.NewObject(
				ir.O("alice1", ir.NewObject(ir.O("name", str("Alice")))),
				ir.O("alice2", ir.NewObject(ir.O("name", str("Alice")))),
			),
		},
		{
			name: "repeated objects in arrays",
			build: func() ir.Value {
				alice := ir.NewObject(ir.O("name", str("Alice")))
				return ir.NewArray(alice, alice)
			},
			expected: ir.NewArray(
				ir.NewObject(ir.O("name", str("Alice"))),
				ir.NewObject(ir.O("name", str("Alice"))),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, jsonify(t, tt.expected, 2), encode(t, tt.build(), 2))
		})
	}
}

func TestEncodeNestedAndRootCycles(t *testing.T) {
	v := ir.NewObject()
	child := ir.NewObject()
	child.Set("self", child)
	v.Set("child", child)
	v.Set("me", v)

	assert.Equal(t, `{"child":{"self":"[Circular ~.child]"},"me":"[Circular ~]"}`, encode(t, v, nil))
}

func TestEncodeRepeatedReferenceIsNotACycle(t *testing.T) {
	a := ir.NewObject(ir.O("n", ir.Int(1)))
	v := ir.NewArray(a, a)

	assert.Equal(t, `[{"n":1},{"n":1}]`, encode(t, v, nil))
}

func TestEncodeSharedNodeBelowDifferentBranches(t *testing.T) {
	root := ir.NewObject(ir.O("name", str("Alice")))
	child := ir.NewObject(ir.O("name", str("Bob")), ir.O("parent", root))
	child.Set("self", child)
	root.Set("child", child)
	root.Set("friends", ir.NewArray(root, child))

	assert.Equal(t,
		`{"name":"Alice",`+
			`"child":{"name":"Bob","parent":"[Circular ~]","self":"[Circular ~.child]"},`+
			`"friends":["[Circular ~]",{"name":"Bob","parent":"[Circular ~]","self":"[Circular ~.friends.1]"}]}`,
		encode(t, root, nil))
}

// counting returns a resolver yielding 1, 2, 3... and records its calls.
func counting() (EntryFunc, *[]ir.Entry) {
	var calls []ir.Entry
	fn := func(_ ir.Container, key string, value ir.Value) (ir.Value, error) {
		calls = append(calls, ir.O(key, value))
		return ir.Int(len(calls)), nil
	}
	return fn, &calls
}

func TestEncodeCallsResolver(t *testing.T) {
	obj := ir.NewObject()
	obj.Set("a", obj)
	obj.Set("b", obj)

	resolver, calls := counting()
	out, err := Encode(obj, Replacer{}, 2, resolver)
	require.NoError(t, err)

	expected := ir.NewObject(ir.O("a", ir.Int(1)), ir.O("b", ir.Int(2)))
	assert.Equal(t, jsonify(t, expected, 2), out)

	require.Len(t, *calls, 2)
	assert.Equal(t, "a", (*calls)[0].Key)
	assert.True(t, ir.Same(obj, (*calls)[0].Value))
	assert.Equal(t, "b", (*calls)[1].Key)
	assert.True(t, ir.Same(obj, (*calls)[1].Value))
}

func TestEncodeCallsResolverForNestedObjects(t *testing.T) {
	obj := ir.NewObject()
	obj.Set("a", obj)
	obj.Set("b", ir.NewObject(ir.O("self", obj)))

	resolver, calls := counting()
	out, err := Encode(obj, Replacer{}, 2, resolver)
	require.NoError(t, err)

	expected := ir.NewObject(
		ir.O("a", ir.Int(1)),
		ir.O("b", ir.NewObject(ir.O("self", ir.Int(2)))),
	)
	assert.Equal(t, jsonify(t, expected, 2), out)

	require.Len(t, *calls, 2)
	assert.Equal(t, "a", (*calls)[0].Key)
	assert.Equal(t, "self", (*calls)[1].Key)
	assert.True(t, ir.Same(obj, (*calls)[1].Value))
}

func TestEncodeResolverReturningNull(t *testing.T) {
	obj := ir.NewObject(ir.O("a", str("b")))
	obj.Set("self", obj)
	obj.Set("selves", ir.NewArray(obj, obj))

	out, err := Encode(obj, Replacer{}, 2, NullResolver)
	require.NoError(t, err)

	expected := ir.NewObject(
		ir.O("a", str("b")),
		ir.O("self", ir.Null{}),
		ir.O("selves", ir.NewArray(ir.Null{}, ir.Null{})),
	)
	assert.Equal(t, jsonify(t, expected, 2), out)
}

func TestEncodeResolverReturningUndefined(t *testing.T) {
	obj := ir.NewObject(ir.O("a", str("b")))
	obj.Set("self", obj)
	obj.Set("selves", ir.NewArray(obj, obj))

	out, err := Encode(obj, Replacer{}, 2, OmitResolver)
	require.NoError(t, err)

	expected := ir.NewObject(
		ir.O("a", str("b")),
		ir.O("selves", ir.NewArray(ir.Null{}, ir.Null{})),
	)
	assert.Equal(t, jsonify(t, expected, 2), out)
}

func TestEncodeUnresolvedCycle(t *testing.T) {
	obj := ir.NewObject()
	obj.Set("self", obj)

	_, err := Encode(obj, Replacer{}, 2, KeepResolver)
	require.Error(t, err)
	assert.True(t, IsUnresolvedCycle(err))
	assert.Equal(t,
		"Converting circular structure to JSON\n"+
			"    --> starting at object with constructor 'Object'\n"+
			"    --- property 'self' closes the circle",
		err.Error())

	var ee *jsonenc.EncodeError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "self", ee.Key)
	assert.Equal(t, "Object", ee.Type)
}

func TestEncodeUnresolvedCycleThroughIntermediaries(t *testing.T) {
	obj := ir.NewObject()
	obj.Set("b", ir.NewObject(ir.O("list", ir.NewArray(obj))))

	_, err := Encode(obj, Replacer{}, nil, KeepResolver)
	require.Error(t, err)
	assert.Equal(t,
		"Converting circular structure to JSON\n"+
			"    --> starting at object with constructor 'Object'\n"+
			"    |     property 'b' -> object with constructor 'Object'\n"+
			"    |     property 'list' -> object with constructor 'Array'\n"+
			"    --- index 0 closes the circle",
		err.Error())
}

func TestEncodeCallsReplacer(t *testing.T) {
	child := ir.NewObject(ir.O("name", str("Bob")))
	obj := ir.NewObject(ir.O("name", str("Alice")), ir.O("child", child))

	var calls []ir.Entry
	replacer := ReplaceWith(func(_ ir.Container, key string, value ir.Value) (ir.Value, error) {
		calls = append(calls, ir.O(key, value))
		return bang(value), nil
	})

	out, err := Encode(obj, replacer, 2, nil)
	require.NoError(t, err)

	expected := ir.NewObject(
		ir.O("name", str("Alice!")),
		ir.O("child", ir.NewObject(ir.O("name", str("Bob!")))),
	)
	assert.Equal(t, jsonify(t, expected, 2), out)

	require.Len(t, calls, 4)
	assert.Equal(t, "", calls[0].Key)
	assert.True(t, ir.Same(obj, calls[0].Value))
	assert.Equal(t, ir.O("name", str("Alice")), calls[1])
	assert.Equal(t, "child", calls[2].Key)
	assert.True(t, ir.Same(child, calls[2].Value))
	assert.Equal(t, ir.O("name", str("Bob")), calls[3])
}

func TestEncodeCallsReplacerAfterDescribingCycles(t *testing.T) {
	obj := ir.NewObject(ir.O("name", str("Alice")))
	obj.Set("self", obj)

	var calls []ir.Entry
	replacer := ReplaceWith(func(_ ir.Container, key string, value ir.Value) (ir.Value, error) {
		calls = append(calls, ir.O(key, value))
		return bang(value), nil
	})

	out, err := Encode(obj, replacer, 2, nil)
	require.NoError(t, err)

	expected := ir.NewObject(
		ir.O("name", str("Alice!")),
		ir.O("self", str("[Circular ~]!")),
	)
	assert.Equal(t, jsonify(t, expected, 2), out)

	require.Len(t, calls, 3)
	assert.Equal(t, ir.O("self", str("[Circular ~]")), calls[2])
}

func TestEncodeReplacerReceivesHolder(t *testing.T) {
	inner := ir.NewObject(ir.O("x", ir.Int(1)))
	obj := ir.NewObject(ir.O("inner", inner))

	var holders []ir.Container
	replacer := ReplaceWith(func(holder ir.Container, _ string, value ir.Value) (ir.Value, error) {
		holders = append(holders, holder)
		return value, nil
	})

	_, err := Encode(obj, replacer, nil, nil)
	require.NoError(t, err)

	require.Len(t, holders, 3)
	root, ok := holders[0].(*ir.Object)
	require.True(t, ok)
	wrapped, _ := root.Get("")
	assert.True(t, ir.Same(obj, wrapped))
	assert.True(t, ir.Same(obj, holders[1]))
	assert.True(t, ir.Same(inner, holders[2]))
}

func TestEncodeReplacerError(t *testing.T) {
	boom := errors.New("boom")
	obj := ir.NewObject(ir.O("a", ir.Int(1)))

	_, err := Encode(obj, ReplaceWith(func(_ ir.Container, key string, value ir.Value) (ir.Value, error) {
		if key == "a" {
			return nil, boom
		}
		return value, nil
	}), nil, nil)
	assert.ErrorIs(t, err, boom)
}

func TestEncodeAllowlist(t *testing.T) {
	tests := []struct {
		name     string
		value    ir.Value
		keys     []string
		expected string
	}{
		{
			name:     "top level",
			value:    ir.NewObject(ir.O("a", str("b")), ir.O("c", str("d"))),
			keys:     []string{"a"},
			expected: `{"a":"b"}`,
		},
		{
			name: "dotted names are literal",
			value: ir.NewObject(
				ir.O("a", str("b")),
				ir.O("c", ir.NewObject(ir.O("d", str("e")), ir.O("f", str("j")))),
			),
			keys:     []string{"a", "c.d"},
			expected: `{"a":"b"}`,
		},
		{
			name: "applies at every depth",
			value: ir.NewObject(
				ir.O("a", ir.NewObject(ir.O("a", ir.Int(1)), ir.O("b", ir.Int(2)))),
			),
			keys:     []string{"a"},
			expected: `{"a":{"a":1}}`,
		},
		{
			name:     "array indices are keys",
			value:    ir.NewArray(ir.Int(1), ir.Int(2)),
			keys:     []string{"1"},
			expected: `[null,2]`,
		},
		{
			name:     "empty allowlist keeps the root",
			value:    ir.NewObject(ir.O("a", str("b"))),
			keys:     nil,
			expected: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(tt.value, AllowKeys(tt.keys...), nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestEncodeBigInt(t *testing.T) {
	one := ir.NewBigInt(big.NewInt(1))

	_, err := jsonenc.Encode(one)
	require.Error(t, err)
	assert.True(t, jsonenc.IsUnsupportedTypeError(err))
	assert.Equal(t, "Do not know how to serialize a BigInt", err.Error())

	out, err := Encode(one, Replacer{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `"1"`, out)

	out, err = Encode(ir.NewBigInt(big.NewInt(7)), Replacer{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `"7"`, out)
}

func TestEncodeBigIntWithHook(t *testing.T) {
	toNumber := jsonenc.WithBigIntToJSON(func(_ string, n *big.Int) ir.Value {
		return ir.Int(n.Int64())
	})

	out, err := jsonenc.Encode(ir.NewBigInt(big.NewInt(2)), toNumber)
	require.NoError(t, err)
	assert.Equal(t, "2", out)

	out, err = Encode(ir.NewBigInt(big.NewInt(7)), Replacer{}, nil, nil, toNumber)
	require.NoError(t, err)
	assert.Equal(t, "7", out)
}

func TestEncodeCircularObjectsWithBigInts(t *testing.T) {
	obj := ir.NewObject(ir.O("n", ir.NewBigInt(big.NewInt(3))))
	obj.Set("self", obj)

	expected := ir.NewObject(ir.O("n", str("3")), ir.O("self", str("[Circular ~]")))
	assert.Equal(t, jsonify(t, expected, 2), encode(t, obj, 2))
}

func TestEncodeHugeBigInt(t *testing.T) {
	n, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	out, err := Encode(ir.NewArray(ir.NewBigInt(n)), Replacer{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `["123456789012345678901234567890"]`, out)
}

func TestEncodeMatchesPlainEncoderOnAcyclicValues(t *testing.T) {
	shared := ir.NewObject(ir.O("k", ir.Bool(true)))
	values := []ir.Value{
		ir.Null{},
		ir.Int(42),
		ir.Float(1.5),
		str("plain"),
		ir.NewArray(),
		ir.NewObject(),
		ir.NewObject(
			ir.O("list", ir.NewArray(ir.Int(1), str("two"), ir.Null{}, shared)),
			ir.O("nested", ir.NewObject(ir.O("deep", ir.NewObject(ir.O("x", ir.Float(-0.25)))))),
			ir.O("again", shared),
		),
	}
	indents := []any{nil, 0, 1, 2, 4, 10, 11, "", "\t", "--", "0123456789abc"}

	for _, v := range values {
		for _, indent := range indents {
			gap, err := jsonenc.NormalizeIndent(indent)
			require.NoError(t, err)
			plain, err := jsonenc.Encode(v, jsonenc.WithIndent(gap))
			require.NoError(t, err)
			assert.Equal(t, plain, encode(t, v, indent), "indent %v", indent)
		}
	}
}

func TestEncodeInvalidIndent(t *testing.T) {
	_, err := Encode(ir.Null{}, Replacer{}, []int{2}, nil)
	require.Error(t, err)

	var ee *jsonenc.EncodeError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, jsonenc.ErrCodeInvalidIndent, ee.Code)
}

func TestMakeTransformWithCallerOptions(t *testing.T) {
	obj := ir.NewObject(ir.O("zeta", ir.Int(1)), ir.O("alpha", ir.Int(2)))
	obj.Set("self", obj)

	out, err := jsonenc.Encode(obj,
		jsonenc.WithTransform(MakeTransform(Replacer{}, nil)),
		jsonenc.WithSortKeys(),
	)
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":2,"self":"[Circular ~]","zeta":1}`, out)
}

func TestMakeTransformFreshPathPerCall(t *testing.T) {
	a := ir.NewObject()
	a.Set("self", a)
	b := ir.NewObject(ir.O("x", ir.Int(1)))

	_, err := jsonenc.Encode(a, jsonenc.WithTransform(MakeTransform(Replacer{}, nil)))
	require.NoError(t, err)

	// A new transform must not remember a from the previous walk
	out, err := jsonenc.Encode(b, jsonenc.WithTransform(MakeTransform(Replacer{}, nil)))
	require.NoError(t, err)
	assert.Equal(t, `{"x":1}`, out)
}

func TestEncodeAny(t *testing.T) {
	m := map[string]any{"a": 1}
	m["self"] = m

	out, err := EncodeAny(m, Replacer{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"self":"[Circular ~]"}`, out)
}

func TestEncodeAnyBigInt(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"root", big.NewInt(7), `"7"`},
		{"member", map[string]any{"n": big.NewInt(7)}, `{"n":"7"}`},
		{"element", []any{big.NewInt(-1), 2}, `["-1",2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := EncodeAny(tt.input, Replacer{}, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestEncodeAnyUnsupported(t *testing.T) {
	_, err := EncodeAny(struct{}{}, Replacer{}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestInspect(t *testing.T) {
	root := ir.NewObject(ir.O("name", str("Alice")))
	child := ir.NewObject(ir.O("parent", root))
	child.Set("self", child)
	root.Set("child", child)

	cycles, err := Inspect(root)
	require.NoError(t, err)
	assert.Equal(t, []Cycle{
		{Key: "parent", Path: "~", Depth: 2},
		{Key: "self", Path: "~.child", Depth: 2},
	}, cycles)
}

func TestInspectAcyclic(t *testing.T) {
	cycles, err := Inspect(ir.NewObject(ir.O("a", ir.NewArray(ir.Int(1)))))
	require.NoError(t, err)
	assert.Empty(t, cycles)
}

func TestEncodeReport(t *testing.T) {
	arr := ir.NewArray(ir.Int(1))
	arr.Append(arr)
	root := ir.NewObject(ir.O("list", arr))
	root.Set("self", root)

	out, cycles, err := EncodeReport(root, Replacer{}, nil, NullResolver)
	require.NoError(t, err)
	assert.Equal(t, `{"list":[1,null],"self":null}`, out)
	assert.Equal(t, []Cycle{
		{Key: "1", Path: "~.list", Depth: 2},
		{Key: "self", Path: "~", Depth: 1},
	}, cycles)
}

func TestEncodeReportUnresolved(t *testing.T) {
	obj := ir.NewObject()
	obj.Set("self", obj)

	out, cycles, err := EncodeReport(obj, Replacer{}, nil, KeepResolver)
	require.Error(t, err)
	assert.True(t, IsUnresolvedCycle(err))
	assert.Empty(t, out)
	assert.Nil(t, cycles)
}

func TestEncodeConcurrentCalls(t *testing.T) {
	obj := ir.NewObject(ir.O("name", str("Alice")))
	child := ir.NewObject(ir.O("up", obj))
	obj.Set("child", child)
	obj.Set("self", obj)

	want := encode(t, obj, nil)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := Encode(obj, Replacer{}, nil, nil)
			if err == nil {
				results[i] = out
			}
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func bang(v ir.Value) ir.Value {
	if s, ok := v.(ir.String); ok {
		return ir.String(string(s) + "!")
	}
	return v
}
