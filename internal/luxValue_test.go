package internal

import (
	"math"
	"testing"
)

func TestValueEquality(t *testing.T) {
	var h heap
	defer h.free()
	foo1 := objectValue(h.newString("foo"))
	foo2 := objectValue(h.newString("foo"))
	bar := objectValue(h.newString("bar"))

	equal := [][2]Value{
		{nilValue(), nilValue()},
		{boolValue(true), boolValue(true)},
		{numberValue(1.5), numberValue(1.5)},
		{foo1, foo2},
	}
	for _, pair := range equal {
		if !pair[0].equals(pair[1]) {
			t.Errorf("%v (%s) should equal %v (%s)", pair[0], pair[0].kind, pair[1], pair[1].kind)
		}
	}

	different := [][2]Value{
		{nilValue(), boolValue(false)},
		{boolValue(true), boolValue(false)},
		{numberValue(0), boolValue(false)},
		{numberValue(1), foo1},
		{foo1, bar},
		{numberValue(math.NaN()), numberValue(math.NaN())},
	}
	for _, pair := range different {
		if pair[0].equals(pair[1]) {
			t.Errorf("%v (%s) should not equal %v (%s)", pair[0], pair[0].kind, pair[1], pair[1].kind)
		}
	}
}

func TestValueFalsey(t *testing.T) {
	var h heap
	defer h.free()

	if !nilValue().isFalsey() || !boolValue(false).isFalsey() {
		t.Error("nil and false must be falsey")
	}
	for _, v := range []Value{boolValue(true), numberValue(0), objectValue(h.newString(""))} {
		if v.isFalsey() {
			t.Errorf("%v (%s) should be truthy", v, v.kind)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		n    float64
		want string
	}{
		{0, "0"},
		{-3, "-3"},
		{2.5, "2.5"},
		{0.1 + 0.2, "0.3"},
		{123456, "123456"},
		{1234567, "1.23457e+06"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{math.Inf(1), "+Inf"},
	}
	for _, c := range cases {
		if got := formatNumber(c.n); got != c.want {
			t.Errorf("formatNumber(%v) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestStringConcat(t *testing.T) {
	var h heap
	defer h.free()
	a := objectValue(h.newString("foo"))
	b := objectValue(h.newString("bar"))

	result, err := addValues(a, b)
	if err != nil {
		t.Fatalf("addValues = %v", err)
	}
	if result.obj != a.obj {
		t.Error("concatenation allocated a new object instead of extending the left one")
	}
	if got := result.String(); got != "foobar" {
		t.Errorf("result = %q, want foobar", got)
	}
	if result.asString().hash != hashBytes([]byte("foobar")) {
		t.Error("hash was not refreshed after concatenation")
	}
	if b.String() != "bar" {
		t.Errorf("right operand changed to %q", b.String())
	}
	if result.asString().len() != 6 {
		t.Errorf("len = %d, want 6", result.asString().len())
	}
}

func TestAddValuesRejectsMixedOperands(t *testing.T) {
	var h heap
	defer h.free()
	s := objectValue(h.newString("1"))

	for _, pair := range [][2]Value{
		{numberValue(1), s},
		{s, numberValue(1)},
		{boolValue(true), boolValue(true)},
		{nilValue(), numberValue(1)},
	} {
		if _, err := addValues(pair[0], pair[1]); err != errAddOperands {
			t.Errorf("addValues(%v, %v) error = %v, want errAddOperands", pair[0], pair[1], err)
		}
	}
	if s.String() != "1" {
		t.Errorf("failed add changed its operand to %q", s.String())
	}
}

func TestHashIsFNV1a(t *testing.T) {
	// Reference values for 32-bit FNV-1a.
	if got := hashBytes(nil); got != 2166136261 {
		t.Errorf("hash of empty input = %d, want 2166136261", got)
	}
	if got := hashBytes([]byte("a")); got != 0xe40c292c {
		t.Errorf("hash of \"a\" = %#x, want 0xe40c292c", got)
	}
}
