package value

import "testing"

func TestCompareNumeric(t *testing.T) {
	cases := []struct {
		a, b *Value
		want Ordering
	}{
		{Int(1), Double(1.0), Equal},
		{Int(1), Int(2), Less},
		{Double(3.5), Int(2), Greater},
	}
	for _, c := range cases {
		if got := c.a.Compare(c.b); got != c.want {
			t.Errorf("Compare(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestCompareString(t *testing.T) {
	if String("a").Compare(String("b")) != Less {
		t.Error("expected \"a\" < \"b\"")
	}
	if String("b").Compare(String("a")) != Greater {
		t.Error("expected \"b\" > \"a\"")
	}
}

func TestCompareBool(t *testing.T) {
	if Bool(false).Compare(Bool(true)) != Less {
		t.Error("expected false < true")
	}
}

func TestCompareArray(t *testing.T) {
	a := FromArray(NewArray(Int(1), Int(2)))
	b := FromArray(NewArray(Int(1), Int(2)))
	if a.Compare(b) != Equal {
		t.Error("expected equal arrays to compare Equal")
	}

	shorter := FromArray(NewArray(Int(1)))
	if shorter.Compare(a) != Less {
		t.Error("expected shorter array to be Less")
	}
}

func TestCompareNullOrdering(t *testing.T) {
	arr := FromArray(NewArray(Null(), Int(1)))
	other := FromArray(NewArray(Int(0), Int(1)))
	if arr.Compare(other) != Less {
		t.Error("expected Null element to order below a non-null element")
	}
}

func TestCompareIncomparable(t *testing.T) {
	if String("1").Compare(Int(1)) != Incomparable {
		t.Error("expected String/Int to be Incomparable")
	}
	if Bool(true).Compare(Int(1)) != Incomparable {
		t.Error("expected Bool/Int to be Incomparable")
	}
}

func TestStringRendering(t *testing.T) {
	v := FromMap(func() *Map {
		m := NewMap()
		m.Set("a", Int(1))
		m.Set("b", String("x"))
		return m
	}())
	want := `{a: 1, b: "x"}`
	if got := v.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
