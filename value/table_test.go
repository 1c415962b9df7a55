package value

import "testing"

func TestMapPreservesInsertionOrder(t *testing.T) {
	m := NewMap()
	m.Set("z", Int(1))
	m.Set("a", Int(2))
	m.Set("m", Int(3))

	want := []string{"z", "a", "m"}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMapSetOverwriteKeepsPosition(t *testing.T) {
	m := NewMap()
	m.Set("a", Int(1))
	m.Set("b", Int(2))
	m.Set("a", Int(99))

	want := []string{"a", "b"}
	got := m.Keys()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", got, want)
		}
	}
	v, _ := m.Get("a")
	if v.Int() != 99 {
		t.Errorf("Get(a) = %d, want 99", v.Int())
	}
}

func TestMapDelete(t *testing.T) {
	m := NewMap()
	m.Set("a", Int(1))
	m.Set("b", Int(2))
	m.Set("c", Int(3))
	m.Delete("b")

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if _, ok := m.Get("b"); ok {
		t.Error("expected b to be deleted")
	}
	want := []string{"a", "c"}
	got := m.Keys()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys() after delete = %v, want %v", got, want)
		}
	}
}

func TestMapMerge(t *testing.T) {
	m := NewMap()
	m.Set("a", Int(1))

	other := NewMap()
	other.Set("b", Int(2))
	other.Set("a", Int(100))

	m.Merge(other)

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	v, _ := m.Get("a")
	if v.Int() != 100 {
		t.Error("expected merge to overwrite existing key")
	}
	want := []string{"a", "b"}
	got := m.Keys()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys() after merge = %v, want %v", got, want)
		}
	}
}
