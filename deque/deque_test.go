package deque

import (
	"testing"
)

func implementations(capacity int) map[string]Deque[int] {
	return map[string]Deque[int]{
		"arr":  NewArrDeque[int](capacity),
		"list": NewListDeque[int](capacity),
	}
}

func TestDeque_Funcs(t *testing.T) {
	for name, d := range implementations(3) {
		if !d.IsEmpty() {
			t.Errorf("%s: new deque not empty", name)
		}
		d.AddLast(2)
		d.AddFirst(1)
		d.AddLast(3)
		if !d.IsFull() || d.AddLast(4) || d.AddFirst(0) {
			t.Errorf("%s: capacity not enforced", name)
		}
		if d.Get(0) != 1 || d.Get(1) != 2 || d.Get(2) != 3 {
			t.Errorf("%s: got %v", name, Items(d))
		}
		if v, ok := d.RemoveFirst(); !ok || v != 1 {
			t.Errorf("%s: RemoveFirst %v %v", name, v, ok)
		}
		if v, ok := d.RemoveLast(); !ok || v != 3 {
			t.Errorf("%s: RemoveLast %v %v", name, v, ok)
		}
		d.RemoveLast()
		if _, ok := d.RemoveFirst(); ok || !d.IsEmpty() {
			t.Errorf("%s: remove from empty deque", name)
		}
	}
}

func TestDeque_Push(t *testing.T) {
	for name, d := range implementations(4) {
		for i := 0; i < 10; i++ {
			Push(d, i)
		}
		got := Items(d)
		want := []int{6, 7, 8, 9}
		if len(got) != len(want) {
			t.Fatalf("%s: got %v", name, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s: got %v, want %v", name, got, want)
				break
			}
		}
	}
}

// 环形数组绕回之后的顺序
func TestArrDeque_Wrap(t *testing.T) {
	d := NewArrDeque[int](3)
	d.AddLast(1)
	d.AddLast(2)
	d.RemoveFirst()
	d.AddLast(3)
	d.AddLast(4)
	d.RemoveFirst()
	d.AddFirst(0)
	got := Items[int](d)
	if len(got) != 3 || got[0] != 0 || got[1] != 3 || got[2] != 4 {
		t.Errorf("got %v", got)
	}
}

func BenchmarkArrDeque_Push(b *testing.B) {
	d := NewArrDeque[int](16)
	for i := 0; i < b.N; i++ {
		Push[int](d, i)
	}
}

func BenchmarkListDeque_Push(b *testing.B) {
	d := NewListDeque[int](16)
	for i := 0; i < b.N; i++ {
		Push[int](d, i)
	}
}
