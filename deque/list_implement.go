package deque

import "container/list"

// ListDeque 基于链表的双端队列
type ListDeque[T any] struct {
	l        *list.List
	capacity int
}

func NewListDeque[T any](capacity int) *ListDeque[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &ListDeque[T]{l: list.New(), capacity: capacity}
}

func (ld *ListDeque[T]) Size() int {
	return ld.l.Len()
}

func (ld *ListDeque[T]) Get(i int) T {
	if i < 0 || i >= ld.l.Len() {
		panic("deque: index out of range")
	}
	e := ld.l.Front()
	for ; i > 0; i-- {
		e = e.Next()
	}
	return e.Value.(T)
}

func (ld *ListDeque[T]) Traverse(f func(i int, item T)) {
	i := 0
	for e := ld.l.Front(); e != nil; e = e.Next() {
		f(i, e.Value.(T))
		i++
	}
}

func (ld *ListDeque[T]) AddLast(item T) bool {
	if ld.IsFull() {
		return false
	}
	ld.l.PushBack(item)
	return true
}

func (ld *ListDeque[T]) RemoveLast() (T, bool) {
	var zero T
	e := ld.l.Back()
	if e == nil {
		return zero, false
	}
	return ld.l.Remove(e).(T), true
}

func (ld *ListDeque[T]) AddFirst(item T) bool {
	if ld.IsFull() {
		return false
	}
	ld.l.PushFront(item)
	return true
}

func (ld *ListDeque[T]) RemoveFirst() (T, bool) {
	var zero T
	e := ld.l.Front()
	if e == nil {
		return zero, false
	}
	return ld.l.Remove(e).(T), true
}

func (ld *ListDeque[T]) IsFull() bool {
	return ld.l.Len() >= ld.capacity
}

func (ld *ListDeque[T]) IsEmpty() bool {
	return ld.l.Len() == 0
}
