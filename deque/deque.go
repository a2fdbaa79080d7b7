// Package deque 双端队列，服务端用来保存最近推送的图表
package deque

type Deque[T any] interface {
	// 队列的长度
	Size() int

	// 获取队列中对应下标的元素，0 为队头
	Get(i int) T

	// 正向遍历
	Traverse(f func(i int, item T))

	// 在队列结尾增加一个元素，队列满时返回 false
	AddLast(item T) bool

	// 在队列结尾删除一个元素
	RemoveLast() (T, bool)

	// 在队列头部增加一个元素，队列满时返回 false
	AddFirst(item T) bool

	// 在队列头部删除一个元素
	RemoveFirst() (T, bool)

	IsFull() bool

	IsEmpty() bool
}

// 实现方式
const (
	Array = "array"
	List  = "list"
)

// New returns an empty deque of the given implementation, the ring buffer
// unless kind is List.
func New[T any](kind string, capacity int) Deque[T] {
	if kind == List {
		return NewListDeque[T](capacity)
	}
	return NewArrDeque[T](capacity)
}

// Push appends item and evicts the oldest element when d is full.
func Push[T any](d Deque[T], item T) {
	if d.IsFull() {
		d.RemoveFirst()
	}
	d.AddLast(item)
}

// Items copies the elements of d from head to tail.
func Items[T any](d Deque[T]) []T {
	res := make([]T, 0, d.Size())
	d.Traverse(func(_ int, item T) {
		res = append(res, item)
	})
	return res
}
