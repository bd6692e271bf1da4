package domain_util

import "container/heap"

// RankHeap 保留前 N 个元素的最小堆，less 定义"更差"的顺序
type RankHeap[T any] struct {
	items []T
	less  func(a, b T) bool
	limit int
}

func NewRankHeap[T any](limit int, less func(a, b T) bool) *RankHeap[T] {
	return &RankHeap[T]{less: less, limit: limit}
}

func (h *RankHeap[T]) Len() int           { return len(h.items) }
func (h *RankHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *RankHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *RankHeap[T]) Push(x interface{}) { h.items = append(h.items, x.(T)) }
func (h *RankHeap[T]) Pop() interface{} {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[0 : n-1]
	return x
}

// Offer 堆满时仅替换比堆顶更好的元素
func (h *RankHeap[T]) Offer(v T) {
	if h.limit <= 0 {
		return
	}
	if len(h.items) < h.limit {
		heap.Push(h, v)
		return
	}
	if h.less(h.items[0], v) {
		h.items[0] = v
		heap.Fix(h, 0)
	}
}

// Drain 按从好到差的顺序返回全部元素并清空堆
func (h *RankHeap[T]) Drain() []T {
	out := make([]T, len(h.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(T)
	}
	return out
}
