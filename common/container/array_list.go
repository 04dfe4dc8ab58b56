package container

import "iter"

// ArrayList 连续数组列表 线程不安全
// 默认 GrowthExact: 每次 push/pop 都重新分配刚好 length 大小的缓冲区并拷贝 At O(1)
type ArrayList[T any] struct {
	data   []T        // 数据 len(data) 即元素个数
	config ListConfig // 配置
}

// NewArrayList 创建空数组列表
func NewArrayList[T any](opts ...ListOption) *ArrayList[T] {
	return newArrayList[T](newListConfig(opts...))
}

// NewArrayListWithSize 创建包含 size 个零值元素的数组列表
func NewArrayListWithSize[T any](size int, opts ...ListOption) *ArrayList[T] {
	l := NewArrayList[T](opts...)
	if size > 0 {
		l.data = make([]T, size, l.config.Growth.capacityFor(size))
	}
	return l
}

func newArrayList[T any](config ListConfig) *ArrayList[T] {
	return &ArrayList[T]{
		config: config,
	}
}

// Empty 判断是否为空
func (l *ArrayList[T]) Empty() bool {
	return len(l.data) <= 0
}

// Size 获取长度
func (l *ArrayList[T]) Size() int {
	return len(l.data)
}

// Len 获取长度
func (l *ArrayList[T]) Len() int {
	return len(l.data)
}

// Cap 当前缓冲区容量
func (l *ArrayList[T]) Cap() int {
	return cap(l.data)
}

// Clear 清空 释放缓冲区
func (l *ArrayList[T]) Clear() {
	l.data = nil
}

// Value 获取数据副本
func (l *ArrayList[T]) Value() []T {
	values := make([]T, len(l.data))
	copy(values, l.data)
	return values
}

// At 获取下标元素
func (l *ArrayList[T]) At(index int) (val T, err error) {
	if err = checkIndex(index, len(l.data)); err != nil {
		if l.config.ZeroOnOutOfRange {
			return val, nil
		}
		return
	}
	return l.data[index], nil
}

// Set 设置下标元素
func (l *ArrayList[T]) Set(index int, val T) error {
	if err := checkIndex(index, len(l.data)); err != nil {
		return err
	}
	l.data[index] = val
	return nil
}

// PushBack 尾部插入
func (l *ArrayList[T]) PushBack(val T) {
	length := len(l.data)
	newCapacity, realloc := l.config.Growth.expand(length+1, cap(l.data))
	if !realloc {
		l.data = append(l.data, val)
		return
	}
	newData := make([]T, length+1, newCapacity)
	copy(newData, l.data)
	newData[length] = val
	l.data = newData
}

// PushFront 头部插入 原有元素整体后移一位
func (l *ArrayList[T]) PushFront(val T) {
	length := len(l.data)
	newCapacity, realloc := l.config.Growth.expand(length+1, cap(l.data))
	if !realloc {
		l.data = l.data[:length+1]
		copy(l.data[1:], l.data[:length])
		l.data[0] = val
		return
	}
	newData := make([]T, length+1, newCapacity)
	newData[0] = val
	copy(newData[1:], l.data)
	l.data = newData
}

// PopFront 移除并返回首元素
func (l *ArrayList[T]) PopFront() (val T, err error) {
	length := len(l.data)
	if length == 0 {
		return val, ErrEmptyContainer
	}
	val = l.data[0]
	newCapacity, realloc := l.config.Growth.shrink(length-1, cap(l.data))
	if !realloc {
		var zero T
		copy(l.data, l.data[1:])
		l.data[length-1] = zero
		l.data = l.data[:length-1]
		return val, nil
	}
	l.data = l.reallocate(l.data[1:], newCapacity)
	return val, nil
}

// PopBack 移除并返回尾元素
func (l *ArrayList[T]) PopBack() (val T, err error) {
	length := len(l.data)
	if length == 0 {
		return val, ErrEmptyContainer
	}
	val = l.data[length-1]
	newCapacity, realloc := l.config.Growth.shrink(length-1, cap(l.data))
	if !realloc {
		var zero T
		l.data[length-1] = zero
		l.data = l.data[:length-1]
		return val, nil
	}
	l.data = l.reallocate(l.data[:length-1], newCapacity)
	return val, nil
}

// reallocate 分配新缓冲区并拷贝存活元素 长度为 0 时直接释放
func (l *ArrayList[T]) reallocate(survivors []T, capacity int) []T {
	if len(survivors) == 0 && l.config.Growth == GrowthExact {
		return nil
	}
	newData := make([]T, len(survivors), capacity)
	copy(newData, survivors)
	return newData
}

// First 首元素
func (l *ArrayList[T]) First() (val T, err error) {
	if len(l.data) == 0 {
		return val, ErrEmptyContainer
	}
	return l.data[0], nil
}

// Last 尾元素
func (l *ArrayList[T]) Last() (val T, err error) {
	if len(l.data) == 0 {
		return val, ErrEmptyContainer
	}
	return l.data[len(l.data)-1], nil
}

// ForEach 按顺序遍历 回调可以修改元素
func (l *ArrayList[T]) ForEach(fn func(index int, val *T)) {
	for index := range l.data {
		fn(index, &l.data[index])
	}
}

// Filter 返回满足条件的元素组成的新列表
func (l *ArrayList[T]) Filter(fn func(val T) bool) List[T] {
	output := newArrayList[T](l.config)
	matched := make([]T, 0, len(l.data))
	for _, val := range l.data {
		if fn(val) {
			matched = append(matched, val)
		}
	}
	switch capacity := l.config.Growth.capacityFor(len(matched)); {
	case len(matched) == 0:
	case cap(matched) == capacity:
		// 容量刚好符合策略 直接接管
		output.data = matched
	default:
		output.data = output.reallocate(matched, capacity)
	}
	return output
}

// Find 返回第一个满足条件的元素
func (l *ArrayList[T]) Find(fn func(val T) bool) (val T, err error) {
	for _, v := range l.data {
		if fn(v) {
			return v, nil
		}
	}
	return val, ErrNotFound
}

// All 迭代器
func (l *ArrayList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for index, val := range l.data {
			if !yield(index, val) {
				return
			}
		}
	}
}

func (l *ArrayList[T]) String() string {
	return formatSeq(l.All())
}
