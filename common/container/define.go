package container

import (
	"fmt"
	"iter"
	"strings"
)

// Container 容器接口
type Container[T any] interface {
	Empty() bool
	Size() int
	Clear()
	Value() []T
}

// Strategy 列表存储策略
type Strategy int

const (
	StrategyLinked     Strategy = iota + 1 // 单向链表
	StrategyContiguous                     // 连续数组
)

// String 策略名称
func (s Strategy) String() string {
	switch s {
	case StrategyLinked:
		return "linked"
	case StrategyContiguous:
		return "contiguous"
	default:
		return "unknown"
	}
}

// ParseStrategy 解析策略名称
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "linked":
		return StrategyLinked, nil
	case "contiguous", "array":
		return StrategyContiguous, nil
	default:
		return 0, fmt.Errorf("unknown list strategy %q", name)
	}
}

// List 有序列表接口 线程不安全
// 两种存储策略对外行为完全一致 只有性能不同
// 除 ForEach 外 所有读取操作都按值返回元素
type List[T any] interface {
	Container[T]

	// Len 元素个数
	Len() int
	// At 获取下标元素 越界返回 IndexOutOfRangeError
	At(index int) (T, error)
	// Set 设置下标元素
	Set(index int, val T) error
	// PushBack 尾部插入
	PushBack(val T)
	// PushFront 头部插入
	PushFront(val T)
	// PopFront 移除并返回首元素
	PopFront() (T, error)
	// PopBack 移除并返回尾元素
	PopBack() (T, error)
	// First 首元素
	First() (T, error)
	// Last 尾元素
	Last() (T, error)
	// ForEach 按下标顺序遍历 回调中的指针只在本次回调内有效 遍历期间不允许增删元素
	ForEach(fn func(index int, val *T))
	// Filter 返回满足条件的元素组成的新列表
	Filter(fn func(val T) bool) List[T]
	// Find 返回第一个满足条件的元素 没有则返回 ErrNotFound
	Find(fn func(val T) bool) (T, error)
	// All 迭代器
	All() iter.Seq2[int, T]
	String() string
}

// NewList 按策略创建列表
// @param strategy 存储策略
// @param size 初始长度 元素为零值
func NewList[T any](strategy Strategy, size int, opts ...ListOption) List[T] {
	switch strategy {
	case StrategyLinked:
		return NewLinkedListWithSize[T](size, opts...)
	case StrategyContiguous:
		return NewArrayListWithSize[T](size, opts...)
	default:
		panic("container: unknown list strategy " + strategy.String())
	}
}

// Map 对每个元素执行 fn 生成新列表 新列表沿用原列表的存储策略和配置 原列表不变
// 不是 LinkedList/ArrayList 的其他 List 实现无法得知其策略 结果退化为默认配置的 LinkedList
func Map[T, R any](l List[T], fn func(val T) R) List[R] {
	switch src := l.(type) {
	case *LinkedList[T]:
		output := newLinkedList[R](src.config)
		output.appendSeq(func(yield func(R) bool) {
			for node := src.head; node != nil; node = node.next {
				if !yield(fn(node.value)) {
					return
				}
			}
		})
		return output
	case *ArrayList[T]:
		output := newArrayList[R](src.config)
		data := make([]R, len(src.data), src.config.Growth.capacityFor(len(src.data)))
		for i, val := range src.data {
			data[i] = fn(val)
		}
		output.data = data
		return output
	default:
		output := NewLinkedList[R]()
		for _, val := range l.All() {
			output.PushBack(fn(val))
		}
		return output
	}
}

// formatSeq 格式化输出 [a b c]
func formatSeq[T any](seq iter.Seq2[int, T]) string {
	var builder strings.Builder
	builder.WriteByte('[')
	for index, val := range seq {
		if index > 0 {
			builder.WriteByte(' ')
		}
		fmt.Fprint(&builder, val)
	}
	builder.WriteByte(']')
	return builder.String()
}
