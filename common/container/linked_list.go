package container

import "iter"

// listNode 链表节点 每个节点只被前驱节点(或列表本身)持有
type listNode[T any] struct {
	value T
	next  *listNode[T]
}

// LinkedList 单向链表 线程不安全
// 不缓存尾节点: PushBack O(n) PushFront O(1) At O(n)
type LinkedList[T any] struct {
	head   *listNode[T] // 头节点
	length int         // 元素个数
	config ListConfig  // 配置
}

// NewLinkedList 创建空链表
func NewLinkedList[T any](opts ...ListOption) *LinkedList[T] {
	return newLinkedList[T](newListConfig(opts...))
}

// NewLinkedListWithSize 创建包含 size 个零值元素的链表
func NewLinkedListWithSize[T any](size int, opts ...ListOption) *LinkedList[T] {
	l := NewLinkedList[T](opts...)
	var zero T
	for range max(size, 0) {
		l.PushFront(zero)
	}
	return l
}

func newLinkedList[T any](config ListConfig) *LinkedList[T] {
	return &LinkedList[T]{
		config: config,
	}
}

// Empty 判断链表是否为空
func (l *LinkedList[T]) Empty() bool {
	return l.length <= 0
}

// Size 获取链表长度
func (l *LinkedList[T]) Size() int {
	return l.length
}

// Len 获取链表长度
func (l *LinkedList[T]) Len() int {
	return l.length
}

// Clear 清空链表 逐个断开节点
func (l *LinkedList[T]) Clear() {
	for l.head != nil {
		node := l.head
		l.head = node.next
		node.next = nil
	}
	l.length = 0
}

// Value 获取链表数据副本
func (l *LinkedList[T]) Value() []T {
	values := make([]T, 0, l.length)
	for node := l.head; node != nil; node = node.next {
		values = append(values, node.value)
	}
	return values
}

// nodeAt 从头节点开始走 index 步
func (l *LinkedList[T]) nodeAt(index int) *listNode[T] {
	node := l.head
	for i := 0; i < index && node != nil; i++ {
		node = node.next
	}
	return node
}

// At 获取下标元素
func (l *LinkedList[T]) At(index int) (val T, err error) {
	if err = checkIndex(index, l.length); err != nil {
		if l.config.ZeroOnOutOfRange {
			return val, nil
		}
		return
	}
	return l.nodeAt(index).value, nil
}

// Set 设置下标元素
func (l *LinkedList[T]) Set(index int, val T) error {
	if err := checkIndex(index, l.length); err != nil {
		return err
	}
	l.nodeAt(index).value = val
	return nil
}

// PushBack 尾部插入 需要遍历找到尾节点
func (l *LinkedList[T]) PushBack(val T) {
	newNode := &listNode[T]{value: val}
	if l.head == nil {
		l.head = newNode
		l.length++
		return
	}
	cursor := l.head
	for cursor.next != nil {
		cursor = cursor.next
	}
	cursor.next = newNode
	l.length++
}

// PushFront 头部插入
func (l *LinkedList[T]) PushFront(val T) {
	l.head = &listNode[T]{value: val, next: l.head}
	l.length++
}

// PopFront 移除并返回首元素
func (l *LinkedList[T]) PopFront() (val T, err error) {
	if l.head == nil {
		return val, ErrEmptyContainer
	}
	node := l.head
	l.head = node.next
	node.next = nil
	l.length--
	return node.value, nil
}

// PopBack 移除并返回尾元素 遍历时记录倒数第二个节点
func (l *LinkedList[T]) PopBack() (val T, err error) {
	if l.head == nil {
		return val, ErrEmptyContainer
	}
	var prev *listNode[T]
	cursor := l.head
	for cursor.next != nil {
		prev = cursor
		cursor = cursor.next
	}
	if prev == nil {
		l.head = nil
	} else {
		prev.next = nil
	}
	l.length--
	return cursor.value, nil
}

// First 首元素
func (l *LinkedList[T]) First() (val T, err error) {
	if l.head == nil {
		return val, ErrEmptyContainer
	}
	return l.head.value, nil
}

// Last 尾元素
func (l *LinkedList[T]) Last() (val T, err error) {
	if l.head == nil {
		return val, ErrEmptyContainer
	}
	return l.nodeAt(l.length - 1).value, nil
}

// ForEach 按顺序遍历 回调可以修改元素
func (l *LinkedList[T]) ForEach(fn func(index int, val *T)) {
	node := l.head
	for index := 0; node != nil && index < l.length; index++ {
		fn(index, &node.value)
		node = node.next
	}
}

// Filter 返回满足条件的元素组成的新链表
func (l *LinkedList[T]) Filter(fn func(val T) bool) List[T] {
	output := newLinkedList[T](l.config)
	output.appendSeq(func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			if fn(node.value) && !yield(node.value) {
				return
			}
		}
	})
	return output
}

// Find 返回第一个满足条件的元素
func (l *LinkedList[T]) Find(fn func(val T) bool) (val T, err error) {
	for node := l.head; node != nil; node = node.next {
		if fn(node.value) {
			return node.value, nil
		}
	}
	return val, ErrNotFound
}

// All 链表迭代器
func (l *LinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for node := l.head; node != nil; node = node.next {
			if !yield(index, node.value) {
				return
			}
			index++
		}
	}
}

func (l *LinkedList[T]) String() string {
	return formatSeq(l.All())
}

// appendSeq 批量追加到尾部 只遍历一次找尾节点
func (l *LinkedList[T]) appendSeq(seq iter.Seq[T]) {
	tail := l.nodeAt(l.length - 1)
	for val := range seq {
		newNode := &listNode[T]{value: val}
		if tail == nil {
			l.head = newNode
		} else {
			tail.next = newNode
		}
		tail = newNode
		l.length++
	}
}
