package container

import (
	"fmt"
	"strings"
)

const (
	// 初始化容量
	initCapacity = 8
	// 超过该容量后按 1.25 倍扩容
	largeCapacity = 1024
)

// GrowthPolicy 连续数组的扩缩容策略 链表策略忽略该配置
type GrowthPolicy int

const (
	// GrowthExact 每次增删都重新分配刚好 length 大小的缓冲区 不保留多余容量
	GrowthExact GrowthPolicy = iota
	// GrowthAmortized 倍增扩容 四分之一占用时缩容
	GrowthAmortized
)

// String 策略名称
func (g GrowthPolicy) String() string {
	switch g {
	case GrowthExact:
		return "exact"
	case GrowthAmortized:
		return "amortized"
	default:
		return fmt.Sprintf("GrowthPolicy(%d)", int(g))
	}
}

// ParseGrowthPolicy 解析策略名称
func ParseGrowthPolicy(name string) (GrowthPolicy, error) {
	switch strings.ToLower(name) {
	case "exact", "":
		return GrowthExact, nil
	case "amortized":
		return GrowthAmortized, nil
	default:
		return GrowthExact, fmt.Errorf("unknown growth policy %q", name)
	}
}

// capacityFor 容纳 length 个元素的初始容量
func (g GrowthPolicy) capacityFor(length int) int {
	if g != GrowthAmortized {
		return length
	}
	newCapacity, _ := g.expand(length, 0)
	return newCapacity
}

// expand 扩容 返回新容量以及是否需要重新分配
// @param length 操作后的长度
// @param capacity 当前容量
func (g GrowthPolicy) expand(length int, capacity int) (int, bool) {
	if g != GrowthAmortized {
		return length, true
	}
	if length <= capacity {
		return capacity, false
	}
	newCapacity := max(capacity, initCapacity)
	for newCapacity < length {
		if newCapacity >= largeCapacity {
			newCapacity = newCapacity/4 + newCapacity
		} else {
			newCapacity *= 2
		}
	}
	return newCapacity, true
}

// shrink 缩容 返回新容量以及是否需要重新分配
// @param length 操作后的长度
// @param capacity 当前容量
func (g GrowthPolicy) shrink(length int, capacity int) (int, bool) {
	if g != GrowthAmortized {
		return length, true
	}
	if length <= capacity/4 && capacity > initCapacity {
		return max(capacity/2, initCapacity), true
	}
	return capacity, false
}
