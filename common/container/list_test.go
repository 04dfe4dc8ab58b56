package container

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listFactory struct {
	name    string
	newList func(size int, opts ...ListOption) List[int]
}

var listFactories = []listFactory{
	{
		name: "linked",
		newList: func(size int, opts ...ListOption) List[int] {
			return NewLinkedListWithSize[int](size, opts...)
		},
	},
	{
		name: "contiguous_exact",
		newList: func(size int, opts ...ListOption) List[int] {
			return NewArrayListWithSize[int](size, opts...)
		},
	},
	{
		name: "contiguous_amortized",
		newList: func(size int, opts ...ListOption) List[int] {
			return NewArrayListWithSize[int](size, append(opts, WithGrowth(GrowthAmortized))...)
		},
	},
}

// forEachStrategy 对每种存储策略执行相同用例
func forEachStrategy(t *testing.T, fn func(t *testing.T, newList func(size int, opts ...ListOption) List[int])) {
	for _, factory := range listFactories {
		t.Run(factory.name, func(t *testing.T) {
			fn(t, factory.newList)
		})
	}
}

func fromValues(newList func(size int, opts ...ListOption) List[int], values ...int) List[int] {
	l := newList(0)
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

func TestList_Construct(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		tests := []struct {
			name string
			size int
			want []int
		}{
			{name: "empty", size: 0, want: []int{}},
			{name: "negative", size: -3, want: []int{}},
			{name: "sized", size: 4, want: []int{0, 0, 0, 0}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				l := newList(tt.size)
				assert.Equal(t, len(tt.want), l.Len())
				assert.Equal(t, len(tt.want), l.Size())
				assert.Equal(t, len(tt.want) == 0, l.Empty())
				assert.Equal(t, tt.want, l.Value())
			})
		}
	})
}

func TestList_PushLength(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		l := newList(0)
		for k := 1; k <= 50; k++ {
			if k%3 == 0 {
				l.PushFront(k)
			} else {
				l.PushBack(k)
			}
			require.Equal(t, k, l.Len(), "after %d pushes", k)
		}
	})
}

func TestList_InversePairs(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		l := fromValues(newList, 1, 2, 3)

		l.PushBack(42)
		val, err := l.PopBack()
		require.NoError(t, err)
		assert.Equal(t, 42, val)
		assert.Equal(t, 3, l.Len())

		l.PushFront(7)
		val, err = l.PopFront()
		require.NoError(t, err)
		assert.Equal(t, 7, val)
		assert.Equal(t, 3, l.Len())

		assert.Equal(t, []int{1, 2, 3}, l.Value())
	})
}

func TestList_InsertionOrder(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		l := newList(0)
		l.PushFront(0)
		l.PushBack(10)
		l.PushBack(20)

		assert.Equal(t, []int{0, 10, 20}, l.Value())
		val, err := l.At(1)
		require.NoError(t, err)
		assert.Equal(t, 10, val)
		assert.Equal(t, "[0 10 20]", l.String())
	})
}

func TestList_CreateListScenario(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		l := newList(0)
		l.PushBack(10)
		l.PushBack(20)
		l.PushFront(0)

		val, err := l.PopFront()
		require.NoError(t, err)
		assert.Equal(t, 0, val)

		val, err = l.PopBack()
		require.NoError(t, err)
		assert.Equal(t, 20, val)

		assert.Equal(t, []int{10}, l.Value())
		assert.Equal(t, 1, l.Len())
	})
}

func TestList_EmptyContainer(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		tests := []struct {
			name string
			op   func(l List[int]) (int, error)
		}{
			{name: "pop_front", op: func(l List[int]) (int, error) { return l.PopFront() }},
			{name: "pop_back", op: func(l List[int]) (int, error) { return l.PopBack() }},
			{name: "first", op: func(l List[int]) (int, error) { return l.First() }},
			{name: "last", op: func(l List[int]) (int, error) { return l.Last() }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				l := newList(0)
				val, err := tt.op(l)
				assert.ErrorIs(t, err, ErrEmptyContainer)
				assert.Zero(t, val)
				assert.Equal(t, 0, l.Len())
			})
		}
	})
}

func TestList_FirstLast(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		l := fromValues(newList, 5)
		first, err := l.First()
		require.NoError(t, err)
		last, err := l.Last()
		require.NoError(t, err)
		assert.Equal(t, 5, first)
		assert.Equal(t, 5, last)

		l.PushBack(6)
		l.PushFront(4)
		first, _ = l.First()
		last, _ = l.Last()
		assert.Equal(t, 4, first)
		assert.Equal(t, 6, last)
		assert.Equal(t, 3, l.Len())
	})
}

func TestList_At(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		l := fromValues(newList, 1, 2, 3)

		tests := []struct {
			index   int
			want    int
			wantErr bool
		}{
			{index: 0, want: 1},
			{index: 2, want: 3},
			{index: 3, wantErr: true},
			{index: -1, wantErr: true},
		}
		for _, tt := range tests {
			val, err := l.At(tt.index)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrIndexOutOfRange)
				var rangeErr *IndexOutOfRangeError
				require.True(t, errors.As(err, &rangeErr))
				assert.Equal(t, tt.index, rangeErr.Index)
				assert.Equal(t, 3, rangeErr.Length)
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, val)
		}
	})
}

func TestList_AtZeroOnOutOfRange(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		l := newList(2, WithZeroOnOutOfRange())
		require.NoError(t, l.Set(1, 9))

		val, err := l.At(5)
		assert.NoError(t, err)
		assert.Zero(t, val)

		val, err = l.At(1)
		assert.NoError(t, err)
		assert.Equal(t, 9, val)

		// 写操作越界仍然报错
		assert.ErrorIs(t, l.Set(5, 1), ErrIndexOutOfRange)
	})
}

func TestList_Set(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		l := newList(3)
		require.NoError(t, l.Set(0, 1))
		require.NoError(t, l.Set(2, 3))
		assert.Equal(t, []int{1, 0, 3}, l.Value())

		err := l.Set(3, 4)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Equal(t, 3, l.Len())
	})
}

func TestList_Clear(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		for _, size := range []int{0, 1, 17} {
			l := newList(size)
			l.Clear()
			assert.Equal(t, 0, l.Len())
			assert.True(t, l.Empty())
			l.Clear()
			assert.Equal(t, 0, l.Len())

			l.PushBack(1)
			assert.Equal(t, []int{1}, l.Value())
		}
	})
}

func TestList_ForEach(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		l := fromValues(newList, 1, 2, 3)
		var indexes []int
		l.ForEach(func(index int, val *int) {
			indexes = append(indexes, index)
			*val *= 10
		})
		assert.Equal(t, []int{0, 1, 2}, indexes)
		assert.Equal(t, []int{10, 20, 30}, l.Value())
	})
}

func TestList_Value(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		l := fromValues(newList, 1, 2)
		values := l.Value()
		values[0] = 100

		val, err := l.At(0)
		require.NoError(t, err)
		assert.Equal(t, 1, val)
	})
}

func TestList_Map(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		tests := []struct {
			name   string
			values []int
		}{
			{name: "empty", values: nil},
			{name: "single", values: []int{1}},
			{name: "many", values: []int{3, 1, 2}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				l := fromValues(newList, tt.values...)
				mapped := Map(l, func(val int) string {
					return string(rune('a' + val))
				})
				assert.Equal(t, l.Len(), mapped.Len())
				for i, v := range tt.values {
					got, err := mapped.At(i)
					require.NoError(t, err)
					assert.Equal(t, string(rune('a'+v)), got)
				}
				// 原列表不变
				assert.Equal(t, len(tt.values), l.Len())
			})
		}
	})
}

func TestList_MapKeepsStrategy(t *testing.T) {
	linked := NewLinkedList[int](WithZeroOnOutOfRange())
	linked.PushBack(1)
	_, ok := Map[int, int](linked, func(val int) int { return val }).(*LinkedList[int])
	assert.True(t, ok)

	array := NewArrayList[int](WithGrowth(GrowthAmortized))
	array.PushBack(1)
	mapped, ok := Map[int, float64](array, func(val int) float64 { return float64(val) / 2 }).(*ArrayList[float64])
	require.True(t, ok)
	assert.Equal(t, GrowthAmortized, mapped.config.Growth)
	assert.Equal(t, []float64{0.5}, mapped.Value())
}

// wrappedList 包装 ArrayList 的其他 List 实现
type wrappedList struct {
	*ArrayList[int]
}

func TestList_MapOtherImplementation(t *testing.T) {
	src := wrappedList{ArrayList: NewArrayList[int](WithGrowth(GrowthAmortized))}
	src.PushBack(1)
	src.PushBack(2)

	mapped := Map[int, int](src, func(val int) int { return val * 3 })
	linked, ok := mapped.(*LinkedList[int])
	require.True(t, ok)
	assert.Equal(t, newListConfig(), linked.config)
	assert.Equal(t, []int{3, 6}, linked.Value())
}

func TestList_Filter(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		l := fromValues(newList, 1, 2, 3, 4, 5, 6)

		tests := []struct {
			name string
			fn   func(int) bool
			want []int
		}{
			{name: "even", fn: func(v int) bool { return v%2 == 0 }, want: []int{2, 4, 6}},
			{name: "always_true", fn: func(int) bool { return true }, want: []int{1, 2, 3, 4, 5, 6}},
			{name: "always_false", fn: func(int) bool { return false }, want: []int{}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				filtered := l.Filter(tt.fn)
				assert.LessOrEqual(t, filtered.Len(), l.Len())
				assert.Equal(t, tt.want, filtered.Value())
				assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, l.Value())
			})
		}
	})
}

func TestList_Find(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		l := fromValues(newList, 10, 20)

		val, err := l.Find(func(v int) bool { return v == 20 })
		require.NoError(t, err)
		assert.Equal(t, 20, val)

		_, err = l.Find(func(v int) bool { return v == 99 })
		assert.ErrorIs(t, err, ErrNotFound)

		// 零值元素也能被正常找到
		zeros := newList(2)
		val, err = zeros.Find(func(v int) bool { return v == 0 })
		require.NoError(t, err)
		assert.Equal(t, 0, val)
	})
}

func TestList_All(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, newList func(size int, opts ...ListOption) List[int]) {
		l := fromValues(newList, 4, 5, 6, 7)
		var visited []int
		for index, val := range l.All() {
			if index == 2 {
				break
			}
			visited = append(visited, val)
		}
		assert.Equal(t, []int{4, 5}, visited)
	})
}

func TestNewList(t *testing.T) {
	tests := []struct {
		strategy Strategy
		size     int
	}{
		{strategy: StrategyLinked, size: 2},
		{strategy: StrategyContiguous, size: 3},
	}
	for _, tt := range tests {
		t.Run(tt.strategy.String(), func(t *testing.T) {
			l := NewList[string](tt.strategy, tt.size)
			assert.Equal(t, tt.size, l.Len())
			val, err := l.At(0)
			require.NoError(t, err)
			assert.Equal(t, "", val)
		})
	}

	assert.Panics(t, func() {
		NewList[int](Strategy(0), 1)
	})
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		want    Strategy
		wantErr bool
	}{
		{name: "linked", want: StrategyLinked},
		{name: "Array", want: StrategyContiguous},
		{name: "contiguous", want: StrategyContiguous},
		{name: "tree", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, err := ParseStrategy(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, strategy)
		})
	}
}
