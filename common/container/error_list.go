package container

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyContainer  = errors.New("container is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotFound        = errors.New("element not found")
)

// IndexOutOfRangeError 下标越界错误 可通过 errors.Is(err, ErrIndexOutOfRange) 判断
type IndexOutOfRangeError struct {
	Index  int // 访问的下标
	Length int // 访问时的列表长度
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range [%d] with length %d", e.Index, e.Length)
}

func (e *IndexOutOfRangeError) Unwrap() error {
	return ErrIndexOutOfRange
}

// checkIndex 校验下标
func checkIndex(index int, length int) error {
	if index < 0 || index >= length {
		return &IndexOutOfRangeError{Index: index, Length: length}
	}
	return nil
}
