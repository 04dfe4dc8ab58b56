package encode_utils

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	EncodingUTF8     = "UTF-8"
	EncodingUTF8BOM  = "UTF-8-BOM"
	EncodingGBK      = "GBK"
	EncodingGB18030  = "GB18030"
	EncodingHZGB2312 = "HZ-GB2312"
)

var encodings = map[string]encoding.Encoding{
	EncodingUTF8:     unicode.UTF8,
	EncodingUTF8BOM:  unicode.UTF8BOM,
	EncodingGBK:      simplifiedchinese.GBK,
	EncodingGB18030:  simplifiedchinese.GB18030,
	EncodingHZGB2312: simplifiedchinese.HZGB2312,
}

// Lookup 按名称查找编码 名称不区分大小写
func Lookup(encodingStr string) (encoding.Encoding, error) {
	if enc, ok := encodings[strings.ToUpper(encodingStr)]; ok {
		return enc, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", encodingStr)
}

// NewEncoder 创建编码器 不支持的编码返回 nil
func NewEncoder(encodingStr string) *encoding.Encoder {
	enc, err := Lookup(encodingStr)
	if err != nil {
		return nil
	}
	return enc.NewEncoder()
}

// NewDecoder 创建解码器 不支持的编码返回 nil
func NewDecoder(encodingStr string) *encoding.Decoder {
	enc, err := Lookup(encodingStr)
	if err != nil {
		return nil
	}
	return enc.NewDecoder()
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewWriter 将写入的 UTF-8 文本转换为指定编码后写到 w
// 目标编码无法表示的字符会被替换而不是报错
// Close 会刷出剩余数据 但不会关闭 w
func NewWriter(w io.Writer, encodingStr string) (io.WriteCloser, error) {
	enc, err := Lookup(encodingStr)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return nopWriteCloser{Writer: w}, nil
	}
	return transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder())), nil
}
