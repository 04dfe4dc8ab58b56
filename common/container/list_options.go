package container

import "github.com/peng-qing/go_list/common/options"

// ListConfig 列表配置
type ListConfig struct {
	ZeroOnOutOfRange bool         // At 越界时返回零值而不是错误 兼容旧调用方
	Growth           GrowthPolicy // 连续数组扩缩容策略
}

// ListOption 列表配置项
type ListOption = options.Option[ListConfig]

// WithZeroOnOutOfRange At 越界返回零值且不报错
func WithZeroOnOutOfRange() ListOption {
	return options.WrapperOptions[ListConfig](func(c *ListConfig) {
		c.ZeroOnOutOfRange = true
	})
}

// WithGrowth 设置连续数组扩缩容策略
func WithGrowth(policy GrowthPolicy) ListOption {
	return options.WrapperOptions[ListConfig](func(c *ListConfig) {
		c.Growth = policy
	})
}

func newListConfig(opts ...ListOption) ListConfig {
	return *options.Apply(&ListConfig{Growth: GrowthExact}, opts...)
}
