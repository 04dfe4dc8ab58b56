package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peng-qing/go_list/common/container"
	"github.com/peng-qing/go_list/common/encode_utils"
	"github.com/peng-qing/go_list/common/profile"
)

const (
	defaultSize = 2000
)

// compareConfig 命令行配置
type compareConfig struct {
	strategies []container.Strategy
	growths    []container.GrowthPolicy
	size       int
	encoding   string
	verbose    bool
}

// target 一种待比较的列表实现
type target struct {
	name     string
	strategy container.Strategy
	growth   container.GrowthPolicy
}

func (t target) newList() container.List[int] {
	return container.NewList[int](t.strategy, 0, container.WithGrowth(t.growth))
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("[list_compare] run failed", slog.Any("err", err))
		os.Exit(1)
	}
}

// parseFlags 解析命令行参数
func parseFlags(args []string, output io.Writer) (*compareConfig, error) {
	flags := flag.NewFlagSet("list_compare", flag.ContinueOnError)
	flags.SetOutput(output)

	strategyName := flags.String("strategy", "all", "list strategy: linked|contiguous|all")
	growthName := flags.String("growth", "all", "contiguous growth policy: exact|amortized|all")
	size := flags.Int("n", defaultSize, "number of elements pushed per workload")
	encodingName := flags.String("encoding", encode_utils.EncodingUTF8, "output encoding: UTF-8|UTF-8-BOM|GBK|GB18030|HZ-GB2312")
	verbose := flags.Bool("verbose", false, "enable debug logging")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if *size < 0 {
		return nil, fmt.Errorf("invalid -n %d", *size)
	}

	cfg := &compareConfig{
		size:     *size,
		encoding: *encodingName,
		verbose:  *verbose,
	}
	if strings.EqualFold(*strategyName, "all") {
		cfg.strategies = []container.Strategy{container.StrategyLinked, container.StrategyContiguous}
	} else {
		strategy, err := container.ParseStrategy(*strategyName)
		if err != nil {
			return nil, err
		}
		cfg.strategies = []container.Strategy{strategy}
	}
	if strings.EqualFold(*growthName, "all") {
		cfg.growths = []container.GrowthPolicy{container.GrowthExact, container.GrowthAmortized}
	} else {
		growth, err := container.ParseGrowthPolicy(*growthName)
		if err != nil {
			return nil, err
		}
		cfg.growths = []container.GrowthPolicy{growth}
	}
	return cfg, nil
}

// targets 展开策略和扩容策略组合 链表不区分扩容策略
func (cfg *compareConfig) targets() []target {
	var targets []target
	for _, strategy := range cfg.strategies {
		if strategy == container.StrategyLinked {
			targets = append(targets, target{name: strategy.String(), strategy: strategy})
			continue
		}
		for _, growth := range cfg.growths {
			targets = append(targets, target{
				name:     strategy.String() + "/" + growth.String(),
				strategy: strategy,
				growth:   growth,
			})
		}
	}
	return targets
}

// newLogger 创建命令行使用的 logger 不修改全局默认 logger
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(args []string, stdout io.Writer) (err error) {
	cfg, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, cfg.verbose)

	output, err := encode_utils.NewWriter(stdout, cfg.encoding)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	targets := cfg.targets()
	for _, t := range targets {
		if err = runScenario(output, t); err != nil {
			return fmt.Errorf("%s scenario: %w", t.name, err)
		}
	}

	reports := make([]profile.AllocReport, 0, len(targets))
	for _, t := range targets {
		logger.Info("[list_compare] measuring", slog.String("target", t.name), slog.Int("size", cfg.size))
		var workloadErr error
		report := profile.Measure(t.name, func() {
			workloadErr = runWorkload(logger, t.newList(), cfg.size)
		})
		if workloadErr != nil {
			return fmt.Errorf("%s workload: %w", t.name, workloadErr)
		}
		reports = append(reports, report)
	}

	fmt.Fprintf(output, "\n分配对比 (n=%d)\n", cfg.size)
	return profile.WriteReports(output, reports)
}

// runScenario 创建列表 头尾插入后弹出 并逐个打印剩余元素
func runScenario(w io.Writer, t target) error {
	fmt.Fprintf(w, "== %s ==\n", t.name)
	fmt.Fprintln(w, "Creating a list instance")
	l := t.newList()
	l.PushBack(10)
	l.PushBack(20)
	l.PushFront(0)

	val, err := l.PopFront()
	if err != nil {
		return err
	}
	if val == 0 {
		fmt.Fprintln(w, "POP: OK")
	}
	val, err = l.PopBack()
	if err != nil {
		return err
	}
	if val == 20 {
		fmt.Fprintln(w, "POP_BACK: OK")
	}
	for i := range l.Len() {
		val, err = l.At(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, " Value at position %d: %d\n", i, val)
	}
	return nil
}

// runWorkload 一半尾插一半头插 顺序读取全部元素 再交替从两端弹出直到为空
func runWorkload(logger *slog.Logger, l container.List[int], size int) error {
	for i := range size {
		if i%2 == 0 {
			l.PushBack(i)
		} else {
			l.PushFront(i)
		}
	}
	sum := 0
	for i := range l.Len() {
		val, err := l.At(i)
		if err != nil {
			return err
		}
		sum += val
	}
	for pops := 0; !l.Empty(); pops++ {
		var err error
		if pops%2 == 0 {
			_, err = l.PopFront()
		} else {
			_, err = l.PopBack()
		}
		if err != nil {
			return err
		}
	}
	logger.Debug("[list_compare] workload done", slog.Int("size", size), slog.Int("sum", sum))
	return nil
}
