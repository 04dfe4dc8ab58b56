package profile

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"runtime/debug"
	"text/tabwriter"
	"time"
)

// AllocReport 一次测量的内存分配统计
type AllocReport struct {
	Name       string        // 测量名称
	Mallocs    uint64        // 期间分配的堆对象数
	Frees      uint64        // 期间释放的堆对象数
	TotalAlloc uint64        // 期间累计分配的堆内存字节数
	HeapAlloc  uint64        // 结束时仍存活的堆内存字节数
	Elapsed    time.Duration // 耗时
}

// Measure 测量 fn 执行期间的内存分配
// 执行前会强制一次 GC 让前后两次快照尽量只反映 fn 本身
func Measure(name string, fn func()) (report AllocReport) {
	var before, after runtime.MemStats

	defer func() {
		if err := recover(); err != nil {
			slog.Error("[Profile] Measure panic", slog.String("name", name), slog.Any("err", err), slog.String("stack", string(debug.Stack())))
			panic(err)
		}
	}()

	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	report = AllocReport{
		Name:       name,
		Mallocs:    after.Mallocs - before.Mallocs,
		Frees:      after.Frees - before.Frees,
		TotalAlloc: after.TotalAlloc - before.TotalAlloc,
		HeapAlloc:  after.HeapAlloc,
		Elapsed:    elapsed,
	}
	slog.Debug("[Profile] Measure done", slog.String("name", name), slog.Uint64("mallocs", report.Mallocs), slog.Uint64("totalAlloc", report.TotalAlloc), slog.Duration("elapsed", elapsed))
	return report
}

// WriteReports 以表格形式输出测量结果
func WriteReports(w io.Writer, reports []AllocReport) error {
	// 使用 tabWriter 对齐列
	tabWriter := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	// 表头
	// 耗时只输出微秒整数 time.Duration 的 "µs" 在 GBK 等编码下无法表示
	fmt.Fprintf(tabWriter, "名称\tMallocs\tFrees\tTotalAlloc(B)\tHeapAlloc(B)\t耗时(us)\n")
	for _, report := range reports {
		fmt.Fprintf(tabWriter, "%s\t%d\t%d\t%d\t%d\t%d\n",
			report.Name, report.Mallocs, report.Frees, report.TotalAlloc, report.HeapAlloc, report.Elapsed.Microseconds())
	}
	return tabWriter.Flush()
}
