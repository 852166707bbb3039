// Package table serializes completed records into the 12-column
// whitespace-separated format downstream plotting tools consume.
// table 包将完成的记录序列化为下游绘图工具使用的 12 列空白分隔格式。
package table

import (
	"fmt"
	"io"

	"github.com/foamtab/foamtab/internal/logparse"
)

// Header is the fixed column-name line, column index before each label.
// Header 是固定的列名行，每个标签前带列索引。
const Header = "# 0_step# 1_time 2_dt 3_Co_mean 4_Co_max 5_err_local " +
	"6_err_global 7_err_cumulative 8_niter 9_converged? " +
	"10_exec_time 11_clock_time"

// Writer emits the table to a single forward-only stream.
// Writer 将数据表写入单个只进流。
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the column-name line.
// WriteHeader 写入列名行。
func (t *Writer) WriteHeader() error {
	_, err := fmt.Fprintln(t.w, Header)
	return err
}

// WriteRecord writes one row in fixed column order. Numeric text is
// reproduced as captured; converged renders as 1 or 0.
// WriteRecord 按固定列顺序写入一行。数字文本按捕获原样输出。
func (t *Writer) WriteRecord(r *logparse.Record) error {
	converged := "0"
	if r.Converged {
		converged = "1"
	}
	_, err := fmt.Fprintf(t.w, "%d %s %s %s %s %s %s %s %d %s %s %s\n",
		r.TimeIndex, r.Time, r.DeltaT,
		r.CourantMean, r.CourantMax,
		r.ContinuityLocal, r.ContinuityGlobal, r.ContinuityCumulative,
		r.NIterations, converged,
		r.ExecutionTime, r.ClockTime)
	return err
}
