// Package convert runs the log-to-table conversion loop.
// convert 包运行日志到数据表的转换循环。
package convert

import (
	"io"

	"go.uber.org/zap"

	"github.com/foamtab/foamtab/internal/logparse"
	"github.com/foamtab/foamtab/internal/table"
)

// State of the driver.
// 驱动器状态。
type State int

const (
	StateRunning State = iota
	StateFinished
)

// Driver pulls records from the accumulator and writes rows until the
// input is exhausted. Input and output are injected at construction so
// tests run against in-memory streams.
// Driver 从累积器拉取记录并写出数据行，直至输入耗尽。
type Driver struct {
	src    logparse.LineSource
	acc    *logparse.Accumulator
	out    *table.Writer
	filter *logparse.Filter
	log    *zap.SugaredLogger
	state  State
}

// New creates a driver. filter may be nil; every record is then written.
// New 创建驱动器。filter 可为 nil，此时写出所有记录。
func New(src logparse.LineSource, acc *logparse.Accumulator, out io.Writer, filter *logparse.Filter, log *zap.SugaredLogger) *Driver {
	return &Driver{
		src:    src,
		acc:    acc,
		out:    table.NewWriter(out),
		filter: filter,
		log:    log,
		state:  StateRunning,
	}
}

// State returns the driver state.
func (d *Driver) State() State {
	return d.state
}

// Run writes the header, then converts records until the stream ends.
// Clean end of input is the expected termination and returns nil; the
// first parse or write error aborts immediately. Rows already written
// stay written.
// Run 写入表头，然后转换记录直至流结束。输入干净结束是预期的终止。
func (d *Driver) Run() error {
	if err := d.out.WriteHeader(); err != nil {
		return err
	}

	for {
		rec, outcome, err := d.acc.ConsumeRecord(d.src)
		if err != nil {
			return err
		}
		if outcome == logparse.InputExhausted {
			d.state = StateFinished
			d.log.Infof("Finished parsing log file (%d records)", d.acc.TimeIndex())
			return nil
		}

		if d.filter != nil {
			keep, err := d.filter.Keep(rec)
			if err != nil {
				return err
			}
			if !keep {
				d.log.Debugf("Filtered out step %d", rec.TimeIndex)
				continue
			}
		}

		if err := d.out.WriteRecord(rec); err != nil {
			return err
		}
	}
}
