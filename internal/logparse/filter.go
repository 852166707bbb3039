package logparse

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/foamtab/foamtab/pkg/errors"
)

// FilterEnv is the typed environment a filter expression runs against.
// One column per table field, under the header's short names.
// FilterEnv 是过滤表达式运行的类型化环境，每个表列对应一个字段。
type FilterEnv struct {
	Step          int     `expr:"step"`
	Time          float64 `expr:"time"`
	Dt            float64 `expr:"dt"`
	CoMean        float64 `expr:"co_mean"`
	CoMax         float64 `expr:"co_max"`
	ErrLocal      float64 `expr:"err_local"`
	ErrGlobal     float64 `expr:"err_global"`
	ErrCumulative float64 `expr:"err_cumulative"`
	NIter         int     `expr:"niter"`
	Converged     bool    `expr:"converged"`
	ExecTime      float64 `expr:"exec_time"`
	ClockTime     float64 `expr:"clock_time"`
}

// Filter decides per completed record whether its row is written.
// The expression is compiled once; evaluation never mutates a record.
// Filter 针对每条完成的记录决定是否写出其数据行。
type Filter struct {
	source  string
	program *vm.Program
}

// NewFilter compiles expression. A compile failure is a configuration
// error, reported before any processing begins.
// NewFilter 编译表达式。编译失败属于配置错误，在任何处理开始前报告。
func NewFilter(expression string) (*Filter, error) {
	program, err := expr.Compile(expression, expr.Env(FilterEnv{}), expr.AsBool())
	if err != nil {
		return nil, errors.NewFilterError(expression, err)
	}
	return &Filter{source: expression, program: program}, nil
}

// Keep reports whether the record's row should be emitted.
// Keep 报告是否应输出该记录的数据行。
func (f *Filter) Keep(r *Record) (bool, error) {
	env := FilterEnv{
		Step:          r.TimeIndex,
		Time:          r.Time.Value,
		Dt:            r.DeltaT.Value,
		CoMean:        r.CourantMean.Value,
		CoMax:         r.CourantMax.Value,
		ErrLocal:      r.ContinuityLocal.Value,
		ErrGlobal:     r.ContinuityGlobal.Value,
		ErrCumulative: r.ContinuityCumulative.Value,
		NIter:         r.NIterations,
		Converged:     r.Converged,
		ExecTime:      r.ExecutionTime.Value,
		ClockTime:     r.ClockTime.Value,
	}
	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, errors.NewFilterError(f.source, err)
	}
	keep, ok := out.(bool)
	if !ok {
		return false, errors.NewFilterError(f.source, errors.ErrFilterInvalid)
	}
	return keep, nil
}

func (f *Filter) String() string {
	return f.source
}
