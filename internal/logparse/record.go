package logparse

import (
	"strconv"

	"github.com/foamtab/foamtab/pkg/errors"
)

// Field identifies a typed slot on a Record that a matcher capture
// group can target. The dispatch table below replaces by-name
// attribute lookup with a fixed mapping built once per matcher.
// Field 标识 Record 上可被匹配器捕获组写入的类型化槽位。
type Field int

const (
	FieldTime Field = iota
	FieldDeltaT
	FieldCourantMean
	FieldCourantMax
	FieldContinuityLocal
	FieldContinuityGlobal
	FieldContinuityCumulative
	FieldNIterations
	FieldExecutionTime
	FieldClockTime
)

var fieldNames = map[Field]string{
	FieldTime:                 "time",
	FieldDeltaT:               "delta_t",
	FieldCourantMean:          "courant_number_mean",
	FieldCourantMax:           "courant_number_max",
	FieldContinuityLocal:      "continuity_errors_local",
	FieldContinuityGlobal:     "continuity_errors_global",
	FieldContinuityCumulative: "continuity_errors_cumulative",
	FieldNIterations:          "niterations",
	FieldExecutionTime:        "execution_time",
	FieldClockTime:            "clock_time",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// Flag identifies a boolean side effect applied when a matcher fires.
// Flag 标识匹配器命中时施加的布尔副作用。
type Flag int

const (
	FlagNone Flag = iota
	// FlagConverged marks the record converged.
	FlagConverged
	// FlagNotConverged clears convergence; the solver reported it ran
	// out of outer iterations.
	FlagNotConverged
)

// Decimal keeps the text of a captured number alongside its parsed
// value. The table output must reproduce the solver's own formatting
// (1e-6 stays 1e-6), while parse failures abort the run.
// Decimal 同时保存捕获数字的原始文本与解析后的值。
type Decimal struct {
	Raw   string
	Value float64
}

func (d Decimal) String() string {
	return d.Raw
}

// Record holds one time step's accumulated solver summary.
// Record 保存一个时间步累积的求解器摘要。
type Record struct {
	TimeIndex            int
	Time                 Decimal
	DeltaT               Decimal
	CourantMean          Decimal
	CourantMax           Decimal
	ContinuityLocal      Decimal
	ContinuityGlobal     Decimal
	ContinuityCumulative Decimal
	NIterations          int
	Converged            bool
	ExecutionTime        Decimal
	ClockTime            Decimal

	// Residuals is reserved for per-field residual histories. The -r
	// flag is documented but the export is not implemented.
	// Residuals 为各场残差历史保留。
	Residuals map[string]Decimal
}

// NewRecord returns a record with the default sentinels: Courant
// numbers 0, other decimals -1, iterations -1, not converged.
// NewRecord 返回带默认哨兵值的记录。
func NewRecord(timeIndex int) *Record {
	unset := Decimal{Raw: "-1", Value: -1}
	return &Record{
		TimeIndex:            timeIndex,
		Time:                 unset,
		DeltaT:               unset,
		CourantMean:          Decimal{Raw: "0", Value: 0},
		CourantMax:           Decimal{Raw: "0", Value: 0},
		ContinuityLocal:      unset,
		ContinuityGlobal:     unset,
		ContinuityCumulative: unset,
		NIterations:          -1,
		Converged:            false,
		ExecutionTime:        unset,
		ClockTime:            unset,
		Residuals:            map[string]Decimal{},
	}
}

type assignFunc func(r *Record, s string) error

func decimalAssign(f Field, slot func(r *Record) *Decimal) assignFunc {
	return func(r *Record, s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.NewNumberError(f.String(), s, err)
		}
		*slot(r) = Decimal{Raw: s, Value: v}
		return nil
	}
}

// assignFor builds the typed assignment for a field tag. Matchers call
// this once at construction, not per line.
// assignFor 为字段标签构建类型化赋值。匹配器仅在构造时调用一次。
func assignFor(f Field) assignFunc {
	switch f {
	case FieldTime:
		return decimalAssign(f, func(r *Record) *Decimal { return &r.Time })
	case FieldDeltaT:
		return decimalAssign(f, func(r *Record) *Decimal { return &r.DeltaT })
	case FieldCourantMean:
		return decimalAssign(f, func(r *Record) *Decimal { return &r.CourantMean })
	case FieldCourantMax:
		return decimalAssign(f, func(r *Record) *Decimal { return &r.CourantMax })
	case FieldContinuityLocal:
		return decimalAssign(f, func(r *Record) *Decimal { return &r.ContinuityLocal })
	case FieldContinuityGlobal:
		return decimalAssign(f, func(r *Record) *Decimal { return &r.ContinuityGlobal })
	case FieldContinuityCumulative:
		return decimalAssign(f, func(r *Record) *Decimal { return &r.ContinuityCumulative })
	case FieldExecutionTime:
		return decimalAssign(f, func(r *Record) *Decimal { return &r.ExecutionTime })
	case FieldClockTime:
		return decimalAssign(f, func(r *Record) *Decimal { return &r.ClockTime })
	case FieldNIterations:
		return func(r *Record, s string) error {
			n, err := strconv.Atoi(s)
			if err != nil {
				return errors.NewNumberError(f.String(), s, err)
			}
			r.NIterations = n
			return nil
		}
	}
	return nil
}

func applyFlag(r *Record, flag Flag) {
	switch flag {
	case FlagConverged:
		r.Converged = true
	case FlagNotConverged:
		r.Converged = false
	}
}
