package logparse

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	foamerrors "github.com/foamtab/foamtab/pkg/errors"
)

func newTestAccumulator(t *testing.T) *Accumulator {
	t.Helper()
	matchers, err := DefaultMatchers()
	if err != nil {
		t.Fatalf("DefaultMatchers: %v", err)
	}
	return NewAccumulator(matchers)
}

const wellFormedStep = `Courant Number mean: 0.05 max: 0.3
Time = 0.1

PIMPLE: iteration 1
smoothSolver:  Solving for Ux, Initial residual = 0.1, Final residual = 1e-7, No Iterations 3
deltaT = 0.001
time step continuity errors : sum local = 1e-6, global = 2e-6, cumulative = 3e-6
PIMPLE: converged in 4 iterations
ExecutionTime = 12.3 s  ClockTime = 13.1 s
`

// TestConsumeRecordWellFormed tests one complete time step with noise lines
// TestConsumeRecordWellFormed 测试带噪声行的完整时间步
func TestConsumeRecordWellFormed(t *testing.T) {
	acc := newTestAccumulator(t)
	src := NewReaderSource(strings.NewReader(wellFormedStep))

	rec, outcome, err := acc.ConsumeRecord(src)
	assert.NoError(t, err)
	assert.Equal(t, RecordComplete, outcome)

	assert.Equal(t, 0, rec.TimeIndex)
	assert.Equal(t, "0.1", rec.Time.Raw)
	assert.Equal(t, "0.001", rec.DeltaT.Raw)
	assert.Equal(t, "0.05", rec.CourantMean.Raw)
	assert.Equal(t, "0.3", rec.CourantMax.Raw)
	assert.Equal(t, "1e-6", rec.ContinuityLocal.Raw)
	assert.Equal(t, "2e-6", rec.ContinuityGlobal.Raw)
	assert.Equal(t, "3e-6", rec.ContinuityCumulative.Raw)
	assert.Equal(t, 4, rec.NIterations)
	assert.True(t, rec.Converged)
	assert.Equal(t, "12.3", rec.ExecutionTime.Raw)
	assert.Equal(t, "13.1", rec.ClockTime.Raw)
}

// TestConsumeRecordEmptyInput tests clean termination on empty input
// TestConsumeRecordEmptyInput 测试空输入的干净终止
func TestConsumeRecordEmptyInput(t *testing.T) {
	acc := newTestAccumulator(t)
	src := NewReaderSource(strings.NewReader(""))

	rec, outcome, err := acc.ConsumeRecord(src)
	assert.NoError(t, err)
	assert.Equal(t, InputExhausted, outcome)
	assert.Nil(t, rec)
}

// TestConsumeRecordPartialDiscarded tests that a step without its end
// marker is discarded, not flushed
// TestConsumeRecordPartialDiscarded 测试缺少结束标记的时间步被丢弃而非输出
func TestConsumeRecordPartialDiscarded(t *testing.T) {
	input := "Time = 0.1\ndeltaT = 0.001\nPIMPLE: converged in 4 iterations\n"
	acc := newTestAccumulator(t)
	src := NewReaderSource(strings.NewReader(input))

	rec, outcome, err := acc.ConsumeRecord(src)
	assert.NoError(t, err)
	assert.Equal(t, InputExhausted, outcome)
	assert.Nil(t, rec)
	assert.Equal(t, 0, acc.TimeIndex())
}

// TestConsumeRecordTimeIndex tests strict per-record increment
// TestConsumeRecordTimeIndex 测试时间索引严格逐条递增
func TestConsumeRecordTimeIndex(t *testing.T) {
	// Three steps with gaps in Time values
	// 三个时间步，Time 值不连续
	var b strings.Builder
	for _, tv := range []string{"0.1", "0.5", "2"} {
		b.WriteString("Time = " + tv + "\n")
		b.WriteString("ExecutionTime = 1 s  ClockTime = 1 s\n")
	}
	acc := newTestAccumulator(t)
	src := NewReaderSource(strings.NewReader(b.String()))

	for want := 0; want < 3; want++ {
		rec, outcome, err := acc.ConsumeRecord(src)
		assert.NoError(t, err)
		assert.Equal(t, RecordComplete, outcome)
		assert.Equal(t, want, rec.TimeIndex)
	}

	_, outcome, err := acc.ConsumeRecord(src)
	assert.NoError(t, err)
	assert.Equal(t, InputExhausted, outcome)
}

// TestConsumeRecordFreshDefaults tests that each cycle starts from defaults
// TestConsumeRecordFreshDefaults 测试每个周期从默认值开始
func TestConsumeRecordFreshDefaults(t *testing.T) {
	input := `Time = 0.1
PIMPLE: converged in 4 iterations
ExecutionTime = 1 s  ClockTime = 1 s
ExecutionTime = 2 s  ClockTime = 2 s
`
	acc := newTestAccumulator(t)
	src := NewReaderSource(strings.NewReader(input))

	rec1, _, err := acc.ConsumeRecord(src)
	assert.NoError(t, err)
	assert.True(t, rec1.Converged)
	assert.Equal(t, "0.1", rec1.Time.Raw)

	// Second record saw neither Time nor convergence lines
	// 第二条记录未出现 Time 和收敛行
	rec2, outcome, err := acc.ConsumeRecord(src)
	assert.NoError(t, err)
	assert.Equal(t, RecordComplete, outcome)
	assert.False(t, rec2.Converged)
	assert.Equal(t, "-1", rec2.Time.Raw)
	assert.Equal(t, -1, rec2.NIterations)
}

// TestConsumeRecordLastMatchWins tests overwrite before the end marker
// TestConsumeRecordLastMatchWins 测试结束标记前的重复命中取最后值
func TestConsumeRecordLastMatchWins(t *testing.T) {
	input := `deltaT = 0.001
deltaT = 0.002
ExecutionTime = 1 s  ClockTime = 1 s
`
	acc := newTestAccumulator(t)
	src := NewReaderSource(strings.NewReader(input))

	rec, _, err := acc.ConsumeRecord(src)
	assert.NoError(t, err)
	assert.Equal(t, "0.002", rec.DeltaT.Raw)
}

// TestConsumeRecordParseError tests immediate abort on malformed capture
// TestConsumeRecordParseError 测试捕获内容畸形时立即中止
func TestConsumeRecordParseError(t *testing.T) {
	input := "deltaT = not-a-number\nExecutionTime = 1 s  ClockTime = 1 s\n"
	acc := newTestAccumulator(t)
	src := NewReaderSource(strings.NewReader(input))

	_, _, err := acc.ConsumeRecord(src)
	if !errors.Is(err, foamerrors.ErrMalformedNumber) {
		t.Fatalf("expected ErrMalformedNumber, got %v", err)
	}
}
