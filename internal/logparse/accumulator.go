package logparse

import (
	"io"
)

// Outcome reports how a consume cycle ended. End-of-record and
// end-of-input are ordinary results here, not errors.
// Outcome 报告一次消费循环的结束方式。
type Outcome int

const (
	// RecordComplete: the end-of-record marker fired and a finished
	// record is available.
	RecordComplete Outcome = iota
	// InputExhausted: the stream ended cleanly; any partially
	// accumulated record is discarded.
	InputExhausted
)

// Accumulator owns the in-progress record and the ordered matcher
// list, and drives the line-consumption loop. The time index belongs
// to it alone and increments exactly once per completed record.
// Accumulator 持有进行中的记录与有序匹配器列表，驱动逐行消费循环。
type Accumulator struct {
	matchers  []*Matcher
	timeIndex int
}

// NewAccumulator creates an accumulator over the given matchers.
// NewAccumulator 基于给定匹配器创建累积器。
func NewAccumulator(matchers []*Matcher) *Accumulator {
	return &Accumulator{matchers: matchers}
}

// TimeIndex returns the index the next completed record will carry.
func (a *Accumulator) TimeIndex() int {
	return a.timeIndex
}

// ConsumeRecord reads lines from src until an end-of-record marker
// fires or the input ends. Lines no matcher recognizes are skipped;
// solver logs are mostly diagnostic noise between the summary lines.
// A match whose capture fails numeric conversion aborts immediately.
// ConsumeRecord 从 src 读取行，直到记录结束标记触发或输入耗尽。
func (a *Accumulator) ConsumeRecord(src LineSource) (*Record, Outcome, error) {
	rec := NewRecord(a.timeIndex)

	for {
		line, err := src.Next()
		if err == io.EOF {
			return nil, InputExhausted, nil
		}
		if err != nil {
			return nil, InputExhausted, err
		}

		done := false
		for _, m := range a.matchers {
			matched, err := m.Apply(line, rec)
			if err != nil {
				return nil, RecordComplete, err
			}
			if matched && m.End() {
				done = true
			}
		}
		if done {
			a.timeIndex++
			return rec, RecordComplete, nil
		}
	}
}
