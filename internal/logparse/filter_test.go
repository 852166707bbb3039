package logparse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	foamerrors "github.com/foamtab/foamtab/pkg/errors"
)

// TestNewFilterCompileError tests that a bad expression fails at startup
// TestNewFilterCompileError 测试错误表达式在启动时失败
func TestNewFilterCompileError(t *testing.T) {
	_, err := NewFilter("converged &&")
	if !errors.Is(err, foamerrors.ErrFilterInvalid) {
		t.Fatalf("expected ErrFilterInvalid, got %v", err)
	}

	// Non-boolean expressions are rejected at compile time
	// 非布尔表达式在编译期被拒绝
	_, err = NewFilter("niter + 1")
	if !errors.Is(err, foamerrors.ErrFilterInvalid) {
		t.Fatalf("expected ErrFilterInvalid for non-bool, got %v", err)
	}
}

// TestFilterKeep tests evaluation against a completed record
// TestFilterKeep 测试对已完成记录的求值
func TestFilterKeep(t *testing.T) {
	rec := NewRecord(2)
	rec.Time = Decimal{Raw: "0.1", Value: 0.1}
	rec.NIterations = 4
	rec.Converged = true
	rec.CourantMax = Decimal{Raw: "0.3", Value: 0.3}

	tests := []struct {
		expression string
		want       bool
	}{
		{"converged", true},
		{"!converged", false},
		{"niter > 3", true},
		{"niter > 10", false},
		{"co_max < 0.5 && converged", true},
		{"step == 2", true},
		{"time > 0.05 && time < 0.2", true},
	}

	for _, tc := range tests {
		t.Run(tc.expression, func(t *testing.T) {
			f, err := NewFilter(tc.expression)
			assert.NoError(t, err)
			keep, err := f.Keep(rec)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, keep)
		})
	}
}
