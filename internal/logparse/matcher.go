package logparse

import (
	"regexp"

	"github.com/foamtab/foamtab/pkg/errors"
)

// MatcherSpec describes one recognizable log-line shape: a pattern,
// the ordered fields its capture groups fill, and optional behavior.
// MatcherSpec 描述一种可识别的日志行形态。
type MatcherSpec struct {
	Pattern string
	Fields  []Field
	// End marks the pattern that finalizes the current record.
	End bool
	// Flag is set on the record as a side effect of a match.
	Flag Flag
}

// Matcher is a compiled line rule. It is built once at startup and
// evaluated against every incoming line.
// Matcher 是一条编译好的行规则，启动时构建一次，对每一行求值。
type Matcher struct {
	re      *regexp.Regexp
	fields  []Field
	assigns []assignFunc
	end     bool
	flag    Flag
}

// NewMatcher compiles the spec. A capture-group count that differs
// from the field count is a configuration defect, fatal at startup.
// NewMatcher 编译规则。捕获组数量与字段数量不一致属于配置缺陷，启动时即失败。
func NewMatcher(spec MatcherSpec) (*Matcher, error) {
	re, err := regexp.Compile(spec.Pattern)
	if err != nil {
		return nil, errors.NewPatternError(spec.Pattern, err)
	}
	if re.NumSubexp() != len(spec.Fields) {
		return nil, errors.NewMatcherArityError(spec.Pattern, re.NumSubexp(), len(spec.Fields))
	}

	assigns := make([]assignFunc, len(spec.Fields))
	for i, f := range spec.Fields {
		assigns[i] = assignFor(f)
		if assigns[i] == nil {
			return nil, errors.NewConfigError("field", f)
		}
	}

	return &Matcher{
		re:      re,
		fields:  spec.Fields,
		assigns: assigns,
		end:     spec.End,
		flag:    spec.Flag,
	}, nil
}

// Apply tests the line against this matcher. On a match every capture
// group is assigned to its field on the record and the flag, if any,
// is applied. A capture that fails numeric conversion is a fatal
// parse error.
// Apply 用该匹配器测试一行。命中时将每个捕获组写入记录的对应字段。
func (m *Matcher) Apply(line string, r *Record) (bool, error) {
	sub := m.re.FindStringSubmatch(line)
	if sub == nil {
		return false, nil
	}
	for i, assign := range m.assigns {
		if err := assign(r, sub[i+1]); err != nil {
			return true, err
		}
	}
	applyFlag(r, m.flag)
	return true, nil
}

// End reports whether this matcher finalizes the record.
func (m *Matcher) End() bool {
	return m.end
}

func (m *Matcher) String() string {
	return m.re.String()
}
