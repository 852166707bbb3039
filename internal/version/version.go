package version

// Build metadata, overridden at release time via -ldflags.
// 构建元数据，发布时通过 -ldflags 覆盖。
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String returns the full version string.
// String 返回完整的版本字符串。
func String() string {
	return Version + " (commit " + GitCommit + ", built " + BuildDate + ")"
}
