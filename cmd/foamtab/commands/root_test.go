package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

// executeCommand executes a cobra command and returns output.
// executeCommand 执行 cobra 命令并返回输出。
func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// TestRootCommandHelp tests root command help output.
// TestRootCommandHelp 测试根命令帮助输出。
func TestRootCommandHelp(t *testing.T) {
	output, err := executeCommand(RootCmd, "--help")
	assert.NoError(t, err)
	assert.Contains(t, output, "foamtab")
	assert.Contains(t, output, "Usage:")
	assert.Contains(t, output, "Available Commands:")
}

// TestRootCommandFlags tests that the documented CLI surface exists.
// TestRootCommandFlags 测试文档化的 CLI 标志存在。
func TestRootCommandFlags(t *testing.T) {
	for _, name := range []string{"input", "output", "force", "residuals", "follow", "where"} {
		assert.NotNil(t, RootCmd.Flags().Lookup(name), "flag --%s should be registered", name)
	}
	assert.NotNil(t, RootCmd.PersistentFlags().Lookup("config"))

	// Short forms match the original tool
	// 短标志与原始工具一致
	for short, long := range map[string]string{"i": "input", "o": "output", "f": "force", "r": "residuals"} {
		flag := RootCmd.Flags().ShorthandLookup(short)
		assert.NotNil(t, flag, "short flag -%s should be registered", short)
		assert.Equal(t, long, flag.Name)
	}
}

// TestSubcommands tests that version and init are registered.
// TestSubcommands 测试 version 和 init 子命令已注册。
func TestSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["version"])
	assert.True(t, names["init"])
}
