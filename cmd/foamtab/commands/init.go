package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/foamtab/foamtab/internal/config"
	"github.com/foamtab/foamtab/internal/utils/fileutil"
	"github.com/foamtab/foamtab/pkg/errors"
)

var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	// Short: 写入默认配置文件
	Long: `Write the commented default configuration to the --config path
(or the default location). An existing file is left untouched unless
--force is given.
将带注释的默认配置写入 --config 路径（或默认位置）。
除非指定 --force，否则不会改动已存在的文件。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultConfigPath
		}

		initForce, _ := cmd.Flags().GetBool("force")
		if fileutil.Exists(path) && !initForce {
			return errors.NewOutputExistsError(path)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := fileutil.AtomicWriteFile(path, []byte(config.DefaultConfigTemplate), 0644); err != nil {
			return err
		}

		fmt.Printf("Wrote default configuration to %s\n", path)
		return nil
	},
}

func init() {
	InitCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
}
