package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foamtab/foamtab/internal/config"
	"github.com/foamtab/foamtab/internal/utils/logger"
)

var (
	configPath string

	inputPath  string
	outputPath string
	force      bool
	residuals  bool
	follow     bool
	where      string

	// cfgManager is shared by the conversion run and subcommands.
	// cfgManager 由转换运行与子命令共享。
	cfgManager *config.Manager
)

var RootCmd = &cobra.Command{
	Use:   "foamtab",
	Short: "Convert pimpleFoam-family solver logs into plottable tables",
	// Short: 将 pimpleFoam 系列求解器日志转换为可绘图的数据表
	Long: `foamtab reads an OpenFOAM pimpleFoam-family solver log, extracts the
per-time-step summary fields, and writes one 12-column row per time step.
By default the log is read from stdin and the table is written to stdout;
use -i and -o to read and write files instead.
foamtab 读取 OpenFOAM pimpleFoam 系列求解器日志，提取每个时间步的摘要字段，
并为每个时间步写出一行 12 列数据。默认从 stdin 读取日志并写出到 stdout，
可用 -i 和 -o 改为读写文件。`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration to get logging settings
		// 加载配置以获取日志设置
		cfgPath := configPath
		if cfgPath == "" {
			cfgPath = config.DefaultConfigPath
		}

		cfgManager = config.NewManager(cfgPath)
		if err := cfgManager.Load(); err != nil {
			// If config fails to load, use default logging config (stderr only)
			// 如果加载配置失败，使用默认日志配置（仅 stderr）
			logger.Init(logger.LoggingConfig{Level: "info"})
		} else {
			logger.Init(*cfgManager.GetLoggingConfig())
		}

		// Inject logger into context
		// 将 Logger 注入 Context
		ctx := logger.WithContext(cmd.Context(), logger.Get(nil))
		cmd.SetContext(ctx)
	},
	RunE: runConvert,
}

func init() {
	// Config file path
	// 配置文件路径
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", fmt.Sprintf("Path to configuration file (default: %s)", config.DefaultConfigPath))

	RootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read log from file instead of stdin")
	RootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write output to file instead of stdout")
	RootCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite output file if it exists")
	RootCmd.Flags().BoolVarP(&residuals, "residuals", "r", false, "Write residuals data into <output>_<field name> files (reserved, not implemented)")
	RootCmd.Flags().BoolVar(&follow, "follow", false, "Keep reading as the solver appends to the log (requires -i)")
	RootCmd.Flags().StringVar(&where, "where", "", "Only emit rows matching this expression, e.g. 'converged && niter > 2'")

	RootCmd.AddCommand(VersionCmd)
	RootCmd.AddCommand(InitCmd)
}

func Execute() {
	err := RootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
