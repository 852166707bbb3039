package commands

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/foamtab/foamtab/internal/convert"
	"github.com/foamtab/foamtab/internal/logparse"
	"github.com/foamtab/foamtab/internal/utils/fileutil"
	"github.com/foamtab/foamtab/internal/utils/logger"
	"github.com/foamtab/foamtab/pkg/errors"
)

// runConvert wires streams, matchers and the optional filter into a
// driver and runs it to completion. Flags the user did not set fall
// back to the config file's convert section.
// runConvert 将流、匹配器与可选过滤器接入驱动器并运行至完成。
func runConvert(cmd *cobra.Command, args []string) error {
	log := logger.Get(cmd.Context())
	cfg := cfgManager.GetConvertConfig()

	// Command-line flags override config-file defaults per invocation
	// 命令行标志在每次调用时覆盖配置文件默认值
	if !cmd.Flags().Changed("force") {
		force = cfg.Force
	}
	if !cmd.Flags().Changed("follow") {
		follow = cfg.Follow
	}
	if !cmd.Flags().Changed("where") {
		where = cfg.Where
	}

	if residuals {
		log.Warnf("Residuals export is reserved and not implemented; ignoring -r")
	}
	if follow && inputPath == "" {
		return errors.NewConfigError("follow", "requires an input file, stdin cannot be followed")
	}

	matchers, err := logparse.DefaultMatchers()
	if err != nil {
		return err
	}

	var filter *logparse.Filter
	if where != "" {
		filter, err = logparse.NewFilter(where)
		if err != nil {
			return err
		}
	}

	// Output protection runs before any input is read
	// 输出保护在读取任何输入之前执行
	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := fileutil.OpenOutput(outputPath, force)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	src, err := openSource(log)
	if err != nil {
		return err
	}
	defer src.Close()

	driver := convert.New(src, logparse.NewAccumulator(matchers), out, filter, log)
	return driver.Run()
}

// openSource picks the input stream: stdin, a finished log file, or a
// followed log still being written.
// openSource 选择输入流：stdin、已完成的日志文件，或仍在写入的跟踪日志。
func openSource(log *zap.SugaredLogger) (logparse.LineSource, error) {
	if inputPath == "" {
		return logparse.NewReaderSource(os.Stdin), nil
	}

	if !follow {
		f, err := fileutil.OpenInput(inputPath)
		if err != nil {
			return nil, err
		}
		return logparse.NewReaderSource(f), nil
	}

	if !fileutil.Exists(inputPath) {
		return nil, errors.NewInputError(inputPath, os.ErrNotExist)
	}
	src, err := logparse.NewFollowSource(inputPath)
	if err != nil {
		return nil, err
	}

	// An interrupt ends the follow; the run then finishes cleanly
	// 中断信号结束跟踪，随后运行干净结束
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Infof("Interrupt received, stopping follow of %s", inputPath)
		_ = src.Stop()
	}()

	return src, nil
}
