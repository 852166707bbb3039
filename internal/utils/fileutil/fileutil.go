package fileutil

import (
	"os"
	"path/filepath"

	"github.com/foamtab/foamtab/pkg/errors"
)

// Exists reports whether the path exists.
// Exists 报告路径是否存在。
func Exists(path string) bool {
	_, err := os.Stat(filepath.Clean(path))
	return err == nil
}

// OpenInput opens a log file for reading. A missing file is a resource
// error, reported before any processing begins.
// OpenInput 打开日志文件用于读取。文件缺失是资源错误，在任何处理开始前报告。
func OpenInput(path string) (*os.File, error) {
	safePath := filepath.Clean(path) // Sanitize path to prevent directory traversal
	f, err := os.Open(safePath)      // #nosec G304 // path is sanitized with filepath.Clean
	if err != nil {
		return nil, errors.NewInputError(path, err)
	}
	return f, nil
}

// OpenOutput creates the output file. An existing file is refused
// unless force is set; the existing content is left untouched.
// OpenOutput 创建输出文件。除非设置 force，否则拒绝覆盖已存在的文件，
// 现有内容保持不变。
func OpenOutput(path string, force bool) (*os.File, error) {
	safePath := filepath.Clean(path)
	if !force && Exists(safePath) {
		return nil, errors.NewOutputExistsError(path)
	}
	f, err := os.Create(safePath) // #nosec G304 // path is sanitized with filepath.Clean
	if err != nil {
		return nil, err
	}
	return f, nil
}

// AtomicWriteFile writes data to a temporary file and then renames it to the target file.
// AtomicWriteFile 将数据写入临时文件，然后将其重命名为目标文件。
func AtomicWriteFile(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename) // #nosec G703 // Safe: filepath.Dir cleans the path preventing traversal
	tmpFile, err := os.CreateTemp(dir, "atomic-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmpFile.Name()) // Clean up if something fails

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Chmod(perm); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	return os.Rename(tmpFile.Name(), filename) // #nosec G703 // filename is validated by caller
}
