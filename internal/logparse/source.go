package logparse

import (
	"bufio"
	"io"

	"github.com/nxadm/tail"
)

// maxLineBytes bounds a single solver log line. Matrix solver dumps
// can produce very long lines.
// maxLineBytes 限制单条求解器日志行的长度。
const maxLineBytes = 1024 * 1024

// LineSource yields successive lines of a log. Next returns io.EOF
// when the stream is exhausted.
// LineSource 逐行产出日志内容。流耗尽时 Next 返回 io.EOF。
type LineSource interface {
	Next() (string, error)
	Close() error
}

// ReaderSource reads lines from any io.Reader, typically a finished
// log file or stdin. It terminates cleanly at EOF.
// ReaderSource 从任意 io.Reader 读取行，到 EOF 时干净终止。
type ReaderSource struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

// NewReaderSource wraps r. If r is an io.Closer it is closed by Close.
// NewReaderSource 包装 r。若 r 实现 io.Closer，则由 Close 关闭。
func NewReaderSource(r io.Reader) *ReaderSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	src := &ReaderSource{scanner: scanner}
	if c, ok := r.(io.Closer); ok {
		src.closer = c
	}
	return src
}

func (s *ReaderSource) Next() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (s *ReaderSource) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// FollowSource streams a log file that the solver is still appending
// to. Next blocks until a new line arrives; after Stop the remaining
// buffered lines drain and Next returns io.EOF.
// FollowSource 流式读取求解器仍在追加的日志文件。
type FollowSource struct {
	tailer *tail.Tail
}

// NewFollowSource starts tailing path from the beginning of the file.
// NewFollowSource 从文件开头开始跟踪 path。
func NewFollowSource(path string) (*FollowSource, error) {
	tailer, err := tail.TailFile(path, tail.Config{
		Follow:    true,
		ReOpen:    true, // Handle log rotation / 处理日志轮转
		MustExist: true,
		Poll:      true, // Fallback if inotify fails / inotify 失败时的回退
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return nil, err
	}
	return &FollowSource{tailer: tailer}, nil
}

func (s *FollowSource) Next() (string, error) {
	for line := range s.tailer.Lines {
		if line.Err != nil {
			return "", line.Err
		}
		return line.Text, nil
	}
	return "", io.EOF
}

// Stop ends the follow without waiting for more input. The consume
// loop then observes a clean end of stream.
// Stop 结束跟踪而不等待更多输入。
func (s *FollowSource) Stop() error {
	return s.tailer.Stop()
}

func (s *FollowSource) Close() error {
	return s.Stop()
}
