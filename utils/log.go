package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

// Formatter 输出 "时间 [级别] 文件:行 函数 消息 k=v..."
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	var sb strings.Builder
	sb.WriteString(timestamp)
	sb.WriteString(" [" + level + "] ")
	if entry.Caller != nil {
		fileName := filepath.Base(entry.Caller.File)
		funcName := entry.Caller.Function
		if i := strings.LastIndex(funcName, "."); i >= 0 {
			funcName = funcName[i+1:]
		}
		fmt.Fprintf(&sb, "%s:%d %s ", fileName, entry.Caller.Line, funcName)
	}
	sb.WriteString(entry.Message)
	for k, v := range entry.Data {
		fmt.Fprintf(&sb, " %s=%v", k, v)
	}
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

type logOptions struct {
	dir      string
	maxAge   time.Duration
	rotation time.Duration
}

type LogOption func(*logOptions)

// WithLogDir 日志目录, 默认 ./logs
func WithLogDir(dir string) LogOption {
	return func(o *logOptions) { o.dir = dir }
}

func WithMaxAge(d time.Duration) LogOption {
	return func(o *logOptions) { o.maxAge = d }
}

func WithRotation(d time.Duration) LogOption {
	return func(o *logOptions) { o.rotation = d }
}

// Logger 按天切分文件的 logrus 日志, 包装成 pitaya 的 Logger
func Logger(level logrus.Level, opts ...LogOption) (interfaces.Logger, error) {
	o := &logOptions{
		dir:      "./logs",
		maxAge:   7 * 24 * time.Hour,
		rotation: 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(o)
	}

	writer, err := newRotateWriter(o)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(writer)
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l), nil
}

// SetLogger 替换 pitaya 全局日志
func SetLogger(level logrus.Level, opts ...LogOption) error {
	l, err := Logger(level, opts...)
	if err != nil {
		return err
	}
	logger.SetLogger(l)
	return nil
}

// rotateWriter 当前文件被删除后重新创建
type rotateWriter struct {
	*rotatelogs.RotateLogs
	pattern string
	opts    *logOptions
}

func newRotateWriter(o *logOptions) (*rotateWriter, error) {
	if err := os.MkdirAll(o.dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create log dir %s: %w", o.dir, err)
	}
	program := filepath.Base(os.Args[0])
	pattern := filepath.Join(o.dir, program+"-%Y%m%d.log")

	w := &rotateWriter{pattern: pattern, opts: o}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *rotateWriter) open() error {
	rl, err := rotatelogs.New(
		w.pattern,
		rotatelogs.WithMaxAge(w.opts.maxAge),
		rotatelogs.WithRotationTime(w.opts.rotation),
	)
	if err != nil {
		return fmt.Errorf("create log writer: %w", err)
	}
	w.RotateLogs = rl
	return nil
}

func (w *rotateWriter) Write(p []byte) (int, error) {
	if name := w.CurrentFileName(); name != "" {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			if err := w.open(); err != nil {
				return 0, err
			}
		}
	}
	return w.RotateLogs.Write(p)
}
