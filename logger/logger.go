package logger

// Logger 日志接口，参数采用 slog 风格的 key/value 对。
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With 返回带附加字段的日志器
	With(args ...any) Logger
}

var defaultLogger Logger

func init() {
	slog, err := NewSLogWithOptions(&SLogOptions{
		Level:  "info",
		Format: "text",
	})
	if err != nil {
		panic("failed to initialize default logger: " + err.Error())
	}
	defaultLogger = slog
}

// Default 返回默认日志器，向终端输出 text 格式日志。
func Default() Logger {
	return defaultLogger
}
