package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel определяет уровни логирования
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) logrusLevel() logrus.Level {
	switch l {
	case TRACE:
		return logrus.TraceLevel
	case DEBUG:
		return logrus.DebugLevel
	case WARN:
		return logrus.WarnLevel
	case ERROR:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// ParseLevel разбирает уровень из строки ("debug", "INFO"...). Неизвестное
// значение даёт INFO.
func ParseLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TRACE
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Options задаёт параметры создаваемых логгеров.
type Options struct {
	Level  LogLevel
	Format string    // "text" или "json"
	Dir    string    // каталог для файлов логов; пусто означает только консоль
	Output io.Writer // консольный вывод; nil означает os.Stdout
}

// OptionsFromEnv читает LOG_LEVEL и LOG_FORMAT.
func OptionsFromEnv() Options {
	opts := Options{Level: INFO, Format: "text"}
	if lvl, ok := os.LookupEnv("LOG_LEVEL"); ok {
		opts.Level = ParseLevel(lvl)
	}
	if f := os.Getenv("LOG_FORMAT"); f != "" {
		opts.Format = strings.ToLower(f)
	}
	return opts
}

var (
	optsMu  sync.RWMutex
	options = OptionsFromEnv()
)

// Configure меняет параметры для логгеров, созданных после вызова.
func Configure(opts Options) {
	optsMu.Lock()
	options = opts
	optsMu.Unlock()
}

func currentOptions() Options {
	optsMu.RLock()
	defer optsMu.RUnlock()
	return options
}

// Logger: логгер компонента поверх logrus.
type Logger struct {
	entry *logrus.Entry
	base  *logrus.Logger
	file  *os.File
}

// NewLogger создаёт логгер компонента с текущими параметрами.
func NewLogger(component string) (*Logger, error) {
	opts := currentOptions()

	base := logrus.New()
	base.SetLevel(opts.Level.logrusLevel())
	if opts.Format == "json" {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var out io.Writer = os.Stdout
	if opts.Output != nil {
		out = opts.Output
	}

	var file *os.File
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("ошибка создания директории логов: %w", err)
		}
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		filename := filepath.Join(opts.Dir, fmt.Sprintf("%s_%s.log", component, timestamp))
		f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("ошибка создания файла логов: %w", err)
		}
		file = f
		out = io.MultiWriter(out, f)
	}
	base.SetOutput(out)

	return &Logger{
		entry: base.WithField("component", component),
		base:  base,
		file:  file,
	}, nil
}

// Close закрывает файл лога, если он открыт.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// SetLevel меняет уровень логгера.
func (l *Logger) SetLevel(level LogLevel) {
	l.base.SetLevel(level.logrusLevel())
}

// Enabled сообщает, будет ли записано сообщение уровня level.
func (l *Logger) Enabled(level LogLevel) bool {
	return l.base.IsLevelEnabled(level.logrusLevel())
}

// WithFields возвращает логгер с дополнительными структурными полями.
func (l *Logger) WithFields(fields logrus.Fields) *Logger {
	return &Logger{entry: l.entry.WithFields(fields), base: l.base}
}

// Entry даёт доступ к logrus напрямую.
func (l *Logger) Entry() *logrus.Entry { return l.entry }

func (l *Logger) Trace(format string, args ...interface{}) { l.entry.Tracef(format, args...) }
func (l *Logger) Debug(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// Глобальный логгер процесса
var (
	defaultMu     sync.RWMutex
	defaultLogger = mustFallback("server")
)

func mustFallback(component string) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stdout)
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	base.SetLevel(currentOptions().Level.logrusLevel())
	return &Logger{entry: base.WithField("component", component), base: base}
}

// InitDefaultLogger создаёт глобальный логгер с текущими параметрами.
func InitDefaultLogger(component string) error {
	l, err := NewLogger(component)
	if err != nil {
		return err
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
	return nil
}

// CloseDefaultLogger закрывает файл глобального логгера.
func CloseDefaultLogger() {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	_ = l.Close()
}

func def() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Trace логирует сообщение уровня TRACE
func Trace(format string, args ...interface{}) { def().Trace(format, args...) }

// Debug логирует сообщение уровня DEBUG
func Debug(format string, args ...interface{}) { def().Debug(format, args...) }

// Info логирует сообщение уровня INFO
func Info(format string, args ...interface{}) { def().Info(format, args...) }

// Warn логирует сообщение уровня WARN
func Warn(format string, args ...interface{}) { def().Warn(format, args...) }

// Error логирует сообщение уровня ERROR
func Error(format string, args ...interface{}) { def().Error(format, args...) }
