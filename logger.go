package metricify

import (
	"log"
	"os"
)

// Logger 全局日志记录器
var Logger = log.New(os.Stderr, "[metricify] ", log.LstdFlags)

// SetLogger 设置自定义日志记录器
func SetLogger(logger *log.Logger) {
	Logger = logger
}

// warnf 非阻塞诊断输出，供内部包回调
func warnf(format string, args ...interface{}) {
	Logger.Printf(format, args...)
}
