package logs

import "log/slog"

// Logger 供底层模块（配置监听等）使用的轻量日志入口，默认走 slog；
// 业务日志统一使用 infrastructure/logger。
type Logger interface {
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

type slogWrapper struct{}

func (s slogWrapper) Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func (s slogWrapper) Info(msg string, args ...any)  { slog.Info(msg, args...) }
func (s slogWrapper) Error(msg string, args ...any) { slog.Error(msg, args...) }

// DefaultLogger 可在不同模块注入，便于替换。
var DefaultLogger Logger = slogWrapper{}
