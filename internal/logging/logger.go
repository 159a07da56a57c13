// Package logging 定義專案共用的結構化日誌介面
package logging

import "context"

// Logger 以 key-value 形式記錄，例如：
//
//	log.Info(ctx, "server started", "addr", addr)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}
