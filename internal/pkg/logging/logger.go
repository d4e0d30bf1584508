// Package logging предоставляет интерфейс и реализации структурированного логирования.
package logging

// Logger — интерфейс структурированного логирования.
// Методы принимают сообщение и пары ключ-значение:
//
//	logger.Info("задача создана", "number", 42, "duration_ms", 150)
//
// Logger пишет только в stderr или файл, никогда в stdout.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With возвращает Logger с добавленными атрибутами.
	//
	//	logger.With("trace_id", traceID).Info("запрос отправлен")
	With(args ...any) Logger
}
