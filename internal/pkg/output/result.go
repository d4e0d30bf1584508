// Package output форматирует результаты команд в JSON или текст.
package output

// StatusSuccess и StatusError — возможные значения Result.Status.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result — структурированный результат выполнения команды.
// Формат вывода выбирается через BR_OUTPUT_FORMAT (json или text).
type Result struct {
	Status  string `json:"status"`
	Command string `json:"command"`

	// Data — payload конкретной команды.
	Data any `json:"data,omitempty"`

	// Error заполняется только при Status == StatusError.
	Error *ErrorInfo `json:"error,omitempty"`

	Metadata *Metadata `json:"metadata,omitempty"`

	// Summary не сериализуется напрямую: JSONWriter переносит его в Metadata.Summary.
	Summary *SummaryInfo `json:"-"`
}

// ErrorInfo описывает ошибку: машиночитаемый код и сообщение.
// Message не должен содержать токен доступа.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	// StatusCode — HTTP статус ответа трекера, если ответ был получен.
	StatusCode int `json:"status_code,omitempty"`
}

// Metadata содержит метаданные выполнения команды.
type Metadata struct {
	DurationMs int64  `json:"duration_ms"`
	TraceID    string `json:"trace_id,omitempty"`
	APIVersion string `json:"api_version"`

	Summary *SummaryInfo `json:"summary,omitempty"`
}
