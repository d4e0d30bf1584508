package issuetracker

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/Kargones/apk-issues/internal/pkg/apperrors"
)

// Коды ошибок операций с трекером задач.
const (
	// ErrIssueConnect — ошибка транспорта: запрос не отправлен или ответ не получен.
	ErrIssueConnect = "ISSUE.CONNECT_FAILED"
	// ErrIssueAPI — неожиданный статус ответа.
	ErrIssueAPI = "ISSUE.API_FAILED"
	// ErrIssueAuth — ответ 401 или 403.
	ErrIssueAuth = "ISSUE.AUTH_FAILED"
	// ErrIssueNotFound — ответ 404.
	ErrIssueNotFound = "ISSUE.NOT_FOUND"
	// ErrIssueTimeout — истёк deadline контекста или таймаут транспорта.
	ErrIssueTimeout = "ISSUE.TIMEOUT"
	// ErrIssueDecode — тело ответа не является JSON в режиме ModeDecoded.
	ErrIssueDecode = "ISSUE.DECODE_FAILED"
	// ErrIssueValidation — некорректные входные данные, запрос не отправлялся.
	ErrIssueValidation = "ISSUE.VALIDATION_FAILED"
)

// TransportError — сбой HTTP вызова: неожиданный статус, ошибка транспорта
// или неразбираемое тело ответа.
type TransportError struct {
	Code    string
	Message string

	Method string
	// URL — адрес запроса без userinfo и query.
	URL string

	// StatusCode — фактический статус ответа, 0 если ответа не было.
	StatusCode     int
	ExpectedStatus int

	// Body — тело ответа как есть (после распаковки gzip/deflate).
	Body string

	Cause error
}

// Error реализует интерфейс error.
func (e *TransportError) Error() string {
	msg := fmt.Sprintf("[%s] %s %s: %s", e.Code, e.Method, e.URL, e.Message)
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap возвращает исходную ошибку транспорта.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ErrorCode реализует apperrors.Coded.
func (e *TransportError) ErrorCode() string {
	return e.Code
}

// As поддерживает преобразование в *apperrors.AppError через errors.As.
func (e *TransportError) As(target any) bool {
	if t, ok := target.(**apperrors.AppError); ok {
		*t = &apperrors.AppError{
			Code:    e.Code,
			Message: e.Message,
			Cause:   e.Cause,
		}
		return true
	}
	return false
}

// ValidationError — ошибка входных данных, обнаруженная до отправки запроса.
type ValidationError struct {
	Field   string
	Message string
}

// Error реализует интерфейс error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] поле '%s': %s", ErrIssueValidation, e.Field, e.Message)
}

// ErrorCode реализует apperrors.Coded.
func (e *ValidationError) ErrorCode() string {
	return ErrIssueValidation
}

// As поддерживает преобразование в *apperrors.AppError через errors.As.
func (e *ValidationError) As(target any) bool {
	if t, ok := target.(**apperrors.AppError); ok {
		*t = &apperrors.AppError{
			Code:    ErrIssueValidation,
			Message: fmt.Sprintf("поле '%s': %s", e.Field, e.Message),
		}
		return true
	}
	return false
}

// NewValidationError создаёт ошибку валидации.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// codeForStatus выбирает код ошибки для неожиданного статуса.
func codeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrIssueAuth
	case http.StatusNotFound:
		return ErrIssueNotFound
	default:
		return ErrIssueAPI
	}
}

// codeForTransport выбирает код ошибки для сбоя транспорта.
func codeForTransport(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrIssueTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrIssueTimeout
	}
	return ErrIssueConnect
}

func hasCode(err error, code string) bool {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Code == code
	}
	return false
}

// IsValidationError проверяет, является ли ошибка ошибкой валидации.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsTransportError проверяет, произошёл ли сбой HTTP вызова.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsNotFoundError проверяет ответ 404.
func IsNotFoundError(err error) bool { return hasCode(err, ErrIssueNotFound) }

// IsAuthError проверяет ответ 401/403.
func IsAuthError(err error) bool { return hasCode(err, ErrIssueAuth) }

// IsTimeoutError проверяет истечение времени ожидания.
func IsTimeoutError(err error) bool { return hasCode(err, ErrIssueTimeout) }

// IsConnectionError проверяет ошибку транспорта.
func IsConnectionError(err error) bool { return hasCode(err, ErrIssueConnect) }

// IsAPIError проверяет прочий неожиданный статус.
func IsAPIError(err error) bool { return hasCode(err, ErrIssueAPI) }

// IsDecodeError проверяет неразбираемое тело ответа.
func IsDecodeError(err error) bool { return hasCode(err, ErrIssueDecode) }

// StatusCode возвращает HTTP статус из TransportError в цепочке err, иначе 0.
func StatusCode(err error) int {
	var te *TransportError
	if errors.As(err, &te) {
		return te.StatusCode
	}
	return 0
}
