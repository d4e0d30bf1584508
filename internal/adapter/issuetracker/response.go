package issuetracker

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ResponseMode выбирает представление ответа.
type ResponseMode int

const (
	// ModeDecoded — тело разбирается как JSON в map[string]any, []any или скаляр.
	ModeDecoded ResponseMode = iota
	// ModeRaw — тело возвращается строкой без изменений.
	ModeRaw
)

// String возвращает имя режима.
func (m ResponseMode) String() string {
	if m == ModeRaw {
		return "raw"
	}
	return "decoded"
}

// Response — результат успешного вызова: либо разобранное значение,
// либо исходный текст тела.
type Response struct {
	StatusCode int
	Header     http.Header

	mode  ResponseMode
	value any
	body  []byte
}

// Decoded создаёт ответ с разобранным значением.
func Decoded(statusCode int, value any, body []byte) *Response {
	return &Response{StatusCode: statusCode, mode: ModeDecoded, value: value, body: body}
}

// Raw создаёт ответ с исходным текстом тела.
func Raw(statusCode int, body string) *Response {
	return &Response{StatusCode: statusCode, mode: ModeRaw, body: []byte(body)}
}

// Mode возвращает вариант ответа.
func (r *Response) Mode() ResponseMode {
	return r.mode
}

// Value возвращает разобранное значение; ok == false для ModeRaw.
// Пустое тело даёт (nil, true).
func (r *Response) Value() (value any, ok bool) {
	if r.mode != ModeDecoded {
		return nil, false
	}
	return r.value, true
}

// Raw возвращает текст тела; ok == false для ModeDecoded.
func (r *Response) Raw() (body string, ok bool) {
	if r.mode != ModeRaw {
		return "", false
	}
	return string(r.body), true
}

// Body возвращает байты тела независимо от варианта.
func (r *Response) Body() []byte {
	return r.body
}

// Decode разбирает тело ответа в v, например в *Issue или *[]Issue.
func (r *Response) Decode(v any) error {
	if len(r.body) == 0 {
		return fmt.Errorf("пустое тело ответа")
	}
	return json.Unmarshal(r.body, v)
}

// MarshalJSON сериализует ответ: разобранное значение как есть,
// сырой текст — JSON-строкой.
func (r *Response) MarshalJSON() ([]byte, error) {
	if r.mode == ModeRaw {
		return json.Marshal(string(r.body))
	}
	return json.Marshal(r.value)
}
