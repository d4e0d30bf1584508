package issuetracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/Kargones/apk-issues/internal/pkg/urlutil"
)

// Ожидаемые статусы ответа по методу.
const (
	expectedGet   = http.StatusOK
	expectedWrite = http.StatusCreated
)

func (c *Client) get(ctx context.Context, op, target string, mode ResponseMode) (*Response, error) {
	return c.do(ctx, op, http.MethodGet, target, nil, expectedGet, mode)
}

func (c *Client) post(ctx context.Context, op, target string, payload IssueRequest, mode ResponseMode) (*Response, error) {
	return c.do(ctx, op, http.MethodPost, target, payload, expectedWrite, mode)
}

// patch отправляет тело так же, как post, меняется только метод.
func (c *Client) patch(ctx context.Context, op, target string, payload IssueRequest, mode ResponseMode) (*Response, error) {
	return c.do(ctx, op, http.MethodPatch, target, payload, expectedWrite, mode)
}

// do выполняет один запрос: сборка, отправка, чтение тела, сверка статуса,
// разбор тела по mode.
func (c *Client) do(ctx context.Context, op, method, target string, payload IssueRequest, expected int, mode ResponseMode) (*Response, error) {
	logURL := urlutil.StripCredentials(target)
	log := c.logger.With("operation", op, "method", method, "url", logURL)

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, NewValidationError("contents", fmt.Sprintf("не удалось сериализовать в JSON: %v", err))
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, c.fail(&TransportError{
			Code: ErrIssueConnect, Message: "не удалось создать запрос",
			Method: method, URL: logURL, ExpectedStatus: expected, Cause: err,
		})
	}
	c.setHeaders(req, payload != nil)

	log.Debug("запрос к трекеру задач")
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(op, method, 0, time.Since(start))
		log.Error("ошибка транспорта", "error", err.Error())
		return nil, c.fail(&TransportError{
			Code: codeForTransport(err), Message: "запрос не выполнен",
			Method: method, URL: logURL, ExpectedStatus: expected, Cause: err,
		})
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := readBody(resp)
	c.observe(op, method, resp.StatusCode, time.Since(start))
	if err != nil {
		log.Error("не удалось прочитать тело ответа", "status", resp.StatusCode, "error", err.Error())
		return nil, c.fail(&TransportError{
			Code: codeForTransport(err), Message: "не удалось прочитать тело ответа",
			Method: method, URL: logURL, StatusCode: resp.StatusCode, ExpectedStatus: expected, Cause: err,
		})
	}

	if resp.StatusCode != expected {
		log.Error("неожиданный статус ответа", "status", resp.StatusCode, "expected", expected)
		return nil, c.fail(&TransportError{
			Code:           codeForStatus(resp.StatusCode),
			Message:        fmt.Sprintf("ожидался статус %d, получен %d", expected, resp.StatusCode),
			Method:         method,
			URL:            logURL,
			StatusCode:     resp.StatusCode,
			ExpectedStatus: expected,
			Body:           string(raw),
		})
	}

	log.Debug("ответ получен", "status", resp.StatusCode, "bytes", len(raw))

	if mode == ModeRaw {
		r := Raw(resp.StatusCode, string(raw))
		r.Header = resp.Header
		return r, nil
	}

	var value any
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, c.fail(&TransportError{
				Code: ErrIssueDecode, Message: "тело ответа не является JSON",
				Method: method, URL: logURL, StatusCode: resp.StatusCode, ExpectedStatus: expected,
				Body: string(raw), Cause: err,
			})
		}
	}
	r := Decoded(resp.StatusCode, value, raw)
	r.Header = resp.Header
	return r, nil
}

func (c *Client) setHeaders(req *http.Request, withBody bool) {
	req.Header.Set("Accept", "*/*")
	req.Header.Set("User-Agent", c.cfg.Owner)
	req.Header.Set("Authorization", "token "+c.cfg.AccessToken)
	req.Header.Set("Accept-Language", "en-gb")
	if withBody {
		req.Header.Set("Accept-Encoding", "gzip, deflate")
		req.Header.Set("Content-Type", "text/plain")
	}
}

func (c *Client) observe(op, method string, status int, d time.Duration) {
	if c.observer != nil {
		c.observer.RecordRequest(op, method, status, d)
	}
}

// readBody читает тело и распаковывает gzip/deflate: автоматическая
// распаковка транспорта отключена в defaultHTTPClient.
func readBody(resp *http.Response) ([]byte, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return raw, nil
	}

	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "gzip", "x-gzip":
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer func() { _ = zr.Close() }()
		return io.ReadAll(zr)
	case "deflate":
		return inflate(raw)
	default:
		return raw, nil
	}
}

// inflate распаковывает "deflate": по RFC это zlib-поток, но часть
// серверов отдаёт голый deflate без заголовка.
func inflate(raw []byte) ([]byte, error) {
	if zr, err := zlib.NewReader(bytes.NewReader(raw)); err == nil {
		defer func() { _ = zr.Close() }()
		if out, readErr := io.ReadAll(zr); readErr == nil {
			return out, nil
		}
	}
	fr := flate.NewReader(bytes.NewReader(raw))
	defer func() { _ = fr.Close() }()
	out, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}
	return out, nil
}
