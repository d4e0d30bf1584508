package issuetracker

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Kargones/apk-issues/internal/pkg/logging"
	"github.com/Kargones/apk-issues/internal/pkg/progress"
)

// Config — неизменяемые параметры клиента.
type Config struct {
	// BaseURL — базовый URL API, например "https://api.github.com".
	BaseURL     string
	AccessToken string
	Owner       string
	Repo        string
}

// Observer получает сведения о каждом HTTP запросе.
// metrics.Collector удовлетворяет этому интерфейсу.
type Observer interface {
	RecordRequest(operation, method string, statusCode int, duration time.Duration)
}

// Client выполняет запросы к API трекера задач.
// Безопасен для последовательного использования; состояние между
// вызовами не хранится.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
	observer   Observer
	bulkPolicy BulkPolicy
	progress   progress.Progress
	legacy     *legacyTermination
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient задаёт HTTP клиент. По умолчанию используется клиент
// без таймаута с otelhttp транспортом.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger задаёт логгер.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver задаёт получателя метрик запросов.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// WithBulkPolicy задаёт поведение пакетного обновления при ошибке.
func WithBulkPolicy(p BulkPolicy) Option {
	return func(c *Client) {
		c.bulkPolicy = p
	}
}

// WithProgress задаёт отображение хода пакетного обновления.
func WithProgress(p progress.Progress) Option {
	return func(c *Client) {
		if p != nil {
			c.progress = p
		}
	}
}

// WithLegacyTermination включает старое поведение: при TransportError
// текст ошибки и статус пишутся в w, затем вызывается exit(1).
// Нужен только для сверки со старой реализацией.
func WithLegacyTermination(w io.Writer, exit func(code int)) Option {
	return func(c *Client) {
		c.legacy = &legacyTermination{w: w, exit: exit}
	}
}

// NewClient создаёт клиент. BaseURL должен быть абсолютным http(s) URL,
// Owner и Repo — непустыми.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	u, err := url.Parse(base)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, NewValidationError("base_url", fmt.Sprintf("ожидался абсолютный http(s) URL, получено %q", cfg.BaseURL))
	}
	if strings.TrimSpace(cfg.Owner) == "" {
		return nil, NewValidationError("owner", "не может быть пустым")
	}
	if strings.TrimSpace(cfg.Repo) == "" {
		return nil, NewValidationError("repo", "не может быть пустым")
	}

	c := &Client{
		cfg:        cfg,
		baseURL:    base,
		httpClient: defaultHTTPClient(),
		logger:     logging.NewNopLogger(),
		bulkPolicy: BulkStopOnError,
		progress:   progress.NewNoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// defaultHTTPClient отключает автоматический Accept-Encoding транспорта:
// GET уходит без него, POST и PATCH задают заголовок сами, тело
// распаковывает readBody.
func defaultHTTPClient() *http.Client {
	base := http.DefaultTransport.(*http.Transport).Clone()
	base.DisableCompression = true

	return &http.Client{
		Transport: otelhttp.NewTransport(base,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return "issuetracker " + r.Method
			}),
		),
	}
}

// Config возвращает конфигурацию клиента.
func (c *Client) Config() Config {
	return c.cfg
}

// issuesURL возвращает {base}/repos/{owner}/{repo}/issues.
func (c *Client) issuesURL() string {
	return fmt.Sprintf("%s/repos/%s/%s/issues", c.baseURL, url.PathEscape(c.cfg.Owner), url.PathEscape(c.cfg.Repo))
}

// issueURL возвращает {base}/repos/{owner}/{repo}/issues/{number}.
func (c *Client) issueURL(number int64) string {
	return fmt.Sprintf("%s/%d", c.issuesURL(), number)
}
