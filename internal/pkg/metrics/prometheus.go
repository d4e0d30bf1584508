package metrics

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Kargones/apk-issues/internal/pkg/logging"
	"github.com/Kargones/apk-issues/internal/pkg/urlutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "apk_issues"

// PrometheusCollector реализует Collector поверх собственного prometheus.Registry.
// Метрики отправляются в Pushgateway при вызове Push.
type PrometheusCollector struct {
	config   Config
	logger   logging.Logger
	registry *prometheus.Registry

	commandDuration *prometheus.HistogramVec
	commandSuccess  *prometheus.CounterVec
	commandError    *prometheus.CounterVec

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec

	instance string
}

// NewPrometheusCollector создаёт PrometheusCollector и регистрирует метрики:
//   - apk_issues_command_duration_seconds (histogram)
//   - apk_issues_command_success_total, apk_issues_command_error_total (counter)
//   - apk_issues_request_duration_seconds (histogram)
//   - apk_issues_request_total (counter)
func NewPrometheusCollector(config Config, logger logging.Logger) (*PrometheusCollector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	instance := config.InstanceLabel
	if instance == "" {
		hostname, err := os.Hostname()
		if err != nil {
			logger.Warn("не удалось получить hostname для metrics instance label, используется 'unknown'",
				"error", err.Error())
			hostname = "unknown"
		}
		instance = hostname
	}

	registry := prometheus.NewRegistry()

	commandDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Duration of command execution in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
		},
		[]string{"command", "repository", "status"},
	)
	commandSuccess := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_success_total",
			Help:      "Total number of successful command executions",
		},
		[]string{"command", "repository"},
	)
	commandError := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_error_total",
			Help:      "Total number of failed command executions",
		},
		[]string{"command", "repository"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of issue tracker HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "method"},
	)
	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_total",
			Help:      "Total number of issue tracker HTTP requests by status code",
		},
		[]string{"operation", "method", "status_code"},
	)

	collectors := []prometheus.Collector{commandDuration, commandSuccess, commandError, requestDuration, requestTotal}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("ошибка регистрации метрики: %w", err)
		}
	}

	return &PrometheusCollector{
		config:          config,
		logger:          logger,
		registry:        registry,
		commandDuration: commandDuration,
		commandSuccess:  commandSuccess,
		commandError:    commandError,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		instance:        instance,
	}, nil
}

// RecordCommandStart только логирует: для CLI in-flight не отслеживается.
func (c *PrometheusCollector) RecordCommandStart(command, repository string) {
	c.logger.Debug("metrics: command started", "command", command, "repository", repository)
}

// maxLabelLength ограничивает длину значения label.
const maxLabelLength = 128

// sanitizeLabel заменяет контрольные символы на '_' и обрезает значение
// до maxLabelLength рун.
func sanitizeLabel(value string) string {
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 {
			return '_'
		}
		return r
	}, value)

	runes := []rune(clean)
	if len(runes) > maxLabelLength {
		return string(runes[:maxLabelLength])
	}
	return clean
}

// RecordCommandEnd обновляет histogram длительности и счётчики success/error.
func (c *PrometheusCollector) RecordCommandEnd(command, repository string, duration time.Duration, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	command = sanitizeLabel(command)
	repository = sanitizeLabel(repository)

	c.commandDuration.WithLabelValues(command, repository, status).Observe(duration.Seconds())
	if success {
		c.commandSuccess.WithLabelValues(command, repository).Inc()
	} else {
		c.commandError.WithLabelValues(command, repository).Inc()
	}

	c.logger.Debug("metrics: command ended",
		"command", command,
		"repository", repository,
		"duration_ms", duration.Milliseconds(),
		"success", success,
	)
}

// RecordRequest записывает HTTP запрос. Отсутствие ответа помечается status_code="none".
func (c *PrometheusCollector) RecordRequest(operation, method string, statusCode int, duration time.Duration) {
	code := "none"
	if statusCode > 0 {
		code = strconv.Itoa(statusCode)
	}
	operation = sanitizeLabel(operation)
	method = sanitizeLabel(method)

	c.requestDuration.WithLabelValues(operation, method).Observe(duration.Seconds())
	c.requestTotal.WithLabelValues(operation, method, code).Inc()
}

// Push отправляет метрики в Pushgateway. Ошибка отправки логируется,
// возвращается всегда nil.
func (c *PrometheusCollector) Push(ctx context.Context) error {
	if c.config.PushgatewayURL == "" {
		c.logger.Debug("metrics: pushgateway URL not configured, skipping push")
		return nil
	}

	select {
	case <-ctx.Done():
		c.logger.Debug("metrics push отменён")
		return nil
	default:
	}

	pusher := push.New(c.config.PushgatewayURL, c.config.JobName).
		Gatherer(c.registry).
		Grouping("instance", c.instance)

	pushCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := pusher.PushContext(pushCtx); err != nil {
		c.logger.Error("ошибка отправки метрик в Pushgateway",
			"error", err.Error(),
			"url", urlutil.MaskURL(c.config.PushgatewayURL),
			"job", c.config.JobName,
		)
		return nil
	}

	c.logger.Info("метрики отправлены в Pushgateway",
		"url", urlutil.MaskURL(c.config.PushgatewayURL),
		"job", c.config.JobName,
		"instance", c.instance,
	)
	return nil
}

// GetRegistry возвращает внутренний registry. Используется в тестах.
func (c *PrometheusCollector) GetRegistry() *prometheus.Registry {
	return c.registry
}
