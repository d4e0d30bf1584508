package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Kargones/apk-issues/internal/constants"
	"github.com/Kargones/apk-issues/internal/pkg/apperrors"
)

// Validate проверяет конфигурацию. Для команд, работающих с трекером,
// обязательны INPUT_ACCESSTOKEN и INPUT_REPOSITORY вида owner/repo.
// Все найденные проблемы перечисляются в одной ошибке.
func (cfg *Config) Validate() error {
	var problems []string

	if cfg.NeedsTracker() {
		if cfg.AccessToken == "" {
			problems = append(problems, "INPUT_ACCESSTOKEN")
		}
		if cfg.Owner == "" || cfg.Repo == "" {
			problems = append(problems, "INPUT_REPOSITORY (owner/repo)")
		}
		if u, err := url.Parse(cfg.APIURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			problems = append(problems, "INPUT_APIURL (абсолютный http(s) URL)")
		}
		switch cfg.BulkPolicy {
		case constants.BulkPolicyStop, constants.BulkPolicyContinue:
		default:
			problems = append(problems, fmt.Sprintf("INPUT_BULKPOLICY (stop|continue, получено %q)", cfg.BulkPolicy))
		}
	}

	if err := validateMetricsConfig(&cfg.Metrics); err != nil {
		problems = append(problems, err.Error())
	}
	if err := validateTracingConfig(&cfg.Tracing); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return apperrors.NewAppError(apperrors.ErrConfigValidate,
			"отсутствуют или некорректны параметры: "+strings.Join(problems, ", "), nil)
	}
	return nil
}
