package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/Kargones/apk-issues/internal/constants"
	"github.com/Kargones/apk-issues/internal/pkg/apperrors"
)

// EnvConfigFile — путь к необязательному YAML файлу конфигурации.
const EnvConfigFile = "BR_CONFIG_FILE"

// Load читает конфигурацию: YAML файл из BR_CONFIG_FILE (если задан),
// затем переменные окружения поверх него. Обязательные параметры
// не проверяются, для этого есть Validate.
func Load() (*Config, error) {
	cfg := newConfig()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConfigLoad,
			"не удалось прочитать переменные окружения", err)
	}

	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newConfig задаёт значения по умолчанию, у которых нулевое значение
// осмысленно (false, 0.0). cleanenv применяет env-default к любому нулевому
// полю, поэтому такие значения из YAML были бы потеряны при ReadEnv.
func newConfig() *Config {
	cfg := &Config{ShowProgress: true}
	cfg.Logging.Compress = true
	cfg.Tracing.Insecure = true
	cfg.Tracing.SamplingRate = 1.0
	return cfg
}

// loadFile разбирает YAML строго: неизвестные ключи считаются ошибкой.
func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path) //nolint:gosec // путь задаётся оператором
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrConfigLoad,
			fmt.Sprintf("не удалось открыть файл конфигурации %s", path), err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.NewAppError(apperrors.ErrConfigParse,
			fmt.Sprintf("ошибка разбора YAML %s", path), err)
	}
	return nil
}

// resolve заполняет типизированные поля из строковых InputParams.
func (cfg *Config) resolve() error {
	in := cfg.Input

	cfg.Command = strings.TrimSpace(in.GHACommand)
	cfg.APIURL = strings.TrimRight(strings.TrimSpace(in.GHAAPIURL), "/")
	cfg.AccessToken = strings.TrimSpace(in.GHAAccessToken)
	cfg.Owner = getOwner(in.GHARepository)
	cfg.Repo = getRepo(in.GHARepository)
	cfg.Labels = splitList(in.GHALabels)
	cfg.BulkPolicy = strings.ToLower(strings.TrimSpace(in.GHABulkPolicy))

	raw, err := parseBool(in.GHARaw)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrConfigParse, "INPUT_RAW должен быть true или false", err)
	}
	cfg.Raw = raw

	if s := strings.TrimSpace(in.GHAIssueNumber); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return apperrors.NewAppError(apperrors.ErrConfigParse,
				fmt.Sprintf("INPUT_ISSUENUMBER должен быть целым числом, получено %q", s), err)
		}
		cfg.IssueNumber = n
	}

	cfg.IssueNums = nil
	for _, s := range splitList(in.GHAIssueNumbers) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return apperrors.NewAppError(apperrors.ErrConfigParse,
				fmt.Sprintf("INPUT_ISSUENUMBERS содержит не число: %q", s), err)
		}
		cfg.IssueNums = append(cfg.IssueNums, n)
	}
	return nil
}

func parseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

// splitList разбивает "a, b,,c" в ["a" "b" "c"], сохраняя порядок.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getOwner(repository string) string {
	owner, _, _ := strings.Cut(strings.TrimSpace(repository), "/")
	return owner
}

func getRepo(repository string) string {
	substrings := strings.Split(strings.TrimSpace(repository), "/")
	if len(substrings) == 2 {
		return substrings[1]
	}
	return ""
}

// NeedsTracker сообщает, обращается ли текущая команда к трекеру задач.
func (cfg *Config) NeedsTracker() bool {
	return constants.RequiresTracker(cfg.Command)
}
