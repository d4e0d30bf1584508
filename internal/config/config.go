// Package config загружает конфигурацию apk-issues из переменных окружения
// и необязательного YAML файла (BR_CONFIG_FILE).
//
// Параметры задачи передаются в стиле GitHub/Gitea Actions (INPUT_*),
// служебные настройки — через BR_*. Переменные окружения имеют приоритет
// над значениями из файла.
package config

// InputParams — параметры действия в формате INPUT_* как их передаёт раннер.
// Все значения строковые; разбор в типизированные поля Config выполняет Load.
type InputParams struct {
	GHAAPIURL       string `yaml:"apiUrl" env:"INPUT_APIURL" env-default:"https://api.github.com"`
	GHAAccessToken  string `yaml:"accessToken" env:"INPUT_ACCESSTOKEN"`
	GHARepository   string `yaml:"repository" env:"INPUT_REPOSITORY"`
	GHACommand      string `yaml:"command" env:"INPUT_COMMAND" env-default:"help"`
	GHAIssueNumber  string `yaml:"issueNumber" env:"INPUT_ISSUENUMBER"`
	GHAIssueNumbers string `yaml:"issueNumbers" env:"INPUT_ISSUENUMBERS"`
	GHATitle        string `yaml:"title" env:"INPUT_TITLE"`
	GHABody         string `yaml:"body" env:"INPUT_BODY"`
	GHAAssignee     string `yaml:"assignee" env:"INPUT_ASSIGNEE"`
	GHAState        string `yaml:"state" env:"INPUT_STATE" env-default:"open"`
	GHALabels       string `yaml:"labels" env:"INPUT_LABELS"`
	GHAIssueJSON    string `yaml:"issueJson" env:"INPUT_ISSUEJSON"`
	GHARaw          string `yaml:"raw" env:"INPUT_RAW" env-default:"false"`
	GHABulkPolicy   string `yaml:"bulkPolicy" env:"INPUT_BULKPOLICY" env-default:"stop"`
}

// Config — полная конфигурация запуска.
type Config struct {
	Input InputParams `yaml:"input"`

	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`

	// OutputFormat — формат результата команды: "json" или "text".
	OutputFormat string `yaml:"outputFormat" env:"BR_OUTPUT_FORMAT" env-default:"text"`

	// ShowProgress включает индикатор прогресса пакетных команд (в stderr).
	// По умолчанию true, см. newConfig.
	ShowProgress bool `yaml:"showProgress" env:"BR_SHOW_PROGRESS"`

	// Поля ниже вычисляются из Input при загрузке.

	Command     string   `yaml:"-"`
	APIURL      string   `yaml:"-"`
	AccessToken string   `yaml:"-"`
	Owner       string   `yaml:"-"`
	Repo        string   `yaml:"-"`
	IssueNumber int64    `yaml:"-"`
	IssueNums   []int64  `yaml:"-"`
	Labels      []string `yaml:"-"`
	Raw         bool     `yaml:"-"`
	BulkPolicy  string   `yaml:"-"`
}

// Repository возвращает "owner/repo".
func (cfg *Config) Repository() string {
	if cfg.Owner == "" && cfg.Repo == "" {
		return ""
	}
	return cfg.Owner + "/" + cfg.Repo
}
