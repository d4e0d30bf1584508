// Package help реализует команду help: список зарегистрированных команд
// и основных переменных окружения.
package help

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Kargones/apk-issues/internal/command"
	"github.com/Kargones/apk-issues/internal/command/handlers/shared"
	"github.com/Kargones/apk-issues/internal/config"
	"github.com/Kargones/apk-issues/internal/constants"
	"github.com/Kargones/apk-issues/internal/pkg/output"
)

// Data содержит информацию обо всех доступных командах.
type Data struct {
	Commands []CommandInfo `json:"commands"`
}

// CommandInfo описывает одну команду.
type CommandInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Handler обрабатывает команду help.
type Handler struct {
	deps shared.Deps
}

// New создаёт обработчик help.
func New(deps shared.Deps) *Handler {
	return &Handler{deps: deps}
}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	return constants.ActHelp
}

// Description возвращает описание команды для вывода в help.
func (h *Handler) Description() string {
	return "Вывод списка доступных команд"
}

// Execute собирает список команд из реестра и выводит его.
func (h *Handler) Execute(ctx context.Context, cfg *config.Config) error {
	data := buildData()

	if cfg == nil || !strings.EqualFold(cfg.OutputFormat, output.FormatJSON) {
		return data.writeText(h.deps.Out())
	}
	return shared.NewReport(ctx, h.deps, cfg, constants.ActHelp).Success(data, nil)
}

func buildData() *Data {
	data := &Data{}
	for name, handler := range command.All() {
		data.Commands = append(data.Commands, CommandInfo{
			Name:        name,
			Description: handler.Description(),
		})
	}
	sort.Slice(data.Commands, func(i, j int) bool {
		return data.Commands[i].Name < data.Commands[j].Name
	})
	return data
}

// writeText выводит команды с выравниванием по самому длинному имени.
func (d *Data) writeText(w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("apk-issues — работа с задачами GitHub/Gitea из CI\n")
	sb.WriteString("\nКоманды (INPUT_COMMAND):\n")

	maxLen := 0
	for _, cmd := range d.Commands {
		if len(cmd.Name) > maxLen {
			maxLen = len(cmd.Name)
		}
	}
	for _, cmd := range d.Commands {
		fmt.Fprintf(&sb, "  %-*s  %s\n", maxLen, cmd.Name, cmd.Description)
	}

	sb.WriteString("\nОпции:\n")
	sb.WriteString("  INPUT_RAW=true             Ответ трекера без разбора JSON\n")
	sb.WriteString("  INPUT_BULKPOLICY=continue  Пакетное обновление не останавливается на ошибке\n")
	sb.WriteString("  BR_OUTPUT_FORMAT=json      Машиночитаемый вывод\n")
	sb.WriteString("  BR_SHOW_PROGRESS=false     Без индикатора прогресса пакетных команд\n")
	sb.WriteString("  BR_CONFIG_FILE=path.yaml   Параметры из YAML файла\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
