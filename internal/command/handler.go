// Package command содержит реестр команд apk-issues.
// Команда выбирается по INPUT_COMMAND и выполняется через Handler.
package command

import (
	"context"

	"github.com/Kargones/apk-issues/internal/config"
)

// Handler — обработчик одной команды.
type Handler interface {
	// Name — имя команды в kebab-case, например "get-issue".
	Name() string

	// Description — краткое описание для help.
	Description() string

	// Execute выполняет команду и пишет результат в stdout.
	// Ошибка означает неуспешное выполнение; результат с ошибкой уже выведен.
	Execute(ctx context.Context, cfg *config.Config) error
}
