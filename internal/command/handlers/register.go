// Package handlers регистрирует обработчики всех команд apk-issues.
package handlers

import (
	"fmt"

	"github.com/Kargones/apk-issues/internal/command"
	"github.com/Kargones/apk-issues/internal/command/handlers/createissue"
	"github.com/Kargones/apk-issues/internal/command/handlers/getissue"
	"github.com/Kargones/apk-issues/internal/command/handlers/getissues"
	"github.com/Kargones/apk-issues/internal/command/handlers/help"
	"github.com/Kargones/apk-issues/internal/command/handlers/shared"
	"github.com/Kargones/apk-issues/internal/command/handlers/updateissue"
	"github.com/Kargones/apk-issues/internal/command/handlers/updateissues"
	"github.com/Kargones/apk-issues/internal/command/handlers/version"
)

// RegisterAll регистрирует все команды в command registry.
// Повторный вызов возвращает ошибку дублирования.
func RegisterAll(deps shared.Deps) error {
	all := []command.Handler{
		createissue.New(deps),
		createissue.NewFromJSON(deps),
		updateissue.New(deps),
		updateissue.NewFromJSON(deps),
		updateissues.New(deps),
		updateissues.NewFromJSON(deps),
		getissue.New(deps),
		getissues.New(deps),
		version.New(deps),
		help.New(deps),
	}
	for _, h := range all {
		if err := command.Register(h); err != nil {
			return fmt.Errorf("регистрация команды %s: %w", h.Name(), err)
		}
	}
	return nil
}
