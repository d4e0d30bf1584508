// Package constants содержит константы apk-issues: имена команд,
// версию формата вывода и значения по умолчанию.
package constants

// Команды. Имена в kebab-case, передаются через INPUT_COMMAND.
const (
	// ActCreateIssue — создание задачи из INPUT_TITLE/BODY/ASSIGNEE/LABELS.
	ActCreateIssue = "create-issue"
	// ActCreateIssueFromJSON — создание задачи из JSON-объекта INPUT_ISSUEJSON.
	ActCreateIssueFromJSON = "create-issue-from-json"
	ActUpdateIssue         = "update-issue"
	ActUpdateIssueFromJSON = "update-issue-from-json"
	// ActUpdateIssues — обновление нескольких задач из INPUT_ISSUENUMBERS одинаковыми полями.
	ActUpdateIssues         = "update-issues"
	ActUpdateIssuesFromJSON = "update-issues-from-json"
	ActGetIssue             = "get-issue"
	ActGetIssues            = "get-issues"
	ActVersion              = "version"
	ActHelp                 = "help"
)

// APIVersion — версия формата JSON вывода команд.
const APIVersion = "v1"

// Значения по умолчанию.
const (
	// DefaultAPIURL — базовый URL API трекера задач.
	DefaultAPIURL = "https://api.github.com"

	// DefaultIssueState — состояние задачи при обновлении, если не задано.
	DefaultIssueState = "open"

	// BulkPolicyStop и BulkPolicyContinue — значения INPUT_BULKPOLICY.
	BulkPolicyStop     = "stop"
	BulkPolicyContinue = "continue"
)

// Коды завершения процесса.
const (
	ExitOK             = 0
	ExitUnknownCommand = 2
	ExitConfigError    = 5
	ExitCommandFailed  = 8
)

// RequiresTracker сообщает, нужен ли команде доступ к трекеру задач
// (токен, репозиторий, URL API).
func RequiresTracker(command string) bool {
	switch command {
	case ActVersion, ActHelp, "":
		return false
	default:
		return true
	}
}
