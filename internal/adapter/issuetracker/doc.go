// Package issuetracker — клиент подмножества REST API трекера задач
// (совместимого с GitHub/Gitea поверхностью repos/{owner}/{repo}/issues).
//
// Клиент умеет создавать задачи, обновлять их по одной и пакетно,
// получать одну задачу или список. Каждая операция — один синхронный
// HTTP запрос с фиксированным набором заголовков и авторизацией
// "Authorization: token {token}":
//
//	POST  /repos/{owner}/{repo}/issues         ожидается 201
//	PATCH /repos/{owner}/{repo}/issues/{id}    ожидается 201
//	GET   /repos/{owner}/{repo}/issues         ожидается 200
//	GET   /repos/{owner}/{repo}/issues/{id}    ожидается 200
//
// Ответ возвращается в одном из двух вариантов (ResponseMode):
// разобранный JSON (ModeDecoded) или исходный текст тела (ModeRaw).
//
// # Ошибки
//
// ValidationError возвращается до любого сетевого вызова (пустой title,
// отсутствующий номер задачи). TransportError возвращается при
// неожиданном статусе ответа или ошибке транспорта и содержит код
// статуса, тело ответа и причину. Клиент не завершает процесс;
// для совместимости со старым поведением есть WithLegacyTermination.
//
// Коды ошибок: ErrIssueConnect, ErrIssueAPI, ErrIssueAuth, ErrIssueNotFound,
// ErrIssueTimeout, ErrIssueDecode, ErrIssueValidation. Для проверок
// используйте IsNotFoundError, IsAuthError и другие helper функции.
//
// # Пакетное обновление
//
// UpdateIssues и UpdateIssuesFromMap выполняют запросы строго
// последовательно в порядке входных номеров. Поведение при ошибке
// задаётся BulkPolicy: остановиться на первой (по умолчанию) или
// выполнить все и собрать ошибки.
//
// # Тестирование
//
// Пакет issuetrackertest содержит эхо-сервер, записывающий запросы,
// и MockClient с функциональными полями.
package issuetracker
