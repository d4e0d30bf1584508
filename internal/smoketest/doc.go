// Package smoketest содержит smoke-тесты системной целостности apk-issues.
//
// Smoke-тесты проверяют:
//   - Регистрацию всех команд в глобальном реестре
//   - Валидность Name() и Description() каждого handler
//   - Уникальность и детерминированность списка команд
//   - Вывод каждой команды против тестового трекера по JSON schema результата
//
// Unit-тесты бизнес-логики находятся в _test.go каждого handler-пакета.
package smoketest
