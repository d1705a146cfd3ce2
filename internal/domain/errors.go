package domain

import "errors"

// Базовые виды ошибок сервиса. Ошибки пакетов services/usecases
// оборачивают один из этих видов, чтобы вызывающий код мог проверять
// категорию через errors.Is, не зная конкретной причины.
var (
	// ErrInvalidInput некорректные или выходящие за допустимый диапазон аргументы
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound запрошенная сущность не существует
	ErrNotFound = errors.New("not found")

	// ErrPreconditionFailed нарушено ограничение состояния (guard) жизненного цикла
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrExternalUnavailable внешний сервис недоступен.
	// Перехватывается на границе recommendation gateway и никогда
	// не доходит до вызывающего кода.
	ErrExternalUnavailable = errors.New("external service unavailable")
)
