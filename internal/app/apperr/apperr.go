package apperr

import (
	"errors"
	"fmt"
)

// Kind — категория ошибки предметной области
type Kind int

const (
	Validation    Kind = iota // некорректные входные данные
	NotFound                  // сущность не найдена
	Authorization             // нет прав на операцию
	Conflict                  // операция нарушает связность данных
)

// Error — ошибка с категорией; обработчики переводят категорию в HTTP статус
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...interface{}) *Error {
	return New(Validation, format, args...)
}

func NotFoundf(format string, args ...interface{}) *Error {
	return New(NotFound, format, args...)
}

func Authorizationf(format string, args ...interface{}) *Error {
	return New(Authorization, format, args...)
}

func Conflictf(format string, args ...interface{}) *Error {
	return New(Conflict, format, args...)
}

// KindOf возвращает категорию ошибки и признак того, что это ошибка домена
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}

// Is проверяет, что ошибка относится к данной категории
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
