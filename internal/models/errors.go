package models

import "errors"

// Категории ошибок. Конкретные ошибки оборачивают их через fmt.Errorf("%w").
var (
	// ErrInvalidArgument означает некорректный ввод пользователя или вызывающего кода
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrGeneration означает сбой источника случайных данных
	ErrGeneration = errors.New("generation failure")
	// ErrEncoding возвращается, если не удалось сериализовать пакет
	ErrEncoding = errors.New("encoding failure")
)
