package gemini

import "errors"

var (
	// ErrNotConfigured возвращается, если не задан API ключ
	ErrNotConfigured = errors.New("gemini client: api key is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gemini client: internal error")

	// ErrRequestFailed возвращается, если запрос к модели завершился ошибкой
	ErrRequestFailed = errors.New("gemini client: request failed")
)
