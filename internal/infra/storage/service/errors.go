package service

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service.repository: service not found")

	// ErrStorage возвращается при ошибках чтения/записи коллекции
	ErrStorage = errors.New("service.repository: storage error")
)
