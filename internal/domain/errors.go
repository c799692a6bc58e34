package domain

import "errors"

var (
	// ErrUnknownStatus возвращается при разборе статуса вне допустимого набора
	ErrUnknownStatus = errors.New("domain: unknown appointment status")

	// ErrUnknownCategory возвращается при разборе категории вне допустимого набора
	ErrUnknownCategory = errors.New("domain: unknown service category")
)
