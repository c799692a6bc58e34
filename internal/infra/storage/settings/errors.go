package settings

import "errors"

// ErrStorage возвращается при ошибках чтения/записи настроек
var ErrStorage = errors.New("settings.repository: storage error")
