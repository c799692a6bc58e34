package create_booking

import (
	"time"

	"github.com/m04kA/SMC-LuxeBook/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ServiceID     string           // ID услуги
	Date          types.DateString // Дата записи
	Time          types.TimeString // Время слота (например, "10:00")
	CustomerName  string           // Имя клиента (обязательно)
	CustomerPhone string           // Телефон клиента (обязательно)
	Notes         string           // Пожелания (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID            string
	ServiceID     string
	ServiceName   string  // Снимок названия услуги
	ServicePrice  float64 // Снимок цены услуги
	CustomerName  string
	CustomerPhone string
	Date          types.DateString
	Time          types.TimeString
	Status        string
	Notes         string
	CreatedAt     time.Time
}
