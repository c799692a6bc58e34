package get_available_slots

import (
	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/pkg/types"
)

// GenerateSlots генерирует слоты дня с шагом 30 минут от openTime, пока слот строго раньше closeTime.
//
// Слот занят, если есть неотмененная запись ровно на это время (сравнение строк HH:MM).
// Длительность услуги не учитывается: запись на 09:00 на 120 минут не занимает 09:30.
// Функция чистая: передаются записи одной даты, дата не проверяется.
//
// Примеры:
// - 09:00-10:00 → 09:00, 09:30
// - 09:00-09:45 → 09:00, 09:30 (10:00 уже не раньше 09:45)
// - 10:00-09:00 → пусто
func GenerateSlots(openTime, closeTime types.TimeString, appointments []domain.Appointment) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)
	if !openTime.IsValid() || !closeTime.IsValid() {
		return slots
	}

	booked := bookedTimes(appointments)

	current := openTime
	for current.IsBefore(closeTime) {
		slots = append(slots, domain.TimeSlot{
			Time:      current,
			Available: !booked[current],
		})

		next, err := current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			// Вышли за пределы суток
			break
		}
		current = next
	}

	return slots
}

// bookedTimes собирает время всех активных записей
func bookedTimes(appointments []domain.Appointment) map[types.TimeString]bool {
	booked := make(map[types.TimeString]bool, len(appointments))
	for i := range appointments {
		if !appointments[i].IsActive() {
			continue
		}
		booked[appointments[i].Time] = true
	}
	return booked
}
