package models

import (
	appointmentModels "github.com/m04kA/SMC-LuxeBook/internal/service/appointments/models"
)

// InsightStatus состояние фонового инсайта
type InsightStatus string

const (
	InsightAbsent  InsightStatus = "absent"
	InsightLoading InsightStatus = "loading"
	InsightReady   InsightStatus = "ready"
)

// InsightResponse текущее состояние инсайта
type InsightResponse struct {
	Status InsightStatus `json:"status"`
	Text   string        `json:"text,omitempty"`
}

// DashboardResponse ответ панели администратора
type DashboardResponse struct {
	Appointments   []appointmentModels.AppointmentResponse `json:"appointments"` // Новые сверху
	TotalCount     int                                     `json:"totalCount"`
	ConfirmedCount int                                     `json:"confirmedCount"`
	Revenue        float64                                 `json:"revenue"` // Выручка по подтвержденным записям
	Insight        InsightResponse                         `json:"insight"`
}
