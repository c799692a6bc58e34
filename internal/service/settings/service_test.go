package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LuxeBook/internal/domain"
	"github.com/m04kA/SMC-LuxeBook/internal/infra/kv/memstore"
	settingsRepo "github.com/m04kA/SMC-LuxeBook/internal/infra/storage/settings"
	"github.com/m04kA/SMC-LuxeBook/internal/service/settings/models"
	"github.com/m04kA/SMC-LuxeBook/pkg/logger"
)

func newTestService() (*Service, *settingsRepo.Repository) {
	repo := settingsRepo.NewRepository(memstore.NewStore(), logger.NewNop())
	return NewService(repo, logger.NewNop()), repo
}

func TestService_GetDefaults(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.SettingsResponse{
		Name:             "LuxeBook Sanctuary",
		OpenTime:         "09:00",
		CloseTime:        "20:00",
		HasBookableHours: true,
	}, resp)
}

func TestService_SaveReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	resp, err := svc.Save(ctx, &models.SettingsRequest{Name: " Night Owl ", OpenTime: "8:30", CloseTime: "22:00"})
	require.NoError(t, err)
	assert.Equal(t, "08:30", resp.OpenTime)

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.BusinessSettings{Name: "Night Owl", OpenTime: "08:30", CloseTime: "22:00"}, stored)
}

func TestService_SaveInvertedHoursIsAllowed(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Save(context.Background(), &models.SettingsRequest{Name: "Spa", OpenTime: "20:00", CloseTime: "09:00"})
	require.NoError(t, err)
	assert.False(t, resp.HasBookableHours)
}

func TestService_SaveValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.SettingsRequest
	}{
		{name: "nil", req: nil},
		{name: "empty name", req: &models.SettingsRequest{Name: "", OpenTime: "09:00", CloseTime: "20:00"}},
		{name: "bad open", req: &models.SettingsRequest{Name: "Spa", OpenTime: "9am", CloseTime: "20:00"}},
		{name: "bad close", req: &models.SettingsRequest{Name: "Spa", OpenTime: "09:00", CloseTime: "25:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, repo := newTestService()

			_, err := svc.Save(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)

			stored, err := repo.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.DefaultSettings(), stored)
		})
	}
}
