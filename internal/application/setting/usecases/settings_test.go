package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/setting"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

func noopLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockSettingRepo struct {
	upserted []*setting.Setting
	listFn   func(ctx context.Context) ([]*setting.Setting, error)
}

func (m *mockSettingRepo) Upsert(ctx context.Context, s *setting.Setting) error {
	m.upserted = append(m.upserted, s)
	return nil
}

func (m *mockSettingRepo) GetByKey(ctx context.Context, key string) (*setting.Setting, error) {
	return nil, setting.ErrNotFound
}

func (m *mockSettingRepo) List(ctx context.Context) ([]*setting.Setting, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

type mockActivityRepo struct {
	logs []*activity.Log
}

func (m *mockActivityRepo) Create(ctx context.Context, log *activity.Log) error {
	m.logs = append(m.logs, log)
	return log.SetID(uint(len(m.logs)))
}

func (m *mockActivityRepo) ListRecent(ctx context.Context, limit int) ([]*activity.Log, error) {
	return m.logs, nil
}

func (m *mockActivityRepo) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*activity.Log, int64, error) {
	return m.logs, int64(len(m.logs)), nil
}

func (m *mockActivityRepo) DeleteByUserID(ctx context.Context, userID uint) error { return nil }

func TestUpdateSettingsUseCase_UpsertsInSortedOrder(t *testing.T) {
	settingRepo := &mockSettingRepo{}
	activityRepo := &mockActivityRepo{}
	uc := NewUpdateSettingsUseCase(settingRepo, activityRepo, noopLogger())

	err := uc.Execute(context.Background(), UpdateSettingsCommand{
		ActorID: 1,
		Settings: map[string]string{
			"site_name":        "Campus IT Support",
			"maintenance_mode": "false",
			"tickets_per_page": "25",
		},
	})

	require.NoError(t, err)
	require.Len(t, settingRepo.upserted, 3)
	assert.Equal(t, "maintenance_mode", settingRepo.upserted[0].Key())
	assert.Equal(t, "site_name", settingRepo.upserted[1].Key())
	assert.Equal(t, "tickets_per_page", settingRepo.upserted[2].Key())

	require.Len(t, activityRepo.logs, 1)
	assert.Equal(t, activity.ActionSettingsUpdate, activityRepo.logs[0].Action())
}

func TestUpdateSettingsUseCase_EmptySubmissionRejected(t *testing.T) {
	uc := NewUpdateSettingsUseCase(&mockSettingRepo{}, &mockActivityRepo{}, noopLogger())

	err := uc.Execute(context.Background(), UpdateSettingsCommand{ActorID: 1})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateSettingsUseCase_BlankKeyRejected(t *testing.T) {
	settingRepo := &mockSettingRepo{}
	uc := NewUpdateSettingsUseCase(settingRepo, &mockActivityRepo{}, noopLogger())

	err := uc.Execute(context.Background(), UpdateSettingsCommand{
		ActorID:  1,
		Settings: map[string]string{"  ": "oops"},
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, settingRepo.upserted)
}

func TestGetSettingsUseCase(t *testing.T) {
	s, err := setting.NewSetting("site_name", "Campus IT Support")
	require.NoError(t, err)

	settingRepo := &mockSettingRepo{
		listFn: func(ctx context.Context) ([]*setting.Setting, error) {
			return []*setting.Setting{s}, nil
		},
	}
	uc := NewGetSettingsUseCase(settingRepo, noopLogger())

	settings, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.Equal(t, "site_name", settings[0].Key())
}
