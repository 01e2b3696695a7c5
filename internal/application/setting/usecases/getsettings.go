package usecases

import (
	"context"

	"campusdesk/internal/domain/setting"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type GetSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewGetSettingsUseCase(settingRepo setting.Repository, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{settingRepo: settingRepo, logger: logger}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context) ([]*setting.Setting, error) {
	settings, err := uc.settingRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list settings", "error", err)
		return nil, apperrors.NewInternalError("failed to list settings")
	}
	return settings, nil
}
