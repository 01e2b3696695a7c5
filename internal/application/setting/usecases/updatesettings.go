package usecases

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"campusdesk/internal/domain/activity"
	"campusdesk/internal/domain/setting"
	apperrors "campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type UpdateSettingsCommand struct {
	ActorID   uint
	Settings  map[string]string
	IPAddress string
	UserAgent string
}

type UpdateSettingsUseCase struct {
	settingRepo  setting.Repository
	activityRepo activity.Repository
	logger       logger.Interface
}

func NewUpdateSettingsUseCase(
	settingRepo setting.Repository,
	activityRepo activity.Repository,
	logger logger.Interface,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingRepo:  settingRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Execute upserts each submitted key. Keys are processed in sorted order
// so repeated submissions behave the same way.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, cmd UpdateSettingsCommand) error {
	if len(cmd.Settings) == 0 {
		return apperrors.NewValidationError("no settings submitted")
	}

	keys := make([]string, 0, len(cmd.Settings))
	for key := range cmd.Settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		s, err := setting.NewSetting(key, cmd.Settings[key])
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := uc.settingRepo.Upsert(ctx, s); err != nil {
			uc.logger.Errorw("failed to save setting", "error", err, "key", key)
			return apperrors.NewInternalError("failed to save settings")
		}
	}

	log, err := activity.NewLog(cmd.ActorID, activity.ActionSettingsUpdate,
		fmt.Sprintf("updated settings: %s", strings.Join(keys, ", ")), cmd.IPAddress, cmd.UserAgent)
	if err == nil {
		if err := uc.activityRepo.Create(ctx, log); err != nil {
			uc.logger.Warnw("failed to record settings update", "error", err)
		}
	}

	uc.logger.Infow("settings updated", "actor_id", cmd.ActorID, "keys", keys)
	return nil
}
