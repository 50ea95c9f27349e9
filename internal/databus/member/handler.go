package member

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/click2025-space/clickers-workspace/internal/config"
	"github.com/click2025-space/clickers-workspace/internal/model"
)

type DBRepo interface {
	UpdateMemberName(ctx context.Context, memberID, name string) error
	UpdateMemberAvatar(ctx context.Context, memberID, avatarURL string) error
	UpdateMemberStatus(ctx context.Context, memberID, status string) error
}

// Handler applies member-directory updates from the platform user topic to
// the members table.
type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	var update model.ParticipantUpdate
	if err := json.Unmarshal(in, &update); err != nil {
		logger.Error(fmt.Sprintf("failed to decode member update: %v", err))
		return
	}

	if update.ID == "" {
		logger.Error("member update without id, skipping")
		return
	}

	if update.Name != nil {
		if err := h.repository.UpdateMemberName(ctx, update.ID, *update.Name); err != nil {
			logger.Error(fmt.Sprintf("failed to update member name: %v", err))
		}
	}

	if update.AvatarURL != nil {
		if err := h.repository.UpdateMemberAvatar(ctx, update.ID, *update.AvatarURL); err != nil {
			logger.Error(fmt.Sprintf("failed to update member avatar: %v", err))
		}
	}

	if update.Status != nil {
		if err := h.repository.UpdateMemberStatus(ctx, update.ID, *update.Status); err != nil {
			logger.Error(fmt.Sprintf("failed to update member status: %v", err))
		}
	}
}
