package validator

import (
	"fmt"
	"strings"

	api "github.com/click2025-space/clickers-workspace/internal/generated"
	"github.com/click2025-space/clickers-workspace/internal/model"
)

const maxContentLength = 500

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	if strings.TrimSpace(req.Channel) == "" {
		return fmt.Errorf("channel is required")
	}

	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(req.Content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	// An attachment-encoded content must decode into a complete reference;
	// anything else is stored as plain text.
	return model.ValidateBody(model.ParseBody(req.Content))
}
