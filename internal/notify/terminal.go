package notify

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/click2025-space/clickers-workspace/internal/model"
)

// TerminalNotifier renders notifications into the client terminal. The BEL
// byte doubles as the audible cue and is written only when a notification
// actually goes out.
type TerminalNotifier struct {
	out     io.Writer
	enabled bool
}

func NewTerminalNotifier(out io.Writer, enabled bool) *TerminalNotifier {
	return &TerminalNotifier{
		out:     out,
		enabled: enabled,
	}
}

func (t *TerminalNotifier) Notify(n model.Notification) error {
	if !t.enabled {
		// Notifications disabled behaves like a denied permission: silent no-op.
		return nil
	}

	line := fmt.Sprintf("[%s] %s: %s",
		color.Cyan.Sprint(n.Tag),
		color.Bold.Sprint(n.Title),
		n.Body,
	)

	if _, err := fmt.Fprintf(t.out, "\a%s\n", line); err != nil {
		return fmt.Errorf("failed to write notification: %w", err)
	}

	return nil
}
