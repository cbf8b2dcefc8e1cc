package command

import (
	"fmt"
	"io"

	apperrors "sdg-knowledge/internal/errors"
	"sdg-knowledge/internal/logging"
	"sdg-knowledge/internal/render"
)

// Report prints the user-facing lines for err to w. Errors the user cannot
// act on are logged and sent to Sentry.
func Report(w io.Writer, err error, command []string) {
	if err == nil {
		return
	}
	if !apperrors.Expected(err) {
		logging.LogError("command_failed", err, map[string]interface{}{
			"command": command,
		})
	}
	for _, msg := range apperrors.UserMessages(err) {
		fmt.Fprintln(w, render.Error(msg))
	}
}
