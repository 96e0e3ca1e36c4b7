package cli

import (
	"context"
	"strings"

	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/view"
)

// supportRequest records a support alert and replaces the displayed content
// with the reassurance panel. The notify flag is stored with the alert; no
// message is actually sent anywhere.
func (a *App) supportRequest(ctx context.Context) {
	if !a.isSignedIn() {
		return
	}

	answer, err := GetSimpleText(a.reader, "Notify your sponsor? (y/n)", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	notify := strings.HasPrefix(strings.ToLower(answer), "y")

	if _, err := a.support.Request(ctx, a.current.ID, notify); err != nil {
		a.log.Error(ctx, "recording support request failed", "error", err)
		return
	}

	printContent(a.out, view.SupportConfirmation(notify))
}
