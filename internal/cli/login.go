package cli

import (
	"context"
	"fmt"

	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/models"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/view"
)

// login signs a pseudonym in. There is no password and no check that the
// pseudonym "belongs" to anyone: an unseen name gets a fresh account and an
// existing one has its role overwritten with the selection.
func (a *App) login(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter pseudonym", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	roleStr, err := GetSimpleText(a.reader, "Role (participant/sponsor/facilitator/admin)", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	role, err := models.ParseRole(roleStr)
	if err != nil {
		fmt.Fprintln(a.out, "Unknown role:", roleStr)
		return
	}

	acct, err := a.accounts.SignIn(ctx, username, role)
	if err != nil {
		a.log.Error(ctx, "sign-in failed", "error", err)
		return
	}

	a.current = acct
	a.renderView(ctx, view.ViewHome)
}

func (a *App) logout(ctx context.Context) {
	if !a.isSignedIn() {
		return
	}
	if err := a.accounts.SignOut(ctx); err != nil {
		a.log.Error(ctx, "sign-out failed", "error", err)
		return
	}
	a.current = nil
	fmt.Fprintln(a.out, "Signed out.")
}
