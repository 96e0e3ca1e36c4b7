package cli

import (
	"context"
	"fmt"

	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/view"
)

// resetDate updates the sobriety date on the live session copy and the
// stored record, then re-renders the overview. The persisted session cache
// is left untouched, so a restored session shows the old date; this
// divergence mirrors the system being replaced.
func (a *App) resetDate(ctx context.Context) {
	if !a.isSignedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return
	}

	date, err := GetSimpleText(a.reader, "Enter your sobriety date (YYYY-MM-DD)", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	if date == "" {
		return
	}

	if err := a.accounts.ResetSobrietyDate(ctx, a.current, date); err != nil {
		a.log.Error(ctx, "resetting sobriety date failed", "error", err)
		return
	}

	a.renderView(ctx, view.ViewHome)
}

func (a *App) export(ctx context.Context) {
	if !a.isSignedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return
	}

	b, err := a.store.Export()
	if err != nil {
		a.log.Error(ctx, "export failed", "error", err)
		return
	}
	fmt.Fprintln(a.out, string(b))
}

// wipe permanently deletes every collection after confirmation. The session
// cache is a separate medium and survives, as it did in the original.
func (a *App) wipe(ctx context.Context) {
	if !a.isSignedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return
	}

	answer, err := GetSimpleText(a.reader, "Permanently delete all data? (yes/no)", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}

	if err := a.store.Wipe(ctx); err != nil {
		a.log.Error(ctx, "wipe failed", "error", err)
		return
	}
	fmt.Fprintln(a.out, "All data deleted.")
}
