package cli

import (
	"context"
	"fmt"

	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/view"
)

// journalAdd composes and saves a reflection, then re-renders the journal.
// "journal hidden" reads the entry without terminal echo. Empty input is
// dropped without comment, matching the behavior being reproduced.
func (a *App) journalAdd(ctx context.Context, args []string) {
	if !a.isSignedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return
	}

	var text string
	var err error
	if len(args) > 0 && args[0] == "hidden" {
		text, err = GetHiddenText("Reflection (input hidden)", a.out)
	} else {
		text, err = GetMultiline(a.reader, "How are you feeling today?", a.out)
	}
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	if err := a.journal.Add(ctx, a.current.ID, text); err != nil {
		a.log.Error(ctx, "saving entry failed", "error", err)
		return
	}

	a.renderView(ctx, view.ViewJournal)
}
