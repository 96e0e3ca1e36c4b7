package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/common"
)

func (a *App) register(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Choose a pseudonym", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	date, err := GetSimpleText(a.reader, "Sobriety start date (YYYY-MM-DD, empty for today)", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	if _, err := a.accounts.Register(ctx, username, date); err != nil {
		if errors.Is(err, common.ErrPseudonymTaken) {
			fmt.Fprintln(a.out, "Pseudonym taken. Please choose another.")
			return
		}
		a.log.Error(ctx, "registration failed", "error", err)
		return
	}

	fmt.Fprintln(a.out, "Account created. Please login.")
}
