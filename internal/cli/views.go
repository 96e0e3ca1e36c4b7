package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/view"
)

func (a *App) nav() {
	if !a.isSignedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return
	}
	for _, v := range view.Nav(a.current.Role) {
		fmt.Fprintln(a.out, " -", v)
	}
}

func (a *App) open(ctx context.Context, args []string) {
	if !a.isSignedIn() {
		fmt.Fprintln(a.out, "Sign in first.")
		return
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: open <view>")
		return
	}

	v, ok := view.ParseViewID(args[0])
	if !ok {
		fmt.Fprintln(a.out, "Unknown view:", args[0])
		return
	}

	a.renderView(ctx, v)
}

func (a *App) renderView(ctx context.Context, v view.ViewID) {
	printContent(a.out, a.views.Render(ctx, *a.current, v))
}

// printContent renders a content description. The no-content variant prints
// nothing at all; that silence is the intended behavior for view ids a role
// has no panel for.
func printContent(w io.Writer, c view.Content) {
	if c.Empty {
		return
	}

	fmt.Fprintf(w, "== %s ==\n", c.Title)
	for _, s := range c.Sections {
		if s.Heading != "" {
			fmt.Fprintf(w, "-- %s --\n", s.Heading)
		}
		for _, line := range s.Lines {
			fmt.Fprintln(w, line)
		}
	}
}
