package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/common"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/view"
)

func (a *App) status() string {
	if a.current == nil {
		return ""
	}
	return fmt.Sprintf("(%s/%s) ", a.current.Username, a.current.Role)
}

// Root runs the REPL until EOF or exit. Command handlers report their own
// failures; the loop itself never aborts on one.
func (a *App) Root(ctx context.Context) {
	if isTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(a.out, "RecoverPeer portal (type 'help' for commands)")
	}

	// A cached session survives restarts, as a page reload would.
	if acct, err := a.accounts.Restore(ctx); err == nil {
		a.current = acct
		a.renderView(ctx, view.ViewHome)
	} else if !errors.Is(err, common.ErrNoSession) {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "rp %s> ", a.status())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "nav":
			a.nav()
		case "open":
			a.open(ctx, args)
		case "journal":
			a.journalAdd(ctx, args)
		case "support":
			a.supportRequest(ctx)
		case "resetdate":
			a.resetDate(ctx)
		case "export":
			a.export(ctx)
		case "wipe":
			a.wipe(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isSignedIn() {
		fmt.Fprintln(a.out, "Available commands: nav, open <view>, journal [hidden], support, resetdate, export, wipe, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, exit")
	}
}
