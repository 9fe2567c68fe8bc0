package cli

import (
	"context"
	"fmt"
)

// getStatus renders the prompt status: current view, user and mode.
func (a *App) getStatus() string {
	s := string(a.nav.Current())
	if cur := a.store.Current(); cur.Authenticated() {
		s += " " + cur.Username
	}
	return fmt.Sprintf("%s (%s)", s, a.Mode())
}

// Root greets the user, starts the connectivity watcher and runs the REPL
// until the user exits or ctx is done.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Blog Pessoal CLI (type 'help' for commands)")

	a.checkOnline(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
