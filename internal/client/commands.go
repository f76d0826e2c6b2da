// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/MKhiriev/go-save-keeper/internal/service"
	"github.com/MKhiriev/go-save-keeper/models"
)

const helpText = `commands:
  register <username> <email>   create an account (asks for a password)
  login <username|email>        log in and load the saved game
  logout                        forget the current account
  new                           start a fresh game
  walk [steps]                  travel through the arena
  fight                         defeat a monster
  stats                         show the current game
  save                          seal and upload the game
  load                          download and open the saved game
  sync                          reconcile the cached progression now
  leaderboard                   show the ranking
  version                       show client and server versions
  quit                          exit
`

// execute runs one command and reports whether the session should end.
func (a *App) execute(ctx context.Context, command string, args []string) bool {
	switch command {
	case "help", "?":
		a.printf(helpText)
	case "register":
		a.register(ctx, args)
	case "login":
		a.login(ctx, args)
	case "logout":
		a.logout()
	case "new":
		a.setGame(models.NewGameState())
		a.printf("new game started\n")
	case "walk":
		a.walk(args)
	case "fight":
		a.fight()
	case "stats":
		a.stats()
	case "save":
		a.save(ctx)
	case "load":
		a.load(ctx)
	case "sync":
		a.sync(ctx)
	case "leaderboard", "top":
		a.leaderboard(ctx)
	case "version":
		a.version(ctx)
	case "quit", "exit":
		return true
	default:
		a.printf("unknown command %q, type \"help\"\n", command)
	}

	return false
}

func (a *App) register(ctx context.Context, args []string) {
	if len(args) != 2 {
		a.printf("usage: register <username> <email>\n")
		return
	}

	password, err := a.readPassword(ctx, "password: ")
	if err != nil {
		a.printf("could not read password: %v\n", err)
		return
	}

	result := a.services.AuthService.Register(ctx, models.Credentials{
		Username: args[0],
		Email:    args[1],
		Password: password,
	})
	if !result.Success {
		a.printf("registration failed: %s\n", result.Error)
		return
	}

	a.setSession(session{
		owner:    result.Account.Username,
		password: password,
		game:     models.NewGameState(),
	})
	a.printf("welcome, %s\n", result.Account.Username)
}

func (a *App) login(ctx context.Context, args []string) {
	if len(args) != 1 {
		a.printf("usage: login <username|email>\n")
		return
	}

	password, err := a.readPassword(ctx, "password: ")
	if err != nil {
		a.printf("could not read password: %v\n", err)
		return
	}

	result := a.services.AuthService.Login(ctx, models.Credentials{
		Username: args[0],
		Password: password,
	})
	if !result.Success {
		a.printf("login failed: %s\n", result.Error)
		return
	}

	a.setSession(session{
		owner:    result.Account.Username,
		password: password,
		game:     models.NewGameState(),
	})
	a.printf("logged in as %s\n", result.Account.Username)
	if p := result.Account.Progression; p != nil {
		a.printf("server progression: %d kills, %d distance\n", p.MonstersKilled, p.DistanceTraveled)
	}

	a.load(ctx)
}

func (a *App) logout() {
	a.server.SetToken("")
	a.setSession(session{game: models.NewGameState()})
	a.printf("logged out\n")
}

func (a *App) walk(args []string) {
	var steps int32 = 1
	if len(args) > 0 {
		n, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil || n <= 0 {
			a.printf("usage: walk [steps], steps must be a positive number up to %d\n", math.MaxInt32)
			return
		}
		steps = int32(n)
	}

	a.mu.Lock()
	if a.session.game.DistanceTraveled > math.MaxInt32-steps {
		a.mu.Unlock()
		a.printf("distance cannot grow past %d\n", math.MaxInt32)
		return
	}
	a.session.game.DistanceTraveled += steps
	a.session.game.Turn++
	a.mu.Unlock()

	a.stats()
}

func (a *App) fight() {
	a.mu.Lock()
	if a.session.game.MonstersKilled == math.MaxInt32 {
		a.mu.Unlock()
		a.printf("kills cannot grow past %d\n", math.MaxInt32)
		return
	}
	a.session.game.MonstersKilled++
	a.session.game.Turn++
	a.mu.Unlock()

	a.stats()
}

func (a *App) stats() {
	s := a.snapshot()
	owner := s.owner
	if owner == "" {
		owner = "(not logged in)"
	}
	a.printf("%s: turn %d, %d kills, %d distance, health %d\n",
		owner, s.game.Turn, s.game.MonstersKilled, s.game.DistanceTraveled, s.game.Arena.Player.Health)
}

func (a *App) save(ctx context.Context) {
	s := a.snapshot()
	if err := a.services.GameService.SaveGame(ctx, s.owner, s.password, s.game); err != nil {
		a.printf("save failed: %s\n", describe(err))
		return
	}
	a.printf("game saved\n")
}

func (a *App) load(ctx context.Context) {
	s := a.snapshot()
	game, rec, err := a.services.GameService.LoadGame(ctx, s.owner, s.password)
	if err != nil {
		a.printf("load failed: %s\n", describe(err))
		return
	}

	a.setGame(game)
	switch {
	case rec.State == models.Unreconciled:
		a.printf("game loaded, server progression unavailable\n")
	case rec.Action == models.ActionAdoptServer:
		a.printf("game loaded, server progression adopted\n")
	default:
		a.printf("game loaded\n")
	}
	a.stats()
}

func (a *App) sync(ctx context.Context) {
	rec, err := a.services.GameService.SyncCachedProgression(ctx, a.currentOwner())
	switch {
	case errors.Is(err, service.ErrSignatureInvalid):
		a.printf("local progression cache failed verification and was discarded\n")
	case err != nil:
		a.printf("sync failed: %s\n", describe(err))
	case rec.ShouldPush():
		a.printf("cached progression pushed to the server\n")
	default:
		a.printf("nothing to sync\n")
	}
}

func (a *App) leaderboard(ctx context.Context) {
	entries, err := a.services.LeaderboardService.Leaderboard(ctx)
	if err != nil {
		a.printf("leaderboard unavailable: %s\n", describe(err))
		return
	}
	if len(entries) == 0 {
		a.printf("leaderboard is empty\n")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPLAYER\tKILLS\tDISTANCE\tINTEGRITY")
	for i, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n", i+1, e.Username, e.MonstersKilled, e.DistanceTraveled, e.IntegrityLabel())
	}
	_ = w.Flush()
}

func (a *App) version(ctx context.Context) {
	client := a.build.Info()
	a.printf("client: %s (%s, %s)\n", client.Version, client.Date, client.Commit)

	server, err := a.server.Version(ctx)
	if err != nil {
		a.printf("server: unavailable\n")
		a.logger.Warn().Err(err).Msg("server version request failed")
		return
	}
	a.printf("server: %s (%s, %s)\n", server.Version, server.Date, server.Commit)
}

func describe(err error) string {
	if errors.Is(err, service.ErrNotLoggedIn) {
		return "log in first"
	}
	return err.Error()
}
