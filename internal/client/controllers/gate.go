package controllers

import (
	"context"

	"github.com/shivua6263/policy/internal/client/session"
	"github.com/shivua6263/policy/internal/common"
	"github.com/shivua6263/policy/internal/logging"
)

const logoutPrompt = "Are you sure you want to logout?"

// Gate protects pages that need a signed-in user.
type Gate struct {
	store   *session.Store
	nav     Navigator
	slot    UserSlot
	confirm Confirmer
	log     logging.Logger
}

func NewGate(store *session.Store, nav Navigator, slot UserSlot, confirm Confirmer, log logging.Logger) *Gate {
	if log == nil {
		log = logging.Nop()
	}
	return &Gate{store: store, nav: nav, slot: slot, confirm: confirm, log: log.With("component", "gate")}
}

// Enter must run before any other page initialization. Without a session it
// navigates to the login page once and returns false; the caller must then
// stop. With a session it shows the user's first name and role and returns
// the record.
func (g *Gate) Enter(ctx context.Context) (session.Record, bool) {
	rec, ok := g.store.Get(ctx)
	if !ok {
		g.log.Info(ctx, "no session, redirecting to login")
		g.nav.Navigate(common.PageLogin)
		return nil, false
	}
	g.slot.ShowUser(rec.FirstName(), rec.RoleLabel())
	return rec, true
}

// Logout asks for confirmation, clears the session and navigates to the
// login page. It reports whether the user was logged out.
func (g *Gate) Logout(ctx context.Context) (bool, error) {
	if !g.confirm.Confirm(logoutPrompt) {
		return false, nil
	}
	if err := g.store.Clear(ctx); err != nil {
		g.log.Error(ctx, "logout failed", "error", err)
		return false, err
	}
	g.nav.Navigate(common.PageLogin)
	return true, nil
}

// Current returns the signed-in user without touching the UI.
func (g *Gate) Current(ctx context.Context) (session.Record, bool) {
	return g.store.Get(ctx)
}
