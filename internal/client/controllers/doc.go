// Package controllers implements the interactive state of the client: the
// auth gate in front of protected pages, the per-entity CRUD resources, the
// login/signup flow and the profile image flow.
//
// Controllers are UI-agnostic. They talk to the screen through the small
// interfaces in ui.go and schedule delayed work (message auto-clear, delayed
// navigation) through a Scheduler so that tests can fire timers by hand.
// Every controller owning timers has a Close method that cancels them.
package controllers
