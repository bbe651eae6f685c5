package controllers

import "time"

// Navigator moves the user to another page (see common.Page*).
type Navigator interface {
	Navigate(page string)
}

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Viewport scrolls the edit form into view.
type Viewport interface {
	ScrollToTop()
}

// UserSlot displays the signed-in user's name and role badge.
type UserSlot interface {
	ShowUser(name, role string)
}

// ImageView displays the profile image and owns the file-input control.
type ImageView interface {
	ShowImage(url string)
	ClearSelection()
	SetUploadEnabled(enabled bool)
}

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler schedules on the runtime timer.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
