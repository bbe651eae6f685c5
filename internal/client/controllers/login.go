package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/shivua6263/policy/internal/client/client"
	"github.com/shivua6263/policy/internal/client/services"
	"github.com/shivua6263/policy/internal/client/session"
	"github.com/shivua6263/policy/internal/common"
	"github.com/shivua6263/policy/internal/logging"
)

// Mode selects the visible form of the login page.
type Mode int

const (
	ModeLogin Mode = iota
	ModeSignup
)

func (m Mode) String() string {
	if m == ModeSignup {
		return "signup"
	}
	return "login"
}

const (
	msgFillAllFields     = "Please fill in all fields"
	msgInvalidLogin      = "Invalid email or password"
	msgConnection        = "Unable to connect to server. Please check your internet connection."
	msgGeneric           = "An error occurred. Please try again."
	msgLoginSuccess      = "Login successful!"
	msgPasswordMismatch  = "Passwords do not match"
	msgAcceptTerms       = "Please agree to the terms and conditions"
	msgPasswordTooShort  = "Password must be at least 6 characters"
	msgSignupSuccess     = "Account created successfully! Please login."
	msgSignupUnavailable = "Unable to create account. Please try again."

	minPasswordLength = 6
)

// LoginForm is the login form content. TabScoped keeps the session for
// the current process only.
type LoginForm struct {
	Email     string
	Password  string
	TabScoped bool
}

// SignupForm is the signup form content.
type SignupForm struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	AcceptTerms     bool
}

// signupFieldLabels orders the server field errors shown after a failed signup.
var signupFieldLabels = []struct{ field, label string }{
	{"email", "Email"},
	{"phone_number", "Phone"},
	{"name", "Name"},
	{"password", "Password"},
}

// LoginOptions carries the collaborators of a LoginFlow.
type LoginOptions struct {
	Navigator     Navigator
	Scheduler     Scheduler
	Logger        logging.Logger
	RedirectDelay time.Duration
	ResetDelay    time.Duration
}

// LoginFlow drives the login/signup page for the customer and agent roles.
type LoginFlow struct {
	auth   services.AuthService
	store  *session.Store
	nav    Navigator
	sched  Scheduler
	log    logging.Logger
	status *statusBoard

	redirectDelay time.Duration
	resetDelay    time.Duration

	mu     sync.Mutex
	mode   Mode
	role   string
	login  LoginForm
	signup SignupForm
	busy   bool
	gen    uint64
	timers []Timer
}

func NewLoginFlow(auth services.AuthService, store *session.Store, opts LoginOptions) *LoginFlow {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = RealScheduler{}
	}
	return &LoginFlow{
		auth:          auth,
		store:         store,
		nav:           opts.Navigator,
		sched:         opts.Scheduler,
		log:           opts.Logger.With("component", "login"),
		status:        newStatusBoard(opts.Scheduler),
		redirectDelay: opts.RedirectDelay,
		resetDelay:    opts.ResetDelay,
		role:          session.RoleCustomer,
	}
}

// CheckExistingSession navigates to the landing page when a session exists.
func (l *LoginFlow) CheckExistingSession(ctx context.Context) bool {
	if _, ok := l.store.Get(ctx); !ok {
		return false
	}
	l.nav.Navigate(common.PageLanding)
	return true
}

// SetMode switches between the login and signup forms, clearing both forms
// and the message.
func (l *LoginFlow) SetMode(m Mode) {
	l.mu.Lock()
	l.cancelTimersLocked()
	l.mode = m
	l.resetFormsLocked()
	l.mu.Unlock()
	l.status.clear()
}

// SetRole selects the customer or agent endpoints and returns to login mode.
func (l *LoginFlow) SetRole(role string) error {
	if role != session.RoleCustomer && role != session.RoleAgent {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}
	l.mu.Lock()
	l.cancelTimersLocked()
	l.role = role
	l.mode = ModeLogin
	l.resetFormsLocked()
	l.mu.Unlock()
	l.status.clear()
	return nil
}

func (l *LoginFlow) resetFormsLocked() {
	l.login = LoginForm{}
	l.signup = SignupForm{}
}

func (l *LoginFlow) Mode() Mode {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mode
}

func (l *LoginFlow) Role() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.role
}

// LoginForm returns the last submitted login form.
func (l *LoginFlow) LoginForm() LoginForm {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.login
}

// SignupForm returns the last submitted signup form.
func (l *LoginFlow) SignupForm() SignupForm {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.signup
}

func (l *LoginFlow) Status() Message { return l.status.get() }

func (l *LoginFlow) begin() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.busy {
		return "", ErrBusy
	}
	l.busy = true
	return l.role, nil
}

func (l *LoginFlow) end() {
	l.mu.Lock()
	l.busy = false
	l.mu.Unlock()
}

// Login authenticates with the selected role. On success the session is
// stored and the landing page opens after the redirect delay.
func (l *LoginFlow) Login(ctx context.Context, form LoginForm) error {
	l.mu.Lock()
	l.cancelTimersLocked()
	l.login = form
	l.mu.Unlock()

	if strings.TrimSpace(form.Email) == "" || form.Password == "" {
		l.status.fail(msgFillAllFields)
		return ErrInvalidInput
	}

	role, err := l.begin()
	if err != nil {
		return err
	}
	defer l.end()

	l.status.clear()
	resp, err := l.auth.Login(ctx, role, strings.TrimSpace(form.Email), form.Password)
	if err != nil {
		l.log.Warn(ctx, "login failed", "role", role, "error", err)
		l.status.fail(loginFailureText(err))
		return err
	}

	rec := session.NewRecord(resp, role)
	save := l.store.Set
	if form.TabScoped {
		save = l.store.SetTabScoped
	}
	if err := save(ctx, rec); err != nil {
		l.log.Error(ctx, "failed to store session", "error", err)
		l.status.fail(msgGeneric)
		return err
	}

	text := msgLoginSuccess
	if m, ok := resp["message"].(string); ok && m != "" {
		text = m
	}
	l.status.success(text, 0)
	l.log.Info(ctx, "logged in", "role", role)

	l.schedule(l.redirectDelay, func(uint64) {
		l.nav.Navigate(common.PageLanding)
	})
	return nil
}

func loginFailureText(err error) string {
	f := client.AsFailure(err)
	switch {
	case f.Status == http.StatusUnauthorized:
		return msgInvalidLogin
	case errors.Is(err, client.ErrUnavailable):
		return msgConnection
	case f.Message != "":
		return f.Message
	default:
		return msgGeneric
	}
}

// Signup validates the form locally, creates the account and returns to
// login mode after the reset delay.
func (l *LoginFlow) Signup(ctx context.Context, form SignupForm) error {
	l.mu.Lock()
	l.cancelTimersLocked()
	l.signup = form
	l.mu.Unlock()

	if msg := validateSignup(form); msg != "" {
		l.status.fail(msg)
		return ErrInvalidInput
	}

	role, err := l.begin()
	if err != nil {
		return err
	}
	defer l.end()

	l.status.clear()
	resp, err := l.auth.Signup(ctx, role, services.SignupRequest{
		Name:        strings.TrimSpace(form.Name),
		Email:       strings.TrimSpace(form.Email),
		PhoneNumber: strings.TrimSpace(form.Phone),
		Password:    form.Password,
	})
	if err != nil {
		l.log.Warn(ctx, "signup failed", "role", role, "error", err)
		l.status.fail(signupFailureText(err))
		return err
	}

	text := msgSignupSuccess
	if m, ok := resp["message"].(string); ok && m != "" {
		text = m
	}
	l.status.success(text, 0)
	l.log.Info(ctx, "account created", "role", role)

	l.schedule(l.resetDelay, func(gen uint64) {
		l.mu.Lock()
		if l.gen != gen {
			l.mu.Unlock()
			return
		}
		l.mode = ModeLogin
		l.signup = SignupForm{}
		l.mu.Unlock()
		l.status.clear()
	})
	return nil
}

func validateSignup(f SignupForm) string {
	switch {
	case strings.TrimSpace(f.Name) == "", strings.TrimSpace(f.Email) == "",
		strings.TrimSpace(f.Phone) == "", f.Password == "":
		return requiredFieldsMessage
	case f.Password != f.ConfirmPassword:
		return msgPasswordMismatch
	case !f.AcceptTerms:
		return msgAcceptTerms
	case utf8.RuneCountInString(f.Password) < minPasswordLength:
		return msgPasswordTooShort
	}
	return ""
}

func signupFailureText(err error) string {
	f := client.AsFailure(err)
	if errors.Is(err, client.ErrUnavailable) {
		return msgConnection
	}
	for _, fl := range signupFieldLabels {
		if msg, ok := f.FieldError(fl.field); ok {
			return fl.label + ": " + msg
		}
	}
	switch {
	case f.Message != "":
		return f.Message
	case f.HasResponse():
		return msgSignupUnavailable
	default:
		return msgGeneric
	}
}

// schedule runs f after d unless the flow is closed or the user acts again
// first. f receives the generation it was scheduled under.
func (l *LoginFlow) schedule(d time.Duration, f func(gen uint64)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	gen := l.gen
	t := l.sched.AfterFunc(d, func() {
		l.mu.Lock()
		closed := l.gen != gen
		l.mu.Unlock()
		if !closed {
			f(gen)
		}
	})
	l.timers = append(l.timers, t)
}

// cancelTimersLocked drops pending redirects and form resets.
func (l *LoginFlow) cancelTimersLocked() {
	l.gen++
	for _, t := range l.timers {
		t.Stop()
	}
	l.timers = nil
}

// Close cancels pending redirects, form resets and message clears.
func (l *LoginFlow) Close() {
	l.mu.Lock()
	l.cancelTimersLocked()
	l.mu.Unlock()
	l.status.close()
}
