package controllers

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shivua6263/policy/internal/client/models"
	"github.com/shivua6263/policy/internal/client/services"
)

// manualScheduler records scheduled calls; tests fire them explicitly.
type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped && !t.fired
	t.stopped = true
	return was
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// pending returns the delays of timers that are neither stopped nor fired.
func (s *manualScheduler) pending() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []time.Duration
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			out = append(out, t.d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// fireAll runs every pending timer, including stopped ones when late is set,
// which mimics a callback racing with Stop.
func (s *manualScheduler) fireAll(late bool) {
	s.mu.Lock()
	timers := append([]*manualTimer(nil), s.timers...)
	s.mu.Unlock()
	for _, t := range timers {
		if t.fired || (t.stopped && !late) {
			continue
		}
		t.fired = true
		t.f()
	}
}

type fakeNavigator struct{ pages []string }

func (n *fakeNavigator) Navigate(page string) { n.pages = append(n.pages, page) }

type fakeConfirmer struct {
	answer  bool
	prompts []string
}

func (c *fakeConfirmer) Confirm(prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}

type fakeViewport struct{ scrolls int }

func (v *fakeViewport) ScrollToTop() { v.scrolls++ }

type fakeSlot struct {
	name, role string
	calls      int
}

func (s *fakeSlot) ShowUser(name, role string) {
	s.name, s.role = name, role
	s.calls++
}

type fakeImageView struct {
	images  []string
	cleared int
	enabled []bool
}

func (v *fakeImageView) ShowImage(url string)          { v.images = append(v.images, url) }
func (v *fakeImageView) ClearSelection()               { v.cleared++ }
func (v *fakeImageView) SetUploadEnabled(enabled bool) { v.enabled = append(v.enabled, enabled) }

type call struct {
	method, path, id string
	draft            models.Record
}

type fakeResourceService struct {
	items     []models.Record
	listErr   error
	createErr error
	updateErr error
	deleteErr error

	calls []call
	// onSave runs inside Create/Update before returning.
	onSave func()
}

func (f *fakeResourceService) count(method string) int {
	n := 0
	for _, c := range f.calls {
		if c.method == method {
			n++
		}
	}
	return n
}

func (f *fakeResourceService) List(_ context.Context, path string) ([]models.Record, error) {
	f.calls = append(f.calls, call{method: "list", path: path})
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Record, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeResourceService) Create(_ context.Context, path string, draft models.Record) (models.Record, error) {
	f.calls = append(f.calls, call{method: "create", path: path, draft: draft})
	if f.onSave != nil {
		f.onSave()
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	return draft, nil
}

func (f *fakeResourceService) Update(_ context.Context, path, id string, draft models.Record) (models.Record, error) {
	f.calls = append(f.calls, call{method: "update", path: path, id: id, draft: draft})
	if f.onSave != nil {
		f.onSave()
	}
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return draft, nil
}

func (f *fakeResourceService) Delete(_ context.Context, path, id string) error {
	f.calls = append(f.calls, call{method: "delete", path: path, id: id})
	return f.deleteErr
}

type fakeAuth struct {
	resp map[string]any
	err  error

	logins  []string
	signups []services.SignupRequest
	roles   []string
}

func (a *fakeAuth) Login(_ context.Context, role, email, _ string) (map[string]any, error) {
	a.logins = append(a.logins, email)
	a.roles = append(a.roles, role)
	return a.resp, a.err
}

func (a *fakeAuth) Signup(_ context.Context, role string, req services.SignupRequest) (map[string]any, error) {
	a.signups = append(a.signups, req)
	a.roles = append(a.roles, role)
	return a.resp, a.err
}

type fakeProfileService struct {
	name      string
	getErr    error
	uploadURL string
	uploadErr error

	uploads  int
	lastData string
	lastType string
	lastUser string
}

func (p *fakeProfileService) GetImage(_ context.Context, userID string) (string, error) {
	p.lastUser = userID
	return p.name, p.getErr
}

func (p *fakeProfileService) UploadImage(_ context.Context, userID, dataURL, fileType string) (string, error) {
	p.uploads++
	p.lastUser, p.lastData, p.lastType = userID, dataURL, fileType
	return p.uploadURL, p.uploadErr
}
