package controllers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shivua6263/policy/internal/client/client"
	"github.com/shivua6263/policy/internal/client/models"
	"github.com/shivua6263/policy/internal/client/services"
	"github.com/shivua6263/policy/internal/logging"
)

const requiredFieldsMessage = "Please fill in all required fields"

// ResourceOptions carries the collaborators of a Resource.
type ResourceOptions struct {
	Confirmer  Confirmer
	Viewport   Viewport
	Scheduler  Scheduler
	Logger     logging.Logger
	MessageTTL time.Duration
}

// Resource is the list/create/update/delete controller of one entity type.
//
// The list is replaced on every successful fetch and refetched after every
// successful mutation. The draft is reset after successful mutations and kept
// after failed ones. Only one save or delete runs at a time; a second one
// returns ErrBusy without a network call.
type Resource struct {
	def     models.Definition
	svc     services.ResourceService
	confirm Confirmer
	view    Viewport
	log     logging.Logger
	ttl     time.Duration
	status  *statusBoard

	mu        sync.Mutex
	items     []models.Record
	draft     models.Record
	editingID string
	busy      bool
}

func NewResource(def models.Definition, svc services.ResourceService, opts ResourceOptions) *Resource {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = RealScheduler{}
	}
	return &Resource{
		def:     def,
		svc:     svc,
		confirm: opts.Confirmer,
		view:    opts.Viewport,
		log:     opts.Logger.With("entity", def.Name),
		ttl:     opts.MessageTTL,
		status:  newStatusBoard(opts.Scheduler),
		items:   []models.Record{},
		draft:   def.NewDraft(),
	}
}

func (r *Resource) Definition() models.Definition { return r.def }

// Load resets the draft and fetches the list.
func (r *Resource) Load(ctx context.Context) error {
	r.Reset()
	return r.List(ctx)
}

// List fetches the collection. On failure the previous list is kept and an
// error message is set.
func (r *Resource) List(ctx context.Context) error {
	items, err := r.svc.List(ctx, r.def.Path)
	if err != nil {
		r.log.Error(ctx, "list failed", "error", err)
		r.status.fail(fmt.Sprintf("Error loading %s: %s", r.def.Plural, client.AsFailure(err).Detail()))
		return err
	}

	r.mu.Lock()
	r.items = items
	r.mu.Unlock()

	r.log.Debug(ctx, "list loaded", "count", len(items))
	return nil
}

// Save creates the draft, or updates the record being edited. Missing
// required fields block the call.
func (r *Resource) Save(ctx context.Context) error {
	r.mu.Lock()
	if r.busy {
		r.mu.Unlock()
		return ErrBusy
	}
	if missing := r.def.Missing(r.draft); len(missing) > 0 {
		r.mu.Unlock()
		r.status.fail(requiredFieldsMessage)
		r.log.Warn(ctx, "save blocked", "missing", missing)
		return fmt.Errorf("%w: missing %v", ErrInvalidInput, missing)
	}
	r.busy = true
	draft := r.draft.Clone()
	id := r.editingID
	r.mu.Unlock()

	verb, past := "creating", "created"
	var err error
	if id != "" {
		verb, past = "updating", "updated"
		_, err = r.svc.Update(ctx, r.def.Path, id, draft)
	} else {
		_, err = r.svc.Create(ctx, r.def.Path, draft)
	}

	r.mu.Lock()
	r.busy = false
	r.mu.Unlock()

	if err != nil {
		r.log.Error(ctx, "save failed", "id", id, "error", err)
		r.status.fail(fmt.Sprintf("Error %s %s: %s", verb, r.def.Noun, client.AsFailure(err).Detail()))
		return err
	}

	r.log.Info(ctx, "saved", "id", id, "action", past)
	r.status.success(fmt.Sprintf("%s %s successfully!", r.def.Title, past), r.ttl)
	r.resetDraft()
	_ = r.List(ctx)
	return nil
}

// Edit copies rec into the draft and routes the next Save to an update.
func (r *Resource) Edit(rec models.Record) {
	id, _ := rec.ID()

	r.mu.Lock()
	r.draft = rec.Clone()
	r.editingID = id
	r.mu.Unlock()

	if r.view != nil {
		r.view.ScrollToTop()
	}
}

// EditByID edits the list entry with the given id.
func (r *Resource) EditByID(id string) bool {
	r.mu.Lock()
	var found models.Record
	for _, it := range r.items {
		if itID, ok := it.ID(); ok && itID == id {
			found = it
			break
		}
	}
	r.mu.Unlock()

	if found == nil {
		return false
	}
	r.Edit(found)
	return true
}

// Delete removes the record after confirmation. It returns false when the
// user declined.
func (r *Resource) Delete(ctx context.Context, id string) (bool, error) {
	if !r.confirm.Confirm(fmt.Sprintf("Are you sure you want to delete this %s?", r.def.Noun)) {
		return false, nil
	}

	r.mu.Lock()
	if r.busy {
		r.mu.Unlock()
		return false, ErrBusy
	}
	r.busy = true
	r.mu.Unlock()

	err := r.svc.Delete(ctx, r.def.Path, id)

	r.mu.Lock()
	r.busy = false
	r.mu.Unlock()

	if err != nil {
		r.log.Error(ctx, "delete failed", "id", id, "error", err)
		r.status.fail(fmt.Sprintf("Error deleting %s: %s", r.def.Noun, client.AsFailure(err).Detail()))
		return true, err
	}

	r.log.Info(ctx, "deleted", "id", id)
	r.status.success(fmt.Sprintf("%s deleted successfully!", r.def.Title), r.ttl)
	_ = r.List(ctx)
	return true, nil
}

// SetField sets one draft field. An empty value removes the field.
func (r *Resource) SetField(name string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := value.(string); ok && s == "" {
		delete(r.draft, name)
		return
	}
	r.draft[name] = value
}

// Reset discards the draft and any error message.
func (r *Resource) Reset() {
	r.resetDraft()
	r.status.clearError()
}

func (r *Resource) resetDraft() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draft = r.def.NewDraft()
	r.editingID = ""
}

// Draft returns a copy of the draft.
func (r *Resource) Draft() models.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draft.Clone()
}

// Editing returns the id of the record being edited.
func (r *Resource) Editing() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.editingID, r.editingID != ""
}

// Items returns a copy of the list.
func (r *Resource) Items() []models.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Record, len(r.items))
	for i, it := range r.items {
		out[i] = it.Clone()
	}
	return out
}

func (r *Resource) Status() Message { return r.status.get() }

// Close cancels the pending message auto-clear.
func (r *Resource) Close() { r.status.close() }
