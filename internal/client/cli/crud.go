package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/shivua6263/policy/internal/client/controllers"
	"github.com/shivua6263/policy/internal/client/models"
)

var errUnknownEntity = errors.New("unknown entity")

func (a *App) lookup(entity string) (models.Definition, error) {
	def, ok := models.Lookup(entity)
	if !ok {
		a.printMessage(controllers.Message{Kind: controllers.MessageError, Text: fmt.Sprintf("Unknown entity %q (see 'entities')", entity)})
		return models.Definition{}, errUnknownEntity
	}
	return def, nil
}

// Entities prints the entity names accepted by list/new/edit/delete.
func (a *App) Entities(_ context.Context) error {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTITY\tENDPOINT\tREQUIRED")
	for _, d := range models.Definitions() {
		fmt.Fprintf(tw, "%s\t/%s/\t%s\n", d.Name, d.Path, strings.Join(d.Required, ", "))
	}
	return tw.Flush()
}

// List fetches and prints the collection.
func (a *App) List(ctx context.Context, entity string) error {
	if _, err := a.enter(ctx); err != nil {
		return err
	}
	def, err := a.lookup(entity)
	if err != nil {
		return err
	}
	res := a.resource(def)

	if err := res.List(ctx); err != nil {
		a.printMessage(res.Status())
		return err
	}
	a.printTable(def, res.Items())
	return nil
}

// New starts a create draft for entity.
func (a *App) New(ctx context.Context, entity string) error {
	if _, err := a.enter(ctx); err != nil {
		return err
	}
	def, err := a.lookup(entity)
	if err != nil {
		return err
	}
	res := a.resource(def)
	res.Reset()
	a.setCurrent(res)

	a.printf("New %s. Required: %s\n", def.Noun, strings.Join(def.Required, ", "))
	a.printDraft(res)
	return nil
}

// Edit copies the record with id into the draft.
func (a *App) Edit(ctx context.Context, entity, id string) error {
	if _, err := a.enter(ctx); err != nil {
		return err
	}
	def, err := a.lookup(entity)
	if err != nil {
		return err
	}
	res := a.resource(def)

	if !res.EditByID(id) {
		if err := res.List(ctx); err != nil {
			a.printMessage(res.Status())
			return err
		}
		if !res.EditByID(id) {
			a.printMessage(controllers.Message{Kind: controllers.MessageError, Text: fmt.Sprintf("No %s with id %s", def.Noun, id)})
			return fmt.Errorf("%s %s not found", def.Name, id)
		}
	}
	a.setCurrent(res)

	a.printf("Editing %s %s\n", def.Noun, id)
	a.printDraft(res)
	return nil
}

// Set changes one field of the current draft. An empty value clears it.
func (a *App) Set(ctx context.Context, field, value string) error {
	res, err := a.currentResource(ctx)
	if err != nil {
		return err
	}
	res.SetField(field, value)
	return nil
}

// Draft prints the current draft.
func (a *App) Draft(ctx context.Context) error {
	res, err := a.currentResource(ctx)
	if err != nil {
		return err
	}
	a.printDraft(res)
	return nil
}

// Save submits the current draft and prints the refreshed list.
func (a *App) Save(ctx context.Context) error {
	res, err := a.currentResource(ctx)
	if err != nil {
		return err
	}

	err = res.Save(ctx)
	if errors.Is(err, controllers.ErrBusy) {
		a.printMessage(controllers.Message{Kind: controllers.MessageError, Text: "A request is already in progress"})
		return err
	}
	a.printMessage(res.Status())
	if err != nil {
		return err
	}

	a.setCurrent(nil)
	a.printTable(res.Definition(), res.Items())
	return nil
}

// Cancel discards the current draft.
func (a *App) Cancel(ctx context.Context) error {
	res, err := a.currentResource(ctx)
	if err != nil {
		return err
	}
	res.Reset()
	a.setCurrent(nil)
	a.println("Draft discarded")
	return nil
}

// Delete removes a record after confirmation.
func (a *App) Delete(ctx context.Context, entity, id string) error {
	if _, err := a.enter(ctx); err != nil {
		return err
	}
	def, err := a.lookup(entity)
	if err != nil {
		return err
	}
	res := a.resource(def)

	done, err := res.Delete(ctx, id)
	if !done && err == nil {
		a.println("Cancelled")
		return nil
	}
	a.printMessage(res.Status())
	if err != nil {
		return err
	}
	a.printTable(def, res.Items())
	return nil
}

func (a *App) setCurrent(r *controllers.Resource) {
	a.mu.Lock()
	a.current = r
	a.mu.Unlock()
}

func (a *App) currentResource(ctx context.Context) (*controllers.Resource, error) {
	if _, err := a.enter(ctx); err != nil {
		return nil, err
	}
	a.mu.Lock()
	res := a.current
	a.mu.Unlock()
	if res == nil {
		a.printMessage(controllers.Message{Kind: controllers.MessageError, Text: "Nothing to edit; use 'new' or 'edit' first"})
		return nil, errors.New("no draft")
	}
	return res, nil
}

func (a *App) printDraft(res *controllers.Resource) {
	draft := res.Draft()
	keys := make([]string, 0, len(draft))
	for k := range draft {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	a.outMu.Lock()
	defer a.outMu.Unlock()
	if len(keys) == 0 {
		faintColor.Fprintln(a.out, "  (empty draft)")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(tw, "  %s\t%s\n", k, models.Text(draft[k]))
	}
	_ = tw.Flush()
}

func (a *App) printTable(def models.Definition, items []models.Record) {
	a.outMu.Lock()
	defer a.outMu.Unlock()

	if len(items) == 0 {
		faintColor.Fprintf(a.out, "No %s found\n", def.Plural)
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.ToUpper(strings.Join(def.Columns, "\t")))
	for _, it := range items {
		cells := make([]string, len(def.Columns))
		for i, c := range def.Columns {
			cells[i] = models.Text(it[c])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
}
