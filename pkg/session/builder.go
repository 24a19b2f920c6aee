package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/store"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// ErrNoStore is returned by Edit and Publish on a Builder built without a store.
var ErrNoStore = errors.New("session: no store configured")

// Builder is the single owner of a draft form. It is safe for concurrent use.
type Builder struct {
	cfg   config
	store *store.Store

	mu         sync.Mutex
	form       model.Form
	templateID string
	revision   int64
}

// NewBuilder starts a session on the default empty draft. st may be nil when
// the session is only used for editing.
func NewBuilder(st *store.Store, opts ...Option) *Builder {
	cfg := newConfig(opts)
	return &Builder{
		cfg:   cfg,
		store: st,
		form:  cfg.engine.Reset(),
	}
}

// Engine returns the layout engine bound to this session.
func (b *Builder) Engine() *layout.Engine {
	return b.cfg.engine
}

// Form returns the current draft.
func (b *Builder) Form() model.Form {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.form
}

// TemplateID is the id of the template being edited, empty for a new draft.
func (b *Builder) TemplateID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.templateID
}

// Update applies fn to the current draft. The draft only changes when fn
// returns a nil error; rejections are logged and returned unchanged.
func (b *Builder) Update(fn func(model.Form) (model.Form, error)) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	next, err := fn(b.form)
	if err != nil {
		if rejection, ok := layout.AsRejection(err); ok {
			b.cfg.logger.Debug("layout change rejected", "op", rejection.Op, "reason", rejection.Reason)
		} else {
			b.cfg.logger.Debug("layout change failed", "err", err)
		}
		return err
	}
	b.form = next
	return nil
}

// Reset discards the draft and starts over with an empty form.
func (b *Builder) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.form = b.cfg.engine.Reset()
	b.templateID = ""
	b.revision = 0
}

// Edit loads a published template into the session. A later Publish
// overwrites that template.
func (b *Builder) Edit(ctx context.Context, templateID string) error {
	if b.store == nil {
		return ErrNoStore
	}
	tpl, err := b.store.LoadTemplate(ctx, templateID)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.form = tpl.Config
	b.form.ID = tpl.ID
	b.form.ViewType = model.ViewModeEdit
	b.templateID = tpl.ID
	b.revision = tpl.Revision
	b.cfg.logger.Debug("editing template", "id", tpl.ID, "revision", tpl.Revision)
	return nil
}

// Publish checks the draft and saves it as a template. New drafts get a fresh
// id; edited templates keep theirs and must still be at the revision they
// were loaded with.
func (b *Builder) Publish(ctx context.Context) (model.Template, error) {
	if b.store == nil {
		return model.Template{}, ErrNoStore
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := validation.CheckPublish(b.form); err != nil {
		b.cfg.logger.Debug("publish rejected", "reason", err)
		return model.Template{}, err
	}

	id := b.templateID
	if id == "" {
		id = b.cfg.newID()
	}
	form := b.form
	form.ID = id
	form.ViewType = model.ViewModeCreate

	saved, err := b.store.SaveTemplate(ctx, model.Template{
		ID:       id,
		Title:    form.FormLabel,
		Config:   form,
		Revision: b.revision,
	})
	if err != nil {
		return model.Template{}, fmt.Errorf("session: publish %s: %w", id, err)
	}

	b.templateID = saved.ID
	b.revision = saved.Revision
	b.form.ID = saved.ID
	b.cfg.logger.Info("template published", "id", saved.ID, "title", saved.Title, "revision", saved.Revision)
	return saved, nil
}
