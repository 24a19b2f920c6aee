package session

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/store"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// Responder validates and stores responses to published templates.
type Responder struct {
	cfg   config
	store *store.Store
}

// NewResponder builds a Responder over st.
func NewResponder(st *store.Store, opts ...Option) *Responder {
	return &Responder{cfg: newConfig(opts), store: st}
}

// Ruleset compiles the validation rules of a template.
func (r *Responder) Ruleset(ctx context.Context, templateID string) (model.Template, validation.Ruleset, error) {
	tpl, err := r.store.LoadTemplate(ctx, templateID)
	if err != nil {
		return model.Template{}, validation.Ruleset{}, err
	}
	return tpl, validation.Compile(tpl.Config), nil
}

// Submit validates values against the template and stores them. An empty
// responseID creates a new response; otherwise the stored response with that
// id is updated. Validation failures return a *validation.SubmissionError and
// nothing is written.
func (r *Responder) Submit(ctx context.Context, templateID, responseID string, values map[string]any) (model.Response, error) {
	tpl, rules, err := r.Ruleset(ctx, templateID)
	if err != nil {
		return model.Response{}, err
	}

	data, err := rules.Validate(values)
	if err != nil {
		if submission, ok := validation.AsSubmissionError(err); ok {
			r.cfg.logger.Debug("submission rejected", "template", templateID, "fields", len(submission.Fields))
		}
		return model.Response{}, err
	}

	resp := model.Response{ResponseID: responseID, Data: data}
	if responseID == "" {
		resp.ResponseID = r.cfg.newID()
		resp.CreatedAt = r.cfg.now()
	} else if _, err := r.store.LoadResponse(ctx, templateID, responseID); err != nil {
		return model.Response{}, err
	}

	saved, err := r.store.SaveResponse(ctx, tpl.ID, resp, tpl.Config)
	if err != nil {
		return model.Response{}, fmt.Errorf("session: submit %s: %w", templateID, err)
	}
	r.cfg.logger.Info("response saved", "template", tpl.ID, "response", saved.ResponseID)
	return saved, nil
}

// Delete removes a stored response.
func (r *Responder) Delete(ctx context.Context, templateID, responseID string) error {
	if err := r.store.DeleteResponse(ctx, templateID, responseID); err != nil {
		return err
	}
	r.cfg.logger.Info("response deleted", "template", templateID, "response", responseID)
	return nil
}
