package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

const (
	// TemplatesKey holds the template map.
	TemplatesKey = "published-forms"
	// ResponsesKey holds the response lists.
	ResponsesKey = "form-responses"
)

// Store reads and writes template and response records over a KV backend.
// Read-modify-write cycles are serialised within the process.
type Store struct {
	kv  KV
	mu  sync.Mutex
	now func() time.Time
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New wraps kv in a Store.
func New(kv KV, opts ...Option) *Store {
	s := &Store{
		kv:  kv,
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Close releases the underlying backend.
func (s *Store) Close() error {
	return s.kv.Close()
}

// LoadTemplates returns every published template keyed by id. A store that
// was never written returns an empty map.
func (s *Store) LoadTemplates(ctx context.Context) (map[string]model.Template, error) {
	templates := make(map[string]model.Template)
	if err := s.read(ctx, TemplatesKey, &templates); err != nil {
		return nil, err
	}
	if templates == nil {
		templates = make(map[string]model.Template)
	}
	return templates, nil
}

// LoadTemplate returns a single template after checking its layout.
func (s *Store) LoadTemplate(ctx context.Context, id string) (model.Template, error) {
	templates, err := s.LoadTemplates(ctx)
	if err != nil {
		return model.Template{}, err
	}
	tpl, ok := templates[id]
	if !ok {
		return model.Template{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	if err := model.CheckStructure(tpl.Config); err != nil {
		return model.Template{}, fmt.Errorf("store: template %s: %w", id, err)
	}
	return tpl, nil
}

// SaveTemplate inserts or replaces the template with tpl.ID. CreatedAt is kept
// from an existing record, UpdatedAt is refreshed and Revision is bumped. A
// non-zero tpl.Revision must match the stored revision.
func (s *Store) SaveTemplate(ctx context.Context, tpl model.Template) (model.Template, error) {
	if tpl.ID == "" {
		return model.Template{}, fmt.Errorf("%w: template", ErrMissingID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	templates, err := s.LoadTemplates(ctx)
	if err != nil {
		return model.Template{}, err
	}

	now := s.now()
	if existing, ok := templates[tpl.ID]; ok {
		if tpl.Revision != 0 && tpl.Revision != existing.Revision {
			return model.Template{}, fmt.Errorf("%w: %s has revision %d, got %d", ErrStaleTemplate, tpl.ID, existing.Revision, tpl.Revision)
		}
		tpl.CreatedAt = existing.CreatedAt
		tpl.Revision = existing.Revision + 1
		tpl.UpdatedAt = now
	} else {
		if tpl.CreatedAt.IsZero() {
			tpl.CreatedAt = now
		}
		tpl.Revision = 1
	}

	templates[tpl.ID] = tpl
	if err := s.write(ctx, TemplatesKey, templates); err != nil {
		return model.Template{}, err
	}
	return tpl, nil
}

// LoadResponses returns every response list keyed by template id.
func (s *Store) LoadResponses(ctx context.Context) (map[string][]model.Response, error) {
	responses := make(map[string][]model.Response)
	if err := s.read(ctx, ResponsesKey, &responses); err != nil {
		return nil, err
	}
	if responses == nil {
		responses = make(map[string][]model.Response)
	}
	return responses, nil
}

// LoadResponse returns one response of a template.
func (s *Store) LoadResponse(ctx context.Context, formID, responseID string) (model.Response, error) {
	responses, err := s.LoadResponses(ctx)
	if err != nil {
		return model.Response{}, err
	}
	for _, resp := range responses[formID] {
		if resp.ResponseID == responseID {
			return resp, nil
		}
	}
	return model.Response{}, fmt.Errorf("%w: %s/%s", ErrResponseNotFound, formID, responseID)
}

// SaveResponse inserts or updates resp within the list of formID. An update
// merges onto the stored record, keeps its CreatedAt and sets UpdatedAt.
// Pretty is rebuilt from the labels of form as it is now.
func (s *Store) SaveResponse(ctx context.Context, formID string, resp model.Response, form model.Form) (model.Response, error) {
	if formID == "" {
		return model.Response{}, fmt.Errorf("%w: form", ErrMissingID)
	}
	if resp.ResponseID == "" {
		return model.Response{}, fmt.Errorf("%w: response", ErrMissingID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.LoadResponses(ctx)
	if err != nil {
		return model.Response{}, err
	}

	list := all[formID]
	now := s.now()
	idx := -1
	for i := range list {
		if list[i].ResponseID == resp.ResponseID {
			idx = i
			break
		}
	}

	if idx >= 0 {
		merged := list[idx]
		if resp.Data != nil {
			merged.Data = resp.Data
		}
		merged.UpdatedAt = now
		resp = merged
	} else if resp.CreatedAt.IsZero() {
		resp.CreatedAt = now
	}
	resp.Pretty = PrettyData(form, resp.Data)

	if idx >= 0 {
		list[idx] = resp
	} else {
		list = append(list, resp)
	}
	all[formID] = list

	if err := s.write(ctx, ResponsesKey, all); err != nil {
		return model.Response{}, err
	}
	return resp, nil
}

// DeleteResponse removes a response. Unknown ids are ignored.
func (s *Store) DeleteResponse(ctx context.Context, formID, responseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.LoadResponses(ctx)
	if err != nil {
		return err
	}
	list := all[formID]
	kept := make([]model.Response, 0, len(list))
	for _, resp := range list {
		if resp.ResponseID != responseID {
			kept = append(kept, resp)
		}
	}
	all[formID] = kept
	return s.write(ctx, ResponsesKey, all)
}

func (s *Store) read(ctx context.Context, key string, dest any) error {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("store: load %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) write(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("store: save %s: %w", key, err)
	}
	return nil
}
