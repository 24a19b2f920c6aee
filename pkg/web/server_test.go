package web_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/store"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
	"github.com/goliatone/go-formbuilder/pkg/web"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	ctx := testsupport.Context()
	clock := func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) }
	st := store.New(store.NewMemoryKV(), store.WithClock(clock))

	tpl, err := st.SaveTemplate(ctx, testsupport.SampleTemplate("contact-form-0001"))
	if err != nil {
		t.Fatalf("save template: %v", err)
	}
	resp := model.Response{ResponseID: "resp-0000000001", Data: map[string]any{"name": "Ada Lovelace", "plan": "Pro", "age": 36.0}}
	if _, err := st.SaveResponse(ctx, tpl.ID, resp, tpl.Config); err != nil {
		t.Fatalf("save response: %v", err)
	}

	srv, err := web.New(st, web.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (int, string, string) {
	t.Helper()

	res, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return res.StatusCode, res.Header.Get("Content-Type"), string(body)
}

func assertContains(t *testing.T, body string, parts ...string) {
	t.Helper()
	for _, part := range parts {
		if !strings.Contains(body, part) {
			t.Errorf("body missing %q\n%s", part, body)
		}
	}
}

func TestListForms(t *testing.T) {
	ts := newServer(t)
	status, contentType, body := get(t, ts, "/forms")
	if status != http.StatusOK || contentType != "text/html; charset=utf-8" {
		t.Fatalf("status = %d, content type = %q", status, contentType)
	}
	assertContains(t, body,
		"<title>Forms</title>",
		`<a href="/forms/contact-form-0001">Contact</a>`,
		"contac...m-0001",
		`<td>5</td>`,
		`<a href="/forms/contact-form-0001/responses">1</a>`,
		"2024-05-01 09:30",
	)
}

func TestPreviewForm(t *testing.T) {
	ts := newServer(t)
	status, contentType, body := get(t, ts, "/forms/contact-form-0001")
	if status != http.StatusOK || contentType != "text/html; charset=utf-8" {
		t.Fatalf("status = %d, content type = %q", status, contentType)
	}
	assertContains(t, body, `data-mode="create"`, ">Submit</button>", "<summary>Contact details</summary>")

	if status, _, _ := get(t, ts, "/forms/missing"); status != http.StatusNotFound {
		t.Fatalf("missing form status = %d", status)
	}
}

func TestFormSchema(t *testing.T) {
	ts := newServer(t)
	status, contentType, body := get(t, ts, "/forms/contact-form-0001/schema")
	if status != http.StatusOK || contentType != "application/json" {
		t.Fatalf("status = %d, content type = %q", status, contentType)
	}
	var doc struct {
		Type     string         `json:"type"`
		Title    string         `json:"title"`
		Required []string       `json:"required"`
		Props    map[string]any `json:"properties"`
	}
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		t.Fatalf("decode schema: %v\n%s", err, body)
	}
	if doc.Type != "object" || doc.Title != "Contact" || len(doc.Props) != 5 {
		t.Fatalf("schema = %+v", doc)
	}
	if diff := cmp.Diff([]string{"name", "email"}, doc.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
}

func TestListResponses(t *testing.T) {
	ts := newServer(t)
	status, _, body := get(t, ts, "/forms/contact-form-0001/responses")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	assertContains(t, body,
		"<h1>Contact</h1>",
		"<td>Ada Lovelace</td>",
		"resp-0...000001",
		`href="/forms/contact-form-0001/responses/resp-0000000001?mode=edit"`,
	)
}

func TestShowResponse(t *testing.T) {
	ts := newServer(t)

	status, _, body := get(t, ts, "/forms/contact-form-0001/responses/resp-0000000001")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	assertContains(t, body, `data-mode="view"`, `value="Ada Lovelace"`, " disabled>", `<option value="Pro" selected>`)
	if strings.Contains(body, "<button") {
		t.Fatalf("view mode must not render a submit button")
	}

	status, _, body = get(t, ts, "/forms/contact-form-0001/responses/resp-0000000001?mode=edit")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	assertContains(t, body, `data-mode="edit"`, `value="36"`, ">Save Changes</button>")

	if status, _, _ := get(t, ts, "/forms/contact-form-0001/responses/resp-0000000001?mode=bogus"); status != http.StatusBadRequest {
		t.Fatalf("bogus mode status = %d", status)
	}
	if status, _, _ := get(t, ts, "/forms/contact-form-0001/responses/nope"); status != http.StatusNotFound {
		t.Fatalf("missing response status = %d", status)
	}
}

func TestHealthAndAssets(t *testing.T) {
	ts := newServer(t)
	if status, _, body := get(t, ts, "/healthz"); status != http.StatusOK || body != "ok" {
		t.Fatalf("healthz = %d %q", status, body)
	}
	if status, _, body := get(t, ts, "/assets/formbuilder.css"); status != http.StatusOK || !strings.Contains(body, ".fb-form") {
		t.Fatalf("stylesheet = %d", status)
	}
}
