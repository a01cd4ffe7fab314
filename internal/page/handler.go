package page

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"pet-care-info/internal/domain/care"
	"pet-care-info/internal/domain/dataset"
	"pet-care-info/internal/domain/facts"
	"pet-care-info/internal/platform/logger"
	"pet-care-info/internal/ports/images"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:embed templates/*.html
var templateFS embed.FS

// Query params de la página.
const (
	ParamCare      = "care"
	ParamFact      = "fact"
	ParamCarePath  = "care_path"
	ParamFactsPath = "facts_path"
)

var pageTemplate = template.Must(
	template.New("page").
		Funcs(template.FuncMap{"selector": selectorFor}).
		ParseFS(templateFS, "templates/*.html"),
)

type Handler struct {
	care      *care.Service
	facts     *facts.Service
	resolver  images.Resolver
	pathInput bool
	redact    func(string) string
	log       logger.Logger
}

type Options struct {
	Care     *care.Service
	Facts    *facts.Service
	Resolver images.Resolver

	// AllowPathInput habilita care_path / facts_path (ALLOW_PATH_INPUT).
	AllowPathInput bool

	// Redact limpia una referencia antes de escribirla en el HTML (passwords de DSN).
	// nil => se muestra tal cual.
	Redact func(string) string
	Logger logger.Logger
}

func NewHandler(opts Options) *Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	redact := opts.Redact
	if redact == nil {
		redact = func(ref string) string { return ref }
	}
	return &Handler{
		care:      opts.Care,
		facts:     opts.Facts,
		resolver:  opts.Resolver,
		pathInput: opts.AllowPathInput,
		redact:    redact,
		log:       log,
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.index)
}

// index es un ciclo completo: carga ambos datasets, aplica las selecciones y renderiza.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	renderID := uuid.NewString()
	log := logger.FromContext(r.Context(), h.log).With(map[string]any{"render_id": renderID})
	ctx := logger.NewContext(r.Context(), log)

	careRef := h.pathRef(q.Get(ParamCarePath), h.care.Ref())
	factsRef := h.pathRef(q.Get(ParamFactsPath), h.facts.Ref())

	st := State{
		CareSel:   dataset.Select(q.Get(ParamCare)),
		FactSel:   dataset.Select(q.Get(ParamFact)),
		PathInput: h.pathInput,
	}
	// la vista solo ve refs redactadas; la real queda del lado del server
	st.Care.Ref = h.redact(careRef)
	st.Care.Table, st.Care.Err = h.care.LoadFrom(ctx, careRef)
	st.Facts.Ref = h.redact(factsRef)
	st.Facts.Table, st.Facts.Err = h.facts.LoadFrom(ctx, factsRef)

	for name, err := range map[string]error{"care": st.Care.Err, "facts": st.Facts.Err} {
		if err != nil {
			log.Warn("dataset unavailable", map[string]any{"dataset": name, "error": err.Error()})
		}
	}

	view := Render(ctx, st, h.resolver)
	view.RenderID = renderID

	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "page", view); err != nil {
		log.Error("page render failed", map[string]any{"error": err.Error()})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	log.Debug("page rendered", map[string]any{
		"care_status":  string(view.Care.Status),
		"facts_status": string(view.Facts.Status),
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// pathRef elige la referencia a cargar. Sin path input, o con el campo vacío, usa la
// configurada. Si el campo trae la configurada ya redactada (vuelve en el submit), también.
func (h *Handler) pathRef(input, configured string) string {
	v := strings.TrimSpace(input)
	if !h.pathInput || v == "" || v == h.redact(configured) {
		return configured
	}
	return v
}

// selector es lo que consume el template "selector". Keep lleva el estado
// del otro panel como hidden inputs, para que un submit no lo pierda.
type selector struct {
	Name        string
	Label       string
	Placeholder string
	Options     []Option
	Error       string
	PathInput   bool
	PathName    string
	Ref         string
	Keep        map[string]string
}

func selectorFor(name string, v View) selector {
	s := selector{
		Name:        name,
		Placeholder: v.Placeholder,
		PathInput:   v.PathInput,
		Keep:        map[string]string{},
	}

	switch name {
	case ParamFact:
		s.Label = "Choose a pet for facts:"
		s.Options, s.Error = v.Facts.Options, v.Facts.Error
		s.PathName, s.Ref = ParamFactsPath, v.Facts.Ref
		keep(s.Keep, ParamCare, v.Care.Selected)
		if v.PathInput {
			keep(s.Keep, ParamCarePath, v.Care.Ref)
		}
	default:
		s.Label = "Choose a pet:"
		s.Options, s.Error = v.Care.Options, v.Care.Error
		s.PathName, s.Ref = ParamCarePath, v.Care.Ref
		keep(s.Keep, ParamFact, v.Facts.Selected)
		if v.PathInput {
			keep(s.Keep, ParamFactsPath, v.Facts.Ref)
		}
	}
	return s
}

func keep(m map[string]string, name, value string) {
	if value != "" {
		m[name] = value
	}
}
