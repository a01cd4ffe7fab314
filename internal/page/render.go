package page

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"pet-care-info/internal/domain/care"
	"pet-care-info/internal/domain/dataset"
	"pet-care-info/internal/domain/facts"
	"pet-care-info/internal/platform/logger"
	"pet-care-info/internal/ports/images"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

const (
	Title  = "Pet Care Information System"
	Header = "Find the best care routine for your pet!"
	Footer = "Customize your pet care routine with this handy tool!"

	SelectPlaceholder = "-- Select --"

	msgSelectCare   = "Please select a pet type."
	msgSelectFacts  = "Please select a pet to see fun facts."
	msgImageMissing = "Image not found. Please check the file path."
)

// Status del panel: NoSelection -> Found | NotFound, o Halted si el dataset no cargó.
type Status string

const (
	StatusNoSelection Status = "no_selection"
	StatusFound       Status = "found"
	StatusNotFound    Status = "not_found"
	StatusHalted      Status = "halted"
)

// CareState es el resultado de cargar el dataset de cuidados en este ciclo.
type CareState struct {
	Ref   string
	Table care.Table
	Err   error
}

type FactsState struct {
	Ref   string
	Table facts.Table
	Err   error
}

// State es todo lo que necesita Render. Se arma por request y no se modifica.
type State struct {
	Care      CareState
	Facts     FactsState
	CareSel   dataset.Selection
	FactSel   dataset.Selection
	PathInput bool
}

type Option struct {
	Value    string
	Selected bool
}

type Field struct {
	Label string
	Value string
}

type ImageView struct {
	Src     template.URL
	Caption string
	Warning string
}

type NumberedFact struct {
	N    int
	Text string
}

type CarePanel struct {
	Status   Status
	Ref      string
	Error    string
	Info     string
	Options  []Option
	Selected string
	Heading  string
	Image    *ImageView
	Fields   []Field
	Details  template.HTML
}

type FactsPanel struct {
	Status   Status
	Ref      string
	Error    string
	Info     string
	Options  []Option
	Selected string
	Heading  string
	Image    *ImageView
	Facts    []NumberedFact
}

type View struct {
	Title       string
	Header      string
	Footer      string
	Placeholder string
	PathInput   bool
	RenderID    string
	Care        CarePanel
	Facts       FactsPanel
}

// Render arma la vista para un ciclo. Lo único con I/O es resolver (imágenes);
// una falla de imagen solo agrega un aviso, el resto del panel se muestra igual.
func Render(ctx context.Context, st State, resolver images.Resolver) View {
	return View{
		Title:       Title,
		Header:      Header,
		Footer:      Footer,
		Placeholder: SelectPlaceholder,
		PathInput:   st.PathInput,
		Care:        renderCare(ctx, st.Care, st.CareSel, resolver),
		Facts:       renderFacts(ctx, st.Facts, st.FactSel, resolver),
	}
}

func renderCare(ctx context.Context, cs CareState, sel dataset.Selection, resolver images.Resolver) CarePanel {
	p := CarePanel{Ref: cs.Ref, Selected: sel.String()}
	if cs.Err != nil {
		p.Status = StatusHalted
		p.Error = datasetMessage(cs.Err)
		return p
	}

	p.Options = options(cs.Table.Species(), sel)

	key, ok := sel.Key()
	if !ok {
		p.Status = StatusNoSelection
		p.Info = msgSelectCare
		return p
	}

	rec, found := cs.Table.Lookup(sel)
	if !found {
		p.Status = StatusNotFound
		p.Info = fmt.Sprintf("No care information found for %q.", key)
		return p
	}

	p.Status = StatusFound
	p.Heading = fmt.Sprintf("Information for %ss", rec.Species)
	p.Image = resolveImage(ctx, resolver, rec.ImageRef, rec.Species)
	p.Fields = careFields(rec)
	p.Details = fieldsHTML(p.Fields)
	return p
}

func renderFacts(ctx context.Context, fs FactsState, sel dataset.Selection, resolver images.Resolver) FactsPanel {
	p := FactsPanel{Ref: fs.Ref, Selected: sel.String()}
	if fs.Err != nil {
		p.Status = StatusHalted
		p.Error = datasetMessage(fs.Err)
		return p
	}

	p.Options = options(fs.Table.Species(), sel)

	key, ok := sel.Key()
	if !ok {
		p.Status = StatusNoSelection
		p.Info = msgSelectFacts
		return p
	}

	rec, found := fs.Table.Lookup(sel)
	if !found {
		p.Status = StatusNotFound
		p.Info = fmt.Sprintf("No facts found for %q.", key)
		return p
	}

	p.Status = StatusFound
	p.Heading = fmt.Sprintf("Fun facts about %ss", rec.Species)
	p.Image = resolveImage(ctx, resolver, rec.ImageRef, rec.Species)

	if len(rec.Facts) == 0 {
		p.Info = fmt.Sprintf("No facts available for %s.", rec.Species)
		return p
	}
	p.Facts = make([]NumberedFact, 0, len(rec.Facts))
	for i, f := range rec.Facts {
		p.Facts = append(p.Facts, NumberedFact{N: i + 1, Text: f})
	}
	return p
}

// careFields en el orden fijo de la página.
func careFields(r care.Record) []Field {
	return []Field{
		{Label: "Food Name", Value: r.FoodName},
		{Label: "Quantity", Value: r.Quantity},
		{Label: "Feeding Time", Value: r.FeedingTime},
		{Label: "Times Per Day", Value: r.TimesPerDayText},
		{Label: "Types of Food", Value: r.FoodTypes},
	}
}

func resolveImage(ctx context.Context, resolver images.Resolver, ref, caption string) *ImageView {
	if resolver == nil {
		return &ImageView{Caption: caption, Warning: msgImageMissing}
	}

	img, err := resolver.Resolve(ctx, ref)
	if err != nil {
		logger.FromContext(ctx, nil).Warn("image unavailable", map[string]any{
			"ref":   ref,
			"cause": string(images.CauseOf(err)),
			"error": err.Error(),
		})
		return &ImageView{Caption: caption, Warning: msgImageMissing}
	}

	src := "data:" + img.ContentType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
	return &ImageView{Src: template.URL(src), Caption: caption}
}

func options(species []string, sel dataset.Selection) []Option {
	key, _ := sel.Key()
	out := make([]Option, 0, len(species))
	for _, s := range species {
		out = append(out, Option{Value: s, Selected: s == key})
	}
	return out
}

func datasetMessage(err error) string {
	var (
		nf *dataset.NotFoundError
		se *dataset.SchemaError
	)
	switch {
	case errors.As(err, &se):
		return fmt.Sprintf("The dataset %s is missing required columns: %s.", se.Ref, strings.Join(se.Missing, ", "))
	case errors.As(err, &nf):
		return fmt.Sprintf("The dataset %s could not be found or read. Please check the file path.", nf.Ref)
	default:
		return "The dataset could not be loaded."
	}
}

// fieldsHTML arma el bloque "**Label:** valor" y lo pasa por markdown.
// El HTML crudo se descarta; los valores se escapan para que no se lean como markdown.
func fieldsHTML(fields []Field) template.HTML {
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "**%s:** %s\n", f.Label, escapeMarkdown(f.Value))
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.HardLineBreak)
	r := html.NewRenderer(html.RendererOptions{Flags: html.SkipHTML})
	return template.HTML(markdown.ToHTML([]byte(b.String()), p, r))
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
	"|", `\|`,
	"~", `\~`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(strings.ReplaceAll(s, "\n", " "))
}
