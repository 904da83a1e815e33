package report

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"fieldops/internal/domain/order"
	"fieldops/internal/infrastructure/blobstore"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/services/markdown"
)

// Renderer produces the closing report for a service order as an HTML
// document and writes it through the blob store. Rendering is a sink: it
// never feeds back into order state, and a failure only costs the document.
type Renderer struct {
	store    blobstore.Store
	markdown markdown.MarkdownService
	tmpl     *template.Template
	logger   logger.Interface
}

func NewRenderer(store blobstore.Store, log logger.Interface) (*Renderer, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return &Renderer{
		store:    store,
		markdown: markdown.NewMarkdownService(),
		tmpl:     tmpl,
		logger:   log,
	}, nil
}

type reportData struct {
	OrderID       uint
	ClientName    string
	ContactPhone  string
	ContactEmail  string
	Category      string
	Address       string
	Technicians   string
	Problem       string
	WorkNotesHTML template.HTML
	MaterialNotes string
	LaborCost     string
	MaterialCost  string
	TotalCost     string
	Status        string
	CreatedAt     string
	ExecutedAt    string
	ClosedAt      string
	PhotosBefore  []string
	PhotosDuring  []string
	PhotosAfter   []string
	GeneratedAt   string
}

// Render builds the report document for the given order snapshot and returns
// its public URL.
func (r *Renderer) Render(ctx context.Context, o *order.ServiceOrder) (string, error) {
	notesHTML, err := r.markdown.ToHTMLSanitized(o.WorkNotes())
	if err != nil {
		return "", fmt.Errorf("failed to render work notes: %w", err)
	}

	photos := o.Photos()
	data := reportData{
		OrderID:       o.ID(),
		ClientName:    o.ClientName(),
		ContactPhone:  o.ContactPhone(),
		ContactEmail:  o.ContactEmail(),
		Category:      o.ServiceCategory().String(),
		Address:       o.Address(),
		Technicians:   strings.Join(o.AssignedTechnicians(), ", "),
		Problem:       o.ProblemDescription(),
		WorkNotesHTML: template.HTML(notesHTML),
		MaterialNotes: o.MaterialNotes(),
		LaborCost:     FormatCents(o.LaborCostCents()),
		MaterialCost:  FormatCents(o.MaterialCostCents()),
		TotalCost:     FormatCents(o.TotalCents()),
		Status:        o.Status().String(),
		CreatedAt:     formatTime(o.CreatedAt()),
		PhotosBefore:  photos.Before,
		PhotosDuring:  photos.During,
		PhotosAfter:   photos.After,
		GeneratedAt:   formatTime(time.Now()),
	}
	if o.ExecutedAt() != nil {
		data.ExecutedAt = formatTime(*o.ExecutedAt())
	}
	if o.ClosedAt() != nil {
		data.ClosedAt = formatTime(*o.ClosedAt())
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute report template: %w", err)
	}

	url, err := r.store.Store(ctx, buf.Bytes(), "text/html", "reports")
	if err != nil {
		return "", fmt.Errorf("failed to store report: %w", err)
	}

	r.logger.Info("order report rendered", "order_id", o.ID(), "url", url)
	return url, nil
}

// FormatCents renders an amount in cents as a BRL value.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sR$ %d,%02d", sign, cents/100, cents%100)
}

func formatTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

const reportTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8"/>
<title>Ordem de Serviço #{{.OrderID}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
h1 { border-bottom: 2px solid #222; padding-bottom: .5rem; }
table { border-collapse: collapse; margin: 1rem 0; }
td, th { border: 1px solid #ccc; padding: .4rem .8rem; text-align: left; }
.photos img { max-width: 240px; margin: .25rem; }
.total { font-weight: bold; }
</style>
</head>
<body>
<h1>Ordem de Serviço #{{.OrderID}}</h1>
<table>
<tr><th>Cliente</th><td>{{.ClientName}}</td></tr>
<tr><th>Telefone</th><td>{{.ContactPhone}}</td></tr>
{{if .ContactEmail}}<tr><th>Email</th><td>{{.ContactEmail}}</td></tr>{{end}}
<tr><th>Endereço</th><td>{{.Address}}</td></tr>
<tr><th>Categoria</th><td>{{.Category}}</td></tr>
{{if .Technicians}}<tr><th>Técnicos</th><td>{{.Technicians}}</td></tr>{{end}}
<tr><th>Status</th><td>{{.Status}}</td></tr>
<tr><th>Aberta em</th><td>{{.CreatedAt}}</td></tr>
{{if .ExecutedAt}}<tr><th>Executada em</th><td>{{.ExecutedAt}}</td></tr>{{end}}
{{if .ClosedAt}}<tr><th>Fechada em</th><td>{{.ClosedAt}}</td></tr>{{end}}
</table>

<h2>Problema relatado</h2>
<p>{{.Problem}}</p>

{{if .WorkNotesHTML}}
<h2>Serviço executado</h2>
<div>{{.WorkNotesHTML}}</div>
{{end}}

{{if .MaterialNotes}}
<h2>Materiais</h2>
<p>{{.MaterialNotes}}</p>
{{end}}

<h2>Valores</h2>
<table>
<tr><th>Mão de obra</th><td>{{.LaborCost}}</td></tr>
<tr><th>Materiais</th><td>{{.MaterialCost}}</td></tr>
<tr><th class="total">Total</th><td class="total">{{.TotalCost}}</td></tr>
</table>

{{if .PhotosBefore}}
<h2>Fotos (antes)</h2>
<div class="photos">{{range .PhotosBefore}}<img src="{{.}}"/>{{end}}</div>
{{end}}
{{if .PhotosDuring}}
<h2>Fotos (durante)</h2>
<div class="photos">{{range .PhotosDuring}}<img src="{{.}}"/>{{end}}</div>
{{end}}
{{if .PhotosAfter}}
<h2>Fotos (depois)</h2>
<div class="photos">{{range .PhotosAfter}}<img src="{{.}}"/>{{end}}</div>
{{end}}

<p><small>Gerado em {{.GeneratedAt}}</small></p>
</body>
</html>`
