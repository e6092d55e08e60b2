package payments

import (
	"html/template"
	"log/slog"
	"net/http"
)

var receiptPage = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"money": formatMoney,
}).Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>{{.Number}}</title></head>
<body>
<h1>UniformHub</h1>
<p>{{.Branch}}<br>{{.Number}}<br>{{.IssuedAt.Format "02 Jan 2006 15:04"}}</p>
<table>
<tr><th>Item</th><th>Qty</th><th>Amount</th></tr>
{{range .Lines}}<tr><td>{{.Item.Name}} ({{.Item.Size}})</td><td>{{.Quantity}}</td><td>{{money .Amount}}</td></tr>
{{end}}</table>
<p>Subtotal: {{money .Subtotal}}<br>GST (18%): {{money .Tax}}<br><b>Total: {{money .Total}}</b></p>
<p>Paid by {{.Method}}</p>
</body></html>
`))

type Handler struct {
	log     *slog.Logger
	journal *Journal
}

func NewHandler(log *slog.Logger, journal *Journal) *Handler {
	return &Handler{log: log, journal: journal}
}

// ServeHTTP renders /receipts/{number} as a printable page.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	number := r.PathValue("number")
	if number == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("missing receipt number"))
		return
	}

	rc, ok := h.journal.Get(number)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("receipt not found"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := receiptPage.Execute(w, rc); err != nil {
		h.log.Error("failed to render receipt", "receipt", number, "err", err)
	}
}
