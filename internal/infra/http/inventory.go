package http

import (
	"net/http"
	"net/url"

	"github.com/Spok95/uniformhub/internal/domain/catalog"
	"github.com/Spok95/uniformhub/internal/domain/inventory"
	"github.com/Spok95/uniformhub/internal/domain/reports"
	"github.com/Spok95/uniformhub/internal/session"
)

type inventoryView struct {
	Items []catalog.Item    `json:"items"`
	Stats inventory.Stats   `json:"stats"`
	Spec  inventorySpecView `json:"query"`
}

type inventorySpecView struct {
	Search    string              `json:"q"`
	Category  string              `json:"category"`
	Status    string              `json:"status"`
	Branch    string              `json:"branch"`
	SortField inventory.SortField `json:"sort"`
	SortOrder inventory.SortOrder `json:"order"`
}

// specFrom maps query parameters onto a query spec. Unknown filter values are
// passed through and ignored by the engine; an unknown sort field is an error.
func specFrom(q url.Values) (inventory.Spec, error) {
	spec := inventory.DefaultSpec()
	spec.Search = q.Get("q")
	if v := q.Get("category"); v != "" {
		spec.Category = v
	}
	if v := q.Get("status"); v != "" {
		spec.Status = v
	}
	if v := q.Get("branch"); v != "" {
		spec.Branch = v
	}

	field, err := inventory.ParseSortField(q.Get("sort"))
	if err != nil {
		return spec, err
	}
	spec.SortField = field

	order, err := inventory.ParseSortOrder(q.Get("order"))
	if err != nil {
		order = inventory.Asc
	}
	spec.SortOrder = order
	return spec, nil
}

func (a *API) runQuery(w http.ResponseWriter, r *http.Request) ([]catalog.Item, inventory.Spec, bool) {
	spec, err := specFrom(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, spec, false
	}
	items := inventory.Query(a.store.Items(), spec)
	a.metrics.Queries.Inc()
	a.metrics.QueryResults.Observe(float64(len(items)))
	return items, spec, true
}

func (a *API) inventoryQuery(w http.ResponseWriter, r *http.Request, _ *session.Workspace) {
	items, spec, ok := a.runQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, inventoryView{
		Items: items,
		Stats: inventory.CountStatuses(a.store.Items()),
		Spec: inventorySpecView{
			Search:    spec.Search,
			Category:  spec.Category,
			Status:    spec.Status,
			Branch:    spec.Branch,
			SortField: spec.SortField,
			SortOrder: spec.SortOrder,
		},
	})
}

func (a *API) inventoryExport(w http.ResponseWriter, r *http.Request, _ *session.Workspace) {
	items, _, ok := a.runQuery(w, r)
	if !ok {
		return
	}
	name := "inventory-" + a.now().Format("20060102") + ".xlsx"
	if err := writeXLSX(w, name, items); err != nil {
		a.log.Error("inventory export failed", "err", err)
	}
}

type dashboardView struct {
	Stats          inventory.Stats      `json:"stats"`
	NeedsAttention []catalog.Item       `json:"needs_attention"`
	Weekly         []reports.SalesPoint `json:"weekly_sales"`
	TopItems       []reports.TopItem    `json:"top_items"`
	Branches       int                  `json:"branches"`
}

func (a *API) dashboard(w http.ResponseWriter, _ *http.Request, _ *session.Workspace) {
	items := a.store.Items()
	writeJSON(w, http.StatusOK, dashboardView{
		Stats:          inventory.CountStatuses(items),
		NeedsAttention: nonNil(inventory.NeedsAttention(items, inventory.AttentionLimit)),
		Weekly:         reports.WeeklySales(),
		TopItems:       reports.TopItems(),
		Branches:       len(catalog.Branches),
	})
}

type branchView struct {
	catalog.Branch
	Stats inventory.Stats      `json:"stats"`
	Sales []reports.SalesPoint `json:"sales,omitempty"`
}

func (a *API) branchList(w http.ResponseWriter, _ *http.Request, _ *session.Workspace) {
	items := a.store.Items()
	out := make([]branchView, 0, len(catalog.Branches))
	for _, b := range catalog.Branches {
		out = append(out, branchView{Branch: b, Stats: inventory.BranchStats(items, b.Name)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) branchDetail(w http.ResponseWriter, r *http.Request, _ *session.Workspace) {
	b := catalog.BranchByName(r.PathValue("name"))
	if b == nil {
		writeError(w, http.StatusNotFound, "unknown branch")
		return
	}
	writeJSON(w, http.StatusOK, branchView{
		Branch: *b,
		Stats:  inventory.BranchStats(a.store.Items(), b.Name),
		Sales:  a.sales.BranchSales(a.now()),
	})
}

type reportsView struct {
	Daily    []reports.SalesPoint `json:"daily_sales"`
	Summary  reports.Summary      `json:"summary"`
	TopItems []reports.TopItem    `json:"top_items"`
	Takings  map[string]float64   `json:"takings"`
}

// reportDays is the window of the daily sales chart.
const reportDays = 30

func (a *API) reportsSummary(w http.ResponseWriter, _ *http.Request, _ *session.Workspace) {
	daily := a.sales.DailySales(a.now(), reportDays)
	takings := make(map[string]float64)
	for m, v := range a.payments.Journal().Takings() {
		takings[string(m)] = v
	}
	writeJSON(w, http.StatusOK, reportsView{
		Daily:    daily,
		Summary:  reports.Summarize(daily),
		TopItems: reports.TopItems(),
		Takings:  takings,
	})
}

func nonNil(items []catalog.Item) []catalog.Item {
	if items == nil {
		return []catalog.Item{}
	}
	return items
}
