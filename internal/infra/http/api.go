package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Spok95/uniformhub/internal/domain/access"
	"github.com/Spok95/uniformhub/internal/domain/catalog"
	"github.com/Spok95/uniformhub/internal/domain/reports"
	"github.com/Spok95/uniformhub/internal/infra/logger"
	"github.com/Spok95/uniformhub/internal/infra/metrics"
	"github.com/Spok95/uniformhub/internal/infra/payments"
	"github.com/Spok95/uniformhub/internal/session"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// API exposes the core to a browser or terminal front end as JSON.
type API struct {
	log      *slog.Logger
	store    *catalog.Store
	sessions *session.Registry
	metrics  *metrics.Metrics
	sales    *reports.Source
	payments *payments.Service
	now      func() time.Time
}

type Deps struct {
	Log      *slog.Logger
	Store    *catalog.Store
	Sessions *session.Registry
	Metrics  *metrics.Metrics
	Sales    *reports.Source
	Payments *payments.Service
}

func NewAPI(d Deps) *API {
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	if d.Payments == nil {
		d.Payments = payments.NewService("", payments.NewJournal())
	}
	if d.Sales == nil {
		d.Sales = reports.NewSeededSource(1)
	}
	if d.Log == nil {
		d.Log = logger.Discard()
	}
	return &API{
		log:      d.Log,
		store:    d.Store,
		sessions: d.Sessions,
		metrics:  d.Metrics,
		sales:    d.Sales,
		payments: d.Payments,
		now:      time.Now,
	}
}

func (a *API) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/session/login", a.login)
	mux.HandleFunc("POST /api/session/logout", a.logout)
	mux.HandleFunc("POST /api/session/role", a.switchRole)
	mux.HandleFunc("GET /api/session", a.currentSession)

	mux.HandleFunc("GET /api/dashboard", a.guarded(access.ScreenDashboard, a.dashboard))
	mux.HandleFunc("GET /api/inventory", a.guarded(access.ScreenInventory, a.inventoryQuery))
	mux.HandleFunc("GET /api/inventory/export", a.guarded(access.ScreenInventory, a.inventoryExport))
	mux.HandleFunc("GET /api/branches", a.guarded(access.ScreenBranches, a.branchList))
	mux.HandleFunc("GET /api/branches/{name}", a.guarded(access.ScreenBranches, a.branchDetail))
	mux.HandleFunc("GET /api/reports", a.guarded(access.ScreenReports, a.reportsSummary))
	mux.HandleFunc("GET /api/receipts", a.guarded(access.ScreenReports, a.receiptList))

	mux.HandleFunc("GET /api/pos/items", a.guarded(access.ScreenPOS, a.posItems))
	mux.HandleFunc("GET /api/cart", a.guarded(access.ScreenPOS, a.showCart))
	mux.HandleFunc("POST /api/cart/items", a.guarded(access.ScreenPOS, a.cartAdd))
	mux.HandleFunc("PUT /api/cart/items/{id}", a.guarded(access.ScreenPOS, a.cartUpdate))
	mux.HandleFunc("DELETE /api/cart/items/{id}", a.guarded(access.ScreenPOS, a.cartRemove))
	mux.HandleFunc("DELETE /api/cart", a.guarded(access.ScreenPOS, a.cartClear))
	mux.HandleFunc("POST /api/cart/checkout", a.guarded(access.ScreenPOS, a.cartCheckout))

	mux.Handle("GET /receipts/{number}", payments.NewHandler(a.log, a.payments.Journal()))
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func bearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(h, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// workspace resolves the caller's workspace and locks it. The caller must
// Unlock. It answers 401 itself when there is no valid token.
func (a *API) workspace(w http.ResponseWriter, r *http.Request) (*session.Workspace, bool) {
	ws, err := a.sessions.Get(bearer(r))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "sign in first")
		return nil, false
	}
	ws.Lock()
	return ws, true
}

// authorize answers 401 for a signed-out workspace and 403 when the role may
// not open screen.
func (a *API) authorize(w http.ResponseWriter, ws *session.Workspace, screen string) bool {
	if !ws.Session.Authenticated() {
		writeError(w, http.StatusUnauthorized, "sign in first")
		return false
	}
	if !ws.Session.HasPermission(screen) {
		a.metrics.AccessDenied.WithLabelValues(screen).Inc()
		u, _ := ws.Session.Current()
		a.log.Debug("access denied", "screen", screen, "role", u.Role, "user_id", u.ID)
		writeError(w, http.StatusForbidden, "your role cannot open "+screen)
		return false
	}
	return true
}

// guarded runs fn with the locked workspace when the caller may open screen.
func (a *API) guarded(screen string, fn func(http.ResponseWriter, *http.Request, *session.Workspace)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, ok := a.workspace(w, r)
		if !ok {
			return
		}
		defer ws.Unlock()
		if !a.authorize(w, ws, screen) {
			return
		}
		fn(w, r, ws)
	}
}

func writeXLSX(w http.ResponseWriter, name string, items []catalog.Item) error {
	var buf bytes.Buffer
	if err := catalog.ExportXLSX(&buf, items); err != nil {
		return err
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, err := w.Write(buf.Bytes())
	return err
}
