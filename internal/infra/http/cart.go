package http

import (
	"errors"
	"net/http"

	"github.com/Spok95/uniformhub/internal/domain/cart"
	"github.com/Spok95/uniformhub/internal/domain/catalog"
	"github.com/Spok95/uniformhub/internal/domain/inventory"
	"github.com/Spok95/uniformhub/internal/session"
)

type cartView struct {
	Lines []cart.Line `json:"lines"`
	Units int         `json:"units"`
	cart.Totals
	Outcome cart.Outcome `json:"outcome,omitempty"`
}

func viewCart(c *cart.Cart, outcome cart.Outcome) cartView {
	return cartView{
		Lines:   c.Lines(),
		Units:   c.Units(),
		Totals:  c.Totals(),
		Outcome: outcome,
	}
}

type addRequest struct {
	ItemID string `json:"item_id"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	Method string `json:"method"`
}

type checkoutResponse struct {
	Receipt    cart.Receipt `json:"receipt"`
	ReceiptURL string       `json:"receipt_url"`
}

func (a *API) posItems(w http.ResponseWriter, r *http.Request, _ *session.Workspace) {
	q := r.URL.Query()
	items := inventory.SearchCounter(a.store.Items(), q.Get("q"), q.Get("category"))
	writeJSON(w, http.StatusOK, nonNil(items))
}

func (a *API) showCart(w http.ResponseWriter, _ *http.Request, ws *session.Workspace) {
	writeJSON(w, http.StatusOK, viewCart(ws.Cart, ""))
}

func (a *API) cartAdd(w http.ResponseWriter, r *http.Request, ws *session.Workspace) {
	var req addRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	it, ok := a.store.Get(req.ItemID)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown item")
		return
	}
	outcome := ws.Cart.Add(it)
	a.recordCartOp("add", outcome)
	writeJSON(w, http.StatusOK, viewCart(ws.Cart, outcome))
}

func (a *API) cartUpdate(w http.ResponseWriter, r *http.Request, ws *session.Workspace) {
	var req quantityRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	outcome := ws.Cart.UpdateQuantity(r.PathValue("id"), req.Quantity)
	a.recordCartOp("update", outcome)
	writeJSON(w, http.StatusOK, viewCart(ws.Cart, outcome))
}

func (a *API) cartRemove(w http.ResponseWriter, r *http.Request, ws *session.Workspace) {
	outcome := cart.Noop
	if ws.Cart.Remove(r.PathValue("id")) {
		outcome = cart.Removed
	}
	a.recordCartOp("remove", outcome)
	writeJSON(w, http.StatusOK, viewCart(ws.Cart, outcome))
}

func (a *API) cartClear(w http.ResponseWriter, _ *http.Request, ws *session.Workspace) {
	outcome := cart.Removed
	if ws.Cart.Empty() {
		outcome = cart.Noop
	}
	ws.Cart.Clear()
	a.recordCartOp("clear", outcome)
	writeJSON(w, http.StatusOK, viewCart(ws.Cart, ""))
}

func (a *API) cartCheckout(w http.ResponseWriter, r *http.Request, ws *session.Workspace) {
	var req checkoutRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	method, err := cart.ParsePaymentMethod(req.Method)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	branch := catalog.DefaultBranch
	u, _ := ws.Session.Current()
	if u.Branch != "" {
		branch = u.Branch
	}

	receipt, err := cart.Checkout(ws.Cart, method, branch, a.now())
	switch {
	case errors.Is(err, cart.ErrEmptyCart):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	receipt, link, err := a.payments.Settle(receipt)
	if err != nil {
		a.log.Error("failed to record receipt", "receipt", receipt.Number, "user_id", u.ID, "err", err)
		writeError(w, http.StatusInternalServerError, "sale completed but the receipt was not recorded")
		return
	}

	a.metrics.Checkouts.WithLabelValues(string(method)).Inc()
	a.metrics.CheckoutAmount.Add(receipt.Total)
	a.log.Info("checkout",
		"receipt", receipt.Number,
		"user_id", u.ID,
		"branch", branch,
		"method", method,
		"units", receipt.Units(),
		"total", receipt.Total,
	)
	writeJSON(w, http.StatusOK, checkoutResponse{Receipt: receipt, ReceiptURL: link})
}

func (a *API) receiptList(w http.ResponseWriter, _ *http.Request, _ *session.Workspace) {
	writeJSON(w, http.StatusOK, a.payments.Journal().Recent(receiptListLimit))
}

// receiptListLimit is how many receipts the journal listing returns.
const receiptListLimit = 50

func (a *API) recordCartOp(op string, outcome cart.Outcome) {
	a.metrics.CartOps.WithLabelValues(op, string(outcome)).Inc()
}
