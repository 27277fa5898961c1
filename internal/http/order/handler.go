package order

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/villagekitchen/billing/internal/catalog"
	"github.com/villagekitchen/billing/internal/ledger"
	"github.com/villagekitchen/billing/internal/session"
)

type Handler struct {
	session *session.Session
	catalog *catalog.Catalog
}

func NewHandler(s *session.Session, c *catalog.Catalog) *Handler {
	return &Handler{session: s, catalog: c}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.snapshot)
	r.Post("/items", h.addItem)
	r.Delete("/items/{id}", h.removeItem)
	r.Put("/delivery", h.setDeliveryCharge)
	r.Put("/delivery/free", h.setFreeDelivery)
	r.Post("/reset", h.reset)
}

func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	writeSnapshot(w, h.session.Snapshot(), http.StatusOK)
}

type addItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// An unknown name behaves like no selection at all: the zero entry is
	// rejected by the ledger.
	entry, _ := h.catalog.Lookup(req.Name)

	var addErr error

	h.session.With(func(l *ledger.Ledger) {
		_, addErr = l.AddItem(entry, req.Quantity)
	})

	if addErr != nil {
		if ledger.IsValidation(addErr) {
			http.Error(w, addErr.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeSnapshot(w, h.session.Snapshot(), http.StatusCreated)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	// Removing an unknown id is a silent no-op.
	h.session.With(func(l *ledger.Ledger) {
		l.RemoveItem(id)
	})

	w.WriteHeader(http.StatusNoContent)
}

type setDeliveryRequest struct {
	Charge string `json:"charge"`
}

func (h *Handler) setDeliveryCharge(w http.ResponseWriter, r *http.Request) {
	var req setDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Non-numeric input counts as zero.
	amount, err := decimal.NewFromString(req.Charge)
	if err != nil {
		amount = decimal.Zero
	}

	h.session.With(func(l *ledger.Ledger) {
		l.SetDeliveryCharge(amount)
	})

	writeSnapshot(w, h.session.Snapshot(), http.StatusOK)
}

type setFreeDeliveryRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *Handler) setFreeDelivery(w http.ResponseWriter, r *http.Request) {
	var req setFreeDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.session.With(func(l *ledger.Ledger) {
		l.SetFreeDelivery(req.Enabled)
	})

	writeSnapshot(w, h.session.Snapshot(), http.StatusOK)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	h.session.With(func(l *ledger.Ledger) {
		l.Clear()
	})

	writeSnapshot(w, h.session.Snapshot(), http.StatusOK)
}

func writeSnapshot(w http.ResponseWriter, snap ledger.Snapshot, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(toSnapshotResponse(snap)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
