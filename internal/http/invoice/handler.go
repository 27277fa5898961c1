package invoice

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/villagekitchen/billing/internal/invoice"
	"github.com/villagekitchen/billing/internal/ledger"
	"github.com/villagekitchen/billing/internal/session"
)

type Handler struct {
	svc     *invoice.Service
	session *session.Session
}

func NewHandler(svc *invoice.Service, s *session.Session) *Handler {
	return &Handler{svc: svc, session: s}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/export", h.export)
}

type exportRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	DeliveryAddress string `json:"delivery_address"`
	Date            string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	meta := invoice.Metadata{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
	}

	if req.Date != "" {
		date, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}

		meta.Date = date
	}

	artifact, err := h.svc.Export(h.session.Snapshot(), meta)
	if err != nil {
		if ledger.IsValidation(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("failed to export invoice", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", artifact.Filename))

	if _, err := w.Write(artifact.Data); err != nil {
		slog.Error("failed to write invoice response", "error", err)
	}
}
