package order

import (
	"github.com/google/uuid"

	"github.com/villagekitchen/billing/internal/ledger"
)

type lineItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UnitPrice string    `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	LineTotal string    `json:"line_total"`
}

type snapshotResponse struct {
	Items          []lineItemResponse `json:"items"`
	Subtotal       string             `json:"subtotal"`
	DeliveryCharge string             `json:"delivery_charge"`
	FinalTotal     string             `json:"final_total"`
	FreeDelivery   bool               `json:"free_delivery"`
}

func toSnapshotResponse(snap ledger.Snapshot) snapshotResponse {
	items := make([]lineItemResponse, len(snap.Items))
	for i, item := range snap.Items {
		items[i] = lineItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.String(),
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal.String(),
		}
	}

	return snapshotResponse{
		Items:          items,
		Subtotal:       snap.Subtotal.String(),
		DeliveryCharge: snap.DeliveryCharge.String(),
		FinalTotal:     snap.FinalTotal.String(),
		FreeDelivery:   snap.FreeDelivery,
	}
}
