package models

import "github.com/teleka/teleka-taxi/internal/domain/types"

// Trip is the active-duty view of an assigned ride request. Its ID equals
// the originating request ID and its status mirrors the request until
// completion, when it is removed from the active collection.
type Trip struct {
	ID       string              `json:"id"`
	Driver   string              `json:"driver"`
	Customer string              `json:"customer"`
	Route    string              `json:"route"`
	Status   types.RequestStatus `json:"status"`
	Amount   string              `json:"amount"`
	Time     string              `json:"time"`
}
