package response

import (
	"github.com/google/uuid"

	"beach-reserve/internal/usecase/queries"
)

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

type URLResponse struct {
	URL string `json:"url"`
}

type VendorSummaryResponse struct {
	PendingCount int64 `json:"pending_count"`
}

// ReservationListResponse pages history with an opaque cursor; NextCursor
// is absent on the last page.
type ReservationListResponse struct {
	Items      []*queries.ReservationListItem `json:"items"`
	NextCursor *string                        `json:"next_cursor,omitempty"`
}

func FromReservationList(items []*queries.ReservationListItem, next *queries.Cursor) ReservationListResponse {
	resp := ReservationListResponse{Items: items}
	if resp.Items == nil {
		resp.Items = []*queries.ReservationListItem{}
	}
	if next != nil && next.After != "" {
		resp.NextCursor = &next.After
	}
	return resp
}
