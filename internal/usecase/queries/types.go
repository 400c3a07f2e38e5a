package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type RegionView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type BeachView struct {
	ID       uuid.UUID `json:"id"`
	RegionID uuid.UUID `json:"region_id"`
	Name     string    `json:"name"`
	PhotoURL *string   `json:"photo_url,omitempty"`
}

type VendorView struct {
	ID          uuid.UUID `json:"id"`
	BeachID     uuid.UUID `json:"beach_id"`
	BeachName   string    `json:"beach_name"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PhotoURL    *string   `json:"photo_url,omitempty"`
	Address     *string   `json:"address,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	IsActive    bool      `json:"is_active"`
}

type ItemView struct {
	ID             uuid.UUID `json:"id"`
	VendorID       uuid.UUID `json:"vendor_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PriceCents     int64     `json:"price_cents"`
	IsActive       bool      `json:"is_active"`
	TrackStock     bool      `json:"track_stock"`
	StockTotal     int32     `json:"stock_total"`
	StockAvailable int32     `json:"stock_available"`
}

type ReservationItemView struct {
	ItemID         uuid.UUID `json:"item_id"`
	Name           string    `json:"name"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

type ReservationView struct {
	ID               uuid.UUID             `json:"id"`
	VendorID         uuid.UUID             `json:"vendor_id"`
	VendorName       string                `json:"vendor_name"`
	UserID           uuid.UUID             `json:"user_id"`
	UserName         string                `json:"user_name"`
	ArrivalAt        *time.Time            `json:"arrival_at,omitempty"`
	Status           string                `json:"status"`
	TotalCents       int64                 `json:"total_cents"`
	Note             *string               `json:"note,omitempty"`
	ConfirmationCode *string               `json:"confirmation_code,omitempty"`
	ExpiresAt        *time.Time            `json:"expires_at,omitempty"`
	CheckedInAt      *time.Time            `json:"checked_in_at,omitempty"`
	CanceledBy       *string               `json:"canceled_by,omitempty"`
	CancelReason     *string               `json:"cancel_reason,omitempty"`
	CanCancel        bool                  `json:"can_cancel"`
	Items            []ReservationItemView `json:"items"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

type ReservationListItem struct {
	ID         uuid.UUID  `json:"id"`
	VendorID   uuid.UUID  `json:"vendor_id"`
	VendorName string     `json:"vendor_name"`
	UserName   string     `json:"user_name"`
	ArrivalAt  *time.Time `json:"arrival_at,omitempty"`
	Status     string     `json:"status"`
	TotalCents int64      `json:"total_cents"`
	ItemCount  int32      `json:"item_count"`
	CanCancel  bool       `json:"can_cancel"`
	CreatedAt  time.Time  `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	VendorID *uuid.UUID `json:"vendor_id,omitempty"`
	IsActive bool       `json:"is_active"`
}

type UserProfileView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	DisplayName string     `json:"display_name"`
	AvatarURL   *string    `json:"avatar_url,omitempty"`
	VendorID    *uuid.UUID `json:"vendor_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
