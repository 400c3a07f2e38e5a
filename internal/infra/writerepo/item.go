package writerepo

import (
	"context"

	"beach-reserve/internal/domain/reservation"
	"beach-reserve/internal/domain/vendor"
	"beach-reserve/internal/infra"
	"beach-reserve/internal/infra/db"
	"beach-reserve/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

const insertItemSQL = `
INSERT INTO vendor_items (id, vendor_id, name, description, price_cents, is_active, track_stock, stock_total, stock_available)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

func (r *ItemRepository) Create(ctx context.Context, dbtx db.DBTX, item *vendor.Item) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertItemSQL,
		item.ID(), item.VendorID(), item.Name(), item.Description(),
		item.Price().Cents(), item.IsActive(), item.TracksStock(),
		item.StockTotal(), item.StockAvailable(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item", err)
	}
	return id, nil
}

const updateItemSQL = `
UPDATE vendor_items
SET name = $2,
    description = $3,
    price_cents = $4,
    is_active = $5,
    track_stock = $6,
    stock_total = $7,
    stock_available = $8,
    updated_at = now()
WHERE id = $1`

func (r *ItemRepository) Save(ctx context.Context, dbtx db.DBTX, item *vendor.Item) error {
	tag, err := dbtx.Exec(ctx, updateItemSQL,
		item.ID(), item.Name(), item.Description(), item.Price().Cents(),
		item.IsActive(), item.TracksStock(), item.StockTotal(), item.StockAvailable(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteItemSQL = `
DELETE FROM vendor_items WHERE id = $1`

// Delete surfaces the foreign-key violation when reservation lines still
// reference the item; callers map it to a conflict.
func (r *ItemRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, deleteItemSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

const selectItemForUpdateSQL = `
SELECT id, vendor_id, name, description, price_cents, is_active, track_stock, stock_total, stock_available
FROM vendor_items
WHERE id = $1
FOR UPDATE`

func (r *ItemRepository) FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*vendor.Item, error) {
	var (
		itemID, vendorID           uuid.UUID
		name, description          string
		priceCents                 int64
		isActive, trackStock       bool
		stockTotal, stockAvailable int32
	)
	err := dbtx.QueryRow(ctx, selectItemForUpdateSQL, id).Scan(
		&itemID, &vendorID, &name, &description, &priceCents,
		&isActive, &trackStock, &stockTotal, &stockAvailable,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock item", err)
	}

	return vendor.ReconstructItem(
		itemID, vendorID, name, description,
		reservation.NewMoney(priceCents),
		isActive, trackStock, stockTotal, stockAvailable,
	), nil
}

// Conditional decrement: touching zero rows means the item is unknown,
// inactive, or out of stock. Untracked items always match.
const reserveStockSQL = `
UPDATE vendor_items
SET stock_available = CASE WHEN track_stock THEN stock_available - $2 ELSE stock_available END,
    updated_at = now()
WHERE id = $1
  AND is_active
  AND (NOT track_stock OR stock_available >= $2)`

func (r *ItemRepository) ReserveStock(ctx context.Context, dbtx db.DBTX, itemID uuid.UUID, qty int32) error {
	tag, err := dbtx.Exec(ctx, reserveStockSQL, itemID, qty)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("stock unavailable", nil, infra.KindConflict)
	}
	return nil
}

const restockReservationSQL = `
UPDATE vendor_items vi
SET stock_available = LEAST(vi.stock_total, vi.stock_available + ri.quantity),
    updated_at = now()
FROM reservation_items ri
WHERE ri.reservation_id = $1
  AND ri.item_id = vi.id
  AND vi.track_stock`

func (r *ItemRepository) RestockReservation(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, restockReservationSQL, reservationID); err != nil {
		return infra.WrapRepoErr("failed to restock reservation items", err)
	}
	return nil
}
