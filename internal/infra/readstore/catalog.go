package readstore

import (
	"context"

	"beach-reserve/internal/infra"
	"beach-reserve/internal/infra/db"
	"beach-reserve/internal/pkg/pgconv"
	"beach-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

const findRegionsSQL = `
SELECT id, name, slug
FROM regions
ORDER BY name`

func (r *CatalogReadStore) FindRegions(ctx context.Context) ([]*queries.RegionView, error) {
	rows, err := r.db.Query(ctx, findRegionsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list regions", err)
	}
	defer rows.Close()

	var result []*queries.RegionView
	for rows.Next() {
		var region queries.RegionView
		if err := rows.Scan(&region.ID, &region.Name, &region.Slug); err != nil {
			return nil, infra.WrapRepoErr("failed to scan region", err)
		}
		result = append(result, &region)
	}
	return result, rows.Err()
}

const findBeachesByRegionSQL = `
SELECT id, region_id, name, photo_url
FROM beaches
WHERE region_id = $1
ORDER BY name`

func (r *CatalogReadStore) FindBeachesByRegion(ctx context.Context, regionID uuid.UUID) ([]*queries.BeachView, error) {
	rows, err := r.db.Query(ctx, findBeachesByRegionSQL, regionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list beaches", err)
	}
	defer rows.Close()

	var result []*queries.BeachView
	for rows.Next() {
		var beach queries.BeachView
		if err := rows.Scan(&beach.ID, &beach.RegionID, &beach.Name, &beach.PhotoURL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan beach", err)
		}
		result = append(result, &beach)
	}
	return result, rows.Err()
}

const vendorViewColumns = `
SELECT ve.id, ve.beach_id, b.name, ve.name, ve.description, ve.photo_url,
       ve.address, ve.latitude, ve.longitude, ve.rating, ve.is_active
FROM vendors ve
JOIN beaches b ON b.id = ve.beach_id`

const findVendorsByBeachSQL = vendorViewColumns + `
WHERE ve.beach_id = $1 AND ve.is_active
ORDER BY ve.name`

func (r *CatalogReadStore) FindVendorsByBeach(ctx context.Context, beachID uuid.UUID) ([]*queries.VendorView, error) {
	rows, err := r.db.Query(ctx, findVendorsByBeachSQL, beachID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vendors", err)
	}
	defer rows.Close()

	var result []*queries.VendorView
	for rows.Next() {
		vendorView, err := scanVendorView(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, vendorView)
	}
	return result, rows.Err()
}

const findVendorByIDSQL = vendorViewColumns + `
WHERE ve.id = $1`

func (r *CatalogReadStore) FindVendorByID(ctx context.Context, vendorID uuid.UUID) (*queries.VendorView, error) {
	row := r.db.QueryRow(ctx, findVendorByIDSQL, vendorID)

	vendorView, err := scanVendorView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vendor not found", err, infra.KindNotFound)
		}
		return nil, err
	}
	return vendorView, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanVendorView(row scannable) (*queries.VendorView, error) {
	var view queries.VendorView
	err := row.Scan(
		&view.ID, &view.BeachID, &view.BeachName, &view.Name, &view.Description,
		&view.PhotoURL, &view.Address, &view.Latitude, &view.Longitude,
		&view.Rating, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to scan vendor", err)
	}
	return &view, nil
}

const findItemsByVendorSQL = `
SELECT id, vendor_id, name, description, price_cents, is_active, track_stock, stock_total, stock_available
FROM vendor_items
WHERE vendor_id = $1 AND (is_active OR $2)
ORDER BY name`

func (r *CatalogReadStore) FindItemsByVendor(ctx context.Context, vendorID uuid.UUID, includeInactive bool) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, findItemsByVendorSQL, vendorID, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	var result []*queries.ItemView
	for rows.Next() {
		var item queries.ItemView
		if err := rows.Scan(
			&item.ID, &item.VendorID, &item.Name, &item.Description, &item.PriceCents,
			&item.IsActive, &item.TrackStock, &item.StockTotal, &item.StockAvailable,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item", err)
		}
		result = append(result, &item)
	}
	return result, rows.Err()
}
