package queries

import (
	"context"

	"beach-reserve/internal/infra"
	"beach-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRegionNotFound = errs.New("region not found")
	ErrBeachNotFound  = errs.New("beach not found")
	ErrVendorNotFound = errs.New("vendor not found")
)

type CatalogQueries interface {
	ListRegions(ctx context.Context) ([]*RegionView, error)
	ListBeaches(ctx context.Context, regionID uuid.UUID) ([]*BeachView, error)
	ListVendors(ctx context.Context, beachID uuid.UUID) ([]*VendorView, error)
	GetVendor(ctx context.Context, vendorID uuid.UUID) (*VendorView, error)
	ListItems(ctx context.Context, vendorID uuid.UUID, includeInactive bool) ([]*ItemView, error)
}

type CatalogReadStore interface {
	FindRegions(ctx context.Context) ([]*RegionView, error)
	FindBeachesByRegion(ctx context.Context, regionID uuid.UUID) ([]*BeachView, error)
	FindVendorsByBeach(ctx context.Context, beachID uuid.UUID) ([]*VendorView, error)
	FindVendorByID(ctx context.Context, vendorID uuid.UUID) (*VendorView, error)
	FindItemsByVendor(ctx context.Context, vendorID uuid.UUID, includeInactive bool) ([]*ItemView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) ListRegions(ctx context.Context) ([]*RegionView, error) {
	return q.readStore.FindRegions(ctx)
}

func (q *catalogQueriesImpl) ListBeaches(ctx context.Context, regionID uuid.UUID) ([]*BeachView, error) {
	return q.readStore.FindBeachesByRegion(ctx, regionID)
}

func (q *catalogQueriesImpl) ListVendors(ctx context.Context, beachID uuid.UUID) ([]*VendorView, error) {
	return q.readStore.FindVendorsByBeach(ctx, beachID)
}

func (q *catalogQueriesImpl) GetVendor(ctx context.Context, vendorID uuid.UUID) (*VendorView, error) {
	vendorView, err := q.readStore.FindVendorByID(ctx, vendorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return vendorView, nil
}

func (q *catalogQueriesImpl) ListItems(ctx context.Context, vendorID uuid.UUID, includeInactive bool) ([]*ItemView, error) {
	return q.readStore.FindItemsByVendor(ctx, vendorID, includeInactive)
}
