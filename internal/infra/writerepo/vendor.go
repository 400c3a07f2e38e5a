package writerepo

import (
	"context"

	"beach-reserve/internal/infra"
	"beach-reserve/internal/infra/db"

	"github.com/google/uuid"
)

type VendorRepository struct{}

func NewVendorRepository() *VendorRepository {
	return &VendorRepository{}
}

const updateVendorPhotoSQL = `
UPDATE vendors
SET photo_url = $2,
    updated_at = now()
WHERE id = $1`

func (r *VendorRepository) SetPhotoURL(ctx context.Context, dbtx db.DBTX, vendorID uuid.UUID, url string) error {
	tag, err := dbtx.Exec(ctx, updateVendorPhotoSQL, vendorID, url)
	if err != nil {
		return infra.WrapRepoErr("failed to update vendor photo", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vendor not found", nil, infra.KindNotFound)
	}
	return nil
}
