package commands

import (
	"context"

	"beach-reserve/internal/domain/reservation"
	"beach-reserve/internal/domain/vendor"
	"beach-reserve/internal/infra"
	"beach-reserve/internal/pkg/errs"
	"beach-reserve/internal/pkg/patch"
	"beach-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotVendorItem = errs.New("item belongs to another vendor")
	ErrItemInUse     = errs.New("item is referenced by reservations")
)

type CreateItemCommand struct {
	Name        string
	Description string
	PriceCents  int64
	TrackStock  bool
	StockTotal  int32
}

type UpdateItemCommand struct {
	Name        *string
	Description *string
	PriceCents  *int64
	IsActive    *bool
	StockTotal  *int32
}

type ItemCommands interface {
	CreateItem(ctx context.Context, vendorID uuid.UUID, cmd CreateItemCommand) (uuid.UUID, error)
	UpdateItem(ctx context.Context, vendorID, itemID uuid.UUID, cmd UpdateItemCommand) error
	DeleteItem(ctx context.Context, vendorID, itemID uuid.UUID) error
}

type itemCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewItemCommands(uow shared.UnitOfWork) ItemCommands {
	return &itemCommandsImpl{uow: uow}
}

func (uc *itemCommandsImpl) CreateItem(ctx context.Context, vendorID uuid.UUID, cmd CreateItemCommand) (uuid.UUID, error) {
	price, err := reservation.NewMoneyFromInt64(cmd.PriceCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := vendor.NewItem(vendorID, cmd.Name, cmd.Description, price, cmd.TrackStock, cmd.StockTotal)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Items().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

// UpdateItem applies a partial update under a row lock so stock resizing
// sees the current availability.
func (uc *itemCommandsImpl) UpdateItem(ctx context.Context, vendorID, itemID uuid.UUID, cmd UpdateItemCommand) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Items().FindForUpdate(ctx, tx.DB(), itemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if entity.VendorID() != vendorID {
			return ErrNotVendorItem
		}

		if err := applyItemUpdate(entity, cmd); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Items().Save(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// DeleteItem removes an item that never sold. Items referenced by
// reservation lines cannot be deleted; deactivate them instead.
func (uc *itemCommandsImpl) DeleteItem(ctx context.Context, vendorID, itemID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Items().FindForUpdate(ctx, tx.DB(), itemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if entity.VendorID() != vendorID {
			return ErrNotVendorItem
		}

		if err := tx.Items().Delete(ctx, tx.DB(), itemID); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrItemInUse
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func applyItemUpdate(entity *vendor.Item, cmd UpdateItemCommand) error {
	if cmd.Name != nil || cmd.Description != nil {
		name := patch.Coalesce(cmd.Name, entity.Name())
		description := patch.Coalesce(cmd.Description, entity.Description())
		if err := entity.Rename(name, description); err != nil {
			return err
		}
	}

	if cmd.PriceCents != nil {
		price, err := reservation.NewMoneyFromInt64(*cmd.PriceCents)
		if err != nil {
			return err
		}
		entity.SetPrice(price)
	}

	if cmd.StockTotal != nil {
		if err := entity.SetStockTotal(*cmd.StockTotal); err != nil {
			return err
		}
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			entity.Activate()
		} else {
			entity.Deactivate()
		}
	}
	return nil
}
