package commands

import (
	"context"
	"fmt"
	"io"

	"beach-reserve/internal/domain/user"
	"beach-reserve/internal/pkg/errs"
	"beach-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrMediaUpload = errs.New("media upload failed")

type ProfileCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, displayName string) error
	UploadAvatar(ctx context.Context, userID uuid.UUID, filename string, content io.Reader) (string, error)
	UploadVendorPhoto(ctx context.Context, vendorID uuid.UUID, filename string, content io.Reader) (string, error)
	RegisterPushToken(ctx context.Context, userID uuid.UUID, token string) error
	RemovePushToken(ctx context.Context, userID uuid.UUID, token string) error
}

type profileCommandsImpl struct {
	uow     shared.UnitOfWork
	storage MediaStorage
}

func NewProfileCommands(uow shared.UnitOfWork, storage MediaStorage) ProfileCommands {
	return &profileCommandsImpl{uow: uow, storage: storage}
}

func (uc *profileCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, displayName string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateProfile(ctx, tx.DB(), userID, displayName)
	})
}

func (uc *profileCommandsImpl) UploadAvatar(ctx context.Context, userID uuid.UUID, filename string, content io.Reader) (string, error) {
	url, err := uc.storage.Save(ctx, "avatars", fmt.Sprintf("%s-%s", userID, filename), content)
	if err != nil {
		return "", errs.Mark(err, ErrMediaUpload)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().SetAvatarURL(ctx, tx.DB(), userID, url)
	})
	if err != nil {
		return "", err
	}
	return url, nil
}

func (uc *profileCommandsImpl) UploadVendorPhoto(ctx context.Context, vendorID uuid.UUID, filename string, content io.Reader) (string, error) {
	url, err := uc.storage.Save(ctx, "vendors", fmt.Sprintf("%s-%s", vendorID, filename), content)
	if err != nil {
		return "", errs.Mark(err, ErrMediaUpload)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Vendors().SetPhotoURL(ctx, tx.DB(), vendorID, url)
	})
	if err != nil {
		return "", err
	}
	return url, nil
}

func (uc *profileCommandsImpl) RegisterPushToken(ctx context.Context, userID uuid.UUID, token string) error {
	tokenVO, err := user.NewPushToken(token)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpsertPushToken(ctx, tx.DB(), userID, tokenVO.Value())
	})
}

func (uc *profileCommandsImpl) RemovePushToken(ctx context.Context, userID uuid.UUID, token string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().DeletePushToken(ctx, tx.DB(), userID, token)
	})
}
