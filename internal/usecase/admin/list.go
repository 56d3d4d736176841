package admin

import (
	"context"

	"github.com/BruksfildServices01/delivery-marketplace/internal/listing"
)

// FindFunc is the repository side of a listing.
type FindFunc[T any] func(ctx context.Context, p listing.Params) ([]T, int64, error)

// List serves one admin listing endpoint.
type List[T any] struct {
	find    FindFunc[T]
	message string
}

func NewList[T any](find FindFunc[T], message string) *List[T] {
	return &List[T]{find: find, message: message}
}

func (uc *List[T]) Execute(ctx context.Context, p listing.Params) (listing.Page[T], error) {
	p = p.Normalize()

	items, total, err := uc.find(ctx, p)
	if err != nil {
		return listing.Page[T]{}, err
	}

	page := listing.NewPage(items, total, p)
	page.Message = uc.message
	return page, nil
}
