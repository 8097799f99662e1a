package testutil

import (
	"context"
	"fitbook/shared/cache"
)

// NopCache always misses and accepts every write, so services fall through to the database.
type NopCache struct{}

func (NopCache) Save(context.Context, string, any, int) error { return nil }

func (NopCache) Get(context.Context, string, any) error { return cache.Nil }

func (NopCache) Clear(context.Context, string) error { return nil }
