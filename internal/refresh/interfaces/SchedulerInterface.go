package interfaces

import (
	"context"
	"time"
)

type SchedulerInterface interface {
	Init()
	Stop()
	RefreshNow(ctx context.Context) error
	LastRefresh() time.Time
	LastError() string
}

type RefresherInterface interface {
	Refresh(ctx context.Context) error
}
