package service

import "context"

type HomeworkStatuses interface {
	Start(ctx context.Context)
	Check(ctx context.Context) error
	Stop() error
}
