package usecase

import (
	"github.com/secmon-lab/fsindex/pkg/domain/interfaces"
)

type UseCases struct {
	client interfaces.AdminClient

	dryRun bool
}

type Option func(*UseCases)

// WithDryRun makes Deploy log planned creates and patches without
// issuing them.
func WithDryRun(dryRun bool) Option {
	return func(u *UseCases) {
		u.dryRun = dryRun
	}
}

func New(client interfaces.AdminClient, opts ...Option) *UseCases {
	uc := &UseCases{
		client: client,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
