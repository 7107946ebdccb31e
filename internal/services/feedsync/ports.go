package feedsync

import (
	"context"

	"changemakers-go/internal/model"
)

// Source supplies project records, e.g. the bundled seed or a remote feed.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]model.Project, error)
}

type Notifier interface {
	Notify(n model.Notification)
}
