package notifications

import "changemakers-go/internal/model"

type Notifier interface {
	Notify(n model.Notification)
}

// Multi forwards every notification to each notifier in order.
type Multi []Notifier

func (m Multi) Notify(n model.Notification) {
	for _, notifier := range m {
		if notifier != nil {
			notifier.Notify(n)
		}
	}
}
