package model

import "time"

type NotificationType string

const (
	NotificationProjectUpdate NotificationType = "project_update"
	NotificationDiscussion    NotificationType = "discussion"
	NotificationOpportunity   NotificationType = "opportunity"
	NotificationVolunteer     NotificationType = "volunteer"
	NotificationDonation      NotificationType = "donation"
	NotificationCollaboration NotificationType = "collaboration"
	NotificationReview        NotificationType = "review"
)

type Ref struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji,omitempty"`
}

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
	Read      bool             `json:"read"`
	Project   *Ref             `json:"project,omitempty"`
	User      *Ref             `json:"user,omitempty"`
	Amount    *float64         `json:"amount,omitempty"`
}
