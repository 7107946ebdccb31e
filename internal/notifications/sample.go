package notifications

import (
	"time"

	"changemakers-go/internal/model"
)

// Sample is the demo inbox served on a fresh start, newest first, with
// timestamps relative to now.
func Sample(now time.Time) []model.Notification {
	now = now.UTC()
	donation := 500.0
	return []model.Notification{
		{
			ID:        "1",
			Type:      model.NotificationProjectUpdate,
			Title:     "Milestone Reached! 🎉",
			Message:   "Community Garden Initiative has reached 75% of its funding goal!",
			CreatedAt: now.Add(-2 * time.Hour),
			Project:   &model.Ref{Name: "Community Garden Initiative", Emoji: "🌱"},
		},
		{
			ID:        "2",
			Type:      model.NotificationDiscussion,
			Title:     "New Comment on Your Post",
			Message:   `@Sarah mentioned you: "Great idea about the solar panels! When can we discuss implementation?"`,
			CreatedAt: now.Add(-3 * time.Hour),
			User:      &model.Ref{Name: "Sarah Chen", Emoji: "👩🏻‍💼"},
		},
		{
			ID:        "3",
			Type:      model.NotificationOpportunity,
			Title:     "New Project Match!",
			Message:   `Based on your interests: "Youth Tech Education Program" is looking for mentors`,
			CreatedAt: now.Add(-5 * time.Hour),
			Read:      true,
			Project:   &model.Ref{Name: "Youth Tech Education Program", Emoji: "💻"},
		},
		{
			ID:        "4",
			Type:      model.NotificationVolunteer,
			Title:     "Volunteer Request Approved",
			Message:   `You're now a volunteer for "Elderly Care Support Network"`,
			CreatedAt: now.Add(-24 * time.Hour),
			Read:      true,
			Project:   &model.Ref{Name: "Elderly Care Support Network", Emoji: "🤝"},
		},
		{
			ID:        "5",
			Type:      model.NotificationDonation,
			Title:     "New Donation Received!",
			Message:   "Anonymous donor contributed $500 to your project",
			CreatedAt: now.Add(-25 * time.Hour),
			Amount:    &donation,
			Project:   &model.Ref{Name: "Community Garden Initiative", Emoji: "🌱"},
		},
		{
			ID:        "6",
			Type:      model.NotificationCollaboration,
			Title:     "New Collaboration Request",
			Message:   `Tech4Good wants to partner on "Youth Tech Education Program"`,
			CreatedAt: now.Add(-48 * time.Hour),
			Read:      true,
			User:      &model.Ref{Name: "Tech4Good", Emoji: "🏢"},
		},
		{
			ID:        "7",
			Type:      model.NotificationReview,
			Title:     "New Endorsement",
			Message:   "Maria left a 5-star review on your volunteer work",
			CreatedAt: now.Add(-49 * time.Hour),
			Read:      true,
			User:      &model.Ref{Name: "Maria Rodriguez", Emoji: "👩🏽‍⚕️"},
		},
	}
}
