package profile

import "changemakers-go/internal/model"

// Sample is the demo profile served until accounts exist.
func Sample() model.Profile {
	return model.Profile{
		ID:          "1",
		Username:    "Sarah Johnson",
		Avatar:      "👨🏻‍💻",
		Location:    "San Francisco, CA",
		Bio:         "Passionate about sustainable development and community building. Looking to make a positive impact through technology and education.",
		Email:       "sarah.j@example.com",
		Interests:   []string{"Education", "Environment", "Technology", "Social Justice"},
		IsVerified:  true,
		TrustScore:  95,
		ImpactScore: 850,
		Achievements: []model.Achievement{
			{ID: "1", Title: "Project Pioneer", Description: "Successfully launched 5 community projects", Icon: "🚀", Date: "2024-03"},
			{ID: "2", Title: "Super Volunteer", Description: "Contributed 100+ hours to community projects", Icon: "⭐", Date: "2024-02"},
		},
		Projects: []model.ProfileProject{
			{ID: "1", Title: "Youth Tech Education Program", Location: "San Francisco, CA", Progress: 75, Role: model.RoleAdmin},
			{ID: "2", Title: "Community Garden Initiative", Location: "Oakland, CA", Progress: 90, Role: model.RoleVolunteer},
		},
		Posts: []model.Post{
			{ID: "1", Title: "First Post", Content: "This is the content of the first post.", Likes: 10, Comments: 2, CreatedAt: "2024-03-15"},
			{ID: "2", Title: "Second Post", Content: "This is the content of the second post.", Likes: 5, Comments: 1, CreatedAt: "2024-03-10"},
		},
		VolunteerHistory: []model.VolunteerActivity{
			{ID: "1", ProjectName: "Community Garden Initiative", Role: "Garden Coordinator", TasksCompleted: 12, HoursContributed: 48, DateRange: "Jan 2024 - Present"},
		},
		Donations: []model.Donation{
			{ID: "1", ProjectName: "Youth Tech Education Program", Amount: 500, Date: "2024-03-15", Progress: 75},
		},
		Endorsements: []model.Endorsement{
			{ID: "1", ProjectName: "Community Garden Initiative", Rating: 5, Review: "Amazing initiative that truly transforms the community!", Date: "2024-03-10"},
		},
	}
}
