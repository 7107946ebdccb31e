package model

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Date        string `json:"date"`
}

type ProjectRole string

const (
	RoleAdmin     ProjectRole = "admin"
	RoleVolunteer ProjectRole = "volunteer"
	RoleDonor     ProjectRole = "donor"
)

type ProfileProject struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Location string      `json:"location"`
	Progress int         `json:"progress"`
	Role     ProjectRole `json:"role"`
}

type Post struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Likes     int    `json:"likes"`
	Comments  int    `json:"comments"`
	CreatedAt string `json:"createdAt"`
}

type VolunteerActivity struct {
	ID               string `json:"id"`
	ProjectName      string `json:"projectName"`
	Role             string `json:"role"`
	TasksCompleted   int    `json:"tasksCompleted"`
	HoursContributed int    `json:"hoursContributed"`
	DateRange        string `json:"dateRange"`
}

type Donation struct {
	ID          string  `json:"id"`
	ProjectName string  `json:"projectName"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Progress    int     `json:"progress"`
}

type Endorsement struct {
	ID          string `json:"id"`
	ProjectName string `json:"projectName"`
	Rating      int    `json:"rating"`
	Review      string `json:"review"`
	Date        string `json:"date"`
}

// Profile is the signed-in user's profile as shown on the profile tab.
type Profile struct {
	ID               string              `json:"id"`
	Username         string              `json:"username"`
	Avatar           string              `json:"avatar"`
	Location         string              `json:"location"`
	Bio              string              `json:"bio"`
	Email            string              `json:"email"`
	Interests        []string            `json:"interests"`
	IsVerified       bool                `json:"isVerified"`
	TrustScore       int                 `json:"trustScore"`
	ImpactScore      int                 `json:"impactScore"`
	Achievements     []Achievement       `json:"achievements"`
	Projects         []ProfileProject    `json:"projects"`
	Posts            []Post              `json:"posts"`
	VolunteerHistory []VolunteerActivity `json:"volunteerHistory"`
	Donations        []Donation          `json:"donations"`
	Endorsements     []Endorsement       `json:"endorsements"`
}

// Clone returns a deep copy; no slice is shared with p.
func (p Profile) Clone() Profile {
	out := p
	out.Interests = cloneSlice(p.Interests)
	out.Achievements = cloneSlice(p.Achievements)
	out.Projects = cloneSlice(p.Projects)
	out.Posts = cloneSlice(p.Posts)
	out.VolunteerHistory = cloneSlice(p.VolunteerHistory)
	out.Donations = cloneSlice(p.Donations)
	out.Endorsements = cloneSlice(p.Endorsements)
	return out
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
