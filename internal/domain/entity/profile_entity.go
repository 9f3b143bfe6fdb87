package entity

// ProfileCounts groups the fan-out counters shown on a profile.
type ProfileCounts struct {
	Posts     int64 `json:"postCount"`
	Followers int64 `json:"followerCount"`
	Following int64 `json:"followingCount"`
}

// Profile is the read model for a user's profile page.
type Profile struct {
	ID              string        `json:"-"`
	Username        string        `json:"username"`
	Avatar          string        `json:"avatar"`
	IsViewerProfile bool          `json:"isVisitorsProfile"`
	IsFollowing     bool          `json:"isFollowing"`
	Counts          ProfileCounts `json:"counts"`
}
