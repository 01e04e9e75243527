package dto

// SiteStats aggregates whole-store counts and counter sums for GET /stats
type SiteStats struct {
	Articles int64 `json:"articles"`
	Projects int64 `json:"projects"`
	Comments int64 `json:"comments"`
	Users    int64 `json:"users"`
	Messages int64 `json:"messages"`
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
}
