package domain

import "time"

// User is the persisted profile record. ID is the stable internal
// identifier; ExternalID references the third-party identity provider.
// Friends holds internal user IDs and is always maintained symmetrically:
// if A lists B, B lists A.
type User struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"externalId"`
	FullName   string    `json:"fullname"`
	ImageURL   string    `json:"imageUrl"`
	Email      string    `json:"email"`
	Friends    []string  `json:"friends"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsFriend reports whether the given user ID is in the friend set.
func (u User) IsFriend(userID string) bool {
	for _, id := range u.Friends {
		if id == userID {
			return true
		}
	}
	return false
}
