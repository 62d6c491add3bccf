package models

import "time"

// Follow is a directed edge meaning the follower follows the followee. Edges
// are immutable once created; pair uniqueness, the no-self-follow rule and
// endpoint integrity are enforced by the table constraints so concurrent
// writers cannot slip past the service-level checks.
type Follow struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	FollowerID string    `json:"followerId" gorm:"type:uuid;not null;index;uniqueIndex:idx_follows_follower_followee;check:chk_follows_no_self_follow,follower_id <> followee_id"`
	FolloweeID string    `json:"followeeId" gorm:"type:uuid;not null;index;uniqueIndex:idx_follows_follower_followee"`
	CreatedAt  time.Time `json:"createdAt"`

	Follower *User `json:"-" gorm:"foreignKey:FollowerID;references:ID;constraint:OnDelete:CASCADE"`
	Followee *User `json:"-" gorm:"foreignKey:FolloweeID;references:ID;constraint:OnDelete:CASCADE"`
}

// FollowRequest is the body of POST /follows and DELETE /follows.
type FollowRequest struct {
	FollowerID string `json:"followerId" validate:"required,uuid"`
	FolloweeID string `json:"followeeId" validate:"required,uuid"`
}

// FollowPage is one limit/offset window of a follower or following listing.
// Total counts every edge on the queried side, independent of the window.
type FollowPage struct {
	Total  int64  `json:"total"`
	Items  []User `json:"items"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}
