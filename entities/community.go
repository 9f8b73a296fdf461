package entities

import "time"

// Post is a community discussion. LikeCount and ReplyCount are only ever
// changed by relative increments so concurrent clients converge.
type Post struct {
	PostID     string    `gorm:"primaryKey" json:"post_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	AuthorID   string    `gorm:"index" json:"author_id"`
	LikeCount  int       `json:"like_count"`
	ReplyCount int       `json:"reply_count"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

type Poll struct {
	PollID    string       `gorm:"primaryKey" json:"poll_id"`
	Question  string       `json:"question"`
	Options   []PollOption `gorm:"foreignKey:PollID;references:PollID" json:"options"`
	CreatedAt time.Time    `json:"created_at"`
}

type PollOption struct {
	OptionID uint   `gorm:"primaryKey" json:"option_id"`
	PollID   string `gorm:"index" json:"poll_id"`
	Ord      int    `json:"ord"`
	Text     string `json:"text"`
	Votes    int    `json:"votes"`
}

// PollVote records that a user voted; one row per (poll, user).
type PollVote struct {
	VoteID    uint   `gorm:"primaryKey"`
	PollID    string `gorm:"uniqueIndex:idx_poll_user"`
	UserID    string `gorm:"uniqueIndex:idx_poll_user"`
	OptionID  uint
	CreatedAt time.Time
}

type FarmingTip struct {
	Tip      string `json:"tip"`
	Category string `json:"category"`
	Author   string `json:"author"`
}
