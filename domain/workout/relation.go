package workout

// FollowRelation is a directed social edge from a follower to the user
// they follow. The deletion key is (follower_name, id); nothing prevents
// duplicate edges or self-follows.
type FollowRelation struct {
	ID            int64  `json:"id" dynamodbav:"id"`
	FollowerName  string `json:"follower_name" dynamodbav:"follower_name"`
	FollowingName string `json:"following_name" dynamodbav:"following_name"`
	CreatedAt     string `json:"created_at" dynamodbav:"created_at"`
}
