package publication

import "time"

// Publication is one successfully committed submission.
type Publication struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Path      string    `json:"path" bson:"path"`
	Files     []string  `json:"files" bson:"files"`
	CommitSHA string    `json:"commitSha,omitempty" bson:"commitSha,omitempty"`
	HTMLURL   string    `json:"htmlUrl,omitempty" bson:"htmlUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
