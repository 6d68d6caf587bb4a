package models

type Blog struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	// UserID is the owning user. It is always assigned from the
	// authenticated identity, never from client input.
	UserID int64        `json:"-"`
	User   *UserSummary `json:"user,omitempty"`
}

// NewBlogRequest is the blog creation payload. Likes is a pointer so an
// absent field can be told apart from an explicit zero.
type NewBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}
