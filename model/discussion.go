package model

type Discussion struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	BookID    FlexInt `json:"book,omitempty"`
	BookTitle string  `json:"book_title,omitempty"`
	CreatedBy FlexInt `json:"created_by,omitempty"`
	Author    string  `json:"author_name,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}

type Comment struct {
	ID           int     `json:"id"`
	DiscussionID FlexInt `json:"discussion"`
	UserID       FlexInt `json:"user"`
	Username     string  `json:"username,omitempty"`
	Content      string  `json:"content"`
	LikesCount   int     `json:"likes_count"`
	IsLiked      bool    `json:"is_liked,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
}
