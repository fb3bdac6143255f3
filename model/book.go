package model

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Book struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Author          Author  `json:"author"`
	AuthorName      string  `json:"author_name,omitempty"`
	Description     string  `json:"description,omitempty"`
	ISBN            string  `json:"isbn,omitempty"`
	CoverImage      string  `json:"cover_image,omitempty"`
	PublicationDate string  `json:"publication_date,omitempty"`
	Genres          []Genre `json:"genres,omitempty"`
	AverageRating   float64 `json:"average_rating,omitempty"`
	CreatedAt       string  `json:"created_at,omitempty"`
}

// DisplayAuthor resolves the author label the way the detail view did:
// read-only author_name first, then the normalized author value.
func (b *Book) DisplayAuthor() string {
	if b.AuthorName != "" {
		return b.AuthorName
	}
	if b.Author.Name != "" {
		return b.Author.Name
	}
	return "Unknown author"
}

// HasGenre reports whether the book carries the named genre. Used for the
// client-side pass of genre filtering on top of the query parameter.
func (b *Book) HasGenre(name string) bool {
	for _, g := range b.Genres {
		if g.Name == name {
			return true
		}
	}
	return false
}

type Bookshelf struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	UserID    int    `json:"user"`
	Books     []Book `json:"books"`
	CreatedAt string `json:"created_at,omitempty"`
}

// BookIDs returns the shelf content in its write representation, an array of
// book ids.
func (s *Bookshelf) BookIDs() []int {
	ids := make([]int, 0, len(s.Books))
	for _, b := range s.Books {
		ids = append(ids, b.ID)
	}
	return ids
}

type Review struct {
	ID        int     `json:"id"`
	BookID    FlexInt `json:"book"`
	UserID    FlexInt `json:"user"`
	Username  string  `json:"username,omitempty"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Rating    int     `json:"rating"`
	Status    string  `json:"status,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
)
