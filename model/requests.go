package model

// Request payloads for the mutating endpoints. Owner/user fields tagged
// omitempty are injected by the API layer when the backend does not infer
// them from the auth token.

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type ReviewCreateRequest struct {
	Book    int    `json:"book"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

type OfferCreateRequest struct {
	Book                int          `json:"book"`
	Owner               int          `json:"owner,omitempty"`
	Condition           string       `json:"condition"`
	ExchangeType        ExchangeType `json:"exchange_type"`
	Price               string       `json:"price,omitempty"`
	ExchangePreferences string       `json:"exchange_preferences,omitempty"`
}

type ExchangeRequestCreate struct {
	Offer     int    `json:"offer"`
	Requester int    `json:"requester,omitempty"`
	Message   string `json:"message,omitempty"`
}

type TicketCreateRequest struct {
	User    int    `json:"user,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ReplyCreateRequest struct {
	Ticket  int    `json:"ticket"`
	User    int    `json:"user,omitempty"`
	Message string `json:"message"`
	// Content is the field name an older backend accepted for the reply body.
	// The API layer folds it into Message and never sends it on the wire.
	Content string `json:"-"`
}

type DiscussionCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Book    int    `json:"book,omitempty"`
}

type CommentCreateRequest struct {
	Discussion int    `json:"discussion"`
	Content    string `json:"content"`
}

type ShelfCreateRequest struct {
	Name string `json:"name"`
}

type ShelfRenameRequest struct {
	Name string `json:"name"`
}

// ShelfBooksUpdate is the write representation of shelf content: the whole
// book-id array, replaced wholesale on every add or remove.
type ShelfBooksUpdate struct {
	Books []int `json:"books"`
}

type ProfileUpdateRequest struct {
	ID             int    `json:"id,omitempty"`
	FullName       string `json:"full_name,omitempty"`
	BirthDate      string `json:"birth_date,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}
