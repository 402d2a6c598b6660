package domain

type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  int64  `json:"user_id"`
}

// OwnedBy reports whether the note belongs to the given user.
func (n *Note) OwnedBy(user *User) bool {
	return user != nil && n.UserID == user.ID
}
