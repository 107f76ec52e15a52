package domain

type Note struct {
	ID        string `db:"id" json:"id"`
	Category  string `db:"category" json:"category"`
	Title     string `db:"title" json:"title"`
	Content   string `db:"content" json:"content,omitempty"`
	CreatedAt string `db:"created_at" json:"created_at"`
	UpdatedAt string `db:"updated_at" json:"updated_at"`
}
