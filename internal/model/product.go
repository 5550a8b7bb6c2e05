package model

type Product struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	CategoryID  int64   `db:"category_id" json:"categoryId"`
}
