package models

// Theme groups posts; "tema" on the backend.
type Theme struct {
	ID          int64  `json:"id"`
	Description string `json:"descricao"`
	Posts       []Post `json:"postagem,omitempty"`
}

func (t Theme) Ref() *Theme {
	return &Theme{ID: t.ID}
}
