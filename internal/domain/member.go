package domain

type Member struct {
	ID   int64
	Name string
}
