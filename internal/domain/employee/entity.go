package employee

type Employee struct {
	ID         string
	FullName   string
	Department string
	Active     bool
}
