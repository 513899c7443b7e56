package schema

// Person is a resident known to the dispatch service. FirstName and LastName
// together identify a person and never change once created.
type Person struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// FullName joins the identity fields the way household listings print them
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}
