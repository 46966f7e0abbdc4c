package randomuser

// usersResponse is the subset of the API document the client reads.
type usersResponse struct {
	Results []userResult `json:"results"`
	Error   string       `json:"error,omitempty"`
}

type userResult struct {
	Gender string `json:"gender"`
	Name   struct {
		Title string `json:"title"`
		First string `json:"first"`
		Last  string `json:"last"`
	} `json:"name"`
	Location struct {
		City    string `json:"city"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"location"`
	Email string `json:"email"`
	Login struct {
		UUID string `json:"uuid"`
	} `json:"login"`
	Registered struct {
		Date string `json:"date"`
		Age  int    `json:"age"`
	} `json:"registered"`
	Phone string `json:"phone"`
	Nat   string `json:"nat"`
}
