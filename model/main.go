package model

type Company struct {
	Handle       string  `db:"handle"        json:"handle"`
	Name         string  `db:"name"          json:"name"`
	NumEmployees *int    `db:"num_employees" json:"numEmployees"`
	Description  string  `db:"description"   json:"description"`
	LogoURL      *string `db:"logo_url"      json:"logoUrl"`
}

// CompanyDetail is a company together with the jobs it posts.
type CompanyDetail struct {
	Company
	Jobs []Job `json:"jobs"`
}

type NewCompany struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	NumEmployees *int    `json:"numEmployees"`
	Description  string  `json:"description"`
	LogoURL      *string `json:"logoUrl"`
}

type Job struct {
	ID            int      `db:"id"             json:"id"`
	Title         string   `db:"title"          json:"title"`
	Salary        *int     `db:"salary"         json:"salary"`
	Equity        *float64 `db:"equity"         json:"equity"`
	CompanyHandle string   `db:"company_handle" json:"companyHandle"`
	CompanyName   string   `db:"company_name"   json:"companyName,omitempty"`
}

// JobDetail is a job with its company inlined.
type JobDetail struct {
	Job
	Company *Company `json:"company"`
}

type NewJob struct {
	Title         string   `json:"title"`
	Salary        *int     `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"companyHandle"`
}

type User struct {
	Username  string `db:"username"   json:"username"`
	Password  string `db:"password"   json:"-"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name"  json:"lastName"`
	Email     string `db:"email"      json:"email"`
	IsAdmin   bool   `db:"is_admin"   json:"isAdmin"`
}

// UserDetail is a user with the ids of the jobs they applied to.
type UserDetail struct {
	User
	Applications []int `json:"applications"`
}

type NewUser struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// Claims is what an auth token says about its bearer.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
