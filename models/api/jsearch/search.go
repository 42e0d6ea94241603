package jsearchapimodels

// SearchParams are the provider query parameters. Zero values fall back to
// the configured defaults, the employment-type/date filter is fixed.
type SearchParams struct {
	Query   string
	Pages   int
	Country string
}

type SearchResponse struct {
	Status string      `json:"status"`
	Data   []JobResult `json:"data"`
}

// JobResult is the raw provider record. Optional fields arrive empty or
// missing depending on the posting, nothing here is trusted past the
// normalizer.
type JobResult struct {
	JobID                 string   `json:"job_id"`
	JobTitle              string   `json:"job_title"`
	JobDescription        string   `json:"job_description"`
	JobResponsibilities   []string `json:"job_responsibilities"`
	JobRequirements       []string `json:"job_requirements"`
	JobBenefits           []string `json:"job_benefits"`
	JobIsRemote           bool     `json:"job_is_remote"`
	JobCity               string   `json:"job_city"`
	JobLocation           string   `json:"job_location"`
	JobSalary             string   `json:"job_salary"`
	NumAvailablePositions int      `json:"num_available_positions"`
	EmployerName          string   `json:"employer_name"`
	EmployerWebsite       string   `json:"employer_website"`
	JobApplyEmail         string   `json:"job_apply_email"`
	JobApplyLink          string   `json:"job_apply_link"`
	JobPostedAt           string   `json:"job_posted_at"`
}

type ErrorData struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
