package models

type WorkMode string

const (
	WorkModeOnsite WorkMode = "Onsite"
	WorkModeRemote WorkMode = "Remote"
	WorkModeHybrid WorkMode = "Hybrid"
)

func (m WorkMode) IsValid() bool {
	switch m {
	case WorkModeOnsite, WorkModeRemote, WorkModeHybrid:
		return true
	}
	return false
}

type ContractType string

const (
	ContractTypeCLT        ContractType = "CLT"
	ContractTypePJ         ContractType = "PJ"
	ContractTypeInternship ContractType = "Internship"
	ContractTypeFreelance  ContractType = "Freelance"
)

func (c ContractType) IsValid() bool {
	switch c {
	case ContractTypeCLT, ContractTypePJ, ContractTypeInternship, ContractTypeFreelance:
		return true
	}
	return false
}

type JobLevel string

const (
	JobLevelJunior JobLevel = "Junior"
	JobLevelMid    JobLevel = "Mid"
	JobLevelSenior JobLevel = "Senior"
	JobLevelIntern JobLevel = "Intern"
)

func (l JobLevel) IsValid() bool {
	switch l {
	case JobLevelJunior, JobLevelMid, JobLevelSenior, JobLevelIntern:
		return true
	}
	return false
}

type CandidacyStatus string

const (
	CandidacyStatusPending  CandidacyStatus = "pending"
	CandidacyStatusViewed   CandidacyStatus = "viewed"
	CandidacyStatusApproved CandidacyStatus = "approved"
	CandidacyStatusRejected CandidacyStatus = "rejected"
)

// IsValid reports whether the status is one of the four known values.
// Reviewers may move a candidacy between any two of them, there is no
// directional ordering.
func (s CandidacyStatus) IsValid() bool {
	switch s {
	case CandidacyStatusPending, CandidacyStatusViewed, CandidacyStatusApproved, CandidacyStatusRejected:
		return true
	}
	return false
}

// NotInformed fills provider fields the search API left empty, so reads
// downstream never deal with nulls.
const NotInformed = "not informed"
