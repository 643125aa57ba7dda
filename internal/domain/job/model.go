package job

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// JobType classifies the employment terms of a posting
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeFreelance  JobType = "freelance"
	JobTypeInternship JobType = "internship"
	JobTypeTemporary  JobType = "temporary"
)

// SalarySentinel is larger than any real salary. Records without salary
// data sort behind it under salary_low; the SQL rendering uses the same
// constant so both backends agree.
const SalarySentinel int64 = 1 << 60

// Job is the canonical posting shape. Both backends normalize into it,
// so sorting and the response envelope never care where a record came
// from.
type Job struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Company     string         `gorm:"size:255;not null" json:"company"`
	Location    string         `gorm:"size:255" json:"location"`
	SalaryMin   *int64         `gorm:"column:salary_min" json:"salaryMin,omitempty"`
	SalaryMax   *int64         `gorm:"column:salary_max" json:"salaryMax,omitempty"`
	JobType     JobType        `gorm:"size:20;default:'full-time'" json:"jobType"`
	Skills      pq.StringArray `gorm:"type:text[]" json:"skills"`
	Active      bool           `gorm:"default:true;index" json:"active"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

// TableName specifies the database table name
func (Job) TableName() string {
	return "jobs"
}

// BeforeCreate assigns a UUID so identifiers have the same shape on
// every backend.
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

// HasSalary reports whether any salary bound is known.
func (j *Job) HasSalary() bool {
	return j.SalaryMin != nil || j.SalaryMax != nil
}

// SalaryCeiling is the value salary_high orders by: the greater of the
// known bounds, or 0 when no salary data exists.
func (j *Job) SalaryCeiling() int64 {
	var v int64
	if j.SalaryMin != nil && *j.SalaryMin > v {
		v = *j.SalaryMin
	}
	if j.SalaryMax != nil && *j.SalaryMax > v {
		v = *j.SalaryMax
	}
	return v
}

// SalaryFloor is the value salary_low orders by: the minimum if present,
// else the maximum, else the sentinel so salary-less records sort last.
func (j *Job) SalaryFloor() int64 {
	if j.SalaryMin != nil {
		return *j.SalaryMin
	}
	if j.SalaryMax != nil {
		return *j.SalaryMax
	}
	return SalarySentinel
}
