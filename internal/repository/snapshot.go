package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/hirestack/jobboard-go/internal/domain/job"
)

// snapshotFile is the on-disk shape of the fallback dataset: a
// versioned, read-only export of job postings.
type snapshotFile struct {
	Version string           `json:"version"`
	Jobs    []snapshotRecord `json:"jobs"`
}

// snapshotRecord tolerates both salary shapes found in exports: numeric
// bounds, or a free-text composite like "$80k - $100k". Both normalize
// into the canonical Job so nothing downstream special-cases the
// source.
type snapshotRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	SalaryMin   *int64    `json:"salaryMin"`
	SalaryMax   *int64    `json:"salaryMax"`
	Salary      string    `json:"salary"`
	JobType     string    `json:"jobType"`
	Skills      []string  `json:"skills"`
	Active      *bool     `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LoadSnapshot reads the fallback dataset once. The returned slice is
// treated as immutable for the process lifetime.
func LoadSnapshot(path string) ([]job.Job, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	var file snapshotFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}

	jobs := make([]job.Job, 0, len(file.Jobs))
	for _, rec := range file.Jobs {
		jobs = append(jobs, rec.normalize())
	}
	return jobs, nil
}

func (rec snapshotRecord) normalize() job.Job {
	j := job.Job{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Company:     rec.Company,
		Location:    rec.Location,
		SalaryMin:   rec.SalaryMin,
		SalaryMax:   rec.SalaryMax,
		JobType:     job.JobType(rec.JobType),
		Skills:      pq.StringArray(rec.Skills),
		Active:      true,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.Active != nil {
		j.Active = *rec.Active
	}
	if j.JobType == "" {
		j.JobType = job.JobTypeFullTime
	}
	if j.SalaryMin == nil && j.SalaryMax == nil && rec.Salary != "" {
		j.SalaryMin, j.SalaryMax = parseSalaryText(rec.Salary)
	}
	return j
}

var salaryNumber = regexp.MustCompile(`([0-9][0-9,]*(?:\.[0-9]+)?)\s*([kK])?`)

// parseSalaryText pulls numeric bounds out of a composite salary string
// such as "$80k - $100k" or "90000". The first number is the minimum,
// the last the maximum; an unparseable string yields no salary data.
func parseSalaryText(s string) (*int64, *int64) {
	matches := salaryNumber.FindAllStringSubmatch(s, -1)
	values := make([]int64, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		if m[2] != "" {
			n *= 1000
		}
		values = append(values, int64(n))
	}
	if len(values) == 0 {
		return nil, nil
	}
	min, max := values[0], values[len(values)-1]
	if min > max {
		min, max = max, min
	}
	return &min, &max
}
