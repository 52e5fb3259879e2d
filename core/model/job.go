package model

import "fmt"

// Job is a unit of work that must finish before its own deadline.
type Job struct {
	Name     string
	Duration float64 // hours of work
	Deadline float64 // latest completion time, hours from start
	Profit   float64
}

// NewJob validates the fields and returns a Job.
func NewJob(name string, duration, deadline, profit float64) (Job, error) {
	j := Job{Name: name, Duration: duration, Deadline: deadline, Profit: profit}
	if err := j.Validate(); err != nil {
		return Job{}, err
	}
	return j, nil
}

// Validate checks that the job has a name and positive duration and deadline.
func (j Job) Validate() error {
	if j.Name == "" {
		return fmt.Errorf("job name is required")
	}
	if !(j.Duration > 0) {
		return fmt.Errorf("job %s: duration must be positive (got %v)", j.Name, j.Duration)
	}
	if !(j.Deadline > 0) {
		return fmt.Errorf("job %s: deadline must be positive (got %v)", j.Name, j.Deadline)
	}
	return nil
}

func (j Job) Label() string      { return j.Name }
func (j Job) Primary() float64   { return j.Duration }
func (j Job) Objective() float64 { return j.Profit }
func (j Job) Horizon() float64   { return j.Deadline }
func (j Job) String() string {
	return fmt.Sprintf("%s (duration=%g deadline=%g profit=%g)", j.Name, j.Duration, j.Deadline, j.Profit)
}
