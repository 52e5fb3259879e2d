package scenarios

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samrudhimadankar/Optimal-Resource-Allocation-System-Deploy/core/model"
)

type JobDef struct {
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"`
	Deadline float64 `yaml:"deadline"`
	Profit   float64 `yaml:"profit"`
}

func (j JobDef) ToModel() model.Job {
	return model.Job{Name: j.Name, Duration: j.Duration, Deadline: j.Deadline, Profit: j.Profit}
}

type ResourceDef struct {
	Name    string  `yaml:"name"`
	Cost    float64 `yaml:"cost"`
	Benefit float64 `yaml:"benefit"`
}

func (r ResourceDef) ToModel() model.Resource {
	return model.Resource{Name: r.Name, Cost: r.Cost, Benefit: r.Benefit}
}

// Expected lists the checked outcomes. Unset fields are not checked.
type Expected struct {
	Greedy   *float64 `yaml:"greedy,omitempty"`
	Optimal  *float64 `yaml:"optimal,omitempty"`
	Ratio    *float64 `yaml:"ratio,omitempty"`
	Selected []string `yaml:"selected,omitempty"`
	Witness  []string `yaml:"witness,omitempty"`
}

type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description,omitempty"`
	Domain      string        `yaml:"domain"`
	Capacity    float64       `yaml:"capacity"`
	SortBy      string        `yaml:"sort_by"`
	Jobs        []JobDef      `yaml:"jobs,omitempty"`
	Resources   []ResourceDef `yaml:"resources,omitempty"`
	Expected    Expected      `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks the domain, the sort key and every record.
func (sc *Scenario) Validate() error {
	d, err := model.ParseDomain(sc.Domain)
	if err != nil {
		return err
	}
	if _, err := model.ParseSortKey(sc.SortBy); err != nil {
		return err
	}
	if err := model.ValidateCapacity(sc.Capacity); err != nil {
		return err
	}
	if d == model.DomainJobs && len(sc.Resources) > 0 || d == model.DomainResources && len(sc.Jobs) > 0 {
		return fmt.Errorf("scenario %q mixes jobs and resources", sc.Name)
	}
	for _, j := range sc.Jobs {
		if err := j.ToModel().Validate(); err != nil {
			return err
		}
	}
	for _, r := range sc.Resources {
		if err := r.ToModel().Validate(); err != nil {
			return err
		}
	}
	return nil
}
