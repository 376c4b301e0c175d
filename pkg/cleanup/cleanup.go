// Package cleanup collects shutdown jobs registered during startup and
// runs them once the server stops accepting requests.
package cleanup

import "log/slog"

type Job struct {
	Name string
	F    func() error
}

var jobs []*Job

func Register(j *Job) {
	jobs = append(jobs, j)
}

// CleanUp runs registered jobs last-in first-out so dependents shut down
// before the resources they hold.
func CleanUp() {
	for i := len(jobs) - 1; i >= 0; i-- {
		j := jobs[i]
		slog.Info("running cleanup job", slog.String("name", j.Name))
		if err := j.F(); err != nil {
			slog.Error("cleanup job failed", slog.String("name", j.Name), slog.String("error", err.Error()))
			continue
		}
		slog.Info("cleanup job finished", slog.String("name", j.Name))
	}
}
