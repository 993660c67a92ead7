package project

// Reporter observes the write phase of a run.
type Reporter interface {
	// Planned receives the output names about to be written, in order.
	Planned(paths []string)
	// Written is called after each output is on disk.
	Written(path string)
	// Done is called once the write phase ends, successfully or not.
	Done()
}

type nopReporter struct{}

func (nopReporter) Planned([]string) {}
func (nopReporter) Written(string)   {}
func (nopReporter) Done()            {}
