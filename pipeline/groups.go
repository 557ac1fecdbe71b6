package pipeline

// PhaseGroup is a set of phases with the same priority.
type PhaseGroup struct {
	Priority PhasePriority
	Phases   []*PhaseConfig

	// Parallel is true when every phase in the group may run concurrently
	// and the pipeline allows it.
	Parallel bool
}

// PhaseCount returns the number of phases in the group.
func (g *PhaseGroup) PhaseCount() int {
	return len(g.Phases)
}

// Names returns the names of the phases in the group.
func (g *PhaseGroup) Names() []string {
	names := make([]string, len(g.Phases))
	for i, cfg := range g.Phases {
		names[i] = cfg.Phase.Name()
	}
	return names
}

// StandardGroups is the default execution order: required fields first,
// then identifier and terminology checks side by side, then invariants.
var StandardGroups = []struct {
	Priority PhasePriority
	Parallel bool
	Phases   []PhaseID
}{
	{Priority: PriorityFirst, Parallel: false, Phases: []PhaseID{PhaseIDRequired}},
	{Priority: PriorityNormal, Parallel: true, Phases: []PhaseID{PhaseIDIdentifiers, PhaseIDTerminology}},
	{Priority: PriorityLate, Parallel: false, Phases: []PhaseID{PhaseIDConstraints}},
}

// StandardPriority returns the priority StandardGroups assigns to id, or
// PriorityNormal for phases it does not list.
func StandardPriority(id PhaseID) PhasePriority {
	priority, _ := standardPlacement(id)
	return priority
}

func standardPlacement(id PhaseID) (PhasePriority, bool) {
	for _, g := range StandardGroups {
		for _, p := range g.Phases {
			if p == id {
				return g.Priority, g.Parallel
			}
		}
	}
	return PriorityNormal, true
}
