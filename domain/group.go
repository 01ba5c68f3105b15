package domain

import "fmt"

type GroupID int

// Group is a team built by one allocation run. Groups carry no identity across runs.
type Group struct {
	ID      GroupID
	Members []RosterEntry
}

func NewGroup(id int) *Group {
	return &Group{
		ID:      GroupID(id),
		Members: nil,
	}
}

func (g *Group) Add(entry RosterEntry) {
	g.Members = append(g.Members, entry)
}

func (g Group) Len() int {
	return len(g.Members)
}

func (g Group) Name() string {
	return fmt.Sprintf("Team %d", g.ID)
}

// Allocation is the result of one run. Groups are ordered by ID, starting at 1.
// Effective can be lower than Requested when the roster cannot support that many teams.
type Allocation struct {
	Requested int
	Effective int
	Groups    []Group
}

// Reduced is true when fewer groups were built than the caller asked for.
func (a Allocation) Reduced() bool {
	return a.Effective < a.Requested
}

// Members flattens every group in ID order.
func (a Allocation) Members() []RosterEntry {
	var members []RosterEntry
	for _, group := range a.Groups {
		members = append(members, group.Members...)
	}
	return members
}
