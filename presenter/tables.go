package presenter

import (
	"fmt"
	"io"
	"strings"
	"team-lab/domain"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Tables prints a summary line, then a Name/Position table for each team in team order.
func Tables(w io.Writer, allocation domain.Allocation, colours bool) {
	fmt.Fprintln(w, Summary(allocation))

	for _, group := range allocation.Groups {
		heading := group.Name()
		if colours {
			heading = color.New(color.FgGreen, color.OpBold).Render(heading)
		}
		fmt.Fprintf(w, "\n%s\n", heading)

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Name", "Position"})
		table.SetFooter([]string{fmt.Sprintf("%d players", group.Len()), Breakdown(group)})
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetFooterAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.AppendBulk(lo.Map(group.Members, func(member domain.RosterEntry, _ int) []string {
			return []string{member.Name, member.Role.String()}
		}))
		table.Render()
	}
}

// Summary states how many teams were built and flags when that is fewer than requested.
func Summary(allocation domain.Allocation) string {
	players := len(allocation.Members())
	if allocation.Reduced() {
		return fmt.Sprintf("Requested %d teams, built %d: %d players cannot fill more.",
			allocation.Requested, allocation.Effective, players)
	}
	return fmt.Sprintf("Built %d teams from %d players.", allocation.Effective, players)
}

// Breakdown lists the role counts of a team in the fixed role order, e.g. "ATT 2 MID 3 DEF 2".
func Breakdown(group domain.Group) string {
	counts := domain.Roster(group.Members).CountByRole()
	return strings.Join(lo.Map(domain.Roles, func(role domain.Role, _ int) string {
		return fmt.Sprintf("%s %d", role, counts[role])
	}), " ")
}
