package ticket

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

var tableHead = []string{"Ticket ID", "Date", "Guests", "Total Price"}

// RenderTicket writes the details block shown after a ticket is created.
func RenderTicket(w io.Writer, t Ticket) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Ticket ID: %s\n", t.ID)
	fmt.Fprintf(&b, "Ticket for %s:\n", t.Date)
	for i, g := range t.Guests {
		fmt.Fprintf(&b, "Guest %d:\n", i+1)
		fmt.Fprintf(&b, "   Name: %s\n", g.Name)
		fmt.Fprintf(&b, "   Age: %d\n", g.Age)
	}
	fmt.Fprintf(&b, "Total Entrance Price: INR %d\n", t.TotalPrice)
	_, err := io.WriteString(w, b.String())

	return err
}

// RenderTable writes tickets as a boxed table. Column widths are measured
// in terminal cells so wide (e.g. CJK) names stay aligned.
func RenderTable(w io.Writer, tickets []Ticket) error {
	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, []string{t.ID, t.Date, guestList(t.Guests), fmt.Sprintf("INR %d", t.TotalPrice)})
	}

	widths := make([]int, len(tableHead))
	for i, h := range tableHead {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range rows {
		for i, cell := range r {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	var b strings.Builder
	rule(&b, widths, "┌", "┬", "┐")
	line(&b, widths, tableHead)
	rule(&b, widths, "├", "┼", "┤")
	for _, r := range rows {
		line(&b, widths, r)
	}
	rule(&b, widths, "└", "┴", "┘")
	_, err := io.WriteString(w, b.String())

	return err
}

func guestList(guests []Guest) string {
	parts := make([]string, len(guests))
	for i, g := range guests {
		parts[i] = fmt.Sprintf("(%s, %d)", g.Name, g.Age)
	}

	return strings.Join(parts, ", ")
}

func rule(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(left)
	for i, w := range widths {
		if i > 0 {
			b.WriteString(mid)
		}
		b.WriteString(strings.Repeat("─", w+2))
	}
	b.WriteString(right)
	b.WriteByte('\n')
}

func line(b *strings.Builder, widths []int, cells []string) {
	b.WriteString("│")
	for i, w := range widths {
		b.WriteByte(' ')
		b.WriteString(runewidth.FillRight(cells[i], w))
		b.WriteString(" │")
	}
	b.WriteByte('\n')
}
