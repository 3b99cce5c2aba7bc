package ticket_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/alternate/ticket"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRenderTicket checks the details block line by line.
func TestRenderTicket(t *testing.T) {
	tk := ticket.New("id-1", "3/7/2026")
	tk.AddGuest("Ann", 30)

	var b strings.Builder
	require.NoError(t, ticket.RenderTicket(&b, tk))
	assert.Equal(t, "Ticket ID: id-1\n"+
		"Ticket for 3/7/2026:\n"+
		"Guest 1:\n"+
		"   Name: Ann\n"+
		"   Age: 30\n"+
		"Total Entrance Price: INR 500\n", b.String())
}

// TestRenderTable checks content and that every row has the same width,
// including rows holding double-width characters.
func TestRenderTable(t *testing.T) {
	a := ticket.New("id-1", "3/7/2026")
	a.AddGuest("Ann", 30)
	a.AddGuest("Bo", 10)
	b := ticket.New("id-2", "3/8/2026")
	b.AddGuest("李小龙", 32)

	var out strings.Builder
	require.NoError(t, ticket.RenderTable(&out, []ticket.Ticket{a, b}))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 6, "top rule, head, separator, two rows, bottom rule")
	assert.Contains(t, lines[1], "Ticket ID")
	assert.Contains(t, lines[3], "(Ann, 30), (Bo, 10)")
	assert.Contains(t, lines[3], "INR 600")
	assert.Contains(t, lines[4], "(李小龙, 32)")

	cellCount := strings.Count(lines[1], "│")
	for _, l := range lines[1:5] {
		if strings.HasPrefix(l, "├") {
			continue
		}
		assert.Equal(t, cellCount, strings.Count(l, "│"), "line %q", l)
	}
	// box-drawing runes are one cell wide in a non-CJK locale
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	want := cond.StringWidth(lines[0])
	for _, l := range lines {
		assert.Equal(t, want, cond.StringWidth(l), "line %q", l)
	}
}

// TestRenderTable_Empty renders just the header.
func TestRenderTable_Empty(t *testing.T) {
	var out strings.Builder
	require.NoError(t, ticket.RenderTable(&out, nil))
	assert.Equal(t, 4, strings.Count(out.String(), "\n"))
}
