package ticket_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/alternate/ticket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGuest_EntrancePrice walks every bracket boundary.
func TestGuest_EntrancePrice(t *testing.T) {
	tests := []struct {
		age  int
		want int
	}{
		{0, 0}, {1, 0}, {2, 0},
		{3, 100}, {17, 100},
		{18, 500}, {59, 500},
		{60, 300}, {99, 300},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ticket.Guest{Name: "g", Age: tc.age}.EntrancePrice(), "age %d", tc.age)
	}
}

// TestPricing_Custom checks a custom table and the open last bracket.
func TestPricing_Custom(t *testing.T) {
	p := ticket.Pricing{{MaxAge: 10, Price: 5}, {MaxAge: 20, Price: 7}}
	require.NoError(t, p.Validate())
	assert.Equal(t, 5, p.PriceFor(10))
	assert.Equal(t, 7, p.PriceFor(11))
	assert.Equal(t, 7, p.PriceFor(math.MaxInt), "ages past the table pay the last price")

	var empty ticket.Pricing
	assert.ErrorIs(t, empty.Validate(), ticket.ErrEmptyPricing)
	assert.Equal(t, 0, empty.PriceFor(30))
}

// TestTicket_AddGuest verifies the running total.
func TestTicket_AddGuest(t *testing.T) {
	tk := ticket.New("id", "1/2/2026")
	tk.AddGuest("Ann", 30)
	tk.AddGuest("Bo", 10)
	tk.AddGuest("Cy", 1)
	tk.AddGuest("Di", 70)

	assert.Len(t, tk.Guests, 4)
	assert.Equal(t, 500+100+0+300, tk.TotalPrice)
}

// TestParseGuest covers accepted and rejected lines.
func TestParseGuest(t *testing.T) {
	g, err := ticket.ParseGuest("  Ann Lee ,  42 ")
	require.NoError(t, err)
	assert.Equal(t, ticket.Guest{Name: "Ann Lee", Age: 42}, g)

	for _, line := range []string{"", "Ann", "Ann,", ", 3", "Ann, x", "Ann, 0", "Ann, -4", "Ann, 4.5", "Ann, 4, 5"} {
		_, err := ticket.ParseGuest(line)
		assert.ErrorIs(t, err, ticket.ErrInvalidGuest, "line %q", line)
	}
}

// TestParseGuestCount covers accepted and rejected counts.
func TestParseGuestCount(t *testing.T) {
	n, err := ticket.ParseGuestCount(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, text := range []string{"", "0", "-1", "two"} {
		_, err := ticket.ParseGuestCount(text)
		assert.ErrorIs(t, err, ticket.ErrInvalidGuestCount, "text %q", text)
	}
}
