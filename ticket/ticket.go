package ticket

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Guest is one visitor on a ticket.
type Guest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// EntrancePrice returns the guest's price under DefaultPricing.
func (g Guest) EntrancePrice() int {
	return DefaultPricing().PriceFor(g.Age)
}

// Ticket admits a group of guests on Date.
type Ticket struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	Guests     []Guest `json:"guests"`
	TotalPrice int     `json:"totalPrice"`
}

// UnmarshalJSON accepts the ID as a JSON string or a JSON number; files
// written by older ticketing tools store numeric IDs. Numbers are kept in
// their literal form, so Find("77989") matches "id": 77989.
func (t *Ticket) UnmarshalJSON(data []byte) error {
	type plain Ticket
	var aux struct {
		plain
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	id, err := decodeID(aux.ID)
	if err != nil {
		return err
	}
	*t = Ticket(aux.plain)
	t.ID = id

	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		err := json.Unmarshal(raw, &s)

		return s, err
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("ticket: id must be a string or number: %w", err)
	}

	return n.String(), nil
}

// New returns an empty ticket.
func New(id, date string) Ticket {
	return Ticket{ID: id, Date: date, Guests: []Guest{}}
}

// AddGuest appends a guest priced with DefaultPricing.
func (t *Ticket) AddGuest(name string, age int) {
	t.AddGuestPriced(Guest{Name: name, Age: age}, DefaultPricing())
}

// AddGuestPriced appends g and adds its price under p to TotalPrice.
func (t *Ticket) AddGuestPriced(g Guest, p Pricing) {
	t.Guests = append(t.Guests, g)
	t.TotalPrice += p.PriceFor(g.Age)
}

// ParseGuest parses a "name, age" line. Both parts are trimmed; the name
// must be non-empty and the age a positive integer.
func ParseGuest(line string) (Guest, error) {
	name, ageText, ok := strings.Cut(line, ",")
	name = strings.TrimSpace(name)
	ageText = strings.TrimSpace(ageText)
	if !ok || name == "" || ageText == "" {
		return Guest{}, ErrInvalidGuest
	}
	age, err := strconv.Atoi(ageText)
	if err != nil {
		return Guest{}, fmt.Errorf("%w: age %q: %v", ErrInvalidGuest, ageText, err)
	}
	if age <= 0 {
		return Guest{}, fmt.Errorf("%w: age must be positive, got %d", ErrInvalidGuest, age)
	}

	return Guest{Name: name, Age: age}, nil
}

// ParseGuestCount parses the number of guests for a new ticket.
func ParseGuestCount(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGuestCount, text)
	}

	return n, nil
}
