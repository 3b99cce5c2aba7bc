package ticket

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
)

const sessionHelp = `Commands:
  new            create a ticket (prompts for guests)
  list           show every stored ticket
  verify <id>    show the ticket with the given ID
  help           show this help
  quit | exit    leave
`

// Session runs the interactive ticketing workflow over an injected
// input source and output sink.
type Session struct {
	in      io.Reader
	out     io.Writer
	store   *Store
	log     zerolog.Logger
	prompt  string
	maxLine int
	lines   chan inputLine
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l zerolog.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// WithPrompt replaces the "> " command prompt.
func WithPrompt(p string) SessionOption {
	return func(s *Session) { s.prompt = p }
}

// WithMaxLineBytes bounds the length of one input line. Longer lines are
// discarded and the current question is asked again.
func WithMaxLineBytes(n int) SessionOption {
	return func(s *Session) {
		if n > 0 {
			s.maxLine = n
		}
	}
}

// NewSession returns a session reading commands from in and writing to out.
func NewSession(in io.Reader, out io.Writer, store *Store, opts ...SessionOption) *Session {
	s := &Session{
		in:      in,
		out:     out,
		store:   store,
		log:     zerolog.Nop(),
		prompt:  "> ",
		maxLine: DefaultMaxLineBytes,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run reads and executes commands until quit, end of input, or ctx is
// done. End of input is a clean exit and returns nil; cancellation
// returns ctx.Err() immediately, even while waiting for input.
//
// Input is read on a separate goroutine. After a cancellation that
// goroutine stays blocked in the reader until the reader returns, so
// callers should close in (or let the process exit) when done.
func (s *Session) Run(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	s.lines = make(chan inputLine)
	go newLineReader(s.in, s.maxLine).feed(s.lines, stop)

	fmt.Fprintln(s.out, `Zoo ticketing. Type "help" for commands.`)
	for {
		line, err := s.ask(ctx, s.prompt)
		if err != nil {
			return s.finish(err)
		}
		args, err := shellquote.Split(line)
		if err != nil {
			fmt.Fprintf(s.out, "Could not parse command: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		s.log.Debug().Strs("args", args).Msg("command")
		switch strings.ToLower(args[0]) {
		case "new":
			if err := s.createTickets(ctx); err != nil {
				return s.finish(err)
			}
		case "list":
			if err := List(s.out, s.store); err != nil {
				s.report(err)
			}
		case "verify":
			if len(args) != 2 {
				fmt.Fprintln(s.out, "Usage: verify <id>")
				continue
			}
			if err := Verify(s.out, s.store, args[1]); err != nil && !errors.Is(err, ErrTicketNotFound) {
				s.report(err)
			}
		case "help":
			fmt.Fprint(s.out, sessionHelp)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(s.out, "Unknown command %q. Type \"help\" for commands.\n", args[0])
		}
	}
}

// createTickets issues tickets until the user declines another one.
func (s *Session) createTickets(ctx context.Context) error {
	for {
		t := s.store.Issue()

		count, err := s.askGuestCount(ctx)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			g, err := s.askGuest(ctx, i+1)
			if err != nil {
				return err
			}
			t.AddGuestPriced(g, s.store.Pricing())
		}

		if err := RenderTicket(s.out, t); err != nil {
			return err
		}
		if err := s.store.Append(t); err != nil {
			s.report(err)
		} else {
			s.log.Info().Str("id", t.ID).Int("guests", len(t.Guests)).Int("total", t.TotalPrice).Msg("ticket saved")
			fmt.Fprintf(s.out, "Ticket details saved to %s\n", s.store.Path())
		}

		answer, err := s.ask(ctx, "Do you want to create another ticket? (yes/no): ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(strings.TrimSpace(answer), "yes") {
			return nil
		}
	}
}

func (s *Session) askGuestCount(ctx context.Context) (int, error) {
	for {
		text, err := s.ask(ctx, "Enter number of guests: ")
		if err != nil {
			return 0, err
		}
		n, err := ParseGuestCount(text)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(s.out, "Invalid input! Please enter a positive number of guests.")
	}
}

func (s *Session) askGuest(ctx context.Context, n int) (Guest, error) {
	for {
		line, err := s.ask(ctx, fmt.Sprintf("Enter details of Guest %d (name, age): ", n))
		if err != nil {
			return Guest{}, err
		}
		g, err := ParseGuest(line)
		if err == nil {
			return g, nil
		}
		s.log.Debug().Err(err).Msg("rejected guest input")
		fmt.Fprintln(s.out, "Invalid input! Please provide valid input in the format: name, age")
	}
}

// ask writes prompt and returns the next input line, or io.EOF. An
// over-long line is reported and returned as "", which every caller
// treats as invalid or empty input.
func (s *Session) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(s.out, prompt)
	select {
	case <-ctx.Done():
		fmt.Fprintln(s.out)
		return "", ctx.Err()
	case l := <-s.lines:
		if l.err != nil {
			return "", l.err
		}
		if l.tooLong {
			s.log.Debug().Int("limit", s.maxLine).Msg("discarded over-long input line")
			fmt.Fprintf(s.out, "Input line too long (limit %d bytes), ignored.\n", s.maxLine)
			return "", nil
		}

		return l.text, nil
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.log.Debug().Msg("input closed")
		return nil
	}

	return err
}

func (s *Session) report(err error) {
	s.log.Error().Err(err).Msg("ticket store")
	fmt.Fprintf(s.out, "Error: %v\n", err)
}

// List writes every stored ticket as a table, or a notice when the store
// file does not exist yet or holds no tickets.
func List(w io.Writer, store *Store) error {
	tickets, err := store.Load()
	if err != nil {
		return err
	}
	if len(tickets) == 0 {
		_, err := fmt.Fprintf(w, "No ticket data found in %s\n", store.Path())
		return err
	}

	return RenderTable(w, tickets)
}

// Verify writes the ticket with the given ID as a one-row table. When no
// such ticket exists it writes a notice and returns ErrTicketNotFound.
func Verify(w io.Writer, store *Store, id string) error {
	t, err := store.Find(id)
	if errors.Is(err, ErrTicketNotFound) {
		fmt.Fprintf(w, "Ticket with ID %s not found\n", id)
		return err
	}
	if err != nil {
		return err
	}

	return RenderTable(w, []Ticket{t})
}
