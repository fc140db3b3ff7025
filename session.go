package resp

// Session is the contract a connection type built on this package is
// expected to satisfy, per spec.md §6.2. It is specified at the
// interface level only — socket dialing, reconnection, pooling, and
// authentication are out of scope (see SPEC_FULL.md's Non-goals) and
// are left to the concrete type a caller plugs in.
type Session interface {
	// Do writes cmd, flushes, and parses exactly one reply into h. It
	// returns ErrStreamNotInitialized if the session's Stream is
	// already closed, ErrSubscriberCmd if cmd.IsSubscriberCmd()
	// disagrees with the session's current subscriber-mode state, and
	// otherwise whatever Parser.Parse returns.
	//
	// On any error from writing the command or parsing its reply, the
	// session closes its Stream before returning: per spec.md §6.2/§7,
	// Do either succeeds and leaves a healthy session, or fails and
	// leaves a closed one.
	Do(cmd Command, h Handler) error

	// InSubscriberMode reports whether the session has previously
	// issued a SUBSCRIBE/PSUBSCRIBE command and is now expected to
	// only issue further subscriber commands.
	InSubscriberMode() bool

	// Close releases the session's underlying Stream.
	Close() error
}

// BasicSession is a minimal Session built directly on a Stream and a
// Parser, with no pooling or retry behavior, per the five-step
// procedure in spec.md §6.2: reject a closed stream, enforce the
// subscriber-mode precondition, write and flush the command, parse its
// reply, and close the stream on any error from either step.
type BasicSession struct {
	stream     Stream
	parser     *Parser
	subscriber bool
}

// NewBasicSession wraps stream in a BasicSession using a fresh Parser.
func NewBasicSession(stream Stream) *BasicSession {
	return &BasicSession{stream: stream, parser: NewParser()}
}

func (s *BasicSession) InSubscriberMode() bool { return s.subscriber }

func (s *BasicSession) Do(cmd Command, h Handler) error {
	if !s.stream.IsOpen() {
		return ErrStreamNotInitialized
	}
	if s.subscriber && !cmd.IsSubscriberCmd() {
		// Once in subscriber mode, only subscriber commands may be
		// issued. A plain session may freely issue a subscriber
		// command — that's how it enters subscriber mode.
		return ErrSubscriberCmd
	}

	if err := cmd.WriteCommand(s.stream); err != nil {
		_ = s.stream.Close()
		return err
	}

	err := s.parser.Parse(s.stream, h)
	if err != nil {
		_ = s.stream.Close()
		return err
	}
	if cmd.IsSubscriberCmd() {
		s.subscriber = true
	}
	return nil
}

func (s *BasicSession) Close() error {
	return s.stream.Close()
}
