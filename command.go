package resp

// Command is anything that can write itself as a RESP request and that
// a Session can use to decide routing and subscriber-mode eligibility.
// See spec.md §4.6 and §6.2.
type Command interface {
	// WriteCommand serializes the command to s as a RESP request array
	// and flushes it.
	WriteCommand(s Stream) error

	// ClusterKey returns the key this command hashes on for routing
	// purposes, or nil if the command carries no key (e.g. PING).
	ClusterKey() ByteView

	// IsSubscriberCmd reports whether this command is only valid on a
	// session already in subscriber mode (or that puts it into
	// subscriber mode).
	IsSubscriberCmd() bool
}

// SingleKeyCommand is a Command built from a name and a single key
// value, covering the common one-key-plus-arguments shape (GET, TYPE,
// INCR, ...).
type SingleKeyCommand struct {
	Name Value
	Key  []byte
	Rest []Value
}

// NewSingleKeyCommand builds a SingleKeyCommand, returning
// InvalidCommandFormat if key is empty — spec.md §4.6's precondition
// that a key-bearing command must carry a non-empty key.
func NewSingleKeyCommand(name string, key []byte, rest ...Value) (*SingleKeyCommand, error) {
	if err := RequireNonEmpty(name, "key", key); err != nil {
		return nil, err
	}
	return &SingleKeyCommand{Name: Str(name), Key: key, Rest: rest}, nil
}

func (c *SingleKeyCommand) WriteCommand(s Stream) error {
	values := make([]Value, 0, 2+len(c.Rest))
	values = append(values, c.Name, BulkValue(c.Key))
	values = append(values, c.Rest...)
	return FormatCommand(s, values...)
}

func (c *SingleKeyCommand) ClusterKey() ByteView { return ByteView(c.Key) }
func (c *SingleKeyCommand) IsSubscriberCmd() bool { return false }

// SubscriberCommand is a Command for the SUBSCRIBE/PSUBSCRIBE family: it
// carries no routable key and is flagged so a Session can enforce
// spec.md §6.2's subscriber-mode precondition.
type SubscriberCommand struct {
	Name Value
	Args []Value
}

// NewSubscriberCommand builds a SubscriberCommand from a command name
// and its arguments (e.g. one or more channel names).
func NewSubscriberCommand(name string, args ...Value) *SubscriberCommand {
	return &SubscriberCommand{Name: Str(name), Args: args}
}

func (c *SubscriberCommand) WriteCommand(s Stream) error {
	values := make([]Value, 0, 1+len(c.Args))
	values = append(values, c.Name)
	values = append(values, c.Args...)
	return FormatCommand(s, values...)
}

func (c *SubscriberCommand) ClusterKey() ByteView  { return nil }
func (c *SubscriberCommand) IsSubscriberCmd() bool { return true }

// AdHocCommand is a Command built from a bare list of values with no
// implied key at all — the escape hatch for commands this package
// doesn't model explicitly. It deliberately has no key field: the
// original's adhoc_command initialized a key member from itself in its
// own constructor's initializer list, leaving it permanently
// uninitialized (spec.md §9's open question). Since nothing here ever
// claims to carry a key, that bug has no Go equivalent to reproduce.
type AdHocCommand struct {
	Values []Value
}

// NewAdHocCommand builds an AdHocCommand from a command name and its
// arguments.
func NewAdHocCommand(name string, args ...Value) *AdHocCommand {
	values := make([]Value, 0, 1+len(args))
	values = append(values, Str(name))
	values = append(values, args...)
	return &AdHocCommand{Values: values}
}

func (c *AdHocCommand) WriteCommand(s Stream) error {
	return FormatCommand(s, c.Values...)
}

func (c *AdHocCommand) ClusterKey() ByteView  { return nil }
func (c *AdHocCommand) IsSubscriberCmd() bool { return false }

// RequireNonEmpty is the shared precondition helper behind the
// key/field emptiness checks spec.md §4.6 calls for across the command
// family constructors, exported so the commands subpackage's own
// constructors (APPEND's value, ...) can share it instead of duplicating
// the check.
func RequireNonEmpty(cmdName, field string, v []byte) error {
	if len(v) == 0 {
		return InvalidCommandFormat("%s: %s must not be empty", cmdName, field)
	}
	return nil
}

// RequireNonEmptySeq checks that a variadic argument list used to build
// a command (e.g. SUBSCRIBE's channel list, HMSET's field list) is not
// empty.
func RequireNonEmptySeq(cmdName, field string, n int) error {
	if n == 0 {
		return InvalidCommandFormat("%s: %s must contain at least one element", cmdName, field)
	}
	return nil
}
