package resp

// Handler is the push-based callback interface a Parser drives as it
// walks a reply. Every method returns a bool: true to keep going, false
// to reject the shape of what it was just given. Once any method returns
// false, the Parser stops invoking callbacks (including OnEnterReply /
// OnLeaveReply) for the rest of the parse, though it keeps consuming
// bytes off the stream so the connection stays frame-aligned. See
// spec.md §4.3.
type Handler interface {
	// OnEnterReply fires before a reply frame (top-level or nested) is
	// read, with its recursion depth (0 for the top-level reply).
	OnEnterReply(depth int) bool

	// OnLeaveReply fires after a reply frame and its children (if any)
	// have been fully consumed, with the same depth passed to the
	// matching OnEnterReply.
	OnLeaveReply(depth int) bool

	// OnStatus fires for a '+' status line.
	OnStatus(line ByteView) bool

	// OnError fires for a '-' error line. The Parser itself records
	// a top-level error frame regardless of this callback's return
	// value; returning false only latches handler rejection on top of
	// that.
	OnError(line ByteView) bool

	// OnInteger fires for a ':' integer reply.
	OnInteger(v int64) bool

	// OnBulk fires for a non-null '$' bulk reply with its body (CRLF
	// excluded).
	OnBulk(data ByteView) bool

	// OnNull fires in place of OnBulk or OnMultiBulkBegin when a '$' or
	// '*' frame carries a -1 length/count.
	OnNull() bool

	// OnMultiBulkBegin fires for a non-null '*' array reply with its
	// element count, before any element is parsed.
	OnMultiBulkBegin(count int) bool
}

// BaseHandler implements Handler with the original's default behavior
// (reply_handler_base): reject every data callback, except on_error
// (which stashes the message and accepts, so a parse completes far
// enough to report error_reply) and on_enter/leave_reply, which accept
// depth <= 1 and reject deeper nesting — matching Redis's non-scripting
// command surface, where no reply nests more than one array deep.
// Embed it in a concrete handler and override only the callbacks that
// shape actually expects.
type BaseHandler struct {
	// ErrorInfo holds the message of the first error frame on_error
	// was called with.
	ErrorInfo string
}

func (BaseHandler) OnEnterReply(depth int) bool { return depth <= 1 }
func (BaseHandler) OnLeaveReply(depth int) bool { return depth <= 1 }
func (BaseHandler) OnStatus(ByteView) bool       { return false }

func (h *BaseHandler) OnError(line ByteView) bool {
	if h.ErrorInfo == "" {
		h.ErrorInfo = line.String()
	}
	return true
}

func (BaseHandler) OnInteger(int64) bool      { return false }
func (BaseHandler) OnBulk(ByteView) bool      { return false }
func (BaseHandler) OnNull() bool              { return false }
func (BaseHandler) OnMultiBulkBegin(int) bool { return false }

// StatusHandler captures a single top-level status line, rejecting any
// other reply shape.
type StatusHandler struct {
	BaseHandler
	Status string
}

func (h *StatusHandler) OnStatus(line ByteView) bool {
	h.Status = line.String()
	return true
}

// BoolHandler interprets an integer reply as a boolean (nonzero is
// true), the shape SISMEMBER, EXISTS, and similar commands reply with.
type BoolHandler struct {
	BaseHandler
	Value bool
}

func (h *BoolHandler) OnInteger(v int64) bool {
	h.Value = v != 0
	return true
}

// IntegerHandler captures a single integer reply. Value defaults to -1
// so a caller can distinguish "never set" from a genuine zero, matching
// the original reply_handler specializations that use -1 as their
// uninitialized sentinel.
type IntegerHandler struct {
	BaseHandler
	Value int64
}

// NewIntegerHandler returns an IntegerHandler pre-seeded with the -1
// sentinel.
func NewIntegerHandler() *IntegerHandler {
	return &IntegerHandler{Value: -1}
}

func (h *IntegerHandler) OnInteger(v int64) bool {
	h.Value = v
	return true
}

// BulkHandler captures a single bulk reply, distinguishing a present
// (possibly empty) value from a null one.
type BulkHandler struct {
	BaseHandler
	Data ByteView
	Null bool
}

func (h *BulkHandler) OnBulk(data ByteView) bool {
	h.Data = data.Bytes()
	return true
}

func (h *BulkHandler) OnNull() bool {
	h.Null = true
	return true
}

// MultiBulkHandler captures a flat array of bulk elements one level
// deep — the shape most list/hash/zset read commands reply with. A
// nested array or any non-bulk child element is rejected, matching
// spec.md §4.3's base handler depth check (children of the array are
// only ever expected at depth 1).
type MultiBulkHandler struct {
	BaseHandler
	Elements [][]byte
	Null     bool
	depth    int
}

func (h *MultiBulkHandler) OnMultiBulkBegin(count int) bool {
	if h.depth > 0 {
		return false
	}
	h.Elements = make([][]byte, 0, count)
	return true
}

func (h *MultiBulkHandler) OnNull() bool {
	h.Null = true
	return true
}

func (h *MultiBulkHandler) OnEnterReply(depth int) bool {
	h.depth = depth
	return depth <= 1
}

func (h *MultiBulkHandler) OnBulk(data ByteView) bool {
	h.Elements = append(h.Elements, data.Bytes())
	return true
}

// RankHandler captures the integer-or-null shape ZRANK and similar
// commands reply with: present means a rank, absent means the member
// doesn't exist.
type RankHandler struct {
	BaseHandler
	Rank  int64
	Found bool
}

func (h *RankHandler) OnInteger(v int64) bool {
	h.Rank = v
	h.Found = true
	return true
}

func (h *RankHandler) OnNull() bool {
	h.Found = false
	return true
}

// ReplyKind tags which of the six reply variants a Reply node holds.
type ReplyKind int

const (
	KindStatus ReplyKind = iota
	KindError
	KindInteger
	KindBulk
	KindMultiBulk
	KindNull
)

// Reply is an owned node of the tree a TreeBuilder materializes: the
// tagged union of spec.md §3's six reply kinds. Only the field matching
// Kind is meaningful. A multi_bulk node's Children are exclusively
// owned by it, per the ownership note in spec.md §3.
type Reply struct {
	Kind     ReplyKind
	Status   string
	Error    string
	Integer  int64
	Bulk     []byte
	Children []*Reply
}

// TreeBuilder is the test-oriented handler from spec.md §4.3: it
// materializes the full reply tree instead of projecting it down to a
// single Go value, tracking its place in the tree via a stack of
// in-progress multi_bulk nodes. It accepts any shape and any depth,
// unlike the shape-specific handlers above.
type TreeBuilder struct {
	BaseHandler
	Root     *Reply
	stack    []treeFrame
	curDepth int
}

type treeFrame struct {
	node  *Reply
	depth int
}

func (b *TreeBuilder) attach(r *Reply) {
	if len(b.stack) == 0 {
		b.Root = r
		return
	}
	parent := b.stack[len(b.stack)-1].node
	parent.Children = append(parent.Children, r)
}

func (b *TreeBuilder) OnEnterReply(depth int) bool {
	b.curDepth = depth
	return true
}

// OnLeaveReply pops the stack when the closing frame is the multi_bulk
// node that OnMultiBulkBegin most recently pushed at this same depth;
// scalar frames never pushed anything, so their OnLeaveReply is a no-op.
func (b *TreeBuilder) OnLeaveReply(depth int) bool {
	if len(b.stack) > 0 && b.stack[len(b.stack)-1].depth == depth {
		b.stack = b.stack[:len(b.stack)-1]
	}
	return true
}

func (b *TreeBuilder) OnStatus(line ByteView) bool {
	b.attach(&Reply{Kind: KindStatus, Status: line.String()})
	return true
}

func (b *TreeBuilder) OnError(line ByteView) bool {
	b.attach(&Reply{Kind: KindError, Error: line.String()})
	return true
}

func (b *TreeBuilder) OnInteger(v int64) bool {
	b.attach(&Reply{Kind: KindInteger, Integer: v})
	return true
}

func (b *TreeBuilder) OnBulk(data ByteView) bool {
	b.attach(&Reply{Kind: KindBulk, Bulk: data.Bytes()})
	return true
}

func (b *TreeBuilder) OnNull() bool {
	b.attach(&Reply{Kind: KindNull})
	return true
}

func (b *TreeBuilder) OnMultiBulkBegin(count int) bool {
	node := &Reply{Kind: KindMultiBulk, Children: make([]*Reply, 0, count)}
	b.attach(node)
	b.stack = append(b.stack, treeFrame{node: node, depth: b.curDepth})
	return true
}
