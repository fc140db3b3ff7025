package resp

import "strconv"

// Value is the trait every type the Writer can serialize must satisfy:
// a statically- or dynamically-computed arity (the number of RESP bulk
// elements it contributes) and the ability to write itself as one or more
// framed bulk elements. This collapses the original's compile-time
// writer_type_traits specialization (writer_type_traits.h) into a single
// interface, per spec.md §9's guidance that a trait/interface implemented
// per value type is an acceptable realization in a language without that
// specialization mechanism.
type Value interface {
	// Count returns the number of RESP bulk elements this value
	// contributes to a command's outer array. It must be computable
	// without serializing the value.
	Count() int

	// WriteTo writes this value's bulk-framed element(s) to the stream.
	WriteTo(s Stream) error
}

// writeBulkElement frames buf as a single RESP bulk string: "$len\r\n" +
// buf + "\r\n".
func writeBulkElement(s Stream, buf []byte) error {
	if err := s.WriteByte('$'); err != nil {
		return err
	}
	if err := writeDecimalInt(s, int64(len(buf))); err != nil {
		return err
	}
	if _, err := s.Write(crlf); err != nil {
		return err
	}
	if _, err := s.Write(buf); err != nil {
		return err
	}
	_, err := s.Write(crlf)
	return err
}

// writeDecimalInt renders i into a small stack buffer via reverse-divmod
// and writes it, per spec.md §4.1 ("reverse-divmod routine into a 24-byte
// stack buffer, then reversed in-place; negatives are emitted with a
// leading '-'"), grounded in original writer.h's write_int_on_buf.
func writeDecimalInt(s Stream, i int64) error {
	var buf [24]byte
	n := appendDecimalInt(buf[:0], i)
	_, err := s.Write(n)
	return err
}

func appendDecimalInt(dst []byte, i int64) []byte {
	neg := i < 0
	var mag uint64
	if neg {
		mag = uint64(-i)
	} else {
		mag = uint64(i)
	}

	start := len(dst)
	dst = append(dst, 0) // placeholder, ensures at least one digit for i == 0
	dst = dst[:start]
	for {
		dst = append(dst, byte(mag%10)+'0')
		mag /= 10
		if mag == 0 {
			break
		}
	}
	if neg {
		dst = append(dst, '-')
	}
	reverse(dst[start:])
	return dst
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// BulkValue is a Value wrapping a single byte string, written verbatim as
// one bulk element. It is the trait realization for "Byte string (sized
// byte sequence)" / "Byte view (non-owning)" in spec.md §4.1's table.
type BulkValue []byte

func (BulkValue) Count() int { return 1 }

func (v BulkValue) WriteTo(s Stream) error {
	return writeBulkElement(s, v)
}

// Str is a convenience constructor for BulkValue from a string, covering
// "Literal string constant" in spec.md §4.1's table.
func Str(s string) BulkValue { return BulkValue(s) }

// Int is a Value wrapping a signed integer, rendered as decimal ASCII and
// framed as a single bulk element.
type Int int64

func (Int) Count() int { return 1 }

func (v Int) WriteTo(s Stream) error {
	var buf [24]byte
	b := appendDecimalInt(buf[:0], int64(v))
	return writeBulkElement(s, b)
}

// Uint is a Value wrapping an unsigned integer.
type Uint uint64

func (Uint) Count() int { return 1 }

func (v Uint) WriteTo(s Stream) error {
	b := strconv.AppendUint(nil, uint64(v), 10)
	return writeBulkElement(s, b)
}

// Pair is a Value combining two values, each counted and written in
// order with no extra framing — Count is the sum of the two fields'
// counts, per spec.md §4.1's table.
type Pair struct {
	First, Second Value
}

func (p Pair) Count() int {
	return p.First.Count() + p.Second.Count()
}

func (p Pair) WriteTo(s Stream) error {
	if err := p.First.WriteTo(s); err != nil {
		return err
	}
	return p.Second.WriteTo(s)
}

// Seq is a Value wrapping an ordered sequence of values that all share a
// single, statically-known per-element arity (spec.md §4.1: "T must have
// compile-time arity (no recursively dynamic-arity containers)"). Count is
// the sum of the elements' counts, which is len(elements) * that element
// arity when they share one; nothing checks that they do, and a Go slice
// can mix arities a C++ template couldn't.
type Seq []Value

func (q Seq) Count() int {
	total := 0
	for _, v := range q {
		total += v.Count()
	}
	return total
}

func (q Seq) WriteTo(s Stream) error {
	for _, v := range q {
		if err := v.WriteTo(s); err != nil {
			return err
		}
	}
	return nil
}

// IntervalTrait selects how an IntervalValue serializes, per spec.md §3.
type IntervalTrait int

const (
	// Inclusive serializes as the decimal score itself.
	Inclusive IntervalTrait = iota
	// Exclusive serializes as "(" followed by the decimal score.
	Exclusive
	// NegInf serializes as the literal "-inf".
	NegInf
	// PosInf serializes as the literal "+inf".
	PosInf
)

// IntervalValue is a sorted-set score endpoint: a (trait, value) pair used
// by ZRANGEBYSCORE-family commands. It always counts as exactly one
// element, per spec.md §3.
type IntervalValue struct {
	Trait IntervalTrait
	Score int64
}

func (IntervalValue) Count() int { return 1 }

func (v IntervalValue) WriteTo(s Stream) error {
	switch v.Trait {
	case Exclusive:
		var buf [24]byte
		buf[0] = '('
		b := appendDecimalInt(buf[:1], v.Score)
		return writeBulkElement(s, b)
	case NegInf:
		return writeBulkElement(s, negInf)
	case PosInf:
		return writeBulkElement(s, posInf)
	default: // Inclusive
		var buf [24]byte
		b := appendDecimalInt(buf[:0], v.Score)
		return writeBulkElement(s, b)
	}
}

var (
	negInf = []byte("-inf")
	posInf = []byte("+inf")
)

// OptionalGroup is a conditionally-emitted cluster of 1-3 values sharing a
// single boolean switch, used for things like WITHSCORES or LIMIT offset
// count. Count is 0 when Condition is false, or the sum of the contained
// values' counts otherwise — see spec.md §3.
type OptionalGroup struct {
	Condition bool
	Values    []Value
}

// Optional builds an OptionalGroup from 1 to 3 values, grounded on the
// original's opt<T1[, T2[, T3]]> family (writer_type_traits.h).
func Optional(condition bool, values ...Value) OptionalGroup {
	if len(values) == 0 || len(values) > 3 {
		panic("resp: Optional requires between 1 and 3 values")
	}
	return OptionalGroup{Condition: condition, Values: values}
}

func (g OptionalGroup) Count() int {
	if !g.Condition {
		return 0
	}
	total := 0
	for _, v := range g.Values {
		total += v.Count()
	}
	return total
}

func (g OptionalGroup) WriteTo(s Stream) error {
	if !g.Condition {
		return nil
	}
	for _, v := range g.Values {
		if err := v.WriteTo(s); err != nil {
			return err
		}
	}
	return nil
}
