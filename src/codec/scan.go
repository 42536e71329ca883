package codec

// CountVarints counts the number of complete varints in buf[start:end],
// assuming the range contains nothing but back-to-back varints. It works
// by the identity: a varint occupies one byte per 7 bits, so the number
// of varints equals the number of bytes minus the number of continuation
// bytes (every byte whose top bit is set is a continuation byte, i.e.
// every byte except the last one of each varint).
func CountVarints(buf []byte, start, end int) int {
	count := end - start
	for i := start; i < end; i++ {
		count -= int(buf[i] >> 7)
	}
	return count
}

// CountVarintFields scans buf[start:end] from start toward end, matching
// a repeating (field, WireVarint) tag and skipping its varint payload
// each time, and returns how many times it matched before hitting a
// different tag or the end of the range. It is used to presize a
// repeated field's backing array before a second, populating pass.
func CountVarintFields(buf []byte, start, end int, field int32) int {
	cb := NewBuffer(buf[:end])
	cb.SetIndex(start)
	count := 0
	for !cb.EOF() {
		mark := cb.Index()
		fn, wt, err := cb.DecodeTagAndWireType()
		if err != nil || fn != field || wt != WireVarint {
			cb.SetIndex(mark)
			break
		}
		if _, err := cb.DecodeVarint(); err != nil {
			cb.SetIndex(mark)
			break
		}
		count++
	}
	return count
}

// CountFixed32Fields is CountVarintFields for WireFixed32 payloads.
func CountFixed32Fields(buf []byte, start, end int, field int32) int {
	cb := NewBuffer(buf[:end])
	cb.SetIndex(start)
	count := 0
	for !cb.EOF() {
		mark := cb.Index()
		fn, wt, err := cb.DecodeTagAndWireType()
		if err != nil || fn != field || wt != WireFixed32 {
			cb.SetIndex(mark)
			break
		}
		if err := cb.Skip(4); err != nil {
			cb.SetIndex(mark)
			break
		}
		count++
	}
	return count
}

// CountFixed64Fields is CountVarintFields for WireFixed64 payloads.
func CountFixed64Fields(buf []byte, start, end int, field int32) int {
	cb := NewBuffer(buf[:end])
	cb.SetIndex(start)
	count := 0
	for !cb.EOF() {
		mark := cb.Index()
		fn, wt, err := cb.DecodeTagAndWireType()
		if err != nil || fn != field || wt != WireFixed64 {
			cb.SetIndex(mark)
			break
		}
		if err := cb.Skip(8); err != nil {
			cb.SetIndex(mark)
			break
		}
		count++
	}
	return count
}

// CountDelimitedFields is CountVarintFields for WireBytes (length
// delimited) payloads: strings, bytes, and embedded messages.
func CountDelimitedFields(buf []byte, start, end int, field int32) int {
	cb := NewBuffer(buf[:end])
	cb.SetIndex(start)
	count := 0
	for !cb.EOF() {
		mark := cb.Index()
		fn, wt, err := cb.DecodeTagAndWireType()
		if err != nil || fn != field || wt != WireBytes {
			cb.SetIndex(mark)
			break
		}
		n, err := cb.DecodeVarint()
		if err != nil {
			cb.SetIndex(mark)
			break
		}
		if err := cb.Skip(int(n)); err != nil {
			cb.SetIndex(mark)
			break
		}
		count++
	}
	return count
}
