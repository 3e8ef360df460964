package keys

// SessionKey identifies one epoch of a rotating key. Keys order by epoch
// first, then serial, then digest.
//
//subtle:derive ord
type SessionKey struct {
	Epoch  uint32
	Serial uint64
	Digest [32]byte
}

// Credential carries an access secret with no meaningful order.
//
//subtle:derive eq
type Credential struct {
	Secret []byte
	Admin  bool
}

// Unit has no fields; all instances compare equal.
//
//subtle:derive eq
type Unit struct{}
