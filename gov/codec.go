package gov

import (
	"bytes"
	"encoding/binary"
	"errors"
)

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount keeps amount handling consistent via a single call site.
func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAddress canonicalizes the address before writing, so later parsing is easyer.
func (w *binWriter) writeAddress(a Address) {
	w.writeString(AddressToString(a))
}

// EncodeConfig packs the construction record into deterministic bytes.
// Example payload: EncodeConfig(&Config{Owner: AddressFromString("hive:alice")})
func EncodeConfig(cfg *Config) []byte {
	w := newWriter()
	w.writeAddress(cfg.Owner)
	w.writeUint64(cfg.Params.MinimumQuorum)
	w.writeInt64(cfg.Params.VotingDuration)
	w.writeInt64(cfg.Params.ExecutionDelay)
	return w.bytes()
}

// EncodeMember packs a Member into bytes so storage stays lean and no json noise leaks.
// Example payload: EncodeMember(&Member{Address: AddressFromString("hive:alice"), JoinedAt: 42})
func EncodeMember(m *Member) []byte {
	w := newWriter()
	w.writeAddress(m.Address)
	w.writeInt64(m.JoinedAt)
	return w.bytes()
}

// EncodeProposal turns a Proposal into bytes so we can persist tallies without json overhead.
// Example payload: EncodeProposal(&Proposal{ID: 3, Description: "fund the relay"})
func EncodeProposal(prpsl *Proposal) []byte {
	w := newWriter()
	w.writeUint64(prpsl.ID)
	w.writeAddress(prpsl.Proposer)
	w.writeString(prpsl.Description)
	w.writeAmount(prpsl.Value)
	w.writeAddress(prpsl.Recipient)
	w.writeInt64(prpsl.CreatedAt)
	w.writeInt64(prpsl.VotingDeadline)
	w.writeUint64(prpsl.VotesFor)
	w.writeUint64(prpsl.VotesAgainst)
	w.writeBool(prpsl.Executed)
	return w.bytes()
}

// EncodeVoteRecord packs a receipt; two fields only but the format must stay stable.
// Example payload: EncodeVoteRecord(&VoteRecord{Approve: true, VotedAt: 10})
func EncodeVoteRecord(vr *VoteRecord) []byte {
	w := newWriter()
	w.writeBool(vr.Approve)
	w.writeInt64(vr.VotedAt)
	return w.bytes()
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

// readByte grabs the next byte and bumps the cursor, errors on EOF.
func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readBool restores bools stored via writeBool above.
func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// readUint64 decodes big endian integers for ids and totals.
func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// readInt64 simply casts the unsigned read, matching the writer logic.
func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// readVarUint undoes the compact varint encoding for lengths/counts.
func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// readAmount mirrors writeAmount.
func (r *binReader) readAmount() (Amount, error) {
	v, err := r.readInt64()
	if err != nil {
		return 0, err
	}
	return Amount(v), nil
}

// readString restores length-prefixed UTF-8.
func (r *binReader) readString() (string, error) {
	length, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(length) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(length)])
	r.pos += int(length)
	return s, nil
}

// readAddress rewraps the stored string.
func (r *binReader) readAddress() (Address, error) {
	s, err := r.readString()
	if err != nil {
		return "", err
	}
	return AddressFromString(s), nil
}

// DecodeConfig rehydrates the construction record.
func DecodeConfig(data []byte) (*Config, error) {
	r := newReader(data)
	cfg := &Config{}
	var err error
	if cfg.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if cfg.Params.MinimumQuorum, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.Params.VotingDuration, err = r.readInt64(); err != nil {
		return nil, err
	}
	if cfg.Params.ExecutionDelay, err = r.readInt64(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DecodeMember rehydrates a Member blob.
func DecodeMember(data []byte) (*Member, error) {
	r := newReader(data)
	m := &Member{}
	var err error
	if m.Address, err = r.readAddress(); err != nil {
		return nil, err
	}
	if m.JoinedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeProposal rehydrates a Proposal blob.
func DecodeProposal(data []byte) (*Proposal, error) {
	r := newReader(data)
	prpsl := &Proposal{}
	var err error
	if prpsl.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if prpsl.Proposer, err = r.readAddress(); err != nil {
		return nil, err
	}
	if prpsl.Description, err = r.readString(); err != nil {
		return nil, err
	}
	if prpsl.Value, err = r.readAmount(); err != nil {
		return nil, err
	}
	if prpsl.Recipient, err = r.readAddress(); err != nil {
		return nil, err
	}
	if prpsl.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if prpsl.VotingDeadline, err = r.readInt64(); err != nil {
		return nil, err
	}
	if prpsl.VotesFor, err = r.readUint64(); err != nil {
		return nil, err
	}
	if prpsl.VotesAgainst, err = r.readUint64(); err != nil {
		return nil, err
	}
	if prpsl.Executed, err = r.readBool(); err != nil {
		return nil, err
	}
	return prpsl, nil
}

// DecodeVoteRecord rehydrates a receipt blob.
func DecodeVoteRecord(data []byte) (*VoteRecord, error) {
	r := newReader(data)
	vr := &VoteRecord{}
	var err error
	if vr.Approve, err = r.readBool(); err != nil {
		return nil, err
	}
	if vr.VotedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return vr, nil
}
