package domain

import "fmt"

// RejectReason は敵が射撃条件を満たさなかった理由のビットマスクです。
type RejectReason uint8

const (
	RejectNone       RejectReason = 0
	RejectMisaligned RejectReason = 1 << 0
	RejectOutOfRange RejectReason = 1 << 1
)

func (r RejectReason) Has(x RejectReason) bool { return r&x != 0 }

func (r RejectReason) String() string {
	if r == RejectNone {
		return "none"
	}
	out := ""
	add := func(s string) {
		if out == "" {
			out = s
			return
		}
		out += "|" + s
	}
	if r.Has(RejectMisaligned) {
		add("misaligned")
	}
	if r.Has(RejectOutOfRange) {
		add("out_of_range")
	}
	if out == "" {
		return fmt.Sprintf("unknown(%d)", r)
	}
	return out
}
