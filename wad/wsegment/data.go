// Package wsegment computes where the segments following a WAD header start
// and end.
package wsegment

import (
	"wad-info/ds"
)

type (
	Kind int
	// Range is an inclusive byte range. An empty segment has End == Start-1.
	Range struct {
		Start int64 `json:"start"`
		End   int64 `json:"end"`
	}
	Offsets [NumSegments]Range
)

const (
	Cert Kind = iota
	Ticket
	TMD
	Data
	Footer
)

const (
	NumSegments = 5
	Alignment   = 64
)

var Kinds = []Kind{Cert, Ticket, TMD, Data, Footer}

func (k Kind) String() string {
	switch k {
	case Cert:
		return "cert"
	case Ticket:
		return "ticket"
	case TMD:
		return "tmd"
	case Data:
		return "data"
	case Footer:
		return "footer"
	}
	panic(ds.ErrUnreachableCode{Caller: "Kind.String"})
}

func (r Range) Len() int64 {
	return r.End - r.Start + 1
}

func (r Range) IsEmpty() bool {
	return r.Len() <= 0
}

func (o Offsets) Get(kind Kind) Range {
	return o[kind]
}
