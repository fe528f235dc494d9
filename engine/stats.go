package engine

import "github.com/rs/zerolog"

// Stats collects node and cutoff counts for one search.
type Stats struct {
	Nodes            uint64
	QuiescenceNodes  uint64
	BetaCutoffs      uint64
	QStandPatCutoffs uint64
	QBetaCutoffs     uint64
	QNodeLimitHits   uint64
	TerminalLeaves   uint64
}

func (s *Stats) Reset() {
	*s = Stats{}
}

// MarshalZerologObject lets a Stats value be logged with Event.Object.
func (s Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("nodes", s.Nodes).
		Uint64("qnodes", s.QuiescenceNodes).
		Uint64("beta_cutoffs", s.BetaCutoffs).
		Uint64("q_standpat_cutoffs", s.QStandPatCutoffs).
		Uint64("q_beta_cutoffs", s.QBetaCutoffs).
		Uint64("terminal_leaves", s.TerminalLeaves)
	if s.QNodeLimitHits > 0 {
		e.Uint64("q_node_limit_hits", s.QNodeLimitHits)
	}
}
