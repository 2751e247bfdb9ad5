package service

import (
	"lottotrack/analysis"
)

// StatSourceFactory picks the stat source used by pick analysis for one unit of work
type StatSourceFactory func(uow UnitOfWork) analysis.StatSource

// StoreStatSources reads analysis stats from the stat store of the unit of work
func StoreStatSources() StatSourceFactory {
	return func(uow UnitOfWork) analysis.StatSource {
		return analysis.NewStoreStatSource(uow.StatRepository())
	}
}

// SyntheticStatSources serves generated stats and never touches the store
func SyntheticStatSources(seed uint64) StatSourceFactory {
	source := analysis.NewSyntheticStatSource(seed)
	return func(UnitOfWork) analysis.StatSource {
		return source
	}
}
