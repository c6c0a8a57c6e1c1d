// Package archive records solved equations: each Solve call produces a
// Record with a snowflake ID, persisted through a pluggable Storage and
// memoized so re-solving the same equation is a cache hit.
package archive

import (
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libalgebra/equations"
)

func NewArchive(storage Storage, logger l.Wrapper) *Archive {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "archive"))

	if storage == nil {
		logger.Fatal("no storage")
	}

	return &Archive{
		logger:        logger,
		storage:       storage,
		cachedRecords: cache.New(time.Minute*10, time.Minute*10),
	}
}

type Archive struct {
	logger  l.Wrapper
	storage Storage

	cachedRecords *cache.Cache
}

// Solve solves eq and archives the outcome. Solving the same equation again
// while the memo entry is fresh returns the archived record without hitting
// the solver or the storage.
func (impl *Archive) Solve(label string, eq equations.Equation) (r *Record, err error) {
	key := eq.String()

	if i, ok := impl.cachedRecords.Get(key); ok {
		if cached, _ := i.(*Record); cached != nil {
			r = cached

			return
		}
	}

	ss, err := eq.Solve()
	if err != nil {
		return
	}

	r = &Record{
		ID:       snowflake.ID(),
		Label:    label,
		Equation: key,
		Kind:     ss.Kind.String(),
		Roots:    ss.Roots(),
		SolvedAt: time.Now().Unix(),
	}

	if ss.Kind == equations.SolutionComplexPair {
		r.ComplexRoots = []ComplexRoot{
			{Re: ss.Z1.Re, Im: ss.Z1.Im},
			{Re: ss.Z2.Re, Im: ss.Z2.Im},
		}
	}

	err = impl.storage.Save(r)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("equation", key)).Error("save record failed")

		return nil, err
	}

	impl.cachedRecords.Set(key, r, cache.DefaultExpiration)

	return
}

func (impl *Archive) Find(id uint64) (*Record, error) {
	return impl.storage.Load(id)
}

func (impl *Archive) Records() ([]*Record, error) {
	return impl.storage.List()
}

func (impl *Archive) Remove(id uint64) error {
	return impl.storage.Remove(id)
}
