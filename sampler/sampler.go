// Package sampler tabulates equation values over an interval, producing
// point sequences suitable for plotting. Sampling runs on a background
// routine; finished curves are cached and persisted.
package sampler

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/routineman"
)

const defaultPointCount = 100

func NewSampler(storage Storage, logger l.Wrapper) *Sampler {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "sampler"))

	if storage == nil {
		logger.Fatal("no storage")
	}

	s := &Sampler{
		logger:       logger,
		storage:      storage,
		reqCh:        make(chan Request, 16),
		routineMan:   routineman.NewRoutineMan(context.Background(), logger),
		cachedCurves: cache.New(time.Minute*10, time.Minute*10),
	}

	s.routineMan.StartRoutine(s.sampleRoutine, "sampleRoutine")

	return s
}

type Sampler struct {
	logger  l.Wrapper
	storage Storage

	reqCh      chan Request
	routineMan routineman.RoutineMan

	cachedCurves *cache.Cache
}

func (impl *Sampler) TriggerStop() {
	impl.routineMan.TriggerStop()
}

func (impl *Sampler) Wait() {
	impl.routineMan.Wait()
}

// Sample queues the request for the background routine.
func (impl *Sampler) Sample(req Request) {
	impl.reqCh <- req
}

// SampleNow tabulates synchronously, caches and persists the points.
// Degenerate requests are normalized: a non-positive count falls back to the
// default, a reversed interval is swapped.
func (impl *Sampler) SampleNow(req Request) []Point {
	if req.Eq == nil {
		impl.logger.WithFields(l.StringField("key", req.Key)).Error("no equation in request")

		return nil
	}

	if req.Count <= 0 {
		req.Count = defaultPointCount
	}

	if req.To < req.From {
		req.From, req.To = req.To, req.From
	}

	ps := tabulate(req)

	impl.cachedCurves.Set(req.Key, ps, cache.DefaultExpiration)

	if err := impl.storage.Save(req.Key, ps); err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("key", req.Key)).Error("save points failed")
	}

	return ps
}

// GetPoints serves from the cache first, then from storage.
func (impl *Sampler) GetPoints(key string) ([]Point, bool) {
	if i, ok := impl.cachedCurves.Get(key); ok {
		if ps, _ := i.([]Point); ps != nil {
			return ps, true
		}
	}

	ps, err := impl.storage.Load(key)
	if err != nil {
		return nil, false
	}

	impl.cachedCurves.Set(key, ps, cache.DefaultExpiration)

	return ps, true
}

func (impl *Sampler) sampleRoutine(ctx context.Context, _ func() bool) {
	loop := true

	for loop {
		select {
		case <-ctx.Done():
			loop = false

			continue
		case req := <-impl.reqCh:
			impl.SampleNow(req)
		}
	}
}

func tabulate(req Request) []Point {
	ps := make([]Point, 0, req.Count)

	if req.Count == 1 {
		return append(ps, Point{X: req.From, Y: req.Eq.ValueAt(req.From)})
	}

	step := (req.To - req.From) / float64(req.Count-1)

	for i := 0; i < req.Count; i++ {
		x := req.From + float64(i)*step

		ps = append(ps, Point{X: x, Y: req.Eq.ValueAt(x)})
	}

	return ps
}
