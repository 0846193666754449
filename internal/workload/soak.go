package workload

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lucasgdosr/deque/v2"
	"github.com/lucasgdosr/deque/v2/internal/counted"
	"github.com/lucasgdosr/deque/v2/internal/faultinject"
)

// ErrMismatch is returned when a Deque and its model disagree.
var ErrMismatch = errors.New("deque does not match model")

// Report summarizes a soak run.
type Report struct {
	Ops    int
	Faults int
	MaxCap int
}

// Soak runs cfg.Workers goroutines. Each one owns a Deque of counted values
// and a slice model, applies cfg.Ops random operations to both, and compares
// them after every step. Copies fail every cfg.FailEvery calls, and a failed
// operation must leave the Deque exactly as it was. At the end every worker
// destroys its Deque and checks that no value leaked.
//
// Soak stops at the first mismatch, or when ctx is done.
func Soak(ctx context.Context, cfg Config, log logrus.FieldLogger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	reports := make([]Report, cfg.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range cfg.Workers {
		g.Go(func() error {
			wlog := log.WithField("worker", w)
			r, err := soakWorker(ctx, cfg, uint64(w))
			if err != nil {
				wlog.WithError(err).Error("soak failed")
				return fmt.Errorf("worker %d: %w", w, err)
			}
			wlog.WithFields(logrus.Fields{
				"ops":     r.Ops,
				"faults":  r.Faults,
				"max_cap": r.MaxCap,
			}).Debug("soak done")
			reports[w] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	var total Report
	for _, r := range reports {
		total.Ops += r.Ops
		total.Faults += r.Faults
		total.MaxCap = max(total.MaxCap, r.MaxCap)
	}
	return total, nil
}

func soakWorker(ctx context.Context, cfg Config, stream uint64) (Report, error) {
	rng := rand.New(rand.NewPCG(cfg.Seed, stream))
	reg := counted.NewRegistry(faultinject.Every(cfg.FailEvery))
	d := deque.New[counted.Value]()
	var model []int
	var rep Report

	for step := range cfg.Ops {
		if err := ctx.Err(); err != nil {
			d.Destroy()
			return rep, err
		}

		name, err := soakStep(rng, reg, d, &model, cfg.MaxLen)
		switch {
		case errors.Is(err, faultinject.ErrInjected):
			rep.Faults++
		case err != nil:
			d.Destroy()
			return rep, fmt.Errorf("step %d (%s): %w", step, name, err)
		}
		rep.Ops++
		rep.MaxCap = max(rep.MaxCap, d.Cap())

		if diff := cmp.Diff(model, counted.Ns(d.Slice()), cmpopts.EquateEmpty()); diff != "" {
			d.Destroy()
			return rep, fmt.Errorf("%w at step %d after %s (-model +deque):\n%s", ErrMismatch, step, name, diff)
		}
	}

	d.Destroy()
	if n := reg.Live(); n != 0 {
		return rep, fmt.Errorf("%d values leaked", n)
	}
	return rep, reg.Err()
}

// soakStep applies one random operation to d and, if it succeeded, to model.
func soakStep(rng *rand.Rand, reg *counted.Registry, d *deque.Deque[counted.Value], model *[]int, maxLen int) (string, error) {
	n := rng.IntN(1 << 16)
	v := reg.New(n)
	defer v.Destroy()

	k := rng.IntN(10)
	if len(*model) >= maxLen {
		k = 9
	}
	switch {
	case k < 3:
		if err := d.PushBack(v); err != nil {
			return OpPushBack, err
		}
		*model = append(*model, n)
		return OpPushBack, nil
	case k < 5:
		if err := d.PushFront(v); err != nil {
			return OpPushFront, err
		}
		*model = slices.Insert(*model, 0, n)
		return OpPushFront, nil
	case k < 6:
		p := rng.IntN(len(*model) + 1)
		if _, err := d.Insert(d.CBegin().Add(p), v); err != nil {
			return OpInsert, err
		}
		*model = slices.Insert(*model, p, n)
		return OpInsert, nil
	case k < 7 && len(*model) > 0:
		i := rng.IntN(len(*model))
		j := i + rng.IntN(min(4, len(*model)-i)+1)
		d.EraseRange(d.CBegin().Add(i), d.CBegin().Add(j))
		*model = slices.Delete(*model, i, j)
		return OpEraseRange, nil
	case k < 8:
		c, err := d.Copy()
		if err != nil {
			return "copy", err
		}
		err = d.Assign(c)
		c.Destroy()
		return "assign", err
	case len(*model) == 0:
		return "noop", nil
	case rng.IntN(2) == 0:
		d.PopBack()
		*model = (*model)[:len(*model)-1]
		return OpPopBack, nil
	default:
		d.PopFront()
		*model = (*model)[1:]
		return OpPopFront, nil
	}
}
