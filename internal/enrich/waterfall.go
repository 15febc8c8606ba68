package enrich

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/leadrank/internal/normalize"
)

// Waterfall cascades contact lookups through its finders in order. Each step
// only fills fields earlier steps left empty, and the cascade stops as soon
// as both fields are known.
type Waterfall struct {
	finders []ContactFinder
}

// NewWaterfall returns a Waterfall over finders, highest priority first.
func NewWaterfall(finders ...ContactFinder) *Waterfall {
	return &Waterfall{finders: finders}
}

// FindContacts implements ContactFinder. A failing step is logged and
// skipped; an error is returned only when every step failed.
func (w *Waterfall) FindContacts(ctx context.Context, req ContactRequest) (*ContactResult, error) {
	var (
		res     ContactResult
		lastErr error
		ok      bool
	)

	for i, f := range w.finders {
		if complete(res) {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "enrich: waterfall cancelled")
		}

		got, err := f.FindContacts(ctx, req)
		if err != nil {
			lastErr = err
			zap.L().Debug("enrich: waterfall step failed",
				zap.Int("step", i),
				zap.String("company", req.CompanyName),
				zap.Error(err),
			)
			continue
		}
		ok = true
		if got == nil {
			continue
		}
		if !normalize.Present(res.Email) {
			res.Email = got.Email
		}
		if !normalize.Present(res.LinkedIn) {
			res.LinkedIn = got.LinkedIn
		}
	}

	if !ok {
		if lastErr == nil {
			return nil, eris.New("enrich: waterfall has no finders")
		}
		return nil, lastErr
	}
	return &res, nil
}

func complete(r ContactResult) bool {
	return normalize.Present(r.Email) && normalize.Present(r.LinkedIn)
}
