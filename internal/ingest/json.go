package ingest

import (
	"context"
	"encoding/json"
	"io"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/sells-group/leadrank/internal/model"
)

// ParseJSON decodes a JSON array of lead objects one element at a time.
// Elements without an id are assigned a random UUID.
func ParseJSON(ctx context.Context, r io.Reader) ([]model.Lead, error) {
	ch, errCh := decodeArray[model.Lead](ctx, r)

	leads := make([]model.Lead, 0)
	for l := range ch {
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		leads = append(leads, l)
	}
	if err := <-errCh; err != nil {
		return nil, err
	}
	return leads, nil
}

// decodeArray streams the elements of a JSON array. Both channels are closed
// when decoding stops; at most one error is sent.
func decodeArray[T any](ctx context.Context, r io.Reader) (<-chan T, <-chan error) {
	outCh := make(chan T, 64)
	errCh := make(chan error, 1)

	go func() {
		defer close(outCh)
		defer close(errCh)

		decoder := json.NewDecoder(r)

		tok, err := decoder.Token()
		if err == io.EOF {
			errCh <- eris.New("ingest: json is empty")
			return
		}
		if err != nil {
			errCh <- eris.Wrap(err, "ingest: read json opening token")
			return
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '[' {
			errCh <- eris.Errorf("ingest: expected json array, got %v", tok)
			return
		}

		for i := 0; decoder.More(); i++ {
			if ctx.Err() != nil {
				errCh <- eris.Wrap(ctx.Err(), "ingest: json context cancelled")
				return
			}

			var item T
			if err := decoder.Decode(&item); err != nil {
				errCh <- eris.Wrapf(err, "ingest: decode json element %d", i)
				return
			}

			select {
			case outCh <- item:
			case <-ctx.Done():
				errCh <- eris.Wrap(ctx.Err(), "ingest: json context cancelled")
				return
			}
		}

		if _, err := decoder.Token(); err != nil {
			errCh <- eris.Wrap(err, "ingest: read json closing token")
		}
	}()

	return outCh, errCh
}
