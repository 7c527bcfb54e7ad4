package bridge

import (
	"context"

	"github.com/BrandonKowalski/navbridge/pkg/navbridge/internal"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/viewmodel"
)

// Listen is the channel strategy. The counter's reports are yielded into a
// fresh stream before push runs, and every value received is passed to
// deliver until ctx is done. Cancelling ctx finishes the stream and clears
// the callback.
func Listen(ctx context.Context, counter *viewmodel.Counter, push func(), deliver func(count int)) {
	stream := NewStream[int]()
	counter.OnReport(func(count int) {
		stream.Yield(count)
	})
	defer func() {
		counter.Detach()
		stream.Finish()
		internal.GetInternalLogger().Debug("stream cancelled", "screen", counter.ID())
	}()

	push()

	for {
		count, ok := stream.Next(ctx)
		if !ok {
			return
		}
		deliver(count)
	}
}
