package bridge

import (
	"weak"

	"github.com/BrandonKowalski/navbridge/pkg/navbridge/internal"
	"github.com/BrandonKowalski/navbridge/pkg/navbridge/viewmodel"
)

// AttachWeak is the weak reference strategy. The counter's callback holds
// only a weak pointer to target and calls dispatch with it while target is
// alive. Once target has been collected the report is dropped.
//
// dispatch must not capture target itself, or the reference is no longer
// weak.
func AttachWeak[T any](counter *viewmodel.Counter, target *T, dispatch func(target *T, count int)) {
	ref := weak.Make(target)
	id := counter.ID()

	counter.OnReport(func(count int) {
		t := ref.Value()
		if t == nil {
			internal.GetInternalLogger().Debug("report dropped, container released", "screen", id, "count", count)
			return
		}
		dispatch(t, count)
	})
}
