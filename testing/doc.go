// Package testing provides test doubles for the prunecluster library.
//
// It follows Go's convention of shipping test utilities in a dedicated package
// (similar to net/http/httptest):
//   - Surface: in-memory types.Surface that records every marker operation
//   - Scheduler: manual-clock types.Scheduler advanced explicitly by the test
//   - NewTestLogger: types.Logger writing through testing.TB
//
// Example usage:
//
//	import (
//	    "testing"
//	    pctest "github.com/arloliu/prunecluster/testing"
//	)
//
//	func TestOverlay(t *testing.T) {
//	    surface := pctest.NewSurface(types.LatLng{Lat: 10, Lng: 10}, 11)
//	    sched := pctest.NewScheduler()
//	    ov, _ := prunecluster.NewOverlay(prunecluster.TestConfig(), src,
//	        prunecluster.WithScheduler(sched))
//	    _ = ov.Attach(surface)
//	    sched.Advance(time.Second)
//	}
package testing
