// This file is part of Babo.
//
// Babo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Babo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Babo.  If not, see <https://www.gnu.org/licenses/>.

package limiter_test

import (
	"testing"
	"time"

	"github.com/baboengine/babo/performance/limiter"
	"github.com/baboengine/babo/test"
)

func TestHasWaited(t *testing.T) {
	// 10fps means a tick every 100ms. generous enough that scheduling noise
	// can't flip the expectations below
	lim, err := limiter.NewFPSLimiter(10)
	if !test.ExpectedSuccess(t, err) {
		return
	}

	// the first tick is available immediately
	lim.Wait()

	// the next tick is a full period away
	test.Equate(t, lim.HasWaited(), false)

	// after well over a period the tick is pending and HasWaited consumes it
	// without blocking
	time.Sleep(500 * time.Millisecond)
	test.Equate(t, lim.HasWaited(), true)
}

func TestSetLimit(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(10)
	if !test.ExpectedSuccess(t, err) {
		return
	}
	lim.Wait()

	// raising the limit shortens the period. the ticker reads the new limit
	// after its current sleep, so one more tick arrives at the old rate
	lim.SetLimit(100)
	lim.Wait()

	// three waits at 100fps complete in around 30ms. at the old rate they
	// would take 300ms
	start := time.Now()
	for i := 0; i < 3; i++ {
		lim.Wait()
	}
	if elapsed := time.Since(start); elapsed > 150*time.Millisecond {
		t.Fatalf("waits after SetLimit(100) took %v", elapsed)
	}
}
