package discord

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWizard(sessionID int64) *wizard {
	b := &Bot{wizards: newWizardRegistry()}
	w := &wizard{
		bot:       b,
		sessionID: sessionID,
		invokerID: "user-1",
		staged:    make(map[int64]struct{}),
	}
	b.wizards.register(w)
	return w
}

func TestWizardArm_SetsTimer(t *testing.T) {
	w := newTestWizard(1)

	w.arm()

	w.mu.Lock()
	defer w.mu.Unlock()
	require.NotNil(t, w.timer)
	w.timer.Stop()
}

func TestWizardArm_SkipsTerminatedWizard(t *testing.T) {
	w := newTestWizard(1)

	w.mu.Lock()
	w.terminate()
	w.mu.Unlock()

	w.arm()

	w.mu.Lock()
	defer w.mu.Unlock()
	assert.Nil(t, w.timer)
}

func TestWizardTerminate_StopsTimerAndUnregisters(t *testing.T) {
	w := newTestWizard(1)
	w.arm()

	w.mu.Lock()
	w.terminate()
	w.mu.Unlock()

	assert.Nil(t, w.bot.wizards.lookup(1))
	assert.True(t, w.done)
}

func TestWizardArm_ConcurrentWithTerminate(t *testing.T) {
	// Arming and terminating from different goroutines must not race on the
	// timer field.
	for i := int64(0); i < 100; i++ {
		w := newTestWizard(i)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			w.arm()
		}()
		go func() {
			defer wg.Done()
			w.mu.Lock()
			w.terminate()
			w.mu.Unlock()
		}()
		wg.Wait()

		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
	}
}
