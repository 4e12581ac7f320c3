package render

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/gen2brain/beeep"
)

// pcspkrTimeout bounds the fallback beep(1) subprocess; a wedged speaker
// driver must not stall the scheduling loop.
const pcspkrTimeout = time.Second

// EmitPCSpkr sounds the PC-speaker buzzer at freq for dur, blocking for
// the tone's duration. The in-process driver is tried first; when the
// speaker device is not writable (common for unprivileged runs) it falls
// back to the beep(1) binary.
func (r *Renderer) EmitPCSpkr(freq int, dur time.Duration) error {
	if err := beeep.Beep(float64(freq), int(dur.Milliseconds())); err == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), dur+pcspkrTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, "beep",
		"-f", strconv.Itoa(freq),
		"-l", strconv.FormatInt(dur.Milliseconds(), 10),
	)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pcspkr beep failed: %w", err)
	}
	return nil
}
