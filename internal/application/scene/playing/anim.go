package playing

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

// coinBob is the drawn vertical offset of one coin. It never touches the
// coin's bounding box.
type coinBob struct {
	seq    *gween.Sequence
	offset float32
}

// newCoinBobs creates one looping bob per coin, phase-shifted by index
func newCoinBobs(n int, cfg config.CoinConfig) []*coinBob {
	bobs := make([]*coinBob, n)
	for i := range bobs {
		bobs[i] = newCoinBob(float32(cfg.FloatAmplitude), float32(cfg.FloatPeriod))
		// Spread the phases so coins do not bob in lockstep
		bobs[i].update(float64(i) * cfg.FloatPeriod / 7)
	}
	return bobs
}

func newCoinBob(amplitude, period float32) *coinBob {
	half := period / 2
	if half <= 0 {
		half = 0.5
	}
	seq := gween.NewSequence()
	seq.Add(
		gween.New(-amplitude, amplitude, half, ease.InOutSine),
		gween.New(amplitude, -amplitude, half, ease.InOutSine),
	)
	return &coinBob{seq: seq, offset: -amplitude}
}

func (b *coinBob) update(dt float64) {
	v, _, done := b.seq.Update(float32(dt))
	b.offset = v
	if done {
		b.seq.Reset()
	}
}

func (b *coinBob) reset() {
	b.seq.Reset()
	b.offset, _, _ = b.seq.Update(0)
}
