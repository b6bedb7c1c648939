package clip

import "sort"

// Key is one keyframe of a Keys channel. T is normalized clip time in
// [0,1). Ease shapes the segment between this key and the next one; a nil
// Ease means linear. github.com/fogleman/ease functions plug in directly.
type Key struct {
	T     float64
	Value float64
	Ease  func(t float64) float64
}

// Keys is a keyframed channel. The clip is cyclic, so the segment after
// the last key wraps around to the first key one period later.
type Keys []Key

// NewKeys returns a Keys channel with the keyframes sorted by time and
// times wrapped into [0,1).
func NewKeys(keys ...Key) Keys {
	out := make(Keys, len(keys))
	copy(out, keys)
	for i := range out {
		out[i].T = Wrap(out[i].T)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].T < out[j].T })
	return out
}

func (k Keys) ValueAt(t float64) float64 {
	switch len(k) {
	case 0:
		return 0
	case 1:
		return k[0].Value
	}

	t = Wrap(t)

	// find the segment containing t
	i := sort.Search(len(k), func(i int) bool { return k[i].T > t }) - 1
	if i < 0 {
		// before the first key: we are in the wrapped segment from the
		// last key around to the first
		i = len(k) - 1
	}

	a := k[i]
	b := k[(i+1)%len(k)]

	start, end := a.T, b.T
	if end <= start {
		end++ // wrapped segment spans the loop boundary
		if t < start {
			t++
		}
	}

	u := (t - start) / (end - start)
	if a.Ease != nil {
		u = a.Ease(u)
	}
	return a.Value + u*(b.Value-a.Value)
}

// Clip is a concrete in-memory Source. Channel order is insertion order.
type Clip struct {
	name     string
	order    []string
	channels map[string]Channel
}

// New creates an empty named clip.
func New(name string) *Clip {
	return &Clip{
		name:     name,
		channels: make(map[string]Channel),
	}
}

// Set adds or replaces a channel and returns the clip for chaining.
func (c *Clip) Set(name string, ch Channel) *Clip {
	if _, exists := c.channels[name]; !exists {
		c.order = append(c.order, name)
	}
	c.channels[name] = ch
	return c
}

func (c *Clip) Name() string { return c.name }

func (c *Clip) Channels() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Clip) Channel(name string) (Channel, bool) {
	ch, ok := c.channels[name]
	return ch, ok
}
