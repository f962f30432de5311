package layout

import (
	"sync"
)

// Threshold names a label a container carries once its width meets or
// exceeds MinWidth.
type Threshold struct {
	Label    string
	MinWidth float32
}

// Container is the handle the threshold registry toggles labels on. For the
// Fyne glue this is a widget wrapper; tests use plain structs. Handles are
// compared by identity, so implementations must be pointer types.
type Container interface {
	// SetLabelActive switches a single threshold label on or off. The
	// registry only calls this for labels whose state actually changed.
	SetLabelActive(label string, active bool)
}

// Detachable is optionally implemented by containers that can leave the
// render tree. Observations for detached containers are silently dropped.
type Detachable interface {
	Attached() bool
}

// ThresholdRegistry implements the container-query abstraction: each
// registered container gets its threshold labels recomputed on every
// observed width change, and only the symmetric difference (newly satisfied
// plus newly unsatisfied labels) is applied. A full clear-and-reapply would
// flicker unrelated listeners on the same container.
type ThresholdRegistry struct {
	mu      sync.Mutex
	watched map[Container]*watchedContainer
}

type watchedContainer struct {
	thresholds []Threshold
	active     map[string]bool
}

// NewThresholdRegistry builds an empty registry.
func NewThresholdRegistry() *ThresholdRegistry {
	return &ThresholdRegistry{watched: make(map[Container]*watchedContainer)}
}

// Register begins observing a container against the given thresholds.
// Registering an already-registered container replaces its threshold spec;
// active labels the new spec still declares are kept for difference
// computation (so re-registration is idempotent for an unchanged spec),
// while active labels the new spec no longer declares are switched off.
func (tr *ThresholdRegistry) Register(c Container, thresholds []Threshold) {
	if c == nil {
		return
	}
	spec := make([]Threshold, len(thresholds))
	copy(spec, thresholds)

	tr.mu.Lock()
	w, ok := tr.watched[c]
	if !ok {
		tr.watched[c] = &watchedContainer{
			thresholds: spec,
			active:     make(map[string]bool),
		}
		tr.mu.Unlock()
		return
	}

	declared := make(map[string]bool, len(spec))
	for _, th := range spec {
		declared[th.Label] = true
	}
	var dropped []string
	for label := range w.active {
		if !declared[label] {
			delete(w.active, label)
			dropped = append(dropped, label)
		}
	}
	w.thresholds = spec
	tr.mu.Unlock()

	for _, label := range dropped {
		c.SetLabelActive(label, false)
	}
}

// Unregister stops observing a container. Safe to call for a container that
// was never registered or was already unregistered.
func (tr *ThresholdRegistry) Unregister(c Container) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	delete(tr.watched, c)
}

// Registered reports whether the container is currently observed.
func (tr *ThresholdRegistry) Registered(c Container) bool {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	_, ok := tr.watched[c]
	return ok
}

// Observe feeds a width measurement for a container. Measurements for
// unregistered or detached containers are dropped, as is a zero width
// (an unmounted container, not an error). Label changes are applied as
// adds of newly satisfied labels and removes of newly unsatisfied ones;
// labels whose state is unchanged are not touched.
func (tr *ThresholdRegistry) Observe(c Container, width float32) {
	if width <= 0 {
		return
	}
	if d, ok := c.(Detachable); ok && !d.Attached() {
		return
	}

	tr.mu.Lock()
	w, ok := tr.watched[c]
	if !ok {
		tr.mu.Unlock()
		return
	}

	var added, removed []string
	for _, th := range w.thresholds {
		satisfied := width >= th.MinWidth
		if satisfied && !w.active[th.Label] {
			w.active[th.Label] = true
			added = append(added, th.Label)
		} else if !satisfied && w.active[th.Label] {
			delete(w.active, th.Label)
			removed = append(removed, th.Label)
		}
	}
	tr.mu.Unlock()

	for _, label := range added {
		c.SetLabelActive(label, true)
	}
	for _, label := range removed {
		c.SetLabelActive(label, false)
	}
}

// ActiveLabels returns the labels a container currently satisfies, for
// diagnostics and tests.
func (tr *ThresholdRegistry) ActiveLabels(c Container) []string {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	w, ok := tr.watched[c]
	if !ok {
		return nil
	}
	labels := make([]string, 0, len(w.active))
	for _, th := range w.thresholds {
		if w.active[th.Label] {
			labels = append(labels, th.Label)
		}
	}
	return labels
}
