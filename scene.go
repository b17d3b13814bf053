package logo

import "math"

// SwitchInterval is the time in seconds each scene stays on screen when the
// events scene is enabled.
const SwitchInterval = 10.0

// SceneID identifies one of the two scenes.
type SceneID uint8

const (
	SceneLogo   SceneID = iota // radial arms and text panel
	SceneEvents                // events panel and arrows
)

// String returns the scene name.
func (id SceneID) String() string {
	switch id {
	case SceneLogo:
		return "logo"
	case SceneEvents:
		return "events"
	default:
		return "unknown"
	}
}

// Scene is an ordered group of elements drawn together in one frame.
type Scene struct {
	ID       SceneID
	Elements []*Element
}

// Name returns the scene name.
func (s *Scene) Name() string {
	return s.ID.String()
}

// NewLogoScene builds the logo scene: three radial arms then the text panel.
func NewLogoScene() *Scene {
	return &Scene{
		ID:       SceneLogo,
		Elements: []*Element{RadialArm(0), RadialArm(1), RadialArm(2), TextPanel()},
	}
}

// NewEventsScene builds the events scene: the events panel then both arrows.
func NewEventsScene() *Scene {
	return &Scene{
		ID:       SceneEvents,
		Elements: []*Element{EventsPanel(), ArrowLower(), ArrowUpper()},
	}
}

// Select reports which scene is shown at time t. Without the events scene the
// logo is always shown; otherwise the scenes alternate every SwitchInterval
// seconds with a hard cut, even intervals showing the logo.
func Select(t float64, eventsEnabled bool) SceneID {
	if !eventsEnabled {
		return SceneLogo
	}
	slot := math.Floor(t / SwitchInterval)
	if math.Mod(slot, 2) == 0 {
		return SceneLogo
	}
	return SceneEvents
}

// SceneSet owns the scenes of one process. It is built once at startup and
// read-only afterwards.
type SceneSet struct {
	logo   *Scene
	events *Scene
	// eventsEnabled is false on builds that only show the logo.
	eventsEnabled bool
}

// NewSceneSet builds the scenes. The events scene is only constructed when
// enabled.
func NewSceneSet(eventsEnabled bool) *SceneSet {
	s := &SceneSet{logo: NewLogoScene(), eventsEnabled: eventsEnabled}
	if eventsEnabled {
		s.events = NewEventsScene()
	}
	return s
}

// EventsEnabled reports whether the events scene takes part in rotation.
func (s *SceneSet) EventsEnabled() bool {
	return s.eventsEnabled
}

// Select returns the scene to draw at time t.
func (s *SceneSet) Select(t float64) *Scene {
	if Select(t, s.eventsEnabled) == SceneEvents {
		return s.events
	}
	return s.logo
}

// Scenes returns every scene in the set, logo first.
func (s *SceneSet) Scenes() []*Scene {
	if s.events == nil {
		return []*Scene{s.logo}
	}
	return []*Scene{s.logo, s.events}
}
