package logo

import "testing"

func TestSelect(t *testing.T) {
	tests := []struct {
		name   string
		t      float64
		events bool
		want   SceneID
	}{
		{"start", 0, true, SceneLogo},
		{"just before switch", 9.999, true, SceneLogo},
		{"first switch", 10, true, SceneEvents},
		{"end of events slot", 19.999, true, SceneEvents},
		{"second switch", 20, true, SceneLogo},
		{"third slot", 35, true, SceneEvents},
		{"negative time", -0.5, true, SceneEvents},
		{"disabled at 0", 0, false, SceneLogo},
		{"disabled at 10", 10, false, SceneLogo},
		{"disabled at 19.999", 19.999, false, SceneLogo},
		{"disabled far out", 1e6 + 15, false, SceneLogo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Select(tt.t, tt.events); got != tt.want {
				t.Errorf("Select(%v, %v) = %v, want %v", tt.t, tt.events, got, tt.want)
			}
		})
	}
}

func TestSelectIsPureFunctionOfTime(t *testing.T) {
	for _, ts := range sampleTimes {
		if Select(ts, true) != Select(ts, true) {
			t.Errorf("Select(%v) not stable", ts)
		}
	}
}

func TestLogoSceneElements(t *testing.T) {
	s := NewLogoScene()
	want := []string{"radial0", "radial1", "radial2", "text"}
	if len(s.Elements) != len(want) {
		t.Fatalf("elements = %d, want %d", len(s.Elements), len(want))
	}
	for i, name := range want {
		if s.Elements[i].Name != name {
			t.Errorf("element %d = %q, want %q", i, s.Elements[i].Name, name)
		}
	}
}

func TestEventsSceneElements(t *testing.T) {
	s := NewEventsScene()
	want := []struct {
		name    string
		texture TextureID
		scale   float64
	}{
		{"events", TextureEvents, 1},
		{"arrow-lower", TextureArrow, 0.4},
		{"arrow-upper", TextureArrow, 0.4},
	}
	if len(s.Elements) != len(want) {
		t.Fatalf("elements = %d, want %d", len(s.Elements), len(want))
	}
	for i, w := range want {
		e := s.Elements[i]
		if e.Name != w.name || e.Texture != w.texture || e.Scale != w.scale {
			t.Errorf("element %d = {%q %v %v}, want {%q %v %v}", i, e.Name, e.Texture, e.Scale, w.name, w.texture, w.scale)
		}
	}
}

func TestSceneSetWithoutEvents(t *testing.T) {
	s := NewSceneSet(false)
	if s.EventsEnabled() {
		t.Error("EventsEnabled = true")
	}
	if got := len(s.Scenes()); got != 1 {
		t.Errorf("Scenes = %d, want 1", got)
	}
	if s.Select(15).ID != SceneLogo {
		t.Error("Select(15) should be the logo without events")
	}
}

func TestSceneSetAlternates(t *testing.T) {
	s := NewSceneSet(true)
	if got := len(s.Scenes()); got != 2 {
		t.Fatalf("Scenes = %d, want 2", got)
	}
	if s.Select(5).ID != SceneLogo {
		t.Error("Select(5) want logo")
	}
	if s.Select(15).ID != SceneEvents {
		t.Error("Select(15) want events")
	}
	// Scenes are built once; repeated selection returns the same instance.
	if s.Select(15) != s.Select(16) {
		t.Error("events scene rebuilt between selections")
	}
}

func TestSceneIDString(t *testing.T) {
	if SceneLogo.String() != "logo" || SceneEvents.String() != "events" {
		t.Errorf("names = %q, %q", SceneLogo, SceneEvents)
	}
	if SceneID(9).String() != "unknown" {
		t.Errorf("unknown id = %q", SceneID(9))
	}
}
