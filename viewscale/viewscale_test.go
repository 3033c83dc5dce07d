package viewscale

import "testing"

func TestZoomInFromStart(t *testing.T) {
	for n := 0; n <= 20; n++ {
		c := NewController()
		for i := 0; i < n; i++ {
			c.OnKeyEvent(KeyZoomIn)
		}
		if got := c.Level(); got != 1+n {
			t.Errorf("after %d zoom-in events level = %d, expected %d", n, got, 1+n)
		}
	}
}

func TestZoomOutNeverBelowMin(t *testing.T) {
	for start := 1; start <= 8; start++ {
		c := NewController()
		c.Set(start)
		for i := 0; i < start+5; i++ {
			c.OnKeyEvent(KeyZoomOut)
			if c.Level() < MinLevel {
				t.Fatalf("start %d: level dropped to %d", start, c.Level())
			}
		}
		if c.Level() != MinLevel {
			t.Errorf("start %d: level = %d, expected %d", start, c.Level(), MinLevel)
		}
	}
}

func TestOnKeyEventNotification(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		key      Key
		expected ZoomLevelChanged
		changed  bool
	}{
		{name: "zoom in", start: 1, key: KeyZoomIn, expected: ZoomLevelChanged{From: 1, To: 2}, changed: true},
		{name: "zoom out", start: 3, key: KeyZoomOut, expected: ZoomLevelChanged{From: 3, To: 2}, changed: true},
		{name: "zoom out at floor", start: 1, key: KeyZoomOut, changed: false},
		{name: "unknown key", start: 2, key: KeyNone, changed: false},
		{name: "out of range key", start: 2, key: Key(42), changed: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController()
			c.Set(tc.start)
			c.TakeChange()

			got, ok := c.OnKeyEvent(tc.key)
			if ok != tc.changed {
				t.Fatalf("OnKeyEvent() changed = %v, expected %v", ok, tc.changed)
			}
			if got != tc.expected {
				t.Errorf("OnKeyEvent() = %+v, expected %+v", got, tc.expected)
			}
			if c.Pending() != tc.changed {
				t.Errorf("Pending() = %v, expected %v", c.Pending(), tc.changed)
			}
		})
	}
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		events      []Key
		level       int
		cameraScale float64
		uiScale     float64
	}{
		{
			name:        "zoom in three times",
			start:       1,
			events:      []Key{KeyZoomIn, KeyZoomIn, KeyZoomIn},
			level:       4,
			cameraScale: 0.25,
			uiScale:     4.0,
		},
		{
			name:        "zoom out at one is clamped",
			start:       1,
			events:      []Key{KeyZoomOut},
			level:       1,
			cameraScale: 1.0,
			uiScale:     1.0,
		},
		{
			name:        "zoom out twice from five",
			start:       5,
			events:      []Key{KeyZoomOut, KeyZoomOut},
			level:       3,
			cameraScale: 1.0 / 3.0,
			uiScale:     3.0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController()
			c.Set(tc.start)
			c.HandleEvents(tc.events)

			if c.Level() != tc.level {
				t.Fatalf("level = %d, expected %d", c.Level(), tc.level)
			}
			rs := Apply(c.Level())
			if rs.Camera != tc.cameraScale {
				t.Errorf("camera scale = %v, expected %v", rs.Camera, tc.cameraScale)
			}
			if rs.UI != tc.uiScale {
				t.Errorf("ui scale = %v, expected %v", rs.UI, tc.uiScale)
			}
		})
	}
}

func TestApplyIsPure(t *testing.T) {
	for level := 1; level <= 16; level++ {
		a, b := Apply(level), Apply(level)
		if a != b {
			t.Errorf("Apply(%d) not stable: %+v vs %+v", level, a, b)
		}
	}
}

func TestTakeChangeOncePerChange(t *testing.T) {
	c := NewController()

	rs, ok := c.TakeChange()
	if !ok {
		t.Fatal("initial level should be pending")
	}
	if rs != Apply(1) {
		t.Errorf("initial scale = %+v, expected %+v", rs, Apply(1))
	}
	if _, ok := c.TakeChange(); ok {
		t.Error("second TakeChange without a change should report nothing")
	}

	c.OnKeyEvent(KeyZoomOut) // clamped, no change
	if _, ok := c.TakeChange(); ok {
		t.Error("clamped zoom-out should not produce a change")
	}

	c.OnKeyEvent(KeyZoomIn)
	rs, ok = c.TakeChange()
	if !ok || rs.UI != 2 {
		t.Errorf("TakeChange() = %+v, %v, expected ui scale 2", rs, ok)
	}
	if _, ok := c.TakeChange(); ok {
		t.Error("change applied twice")
	}
}

func TestSetClamps(t *testing.T) {
	c := NewController()
	c.Set(-3)
	if c.Level() != MinLevel {
		t.Errorf("Set(-3) level = %d, expected %d", c.Level(), MinLevel)
	}
	if Apply(0) != Apply(MinLevel) {
		t.Errorf("Apply(0) = %+v, expected clamp to %+v", Apply(0), Apply(MinLevel))
	}
}

func TestCancellingEventsProduceNoChange(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		events []Key
	}{
		{name: "in then out", start: 1, events: []Key{KeyZoomIn, KeyZoomOut}},
		{name: "out then in", start: 3, events: []Key{KeyZoomOut, KeyZoomIn}},
		{name: "two in two out", start: 2, events: []Key{KeyZoomIn, KeyZoomIn, KeyZoomOut, KeyZoomOut}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController()
			c.Set(tc.start)
			c.TakeChange()

			c.HandleEvents(tc.events)
			if c.Level() != tc.start {
				t.Fatalf("level = %d, expected %d", c.Level(), tc.start)
			}
			if c.Pending() {
				t.Error("Pending() = true with the level unchanged")
			}
			if rs, ok := c.TakeChange(); ok {
				t.Errorf("TakeChange() = %+v with the level unchanged", rs)
			}
		})
	}
}

func TestSetBackToAppliedLevel(t *testing.T) {
	c := NewController()
	c.TakeChange()

	c.Set(4)
	c.Set(1)
	if _, ok := c.TakeChange(); ok {
		t.Error("returning to the applied level should not produce a change")
	}
}
