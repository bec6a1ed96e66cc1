package canvasmarkers

import (
	"testing"

	"github.com/paulmach/orb"
)

func descriptors(pts ...Point) []MarkerDescriptor {
	out := make([]MarkerDescriptor, len(pts))
	for i, p := range pts {
		out[i] = MarkerDescriptor{Position: orb.Point{p.X, p.Y}, Icon: testIcon()}
	}
	return out
}

func newTestSet(opts MarkerSetOptions) (*MarkerSet, *fakeMap, *manualLoader) {
	l, m, loader := newTestLayer(LayerOptions{})
	s := NewMarkerSet(l, opts)
	s.Attach(m)
	return s, m, loader
}

func TestMarkerSetFirstSync(t *testing.T) {
	s, _, loader := newTestSet(MarkerSetOptions{})

	if !s.Sync(descriptors(Pt(100, 100), Pt(200, 200))) {
		t.Fatal("first non-empty Sync should repaint")
	}
	if s.Layer().Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Layer().Len())
	}
	if len(loader.reqs) != 2 {
		t.Errorf("load requests = %d, want 2", len(loader.reqs))
	}
}

func TestMarkerSetEmptyListsAreEqual(t *testing.T) {
	s, _, _ := newTestSet(MarkerSetOptions{})
	if s.Sync(nil) {
		t.Error("Sync(nil) on a new set should not repaint")
	}
	if s.Sync([]MarkerDescriptor{}) {
		t.Error("empty after nil should not repaint")
	}
}

func TestMarkerSetComparesDataKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		mutate  func(d []MarkerDescriptor)
		changed bool
	}{
		{"same positions", "", func(d []MarkerDescriptor) {}, false},
		{"moved marker", "", func(d []MarkerDescriptor) { d[1].Position = orb.Point{1, 2} }, true},
		{"popup change ignored by default", "", func(d []MarkerDescriptor) { d[0].Popup = "new" }, false},
		{"popup change with popup key", "popup", func(d []MarkerDescriptor) { d[0].Popup = "new" }, true},
		{"position change ignored with popup key", "popup", func(d []MarkerDescriptor) { d[0].Position = orb.Point{9, 9} }, false},
		{"data key", "kind", func(d []MarkerDescriptor) { d[0].Data = map[string]any{"kind": "b"} }, true},
		{"data key other field", "kind", func(d []MarkerDescriptor) { d[0].Data = map[string]any{"kind": "a", "x": 1} }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestSet(MarkerSetOptions{DataKey: tt.key})
			first := descriptors(Pt(100, 100), Pt(200, 200))
			first[0].Data = map[string]any{"kind": "a"}
			s.Sync(first)

			next := descriptors(Pt(100, 100), Pt(200, 200))
			next[0].Data = map[string]any{"kind": "a"}
			tt.mutate(next)

			if got := s.Sync(next); got != tt.changed {
				t.Errorf("Sync changed = %v, want %v", got, tt.changed)
			}
		})
	}
}

func TestMarkerSetLengthChange(t *testing.T) {
	s, _, _ := newTestSet(MarkerSetOptions{})
	s.Sync(descriptors(Pt(100, 100)))
	if !s.Sync(descriptors(Pt(100, 100), Pt(200, 200))) {
		t.Error("adding a descriptor should repaint")
	}
	if !s.Sync(nil) {
		t.Error("clearing the list should repaint")
	}
	if s.Layer().Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Layer().Len())
	}
}

func TestMarkerSetUnchangedKeepsMarkers(t *testing.T) {
	s, _, _ := newTestSet(MarkerSetOptions{})
	s.Sync(descriptors(Pt(100, 100)))
	before := s.Layer().Markers()[0]

	s.Sync(descriptors(Pt(100, 100)))

	if s.Layer().Markers()[0] != before {
		t.Error("unchanged Sync should keep the existing markers")
	}
}

func TestMarkerSetBuildsMarkers(t *testing.T) {
	s, m, loader := newTestSet(MarkerSetOptions{})
	descs := []MarkerDescriptor{
		{ID: "a", Position: orb.Point{100, 100}, Icon: testIcon(), Popup: "Alpha", Data: map[string]any{"n": 1}},
		{ID: "b", Position: orb.Point{200, 200}, Icon: testIcon()},
	}
	s.Sync(descs)
	loader.completeAll()

	a := s.MarkerByID("a")
	if a == nil {
		t.Fatal("MarkerByID(a) = nil")
	}
	if a.LatLng() != (orb.Point{100, 100}) || a.Data["n"] != 1 {
		t.Errorf("marker a = %v %v", a.LatLng(), a.Data)
	}
	if a.Popup() == nil || a.Popup().Content != "Alpha" {
		t.Error("marker a should have popup Alpha")
	}
	if b := s.MarkerByID("b"); b == nil || b.Popup() != nil {
		t.Error("marker b should exist without a popup")
	}
	if s.MarkerByID("c") != nil {
		t.Error("unknown id should return nil")
	}
	if n := len(s.Layer().Surface().Commands()); n != 2 {
		t.Errorf("commands = %d, want 2", n)
	}

	m.click(100, 100)
	if m.popup == nil || m.popup.Content != "Alpha" {
		t.Error("clicking marker a should open its popup")
	}
}

func TestMarkerSetOnMarkerClick(t *testing.T) {
	var got *Marker
	s, m, loader := newTestSet(MarkerSetOptions{
		OnMarkerClick: func(_ Event, mk *Marker) { got = mk },
	})
	s.Sync([]MarkerDescriptor{{ID: "x", Position: orb.Point{100, 100}, Icon: testIcon()}})
	loader.completeAll()

	m.click(100, 100)
	if got == nil || got != s.MarkerByID("x") {
		t.Errorf("OnMarkerClick got %v, want marker x", got)
	}
}

func TestMarkerSetDetach(t *testing.T) {
	s, m, _ := newTestSet(MarkerSetOptions{})
	s.Detach(m)
	if s.Layer().Attached() {
		t.Error("layer should be detached")
	}
	// Sync while detached updates the registry without painting.
	if !s.Sync(descriptors(Pt(100, 100))) {
		t.Error("Sync should report the change")
	}
	if s.Layer().Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Layer().Len())
	}
}

func TestMarkerSetReusedSlice(t *testing.T) {
	s, _, _ := newTestSet(MarkerSetOptions{})
	descs := []MarkerDescriptor{{ID: "a", Position: orb.Point{10, 10}, Icon: testIcon()}}
	s.Sync(descs)

	descs[0].Position = orb.Point{50, 50}
	if !s.Sync(descs) {
		t.Fatal("editing a reused slice should repaint")
	}
	if got := s.MarkerByID("a").LatLng(); got != (orb.Point{50, 50}) {
		t.Errorf("LatLng = %v, want [50 50]", got)
	}
	if s.Sync(descs) {
		t.Error("syncing the same contents again should not repaint")
	}
}

func TestMarkerSetReusedDataMap(t *testing.T) {
	s, _, _ := newTestSet(MarkerSetOptions{DataKey: "kind"})
	descs := descriptors(Pt(100, 100))
	descs[0].Data = map[string]any{"kind": "a"}
	s.Sync(descs)

	descs[0].Data["kind"] = "b"
	if !s.Sync(descs) {
		t.Error("editing a Data map in place should repaint")
	}
}
