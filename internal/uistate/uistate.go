// Package uistate holds transient editor flags that are not part of the
// project itself.
package uistate

import "github.com/aschmelyun/tcaption/internal/store"

// Tabs shown in the editor sidebar.
const (
	TabCaptions = "captions"
	TabStyle    = "style"
	TabEffects  = "effects"
)

type State struct {
	ActiveTab         string
	IsExporting       bool
	ExportProgress    float64
	SelectedCaptionID string
	ShowPreview       bool
	SidebarOpen       bool
	ActiveWordIndex   int
}

func DefaultState() State {
	return State{
		ActiveTab:       TabCaptions,
		ShowPreview:     true,
		SidebarOpen:     true,
		ActiveWordIndex: -1,
	}
}

type Store struct {
	*store.Store[State]
}

func NewStore() *Store {
	return &Store{Store: store.New(DefaultState())}
}

// Patch applies fn to a copy of the current state.
func (s *Store) Patch(fn func(*State)) {
	s.Update(func(v State) State {
		fn(&v)
		return v
	})
}

func (s *Store) SetExport(exporting bool, progress float64) {
	s.Patch(func(v *State) {
		v.IsExporting = exporting
		v.ExportProgress = progress
	})
}

func (s *Store) SelectCaption(id string) {
	s.Patch(func(v *State) { v.SelectedCaptionID = id })
}

func (s *Store) SetActiveTab(tab string) {
	s.Patch(func(v *State) { v.ActiveTab = tab })
}

func (s *Store) SetActiveWordIndex(i int) {
	s.Patch(func(v *State) { v.ActiveWordIndex = i })
}

func (s *Store) ToggleSidebar() {
	s.Patch(func(v *State) { v.SidebarOpen = !v.SidebarOpen })
}

func (s *Store) TogglePreview() {
	s.Patch(func(v *State) { v.ShowPreview = !v.ShowPreview })
}
