package main

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aschmelyun/tcaption/internal/config"
	"github.com/aschmelyun/tcaption/internal/derived"
	"github.com/aschmelyun/tcaption/internal/format"
	"github.com/aschmelyun/tcaption/internal/playback"
	"github.com/aschmelyun/tcaption/internal/project"
	"github.com/aschmelyun/tcaption/internal/projectfile"
	"github.com/aschmelyun/tcaption/internal/transcribe"
	"github.com/aschmelyun/tcaption/internal/uistate"
)

func newEditor(cfg *config.Config, log *logrus.Logger, file *projectfile.File, client *transcribe.Client, inputFile string) *editor {
	ctx, cancel := context.WithCancel(context.Background())
	ed := &editor{
		cfg:       cfg,
		log:       log,
		file:      file,
		projects:  project.NewStore(nil),
		player:    playback.NewStore(),
		ui:        uistate.NewStore(),
		client:    client,
		ctx:       ctx,
		cancel:    cancel,
		inputFile: inputFile,
		preset:    -1,
	}
	ed.active = derived.NewTracker(ed.projects, ed.player)

	ed.unsubs = append(ed.unsubs, ed.active.Subscribe(func(a derived.Active) {
		if ed.ui.Get().ActiveWordIndex != a.WordIndex {
			ed.ui.SetActiveWordIndex(a.WordIndex)
		}
	}))

	if interval := cfg.AutosaveInterval(); interval > 0 && file != nil {
		ed.autosave = newAutosaver(interval, func(p *project.Project) {
			if err := file.Save(p); err != nil {
				log.WithError(err).Warn("autosave failed")
				return
			}
			log.WithField("path", file.Path()).Debug("autosaved project")
		})

		initial := true
		ed.unsubs = append(ed.unsubs, ed.projects.Subscribe(func(p *project.Project) {
			if initial {
				initial = false
				return
			}
			if p != nil {
				ed.autosave.schedule(p)
			}
		}))
	}

	return ed
}

// load installs p as the project being edited.
func (ed *editor) load(p *project.Project) {
	ed.projects.Set(p)
	ed.player.SetDuration(p.VideoDuration)
	ed.player.SetCurrentTime(0)
	for i, name := range project.PresetNames {
		if preset, _ := project.PresetStyle(name); preset == p.Style {
			ed.preset = i
		}
	}
	ed.log.WithFields(logrus.Fields{
		"project_id": p.ID,
		"captions":   len(p.Captions),
	}).Info("project loaded")
}

// newProjectFromTranscript builds a project for the input video.
func (ed *editor) newProjectFromTranscript(resp *transcribe.Response) *project.Project {
	name := strings.TrimSuffix(filepath.Base(ed.inputFile), filepath.Ext(ed.inputFile))
	p := project.NewProject(format.GenerateID(), name, ed.inputFile, time.Now())
	p.Captions = transcribe.BuildCaptions(resp)
	p.VideoDuration = transcribe.Duration(resp, p.Captions)
	p.Language = resp.Language
	if ed.cfg.Export.Resolution != "" {
		p.Resolution = ed.cfg.Export.Resolution
	}
	if ed.cfg.DefaultPreset != "" {
		if style, ok := project.PresetStyle(ed.cfg.DefaultPreset); ok {
			p.Style = style
		}
	}
	return p
}

func (ed *editor) save() error {
	p := ed.projects.Get()
	if p == nil || ed.file == nil {
		return nil
	}
	if err := ed.file.Save(p); err != nil {
		return err
	}
	ed.log.WithField("path", ed.file.Path()).Info("project saved")
	return nil
}

func (ed *editor) seek(delta float64) {
	t := max(0, ed.player.Get().CurrentTime+delta)
	if d := ed.player.Get().Duration; d > 0 {
		t = min(t, d)
	}
	ed.player.SetCurrentTime(t)
}

func (ed *editor) cyclePreset() string {
	ed.preset = (ed.preset + 1) % len(project.PresetNames)
	name := project.PresetNames[ed.preset]
	ed.projects.ApplyPreset(name)
	ed.log.WithField("preset", name).Debug("preset applied")
	return name
}

func (ed *editor) toggleKeyword() bool {
	a := ed.active.Get()
	if a.Caption == nil || a.Word == nil {
		return false
	}
	ed.projects.UpdateWordIsKeyword(a.Caption.ID, a.WordIndex, !a.Word.IsKeyword)
	return true
}

func (ed *editor) setEmoji(captionID string, wordIndex int, emoji string) {
	ed.projects.UpdateWordEmoji(captionID, wordIndex, strings.TrimSpace(emoji))
	ed.log.WithFields(logrus.Fields{"caption_id": captionID, "word": wordIndex}).Debug("emoji updated")
}

func (ed *editor) addBRoll() string {
	a := ed.active.Get()
	clip := project.BRollClip{
		ID:       format.GenerateID(),
		Start:    ed.player.Get().CurrentTime,
		Duration: defaultBRollSpan,
	}
	if a.Word != nil {
		clip.Keyword = strings.Trim(a.Word.Text, ".,!?;:\"'")
	}
	ed.projects.AddBRoll(clip)
	ed.log.WithFields(logrus.Fields{"clip_id": clip.ID, "start": clip.Start}).Debug("b-roll added")
	return clip.ID
}

func (ed *editor) removeBRoll() bool {
	clip, ok := targetBRoll(ed.projects.Get(), ed.player.Get().CurrentTime)
	if !ok {
		return false
	}
	ed.projects.RemoveBRoll(clip.ID)
	return true
}

func (ed *editor) nudgeBRoll(delta float64) {
	if clip, ok := targetBRoll(ed.projects.Get(), ed.player.Get().CurrentTime); ok {
		ed.projects.UpdateBRollClipStart(clip.ID, clip.Start+delta)
	}
}

func (ed *editor) resizeBRoll(delta float64) {
	if clip, ok := targetBRoll(ed.projects.Get(), ed.player.Get().CurrentTime); ok {
		ed.projects.UpdateBRollClipDuration(clip.ID, clip.Duration+delta)
	}
}

func (ed *editor) addZoom() {
	ed.projects.AddZoomEffect(project.Effect{
		ID:       format.GenerateID(),
		Start:    ed.player.Get().CurrentTime,
		Duration: 0.5,
		Params:   map[string]any{"scale": 1.2},
	})
}

func (ed *editor) addSound() {
	ed.projects.AddSoundEffect(project.Effect{
		ID:     format.GenerateID(),
		Start:  ed.player.Get().CurrentTime,
		Params: map[string]any{"name": "whoosh", "volume": 0.8},
	})
}

func (ed *editor) removeLastZoom() {
	if p := ed.projects.Get(); p != nil && len(p.ZoomEffects) > 0 {
		ed.projects.RemoveZoomEffect(p.ZoomEffects[len(p.ZoomEffects)-1].ID)
	}
}

func (ed *editor) scaleLastZoom(delta float64) {
	p := ed.projects.Get()
	if p == nil || len(p.ZoomEffects) == 0 {
		return
	}
	last := p.ZoomEffects[len(p.ZoomEffects)-1]
	scale, _ := last.Params["scale"].(float64)
	if scale == 0 {
		scale = 1
	}
	ed.projects.UpdateZoomEffect(last.ID, project.EffectPatch{
		Params: map[string]any{"scale": max(1, scale+delta)},
	})
}

func (ed *editor) removeLastSound() {
	if p := ed.projects.Get(); p != nil && len(p.SoundEffects) > 0 {
		ed.projects.RemoveSoundEffect(p.SoundEffects[len(p.SoundEffects)-1].ID)
	}
}

func (ed *editor) toggleLastSoundMute() {
	p := ed.projects.Get()
	if p == nil || len(p.SoundEffects) == 0 {
		return
	}
	last := p.SoundEffects[len(p.SoundEffects)-1]
	volume := 0.8
	if v, _ := last.Params["volume"].(float64); v > 0 {
		volume = 0
	}
	ed.projects.UpdateSoundEffect(last.ID, project.EffectPatch{
		Params: map[string]any{"volume": volume},
	})
}

func (ed *editor) toggleHighlight() {
	if p := ed.projects.Get(); p != nil {
		ed.projects.UpdateStyle(project.StylePatch{HighlightWords: project.Ptr(!p.Style.HighlightWords)})
	}
}

func (ed *editor) toggleWordByWord() {
	if p := ed.projects.Get(); p != nil {
		ed.projects.UpdateStyle(project.StylePatch{WordByWord: project.Ptr(!p.Style.WordByWord)})
	}
}

func (ed *editor) setCaptionText(captionID, text string) {
	ed.projects.UpdateCaption(captionID, project.CaptionPatch{Text: project.Ptr(strings.TrimSpace(text))})
	ed.log.WithField("caption_id", captionID).Debug("caption text updated")
}

func (ed *editor) close() {
	ed.cancel()
	for _, unsub := range ed.unsubs {
		unsub()
	}
	ed.active.Close()
	if ed.autosave != nil {
		ed.autosave.flush()
	}
	if ed.file != nil {
		if err := ed.file.Close(); err != nil {
			ed.log.WithError(err).Warn("failed to release project lock")
		}
	}
}

// autosaver saves at most once per interval. A snapshot that arrives inside
// the window is held and written when the window closes, so the last edit
// always reaches disk.
type autosaver struct {
	mu       sync.Mutex
	interval time.Duration
	save     func(*project.Project)
	last     time.Time
	pending  *project.Project
	timer    *time.Timer
}

func newAutosaver(interval time.Duration, save func(*project.Project)) *autosaver {
	return &autosaver{interval: interval, save: save}
}

func (a *autosaver) schedule(p *project.Project) {
	a.mu.Lock()
	if a.timer != nil {
		a.pending = p
		a.mu.Unlock()
		return
	}
	if wait := a.interval - time.Since(a.last); wait > 0 {
		a.pending = p
		a.timer = time.AfterFunc(wait, a.flush)
		a.mu.Unlock()
		return
	}
	a.last = time.Now()
	a.mu.Unlock()

	a.save(p)
}

// flush writes any held snapshot immediately.
func (a *autosaver) flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	p := a.pending
	a.pending = nil
	if p != nil {
		a.last = time.Now()
	}
	a.mu.Unlock()

	if p != nil {
		a.save(p)
	}
}
