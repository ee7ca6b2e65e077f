package main

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sirupsen/logrus"

	"github.com/aschmelyun/tcaption/internal/config"
	"github.com/aschmelyun/tcaption/internal/derived"
	"github.com/aschmelyun/tcaption/internal/playback"
	"github.com/aschmelyun/tcaption/internal/project"
	"github.com/aschmelyun/tcaption/internal/projectfile"
	"github.com/aschmelyun/tcaption/internal/transcribe"
	"github.com/aschmelyun/tcaption/internal/uistate"
)

type audioExtractedMsg struct {
	audioFile string
}

type transcriptionDoneMsg struct {
	response *transcribe.Response
}

type errorMsg struct {
	err error
}

type exportDoneMsg struct {
	outputFile string
}

// exportErrorMsg is only produced by exportCmd.
type exportErrorMsg struct {
	err error
}

type previewErrorMsg struct {
	err error
}

type savedMsg struct {
	path string
}

type tickMsg struct{}

// editor is the state shared by every copy of the model.
type editor struct {
	cfg       *config.Config
	log       *logrus.Logger
	file      *projectfile.File
	projects  *project.Store
	player    *playback.Store
	ui        *uistate.Store
	active    *derived.Tracker
	client    *transcribe.Client
	ctx       context.Context
	cancel    context.CancelFunc
	inputFile string
	preset    int
	autosave  *autosaver
	unsubs    []func()
}

type editMode int

const (
	editNone editMode = iota
	editEmoji
	editText
)

type model struct {
	ed         *editor
	spinner    spinner.Model
	loading    bool
	loadingMsg string
	list       list.Model
	listSource *project.Project
	input      textinput.Model
	editing    editMode
	editTarget string
	editWord   int
	quitting   bool
	errorMsg   string
	statuses   []string
	width      int
}

type item struct {
	caption project.Caption
	index   int
}

type itemDelegate struct {
	activeIndex func() int
}
