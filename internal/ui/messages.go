package ui

import (
	"github.com/nguyentantai21042004/caption-prose/internal/converter"
)

type convertedMsg struct {
	result converter.Result
	err    error
}

type loadedMsg struct {
	path   string
	text   string
	reload bool
	err    error
}

type copiedMsg struct {
	notice string
	err    error
}

type exportedMsg struct {
	path string
	err  error
}

type pastedMsg struct {
	text string
	err  error
}

type dismissMsg struct {
	id uint64
}

type fileChangedMsg struct {
	path string
}
