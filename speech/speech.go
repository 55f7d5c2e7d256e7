// /home/cmb/go/src/github.com/CatherineMariaBastin/Zaathi/speech/speech.go
// -*- mode: go; coding: utf-8; -*-
// Created on 15. 03. 2025 by Catherine Maria Bastin
// (c) 2025 Catherine Maria Bastin
// Time-stamp: <2025-06-14 20:58:33 cmb>

// Package speech provides spoken output by way of the espeak-ng speech
// synthesizer. Spoken output is strictly best-effort: if no speech
// engine is installed, or speaking fails, the rest of the application
// carries on as if nothing happened.
package speech

import (
	"log"
	"os/exec"

	"github.com/CatherineMariaBastin/Zaathi/common"
	"github.com/CatherineMariaBastin/Zaathi/logdomain"
	"github.com/CatherineMariaBastin/Zaathi/objects/language"
)

var engines = []string{"espeak-ng", "espeak"}

// Speaker speaks text aloud in a given language.
type Speaker struct {
	log  *log.Logger
	path string
}

// NewSpeaker creates a Speaker. If no speech engine is found in PATH,
// the Speaker is mute, but otherwise fully functional.
func NewSpeaker() (*Speaker, error) {
	var (
		err error
		spk = new(Speaker)
	)

	if spk.log, err = common.GetLogger(logdomain.Speech); err != nil {
		return nil, err
	}

	for _, engine := range engines {
		var path string

		if path, err = exec.LookPath(engine); err == nil {
			spk.path = path
			spk.log.Printf("[INFO] Using speech engine %s\n",
				path)
			return spk, nil
		}
	}

	spk.log.Println("[WARN] No speech engine was found, spoken output is disabled")
	return spk, nil
} // func NewSpeaker() (*Speaker, error)

// IsMute returns true if no speech engine is available.
func (s *Speaker) IsMute() bool {
	return s.path == ""
} // func (s *Speaker) IsMute() bool

// Speak speaks the given text in the given language. It returns
// immediately; the speech engine runs in the background, and failures
// are logged but otherwise ignored.
func (s *Speaker) Speak(lang language.Language, text string) {
	if s.path == "" {
		return
	}

	var cmd = exec.Command(s.path, "-v", lang.String(), text) // nolint: gosec

	if err := cmd.Start(); err != nil {
		s.log.Printf("[DEBUG] Cannot start speech engine %s: %s\n",
			s.path,
			err.Error())
		return
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			s.log.Printf("[DEBUG] Speech engine failed on %q: %s\n",
				text,
				err.Error())
		}
	}()
} // func (s *Speaker) Speak(lang language.Language, text string)
