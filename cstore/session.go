/*
NAME
  session.go

DESCRIPTION
  session.go provides Session, which wires device/tape's audio adapter to
  codec/kcs's modem and a model.Model to perform the two operations cstore
  supports: Save (demodulate a recording into payload bytes) and Load
  (modulate payload bytes out to a recording). Session owns the audio child
  process for the duration of one operation and guarantees it's reaped
  before returning, mirroring the scoped-acquisition style
  device/raspivid.Device uses for its own child process.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package cstore drives a calculator's tape protocol end to end: reading a
// recording into payload bytes, or writing payload bytes out as a
// recording, via a model.Model and the codec/kcs modem underneath it.
package cstore

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ausocean/cstore/codec/kcs"
	"github.com/ausocean/cstore/device/tape"
	"github.com/ausocean/cstore/model"
	"github.com/ausocean/utils/logging"
)

const pkg = "cstore: "

// Session holds the model and audio settings a Save or Load operation
// needs. It is safe to reuse across multiple Save/Load calls; each call
// opens and closes its own audio child process.
type Session struct {
	Model  model.Model
	Audio  tape.Config
	Logger logging.Logger

	// Debug, if set, makes Save tee the captured PCM out to a WAV file and
	// a half-wave run-length histogram named after the model, so a failed
	// decode can be inspected and replayed offline.
	Debug bool
}

// NewSession returns a Session ready to Save or Load with m over the given
// audio settings.
func NewSession(m model.Model, audio tape.Config, log logging.Logger) *Session {
	audio.Logger = log
	return &Session{Model: m, Audio: audio, Logger: log}
}

// Save opens the audio source (a live device or a file, per s.Audio),
// demodulates it through s.Model's configured modem, and returns the
// recording's payload bytes, stopping the audio child once the model's
// framing declares the payload complete.
func (s *Session) Save() ([]byte, error) {
	r := tape.NewReader(s.Audio)
	if err := r.Start(); err != nil {
		return nil, fmt.Errorf("%scould not start audio source: %w", pkg, err)
	}
	defer r.Stop()

	mcfg := s.Model.Config()

	var pcm *bytes.Buffer
	var src io.ByteReader = r
	if s.Debug {
		pcm = &bytes.Buffer{}
		src = &teeByteReader{src: r, dst: pcm}
	}

	var hw *kcs.HalfwaveStream
	var mid int
	if s.Debug {
		defer func() {
			var runLens []int
			if hw != nil {
				runLens = hw.RunLengths()
			}
			s.dumpDebug(s.Model.Name(), pcm.Bytes(), kcs.SampleRate, runLens, mid)
		}()
	}

	sbc := kcs.NewSignStream(src)
	cal, err := kcs.Calibrate(sbc, mcfg.BaseFreq, kcs.DefaultLeadInDuration)
	if err != nil {
		return nil, fmt.Errorf("%scalibrate: %w", pkg, err)
	}
	s.Logger.Debug(pkg+"calibrated", "actualBaseFreq", cal.ActualBaseFreq)

	mid = kcs.Midpoint(cal.ActualBaseFreq)
	hw = kcs.NewHalfwaveStream(sbc, mid)
	hwLen0, hwLen1 := mcfg.HalfwaveCounts()
	br := kcs.NewBitFramerReader(hw, hwLen0, hwLen1)
	yr := kcs.NewByteFramerReader(br, mcfg.Pattern)

	data, err := s.Model.ReadPayload(yr)
	if err != nil {
		return nil, fmt.Errorf("%sread payload: %w", pkg, err)
	}
	return data, nil
}

// dumpDebug writes the captured PCM and a half-wave run-length histogram to
// disk, logging any failure rather than returning it: a failed diagnostic
// dump should never fail the Save it's diagnosing.
func (s *Session) dumpDebug(name string, pcm []byte, rate int, runLens []int, mid int) {
	wavPath := name + "-debug.wav"
	f, err := os.Create(wavPath)
	if err != nil {
		s.Logger.Warning(pkg+"could not create debug WAV", "path", wavPath, "error", err)
	} else {
		if err := tape.DumpWAV(f, pcm, rate); err != nil {
			s.Logger.Warning(pkg+"could not write debug WAV", "path", wavPath, "error", err)
		}
		f.Close()
	}

	histPath := name + "-debug.png"
	if err := tape.DumpHistogram(histPath, runLens, mid); err != nil {
		s.Logger.Warning(pkg+"could not write debug histogram", "path", histPath, "error", err)
		return
	}
	s.Logger.Info(pkg+"wrote debug dumps", "wav", wavPath, "histogram", histPath)
}

// teeByteReader reads bytes from src one at a time via ReadByte, copying
// each into dst, so Save can capture the exact PCM stream the demodulator
// consumed for later inspection.
type teeByteReader struct {
	src io.ByteReader
	dst *bytes.Buffer
}

func (t *teeByteReader) ReadByte() (byte, error) {
	b, err := t.src.ReadByte()
	if err == nil {
		t.dst.WriteByte(b)
	}
	return b, err
}

// Load modulates data out to the audio sink (a live device or a file, per
// s.Audio) through s.Model's configured modem, then stops the audio child,
// waiting for any buffered audio to finish playing or encoding.
func (s *Session) Load(data []byte) error {
	w := tape.NewWriter(s.Audio)
	if err := w.Start(); err != nil {
		return fmt.Errorf("%scould not start audio sink: %w", pkg, err)
	}

	mcfg := s.Model.Config()
	frames := kcs.NewFrames(mcfg)
	bw := kcs.NewBitFramerWriter(w, frames)
	yw := kcs.NewByteFramerWriter(bw, mcfg.Pattern)

	if err := s.Model.WritePayload(yw, data); err != nil {
		w.Stop()
		return fmt.Errorf("%swrite payload: %w", pkg, err)
	}

	if err := w.Stop(); err != nil {
		return fmt.Errorf("%scould not stop audio sink: %w", pkg, err)
	}
	return nil
}
