/*
NAME
  debug.go

DESCRIPTION
  debug.go provides diagnostic helpers for inspecting a recording or a host's
  audio devices, used by cstore's debug flag and its devices subcommand:
  dumping raw PCM to a playable WAV file and a run-length histogram, and
  listing ALSA recording devices.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package tape

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	yalsa "github.com/yobert/alsa"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const wavFormat = 1

// DumpWAV writes raw signed 8-bit mono PCM samples out as a standard WAV
// file at ws, so a recording or synthesized waveform can be inspected in an
// ordinary audio editor.
func DumpWAV(ws io.WriteSeeker, pcm []byte, rate int) error {
	const bps = 8
	const channels = 1

	enc := wav.NewEncoder(ws, rate, bps, channels, wavFormat)
	defer enc.Close()

	data := make([]int, len(pcm))
	for i, b := range pcm {
		data[i] = int(int8(b))
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		SourceBitDepth: bps,
		Data:           data,
	}
	return enc.Write(buf)
}

// Device describes one recording-capable ALSA device, as reported by
// ListDevices.
type Device struct {
	Title string
	Card  string
}

// ListDevices enumerates every PCM recording device visible to ALSA.
func ListDevices() ([]Device, error) {
	cards, err := yalsa.OpenCards()
	if err != nil {
		return nil, fmt.Errorf("%scould not open sound cards: %w", pkg, err)
	}
	defer yalsa.CloseCards(cards)

	var out []Device
	for _, card := range cards {
		devices, err := card.Devices()
		if err != nil {
			continue
		}
		for _, dev := range devices {
			if dev.Type != yalsa.PCM || !dev.Record {
				continue
			}
			out = append(out, Device{Title: dev.Title, Card: card.Title})
		}
	}
	return out, nil
}

// DumpHistogram renders a histogram of half-wave run lengths (as collected
// by kcs.HalfwaveStream.RunLengths) to a PNG at path, so an operator can
// visually confirm the carrier midpoint is splitting the two clusters
// cleanly.
func DumpHistogram(path string, runLens []int, midpoint int) error {
	values := make(plotter.Values, len(runLens))
	for i, n := range runLens {
		values[i] = float64(n)
	}

	p := plot.New()
	p.Title.Text = "half-wave run lengths"
	p.X.Label.Text = "samples"
	p.Y.Label.Text = "count"

	hist, err := plotter.NewHist(values, 100)
	if err != nil {
		return fmt.Errorf("%scould not build histogram: %w", pkg, err)
	}
	p.Add(hist)
	p.Title.Text = fmt.Sprintf("half-wave run lengths (midpoint=%d)", midpoint)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
