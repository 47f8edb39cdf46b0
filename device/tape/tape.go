/*
NAME
  tape.go

DESCRIPTION
  tape.go provides Reader and Writer, which wrap the sox family of command
  line tools (rec, play) to give the rest of cstore a plain io.Reader/
  io.Writer over raw 8-bit signed PCM audio, whether that audio comes from a
  live cassette deck or a file on disk.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package tape provides audio I/O for cstore: reading raw PCM from a live
// recording or a WAV/raw file, and writing synthesized PCM out to a speaker
// or a file, via the sox command line tools.
package tape

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os/exec"
	"strconv"

	"github.com/ausocean/cstore/codec/kcs"
	"github.com/ausocean/utils/logging"
)

const pkg = "tape: "

// Config holds the audio device parameters Reader and Writer need to drive
// sox. Rate describes the raw PCM stream cstore operates on internally;
// Gain and Sinc tune capture quality for a marginal recording.
type Config struct {
	// Device is the sox/ALSA device name to record from or play to, e.g.
	// "default" or "hw:1,0". Empty selects sox's default device.
	Device string

	// File, if set, names an existing audio file to read from (Reader) or
	// write to (Writer) via sox instead of talking to a live device via
	// rec/play.
	File string

	// Rate is the PCM sample rate, in Hz. This should normally be left at
	// kcs.SampleRate; cstore does not resample.
	Rate int

	// Gain is an input gain adjustment in dB applied by sox, useful for
	// quiet cassette decks. Zero leaves gain unchanged.
	Gain float64

	// Sinc, if non-empty, applies a sox sinc bandpass filter with this
	// spec (e.g. "100-" to reject sub-audio rumble from a worn tape
	// transport) before the signal reaches the demodulator.
	Sinc string

	Logger logging.Logger
}

// Reader streams raw PCM bytes from a live recording device via sox's rec
// command.
type Reader struct {
	cfg  Config
	cmd  *exec.Cmd
	out  io.ReadCloser
	done chan struct{}
}

// NewReader returns a Reader configured to record from cfg.Device.
func NewReader(cfg Config) *Reader {
	if cfg.Rate == 0 {
		cfg.Rate = kcs.SampleRate
	}
	return &Reader{cfg: cfg, done: make(chan struct{})}
}

// Start launches the recording or decoding process and prepares the Reader
// for reads. If cfg.File is set, it decodes that file with sox; otherwise
// it records live from cfg.Device with rec.
func (r *Reader) Start() error {
	name, args := r.commandArgs()
	r.cfg.Logger.Info(pkg+"starting audio source", "cmd", name, "args", args)
	r.cmd = exec.Command(name, args...)

	var err error
	r.out, err = r.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("%scould not pipe %s output: %w", pkg, name, err)
	}

	stderr, err := r.cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("%scould not pipe %s stderr: %w", pkg, name, err)
	}

	go func() {
		for {
			select {
			case <-r.done:
				return
			default:
				buf, err := ioutil.ReadAll(stderr)
				if err != nil {
					r.cfg.Logger.Error(pkg+"could not read rec stderr", "error", err)
					return
				}
				if len(buf) != 0 {
					r.cfg.Logger.Debug(pkg+"rec stderr", "output", string(buf))
					return
				}
			}
		}
	}()

	if err := r.cmd.Start(); err != nil {
		return fmt.Errorf("%scould not start %s command: %w", pkg, name, err)
	}
	return nil
}

// Read implements io.Reader. Calling Read before Start returns an error.
func (r *Reader) Read(p []byte) (int, error) {
	if r.out == nil {
		return 0, errors.New(pkg + "cannot read, rec has not started")
	}
	return r.out.Read(p)
}

// ReadByte implements io.ByteReader, so a Reader can feed kcs.NewSignStream
// directly.
func (r *Reader) ReadByte() (byte, error) {
	var b [1]byte
	_, err := io.ReadFull(r, b[:])
	return b[0], err
}

// Stop terminates the rec process, closes its output pipe, and reaps it.
func (r *Reader) Stop() error {
	if r.cmd == nil || r.cmd.Process == nil {
		return nil
	}
	close(r.done)
	if err := r.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("%scould not kill rec process: %w", pkg, err)
	}
	err := r.out.Close()
	r.cmd.Wait() // The exit status only reports the kill above.
	return err
}

// commandArgs returns the program and arguments to decode audio into raw
// PCM on stdout: sox from cfg.File if set, otherwise rec from cfg.Device.
func (r *Reader) commandArgs() (string, []string) {
	rawArgs := []string{
		"-t", "raw",
		"-e", "signed-integer",
		"-b", "8",
		"-c", "1",
		"-r", strconv.Itoa(r.cfg.Rate),
	}

	if r.cfg.File != "" {
		args := append([]string{"-q", r.cfg.File}, rawArgs...)
		args = append(args, "-")
		args = append(args, r.filterArgs()...)
		return "sox", args
	}

	args := []string{"-q"}
	args = append(args, rawArgs...)
	if r.cfg.Device != "" {
		args = append(args, "-d", r.cfg.Device)
	}
	args = append(args, "-")
	args = append(args, r.filterArgs()...)
	return "rec", args
}

// filterArgs returns the sox effect arguments (gain, sinc) shared by both
// the file and live-device command forms.
func (r *Reader) filterArgs() []string {
	var args []string
	if r.cfg.Gain != 0 {
		args = append(args, "gain", strconv.FormatFloat(r.cfg.Gain, 'f', -1, 64))
	}
	if r.cfg.Sinc != "" {
		args = append(args, "sinc", r.cfg.Sinc)
	}
	return args
}

// Writer streams raw PCM bytes to a live playback device via sox's play
// command.
type Writer struct {
	cfg Config
	cmd *exec.Cmd
	in  io.WriteCloser
}

// NewWriter returns a Writer configured to play to cfg.Device.
func NewWriter(cfg Config) *Writer {
	if cfg.Rate == 0 {
		cfg.Rate = kcs.SampleRate
	}
	return &Writer{cfg: cfg}
}

// Start launches the playback or encoding process and prepares the Writer
// for writes. If cfg.File is set, it encodes to that file with sox;
// otherwise it plays live to cfg.Device with play.
func (w *Writer) Start() error {
	name, args := w.commandArgs()
	w.cfg.Logger.Info(pkg+"starting audio sink", "cmd", name, "args", args)
	w.cmd = exec.Command(name, args...)

	var err error
	w.in, err = w.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("%scould not pipe %s input: %w", pkg, name, err)
	}

	if err := w.cmd.Start(); err != nil {
		return fmt.Errorf("%scould not start %s command: %w", pkg, name, err)
	}
	return nil
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if w.in == nil {
		return 0, errors.New(pkg + "cannot write, play has not started")
	}
	return w.in.Write(p)
}

// Stop closes the playback pipe and waits for play to finish flushing
// audio out to the device.
func (w *Writer) Stop() error {
	if w.in == nil {
		return nil
	}
	if err := w.in.Close(); err != nil {
		return fmt.Errorf("%scould not close play input: %w", pkg, err)
	}
	if w.cmd != nil {
		return w.cmd.Wait()
	}
	return nil
}

// commandArgs returns the program and arguments to encode raw PCM read from
// stdin: sox to cfg.File if set, otherwise play live to cfg.Device.
func (w *Writer) commandArgs() (string, []string) {
	rawArgs := []string{
		"-t", "raw",
		"-e", "signed-integer",
		"-b", "8",
		"-c", "1",
		"-r", strconv.Itoa(w.cfg.Rate),
	}

	if w.cfg.File != "" {
		args := append([]string{"-q"}, rawArgs...)
		args = append(args, "-", w.cfg.File)
		return "sox", args
	}

	args := append([]string{"-q"}, rawArgs...)
	args = append(args, "-")
	if w.cfg.Device != "" {
		args = append(args, "-d", w.cfg.Device)
	}
	return "play", args
}
