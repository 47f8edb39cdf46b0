/*
NAME
  main.go

DESCRIPTION
  cstore is a command line tool for saving and loading programmable
  calculator programs and memory data over a Kansas City Standard cassette
  tape audio link.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main is the cstore command line tool.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/ausocean/cstore/cstore"
	"github.com/ausocean/cstore/device/tape"
	"github.com/ausocean/cstore/model"
	"github.com/ausocean/cstore/model/fx502p"
	"github.com/ausocean/cstore/model/pc1211"
	"github.com/ausocean/cstore/model/pc1211res"
	"github.com/ausocean/utils/logging"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const pkg = "cstore: "

// Logging configuration.
const (
	logPath      = "cstore.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
)

func usageError(msg string) {
	fmt.Fprintln(os.Stderr, "ERROR: "+msg)
	fmt.Fprintln(os.Stderr, "usage: cstore [flags] {fx502p|pc1211|pc1211res} {save|load}")
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	var (
		input  string
		output string
		binary bool
		debug  bool
		gain   float64
		sinc   string
	)
	flag.StringVar(&input, "i", "", "read from PATH (save: audio; load: text/binary); default is the live device")
	flag.StringVar(&input, "input", "", "read from PATH (save: audio; load: text/binary); default is the live device")
	flag.StringVar(&output, "o", "", "write result to PATH; default is stdout (save) or the live device (load)")
	flag.StringVar(&output, "output", "", "write result to PATH; default is stdout (save) or the live device (load)")
	flag.BoolVar(&binary, "b", false, "treat the text side as raw bytes")
	flag.BoolVar(&binary, "binary", false, "treat the text side as raw bytes")
	flag.BoolVar(&debug, "d", false, "enable diagnostic logging")
	flag.BoolVar(&debug, "debug", false, "enable diagnostic logging")
	flag.Float64Var(&gain, "gain", 0, "dB gain applied by the audio adapter")
	flag.StringVar(&sinc, "sinc", "", "apply a sox sinc bandpass filter SPEC, e.g. \"100-\", to reject sub-audio rumble")
	flag.Parse()

	verbosity := logging.Info
	if debug {
		verbosity = logging.Debug
	}
	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(verbosity, io.MultiWriter(fileLog, os.Stderr), true)

	args := flag.Args()
	switch {
	case len(args) == 1 && args[0] == "devices":
		runDevices(log)
		return
	case len(args) >= 1 && args[0] == "scan":
		if len(args) != 3 {
			usageError("scan requires a protocol and a file path: cstore scan {fx502p|pc1211} PATH")
		}
		runScan(args[1], args[2], log)
		return
	case len(args) != 2:
		usageError(fmt.Sprintf("expected a protocol and an action, got %d arguments", len(args)))
	}

	m, err := lookupModel(args[0])
	if err != nil {
		usageError(err.Error())
	}

	audio := tape.Config{Gain: gain, Sinc: sinc}

	switch args[1] {
	case "save":
		audio.File = input
		if err := runSave(m, audio, output, binary, debug, log); err != nil {
			fmt.Fprintln(os.Stderr, "ERROR: "+err.Error())
			os.Exit(1)
		}
	case "load":
		audio.File = output
		if err := runLoad(m, audio, input, binary, log); err != nil {
			fmt.Fprintln(os.Stderr, "ERROR: "+err.Error())
			os.Exit(1)
		}
	default:
		usageError(fmt.Sprintf("unknown action %q, want save or load", args[1]))
	}
}

// lookupModel returns the model.Model implementation for name.
func lookupModel(name string) (model.Model, error) {
	switch name {
	case "fx502p":
		return fx502p.New(), nil
	case "pc1211":
		return pc1211.New(), nil
	case "pc1211res":
		return pc1211res.New(), nil
	default:
		return nil, fmt.Errorf("unknown protocol %q, want fx502p, pc1211, or pc1211res", name)
	}
}

// runSave demodulates a recording into payload bytes, then writes either
// the raw bytes (binary) or the model's decoded text to output (or stdout
// if output is empty).
func runSave(m model.Model, audio tape.Config, output string, binary, debug bool, log logging.Logger) error {
	sess := cstore.NewSession(m, audio, log)
	sess.Debug = debug
	data, err := sess.Save()
	if err != nil {
		return err
	}

	var result []byte
	if binary {
		result = data
	} else {
		text, err := m.Decode(data)
		if err != nil {
			return err
		}
		result = []byte(text)
	}

	if output == "" {
		_, err := os.Stdout.Write(result)
		return err
	}
	return ioutil.WriteFile(output, result, 0644)
}

// runLoad reads either raw bytes (binary) or text from input (or stdin if
// input is empty), converts text to payload bytes via the model if needed,
// then modulates them out as a recording.
func runLoad(m model.Model, audio tape.Config, input string, binary bool, log logging.Logger) error {
	var raw []byte
	var err error
	if input == "" {
		raw, err = ioutil.ReadAll(os.Stdin)
	} else {
		raw, err = ioutil.ReadFile(input)
	}
	if err != nil {
		return fmt.Errorf("%scould not read input: %w", pkg, err)
	}

	var data []byte
	if binary {
		data = raw
	} else {
		data, err = m.Encode(string(raw))
		if err != nil {
			return err
		}
	}

	sess := cstore.NewSession(m, audio, log)
	return sess.Load(data)
}

// runDevices lists the system's ALSA recording devices.
func runDevices(log logging.Logger) {
	devs, err := tape.ListDevices()
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR: "+err.Error())
		os.Exit(1)
	}
	for _, d := range devs {
		fmt.Printf("%s\t%s\n", d.Card, d.Title)
	}
}

// runScan locates the first valid FX-502P header inside a raw payload file,
// a diagnostic for recovering from a dirty capture whose framing has
// drifted. PC-1211 recordings self-synchronize via their ident byte and
// checksum, so scanning only applies to FX-502P.
func runScan(protocol, path string, log logging.Logger) {
	if protocol != "fx502p" {
		usageError("scan only supports fx502p; pc1211 recordings self-synchronize on their ident byte")
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR: "+err.Error())
		os.Exit(1)
	}
	found, err := fx502p.FindHeader(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR: "+err.Error())
		os.Exit(1)
	}
	fmt.Printf("header found at offset %d\n", len(data)-len(found))
}
