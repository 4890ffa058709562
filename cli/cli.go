package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"adouble-savior/adouble/adentry"
	"adouble-savior/ui"
	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

type (
	Args struct {
		Inspect     *InspectCmd     `arg:"subcommand:inspect" help:"print a header as JSON"`
		Extract     *ExtractCmd     `arg:"subcommand:extract" help:"write one entry to a file"`
		Scan        *ScanCmd        `arg:"subcommand:scan" help:"validate every sidecar under a directory"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse the entries of a header"`
		LogLevel    string          `arg:"--log-level,env:ADOUBLE_LOG_LEVEL" default:"info" help:"debug, info, warn or error"`
		HeaderSize  int             `arg:"--header-size,env:ADOUBLE_HEADER_SIZE" default:"65536" help:"bytes read from the start of a sidecar as its header"`
	}
	InspectCmd struct {
		From  string `arg:"positional,required" help:"path to sidecar file" placeholder:"._file"`
		Size  uint64 `help:"total file size to validate against, instead of the size on disk"`
		Debug bool   `help:"include validation bounds"`
	}
	ExtractCmd struct {
		From  string `arg:"required" help:"path to sidecar file" placeholder:"._file"`
		Entry string `arg:"required" help:"entry name or id" placeholder:"finder_info"`
		To    string `arg:"required" help:"path to destination file" placeholder:"out.bin"`
		Force bool   `help:"overwrite the destination file"`
	}
	ScanCmd struct {
		Dir  string `arg:"positional,required" help:"directory to walk"`
		Jobs int    `default:"4" help:"number of sidecars parsed at once"`
	}
	InteractiveCmd struct {
		From string `arg:"positional,required" help:"path to sidecar file" placeholder:"._file"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Inspect AppleDouble sidecar files (._name) left on file shares.\n",
			"Headers are validated before anything is read from them;",
			"a header with a single bad entry is rejected as a whole.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func NewLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		err := errors.Wrapf(err, `NewLogger error: invalid level "%s"`, level)
		return nil, err
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler), nil
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func StartInspecting(cmd InspectCmd, opts LoadOptions, logger *slog.Logger) error {
	if cmd.Size > 0 {
		opts.FileSize = cmd.Size
	}
	sidecar, err := LoadSidecar(cmd.From, opts)
	if err != nil {
		return err
	}
	defer sidecar.Close()
	logger.Debug("header loaded", "path", cmd.From, "entries", len(sidecar.Struct.IDs()))

	decodedBytes, err := sidecar.Report(cmd.Debug)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(decodedBytes))
	return err
}

func StartExtracting(cmd ExtractCmd, opts LoadOptions, logger *slog.Logger) error {
	id, err := adentry.ParseID(cmd.Entry)
	if err != nil {
		return err
	}
	if CheckExistence(cmd.To) && !cmd.Force {
		return fmt.Errorf(`destination "%s" exists; pass --force to overwrite it`, cmd.To)
	}

	sidecar, err := LoadSidecar(cmd.From, opts)
	if err != nil {
		return err
	}
	defer sidecar.Close()

	n, err := sidecar.Extract(id, cmd.To)
	if err != nil {
		return err
	}
	logger.Info("entry extracted", "entry", id.String(), "bytes", n, "to", cmd.To)
	return nil
}

func StartInteractive(cmd InteractiveCmd, opts LoadOptions) error {
	sidecar, err := LoadSidecar(cmd.From, opts)
	if err != nil {
		return err
	}
	defer sidecar.Close()

	return ui.Start(cmd.From, sidecar.Struct)
}

// Start parses the command line, runs the chosen command and returns the exit code.
func Start() int {
	args := Args{}
	parser := arg.MustParse(&args)
	if parser.Subcommand() == nil {
		parser.WriteHelp(os.Stderr)
		return 2
	}

	logger, err := NewLogger(args.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	opts := LoadOptions{HeaderSize: args.HeaderSize}

	switch {
	case args.Inspect != nil:
		err = StartInspecting(*args.Inspect, opts, logger)
	case args.Extract != nil:
		err = StartExtracting(*args.Extract, opts, logger)
	case args.Scan != nil:
		var report *ScanReport
		report, err = StartScanning(*args.Scan, opts, logger)
		if err == nil {
			report.Print(os.Stdout)
			if report.NumRejected() > 0 {
				return 1
			}
		}
	case args.Interactive != nil:
		err = StartInteractive(*args.Interactive, opts)
	}
	if err != nil {
		logger.Error("command failed", "error", err)
		return 1
	}
	return 0
}
