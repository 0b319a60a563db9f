// Command amigaromutil identifies, validates and transforms Amiga Kickstart
// ROM images.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/go-homedir"

	"github.com/moffa90/go-kickrom/kickstart"
	"github.com/moffa90/go-kickrom/romdb"
	"github.com/moffa90/go-kickrom/romio"
	"github.com/moffa90/go-kickrom/romutil"
)

const usage = `Usage: amigaromutil [options]
Options:
  -i FILE   Path to input ROM (except for merging)
  -o FILE   Path to output ROM (except for splitting)
  -a FILE   Path to A ROM for merging or splitting
  -b FILE   Path to B ROM for merging or splitting
  -k FILE   Path to ROM encryption/decryption key
  -db FILE  Additional signature database, searched before the built-in one
  -s        Split ROM (requires -i, -a, -b)
  -g        Merge ROM (requires -a, -b, -o)
  -p        Byte swap ROM for burning to an IC (requires -i, -o)
  -u        Unbyte swap ROM for use with emulators (requires -i, -o)
  -n        Unconditional byte swap for ROMs unknown to this program
  -v        Validate checksum (requires -i)
  -c        Correct checksum (requires -i, -o)
  -e        Encrypt ROM (requires -i, -o, -k)
  -d        Decrypt ROM (requires -i, -o, -k)
  -verbose  Log every pipeline stage
  -h        Display this information

With no operation, information about the -i ROM is printed.

Notes:
  -n implies -p and clears -u
  -s and -g, -e and -d are each mutually exclusive
`

var errHelp = errors.New("help requested")

type options struct {
	input  string
	output string
	high   string
	low    string
	key    string
	db     string

	split         bool
	merge         bool
	swap          bool
	unswap        bool
	unconditional bool
	validate      bool
	correct       bool
	encrypt       bool
	decrypt       bool
	verbose       bool
}

func main() {
	os.Exit(run(os.Args[1:], romio.OS(), os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, store *romio.Store, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, errHelp) {
		fmt.Fprint(stdout, usage)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "amigaromutil: %v\n\n%s", err, usage)
		return 1
	}

	logger := newLogger(stderr, opts.verbose)
	if err := execute(opts, store, logger, stdout); err != nil {
		logger.Error("operation failed", "error", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var o options
	var help bool

	fs := flag.NewFlagSet("amigaromutil", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}
	fs.StringVar(&o.input, "i", "", "input ROM")
	fs.StringVar(&o.output, "o", "", "output ROM")
	fs.StringVar(&o.high, "a", "", "A ROM")
	fs.StringVar(&o.low, "b", "", "B ROM")
	fs.StringVar(&o.key, "k", "", "key file")
	fs.StringVar(&o.db, "db", "", "signature database")
	fs.BoolVar(&o.split, "s", false, "split")
	fs.BoolVar(&o.merge, "g", false, "merge")
	fs.BoolVar(&o.swap, "p", false, "byte swap")
	fs.BoolVar(&o.unswap, "u", false, "unbyte swap")
	fs.BoolVar(&o.unconditional, "n", false, "unconditional byte swap")
	fs.BoolVar(&o.validate, "v", false, "validate checksum")
	fs.BoolVar(&o.correct, "c", false, "correct checksum")
	fs.BoolVar(&o.encrypt, "e", false, "encrypt")
	fs.BoolVar(&o.decrypt, "d", false, "decrypt")
	fs.BoolVar(&o.verbose, "verbose", false, "debug logging")
	fs.BoolVar(&help, "h", false, "help")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, errHelp
		}
		return nil, err
	}
	if help {
		return nil, errHelp
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if o.unconditional {
		o.swap = true
		o.unswap = false
	}
	if err := o.check(); err != nil {
		return nil, err
	}
	if err := o.expandPaths(); err != nil {
		return nil, err
	}
	return &o, nil
}

// check enforces the flag combinations each operation needs.
func (o *options) check() error {
	switch {
	case !o.hasOperation() && o.input == "":
		return errors.New("no operation given")
	case o.split && o.merge:
		return errors.New("-s and -g are mutually exclusive")
	case o.encrypt && o.decrypt:
		return errors.New("-e and -d are mutually exclusive")
	case o.split && (o.input == "" || o.high == "" || o.low == ""):
		return errors.New("split requires -i, -a and -b")
	case o.merge && (o.output == "" || o.high == "" || o.low == ""):
		return errors.New("merge requires -a, -b and -o")
	case !o.split && !o.merge && (o.swap || o.unswap || o.encrypt || o.decrypt || o.correct) &&
		(o.input == "" || o.output == ""):
		return errors.New("this operation requires -i and -o")
	case o.validate && o.input == "" && !o.merge:
		return errors.New("checksum validation requires -i")
	case (o.encrypt || o.decrypt) && o.key == "":
		return errors.New("encryption and decryption require -k")
	}
	return nil
}

func (o *options) hasOperation() bool {
	return o.split || o.merge || o.swap || o.unswap || o.encrypt || o.decrypt ||
		o.validate || o.correct
}

func (o *options) expandPaths() error {
	for _, p := range []*string{&o.input, &o.output, &o.high, &o.low, &o.key, &o.db} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expand %s: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

func (o *options) jobOptions() romutil.JobOptions {
	return romutil.JobOptions{
		Swap: kickstart.SwapOptions{
			ToChip:        o.swap,
			ToEmulator:    o.unswap,
			Unconditional: o.unconditional,
		},
		CorrectChecksum: o.correct,
		Encrypt:         o.encrypt,
	}
}

// execute builds a parser for opts and runs the selected operation.
func execute(o *options, store *romio.Store, logger *logrusLogger, stdout io.Writer) error {
	parserOpts := []romutil.Option{
		romutil.WithStore(store),
		romutil.WithLogger(logger),
	}
	if o.verbose {
		parserOpts = append(parserOpts, romutil.WithStageCallback(func(s romutil.Stage) {
			logger.Debug("pipeline stage", "stage", string(s))
		}))
	}

	if o.key != "" {
		key, err := store.ReadKey(o.key)
		if err != nil {
			return err
		}
		parserOpts = append(parserOpts, romutil.WithKey(key))
	}

	if o.db != "" {
		db, err := loadDatabase(store, o.db)
		if err != nil {
			return err
		}
		logger.Debug("loaded signature database", "path", o.db, "entries", db.Len())
		parserOpts = append(parserOpts, romutil.WithDatabase(db.Merge(romdb.Default())))
	}

	p := romutil.New(parserOpts...)
	jobs := o.jobOptions()

	switch {
	case o.split:
		return p.SplitFile(o.input, o.high, o.low, jobs)
	case o.merge:
		return p.MergeFile(o.high, o.low, o.output, jobs)
	case o.swap || o.unswap:
		return p.SwapFile(o.input, o.output, jobs)
	case o.encrypt:
		return p.CryptFile(o.input, o.output, true)
	case o.decrypt:
		return p.CryptFile(o.input, o.output, false)
	case o.correct:
		return p.ChecksumFile(o.input, o.output, true)
	case o.validate:
		return p.ChecksumFile(o.input, "", false)
	}

	info, err := p.Info(o.input)
	if err != nil {
		return err
	}
	return info.Write(stdout)
}

func loadDatabase(store *romio.Store, path string) (*romdb.Database, error) {
	f, err := store.Fs().Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open signature database: %w", err)
	}
	defer f.Close()

	db, err := romdb.ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return db, nil
}
