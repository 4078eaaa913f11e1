package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/kwertop/banhammer/internal/censor"
)

const (
	defaultBadspeakFile = "badspeak.txt"
	defaultNewspeakFile = "newspeak.txt"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [options] < input

Reads text from stdin, flags forbidden words and words with newspeak
replacements, and prints a report (or the filter statistics with -s).

Options:
`, os.Args[0])
	flag.PrintDefaults()
}

func run(log logger.Logger, cfg censor.Config, badspeakPath, newspeakPath string, stats bool, in io.Reader, out io.Writer) (err error) {
	c, err := censor.New(log, cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, c.Close())
	}()

	badspeak, err := os.Open(badspeakPath)
	if err != nil {
		return fmt.Errorf("failed to open badspeak list: %w", err)
	}
	defer badspeak.Close()

	newspeak, err := os.Open(newspeakPath)
	if err != nil {
		return fmt.Errorf("failed to open newspeak list: %w", err)
	}
	defer newspeak.Close()

	if err := c.Load(badspeak, newspeak); err != nil {
		return err
	}

	report, err := c.Scan(in)
	if err != nil {
		return err
	}
	if stats {
		_, err = c.Stats().WriteTo(out)
		return err
	}
	_, err = report.WriteTo(out)
	return err
}

func main() {
	cfg := censor.DefaultConfig()

	help := flag.Bool("h", false, "Print this help message")
	stats := flag.Bool("s", false, "Print statistics instead of the report")
	flag.BoolVar(&cfg.MoveToFront, "m", false, "Enable the move-to-front rule")
	flag.UintVar(&cfg.TableSize, "t", censor.DefaultTableSize, "Hash table size")
	flag.UintVar(&cfg.FilterSize, "f", censor.DefaultFilterSize, "Bloom filter size in bits")
	flag.Float64Var(&cfg.ErrorRate, "e", 0, "Size the bloom filter for this false positive rate (overrides -f)")
	badspeakPath := flag.String("b", defaultBadspeakFile, "Path to the badspeak list")
	newspeakPath := flag.String("n", defaultNewspeakFile, "Path to the newspeak list")
	flag.StringVar(&cfg.Hasher, "hash", censor.DefaultHasher, "Hash function: murmur, metro or xxhash")
	flag.StringVar(&cfg.RedisURI, "redis", "", "Store the bloom filter bits in redis at this uri")
	level := flag.String("log", "NOOP", "Log level: NOOP, INFO or DEBUG")
	flag.Usage = usage
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	logger.New(*level)
	log := logger.Sugar.WithServiceName("banhammer")

	err := run(log, cfg, *badspeakPath, *newspeakPath, *stats, os.Stdin, os.Stdout)
	logger.OnExit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "banhammer: %v\n", err)
		os.Exit(1)
	}
}
