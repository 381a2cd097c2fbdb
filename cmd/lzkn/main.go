// Command lzkn is a command-line front end for the LZKN1 codec: it
// compresses, decompresses or recompresses whole files.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/woozymasta/lzkn"
)

type operationMode int

const (
	modeCompress operationMode = iota
	modeDecompress
	modeRecompress
)

const usageText = `Konami's LZSS variant 1 (LZKN1) compressor/decompressor

USAGE:
	lzkn [-c|-d|-r] input_path [output_path]

	The first optional flag, if present, selects operation mode:
		-c	Compress <input_path>;
		-d	Decompress <input_path>;
		-r	Recompress <input_path> (decompress and compress again).

	If the flag is omitted, compression mode is assumed.

	If [output_path] is not specified, it is set as follows:
		= <input_path> + ".lzkn1" extension in compression mode;
		= <input_path> + ".unc" extension in decompression mode;
		= <input_path> (overwritten) in recompression mode.
`

func usage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	compress := pflag.BoolP("compress", "c", false, "compress input_path")
	decompress := pflag.BoolP("decompress", "d", false, "decompress input_path")
	recompress := pflag.BoolP("recompress", "r", false, "decompress and compress input_path again")
	pflag.Usage = usage
	pflag.Parse()

	mode := modeCompress
	modeFlags := 0
	if *compress {
		modeFlags++
	}
	if *decompress {
		mode = modeDecompress
		modeFlags++
	}
	if *recompress {
		mode = modeRecompress
		modeFlags++
	}
	if modeFlags > 1 {
		log.Fatal("only one of -c, -d, -r may be given")
	}

	args := pflag.Args()
	if len(args) < 1 {
		usage()
		log.Fatal("too few arguments")
	}
	if len(args) > 2 {
		log.Warn("unexpected arguments ignored", "args", args[2:])
	}

	inputPath := args[0]
	outputPath := ""
	if len(args) > 1 {
		outputPath = args[1]
	} else {
		outputPath = deriveOutputPath(mode, inputPath)
	}

	if err := run(mode, inputPath, outputPath); err != nil {
		log.Fatal(err)
	}
}

// deriveOutputPath returns the default output path for a mode: appended
// extension for compress/decompress, the input itself for recompress.
func deriveOutputPath(mode operationMode, inputPath string) string {
	switch mode {
	case modeDecompress:
		return inputPath + ".unc"
	case modeRecompress:
		return inputPath
	default:
		return inputPath + ".lzkn1"
	}
}

func run(mode operationMode, inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("unable to read the input file: %w", err)
	}

	if mode == modeDecompress || mode == modeRecompress {
		data, err = lzkn.Decompress(data)
		if err != nil {
			return fmt.Errorf("decompression failed: %w", err)
		}
	}

	if mode == modeCompress || mode == modeRecompress {
		data, err = lzkn.Compress(data)
		if err != nil {
			return fmt.Errorf("compression failed: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("unable to write the output file: %w", err)
	}

	return nil
}
