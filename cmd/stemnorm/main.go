package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/stemforge/stemnorm/pipeline"
)

func main() {
	input := flag.String("input", "", "folder containing one subfolder of stems per song")
	output := flag.String("output", "", "folder to write the adjusted stem folders into")
	target := flag.Float64("target", pipeline.DefaultTarget, "target integrated loudness in LUFS")
	keepGoing := flag.Bool("continue", false, "keep processing remaining folders after an error")
	flag.Parse()

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: stemnorm -input <folder> -output <folder> [-target -14.0] [-continue]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Normalizes every stem subfolder of the input folder so that each")
		fmt.Fprintln(os.Stderr, "folder's combined mix hits the target loudness, then verifies the output.")
		os.Exit(2)
	}

	report, err := pipeline.Run(*input, *output, *target, pipeline.Options{
		ContinueOnError: *keepGoing,
		Status: func(format string, args ...any) {
			fmt.Printf(format+"\n", args...)
		},
		Progress: func(done, total int) {
			fmt.Printf("Progress: %d/%d folders\n", done, total)
		},
	})

	if report != nil {
		for _, folder := range report.VerificationFailures() {
			fmt.Fprintf(os.Stderr, "Warning: loudness verification failed for %s\n", folder)
		}

		if *keepGoing {
			for _, ferr := range report.Errs() {
				fmt.Fprintf(os.Stderr, "Error: %v\n", ferr)
			}
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if report != nil && len(report.Errs()) > 0 {
		os.Exit(1)
	}

	fmt.Println("All stems have been processed successfully.")
}
