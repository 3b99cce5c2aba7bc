// Package main rearranges integers so that positives and negatives
// alternate.
//
// Usage:
//
//	alternate                     # print the two sample scenarios
//	alternate -- -3 1 2 4 -6      # rearrange the given integers
//	alternate -lead negative -- 1 -1 2
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/alternate/alternator"
	"github.com/rs/zerolog"
)

var samples = [][]int{
	{-3, 1, 2, 4, -6, 8, -8, -1},
	{-3, 1, 2, 4, -6, 8, -8, -1, -3, -4, -5, -6, -7},
}

func main() {
	lead := flag.String("lead", "positive", "sign that opens the alternation: positive or negative")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	opts := alternator.DefaultOptions()
	switch *lead {
	case "positive":
	case "negative":
		opts.Lead = alternator.Negative
	default:
		log.Fatal().Str("lead", *lead).Msg("unknown lead sign")
	}

	inputs := samples
	if flag.NArg() > 0 {
		in := make([]int, 0, flag.NArg())
		for _, arg := range flag.Args() {
			v, err := strconv.Atoi(arg)
			if err != nil {
				log.Fatal().Err(err).Str("arg", arg).Msg("not an integer")
			}
			in = append(in, v)
		}
		inputs = [][]int{in}
	}

	for i, in := range inputs {
		out, err := alternator.RearrangeWith(in, opts)
		if err != nil {
			log.Fatal().Err(err).Msg("rearrange")
		}
		fmt.Printf("Output %d: %v\n", i+1, out)
	}
}
