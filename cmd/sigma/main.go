// cmd/sigma/main.go: command-line front end for gosigma
//
// Usage:
//
//	sigma [-n N] [-latex] [-sorted] [-prune] <command> args...
//
//	sigma -n 2 mul a a          Σa2 + 2Σab
//	sigma -n 3 pow a 3          (Σa)^3
//	sigma -n 3 add 2*a2b -1*a
//	sigma -n 4 enumerate a2b    every monomial of shape a2b
//	sigma -n 52 mult a2b abc    multiplicities, digit-grouped
//	sigma canon ba2 c3ab        canonical shapes
//
// Operands are [coeff*]shape; a bare integer is a constant.
// N defaults to $SIGMA_DEGREE (3 when unset).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/njchilds90/gosigma"
	"github.com/njchilds90/gosigma/internal/config"
)

var errUsage = errors.New("usage: sigma [-n N] [-latex] [-sorted] [-prune] mul|pow|add|sub|enumerate|mult|canon args...")

func main() {
	log.SetFlags(0)
	log.SetPrefix("sigma: ")
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	latex  bool
	sorted bool
	prune  bool
}

func run(cfg config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("sigma", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	degree := fs.Int("n", cfg.Degree, "Number of variables")
	var opts options
	fs.BoolVar(&opts.latex, "latex", false, "Render results as LaTeX")
	fs.BoolVar(&opts.sorted, "sorted", false, "Order terms by degree")
	fs.BoolVar(&opts.prune, "prune", false, "Drop zero terms")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	ring, err := gosigma.NewRing(*degree)
	if err != nil {
		return err
	}
	cmd, rest := fs.Arg(0), fs.Args()[1:]

	switch cmd {
	case "mul", "add", "sub":
		ops, err := parseOperands(rest)
		if err != nil {
			return err
		}
		if len(ops) == 0 || (cmd == "sub" && len(ops) != 2) {
			return errUsage
		}
		var p gosigma.Polynomial
		switch cmd {
		case "mul":
			if p, err = ring.Product(ops...); err != nil {
				return err
			}
		case "add":
			p = gosigma.Sum(ops...)
		case "sub":
			p = gosigma.Sum(ops[0]).Sub(ops[1])
		}
		return printPolynomial(out, p, opts)

	case "pow":
		if len(rest) != 2 {
			return errUsage
		}
		ops, err := parseOperands(rest[:1])
		if err != nil {
			return err
		}
		e, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("exponent: %w", err)
		}
		p, err := ring.Pow(ops[0], e)
		if err != nil {
			return err
		}
		return printPolynomial(out, p, opts)

	case "enumerate":
		if len(rest) != 1 {
			return errUsage
		}
		s, err := gosigma.ParseShape(rest[0])
		if err != nil {
			return err
		}
		seq, err := ring.Enumerate(s)
		if err != nil {
			return err
		}
		for m := range seq {
			if opts.latex {
				fmt.Fprintln(out, m.LaTeX())
			} else {
				fmt.Fprintln(out, m)
			}
		}
		return nil

	case "mult":
		printer := message.NewPrinter(language.English)
		for _, text := range rest {
			s, err := gosigma.ParseShape(text)
			if err != nil {
				return err
			}
			m, err := ring.Multiplicity(s)
			if err != nil {
				return err
			}
			if m.IsInt64() {
				printer.Fprintf(out, "Σ%s\t%d\n", s, m.Int64())
			} else {
				printer.Fprintf(out, "Σ%s\t%s\n", s, m.String())
			}
		}
		return nil

	case "canon":
		for _, text := range rest {
			s, err := gosigma.ParseShape(text)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\t%s\t%v\n", text, s, s.Partition())
		}
		return nil
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

// parseOperands reads "[coeff*]shape" arguments; a bare integer is a Scalar.
func parseOperands(args []string) ([]gosigma.Operand, error) {
	ops := make([]gosigma.Operand, len(args))
	for i, arg := range args {
		if k, err := strconv.ParseInt(arg, 10, 64); err == nil {
			ops[i] = gosigma.Scalar(k)
			continue
		}
		coeff, text := int64(1), arg
		if before, after, ok := strings.Cut(arg, "*"); ok {
			k, err := strconv.ParseInt(before, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("operand %q: coefficient: %w", arg, err)
			}
			coeff, text = k, after
		}
		t, err := gosigma.ParseTerm(text, coeff)
		if err != nil {
			return nil, fmt.Errorf("operand %q: %w", arg, err)
		}
		ops[i] = t
	}
	return ops, nil
}

func printPolynomial(out io.Writer, p gosigma.Polynomial, opts options) error {
	if opts.prune {
		p = p.Prune()
	}
	if opts.sorted {
		p = p.Sorted()
	}
	var err error
	if opts.latex {
		_, err = fmt.Fprintln(out, p.LaTeX())
	} else {
		_, err = fmt.Fprintln(out, p.String())
	}
	return err
}
