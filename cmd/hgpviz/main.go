// Command hgpviz builds a hypergraph-product code from two classical
// parity-check matrices, places the requested errors, prints the
// syndromes, and optionally writes an HTML lattice visualization.
//
// Examples:
//
//	hgpviz -h1 "1,1,0;0,1,1" -h2 "1,1,0;0,1,1" -x 0,4 -out lattice.html
//	hgpviz -preset1 hamming74 -preset2 repetition:4 -z 10 -rankcheck
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/yezhuoyang/HGPCode/classical"
	"github.com/yezhuoyang/HGPCode/gf2"
	"github.com/yezhuoyang/HGPCode/hgp"
	"github.com/yezhuoyang/HGPCode/sim"
	"github.com/yezhuoyang/HGPCode/viz"
)

// defaultChecks is the 3-bit repetition code's parity-check matrix.
const defaultChecks = "1,1,0;0,1,1"

func main() {
	h1Text := flag.String("h1", defaultChecks, "parity-check matrix 1 (rows ';'-joined, entries ','-joined)")
	h2Text := flag.String("h2", defaultChecks, "parity-check matrix 2 (same format)")
	preset1 := flag.String("preset1", "", "preset for code 1: repetition:n | ring:n | hamming74 (overrides -h1)")
	preset2 := flag.String("preset2", "", "preset for code 2 (overrides -h2)")
	xFlips := flag.String("x", "", "comma-separated qubit indices to bit-flip")
	zFlips := flag.String("z", "", "comma-separated qubit indices to phase-flip")
	rankCheck := flag.Bool("rankcheck", false, "reject rank-deficient parity-check matrices")
	outPath := flag.String("out", "", "write an HTML lattice visualization to this path")
	flag.Parse()

	c1, err := loadCode(*preset1, *h1Text)
	if err != nil {
		log.Fatalf("code 1: %v", err)
	}
	c2, err := loadCode(*preset2, *h2Text)
	if err != nil {
		log.Fatalf("code 2: %v", err)
	}

	var opts []hgp.Option
	if *rankCheck {
		opts = append(opts, hgp.WithRankCheck())
	}
	code, err := hgp.Construct(c1, c2, opts...)
	if err != nil {
		log.Fatalf("construct: %v", err)
	}

	fmt.Printf("classical codes: %s × %s\n", c1, c2)
	fmt.Printf("quantum code:    %s\n", code)
	fmt.Printf("qubits:          %d (%d data on %d×%d, %d check on %d×%d)\n",
		code.N, code.DataQubits(), code.N1, code.N2, code.CheckQubits(), code.R1, code.R2)
	fmt.Printf("checks:          %d X, %d Z\n", code.NumXChecks, code.NumZChecks)

	sess, err := sim.NewSession(code)
	if err != nil {
		log.Fatalf("session: %v", err)
	}
	if err = applyFlips(*xFlips, sess.ToggleX); err != nil {
		log.Fatalf("-x: %v", err)
	}
	if err = applyFlips(*zFlips, sess.ToggleZ); err != nil {
		log.Fatalf("-z: %v", err)
	}

	xSyn, zSyn, err := sess.Syndromes()
	if err != nil {
		log.Fatalf("syndromes: %v", err)
	}
	printSyndrome("X syndrome (Z-checks)", xSyn, code.ZCheckQubits)
	printSyndrome("Z syndrome (X-checks)", zSyn, code.XCheckQubits)

	if *outPath != "" {
		if err = viz.WriteHTMLFile(*outPath, sess); err != nil {
			log.Fatalf("write html: %v", err)
		}
		fmt.Println("lattice page:", *outPath)
	}
}

// loadCode resolves a preset name or falls back to parsing matrix text.
func loadCode(preset, text string) (*classical.Code, error) {
	switch {
	case preset == "":
		h, err := gf2.Parse(text)
		if err != nil {
			return nil, err
		}
		return classical.New(h)

	case preset == "hamming74":
		return classical.Hamming74()

	case strings.HasPrefix(preset, "repetition:"):
		n, err := strconv.Atoi(strings.TrimPrefix(preset, "repetition:"))
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", preset, err)
		}
		return classical.Repetition(n)

	case strings.HasPrefix(preset, "ring:"):
		n, err := strconv.Atoi(strings.TrimPrefix(preset, "ring:"))
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", preset, err)
		}
		return classical.Ring(n)

	default:
		return nil, fmt.Errorf("unknown preset %q", preset)
	}
}

// applyFlips toggles every listed qubit through the given mutator.
func applyFlips(list string, toggle func(int) error) error {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	for _, tok := range strings.Split(list, ",") {
		q, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return fmt.Errorf("qubit %q: %w", tok, err)
		}
		if err = toggle(q); err != nil {
			return err
		}
	}

	return nil
}

// printSyndrome lists the violated checks with their qubit supports.
func printSyndrome(label string, syn []byte, support func(int) ([]int, error)) {
	violated := make([]int, 0, len(syn))
	for i, bitVal := range syn {
		if bitVal == 1 {
			violated = append(violated, i)
		}
	}
	fmt.Printf("%s: %v (%d violated)\n", label, syn, len(violated))
	for _, check := range violated {
		qubits, err := support(check)
		if err != nil {
			log.Fatalf("check %d: %v", check, err)
		}
		fmt.Printf("  check %d touches qubits %v\n", check, qubits)
	}
}
