// Command sparsebitmap-demo builds a handful of hard-coded bitmaps and
// prints the results of a few set-algebra calls over them. It exists
// purely as a worked example of the sparsebitmap package; it carries no
// logic of its own.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lemire/sparsebitmap"
	"github.com/lemire/sparsebitmap/internal/buildinfo"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:     "sparsebitmap-demo",
		Short:   "Print example sparsebitmap set-algebra results",
		Version: buildinfo.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			return runDemo()
		},
	}

	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return root
}

func runDemo() error {
	a, err := sparsebitmap.BitmapOf(1, 2, 100, 150, 1000, 123456)
	if err != nil {
		return err
	}
	b, err := sparsebitmap.BitmapOf(1, 2, 3, 1000, 123456, 1234567)
	if err != nil {
		return err
	}

	and, err := a.And(b)
	if err != nil {
		return err
	}
	or, err := a.Or(b)
	if err != nil {
		return err
	}
	xor, err := a.Xor(b)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"op": "and", "cardinality": and.Cardinality()}).Info("computed")
	log.WithFields(logrus.Fields{"op": "or", "cardinality": or.Cardinality()}).Info("computed")
	log.WithFields(logrus.Fields{"op": "xor", "cardinality": xor.Cardinality()}).Info("computed")

	fmt.Println("a        =", a.ToArray())
	fmt.Println("b        =", b.ToArray())
	fmt.Println("a AND b  =", and.ToArray())
	fmt.Println("a OR b   =", or.ToArray())
	fmt.Println("a XOR b  =", xor.ToArray())

	return nil
}
