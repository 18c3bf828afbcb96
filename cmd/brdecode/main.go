// Command brdecode converts the raster pages embedded in a PCL print
// job back to image files, one file per page.
//
// Usage:
//
//	brdecode [-f pbm|png|bmp] [input-file [output-prefix]]
//
// Without an input file it reads from standard input. Output files
// are named <prefix>-<page>.<format>; the prefix defaults to the
// input filename, or to "page" when reading from standard input.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/term"

	"github.com/janh/brlaser/pnm"
	"github.com/janh/brlaser/raster"
	rasterimage "github.com/janh/brlaser/raster/image"
)

func main() {
	log.SetFlags(0)
	format := flag.String("f", "pbm", "output format: pbm, png or bmp")
	flag.Parse()

	switch *format {
	case "pbm", "png", "bmp":
	default:
		log.Fatalf("unknown output format %q", *format)
	}

	args := flag.Args()
	in := os.Stdin
	prefix := "page"
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("can't open file %q", args[0])
		}
		defer f.Close()
		in = f
		prefix = args[0]
		if len(args) > 1 {
			prefix = args[1]
		}
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatal("no filename given and no input on stdin")
	}

	d := raster.NewDecoder(in)
	d.Warn = func(msg string) {
		log.Println("WARNING:", msg)
	}

	for num := 1; ; num++ {
		p, err := d.NextPage()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		name := fmt.Sprintf("%s-%d.%s", prefix, num, *format)
		if err := writePage(name, p, *format); err != nil {
			log.Fatal(err)
		}
		log.Println(name)
	}
}

func writePage(name string, p *raster.Page, format string) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("can't write file %q", name)
	}
	img := rasterimage.Image(p)
	switch format {
	case "pbm":
		err = pnm.Encode(f, img)
	case "png":
		err = png.Encode(f, img)
	case "bmp":
		err = bmp.Encode(f, img)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
