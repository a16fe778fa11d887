package main

import (
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	ledgerschema "github.com/tidechain/ledgerschema"
	"github.com/tidechain/ledgerschema/schema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "validate":
		validateCmd(os.Args[2:])
	case "schema":
		schemaCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "ledgerschema CLI\n\nUsage:\n  ledgerschema validate -type tx|vote doc.json\n  ledgerschema schema -type tx|vote [-strip] [-format json|yaml]\n\nNotes:\n  - validate exits 0 when the document is admissible and 1 otherwise.\n  - schema prints the repository document, optionally without descriptions.")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var typ string
	fs.StringVar(&typ, "type", "tx", "document type: tx or vote")
	_ = fs.Parse(args)
	file := fs.Arg(0)
	if file == "" {
		fs.Usage()
		os.Exit(2)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		fatalf("reading %s: %v", file, err)
	}

	var verr error
	switch typ {
	case "tx":
		verr = ledgerschema.ValidateTransactionJSON(data)
	case "vote":
		verr = ledgerschema.ValidateVoteJSON(data)
	default:
		fatalf("unknown -type %q (want tx or vote)", typ)
	}
	if verr == nil {
		fmt.Println("ok")
		return
	}
	if iss, ok := ledgerschema.AsIssues(verr); ok {
		for _, it := range iss {
			fmt.Fprintf(os.Stderr, "%s\t%s\t%s\n", it.Path, it.Code, it.Message)
		}
	} else {
		fmt.Fprintln(os.Stderr, verr)
	}
	os.Exit(1)
}

func schemaCmd(args []string) {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	var typ string
	var strip bool
	var format string
	fs.StringVar(&typ, "type", "tx", "document type: tx or vote")
	fs.BoolVar(&strip, "strip", false, "drop description fields")
	fs.StringVar(&format, "format", "json", "output format: json or yaml")
	_ = fs.Parse(args)

	var doc map[string]any
	switch typ {
	case "tx":
		doc = schema.Transaction()
	case "vote":
		doc = schema.Vote()
	default:
		fatalf("unknown -type %q (want tx or vote)", typ)
	}
	if strip {
		doc = schema.StripDescriptions(doc).(map[string]any)
	}

	switch format {
	case "json":
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			fatalf("encoding schema: %v", err)
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			fatalf("encoding schema: %v", err)
		}
		fmt.Print(string(out))
	default:
		fatalf("unknown -format %q (want json or yaml)", format)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
