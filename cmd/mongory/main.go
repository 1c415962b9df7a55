// Command mongory compiles a query document against a record file and
// reports whether it matches, optionally printing the compiled tree's
// structure or a full evaluation trace.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mongoryhq/mongory-go"
	"github.com/mongoryhq/mongory-go/encoding"
	"github.com/mongoryhq/mongory-go/value"
)

func main() {
	queryFile := flag.String("query", "", "Query document file, JSON or YAML (required)")
	recordFile := flag.String("record", "", "Record document file to test against the query, JSON or YAML (required)")
	explain := flag.Bool("explain", false, "Print the compiled matcher tree instead of evaluating it")
	trace := flag.Bool("trace", false, "Print a step-by-step evaluation trace")
	useRegex := flag.Bool("regex", false, "Enable the stdlib-backed $regex adapter")

	flag.Parse()

	if *queryFile == "" || (!*explain && *recordFile == "") {
		fmt.Fprintln(os.Stderr, "Error: -query is required, and -record unless -explain is set")
		flag.Usage()
		os.Exit(1)
	}

	mongory.Init()
	if *useRegex {
		mongory.UseStdlibRegex()
	}

	query, err := decodeFile(*queryFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading query: %v\n", err)
		os.Exit(1)
	}

	node, compileErr := mongory.Compile(query, nil)
	if compileErr != nil {
		fmt.Fprintf(os.Stderr, "Error compiling query: %v\n", compileErr)
		os.Exit(1)
	}

	if *explain {
		mongory.ExplainTo(os.Stdout, node)
		return
	}

	record, err := decodeFile(*recordFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading record: %v\n", err)
		os.Exit(1)
	}

	var matched bool
	if *trace {
		matched = mongory.Trace(node, record)
	} else {
		matched = mongory.Match(node, record)
	}

	if matched {
		fmt.Println("match")
	} else {
		fmt.Println("no match")
		os.Exit(1)
	}
}

func decodeFile(path string) (*value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return encoding.DecodeYAML(data)
	default:
		return encoding.DecodeJSONBytes(data)
	}
}
