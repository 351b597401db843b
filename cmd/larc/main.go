// Command larc exposes the larc text, IP, CSV and JSON helpers on the
// command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/lowlandresearch/larc"
	"github.com/lowlandresearch/larc/config"
	"github.com/lowlandresearch/larc/version"
)

type command struct {
	usage string
	run   func(rt *larc.Runtime, args []string, stdin io.Reader, stdout io.Writer) error
}

var commands = map[string]command{
	"ips":       {"ips [-sort] [FILE]", runIPs},
	"expand":    {"expand [FILE]", runExpand},
	"difflines": {"difflines A B", runDiffLines},
	"intlines":  {"intlines A B", runIntLines},
	"search":    {"search EXPR [FILE]", runSearch},
	"csvcut":    {"csvcut -columns a,b [FILE]", runCSVCut},
}

func usage() {
	color.Yellow.Printf("usage: %s [-config FILE] [-no-color] [-version] COMMAND [ARGS]\n", os.Args[0])
	for _, name := range []string{"ips", "expand", "difflines", "intlines", "search", "csvcut"} {
		color.Yellow.Printf("  %s %s\n", os.Args[0], commands[name].usage)
	}
}

func main() {
	configFile := flag.String("config", "", "path to a larc.yml configuration file.")
	noColor := flag.Bool("no-color", false, "do not colorize output.")
	showVersion := flag.Bool("version", false, "print the version and exit.")
	flag.CommandLine.Usage = usage
	flag.Parse()

	if *noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.Disable()
	}

	if *showVersion {
		fmt.Println(version.Get())
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		color.Red.Printf("unknown command %q\n", args[0])
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	var opts []config.LoaderOption
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	rt, err := larc.Setup(ctx, "larc", opts...)
	if err != nil {
		fail(err)
	}
	defer rt.Shutdown(ctx)

	if err := cmd.run(rt, args[1:], os.Stdin, os.Stdout); err != nil {
		_ = rt.Shutdown(ctx)
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, color.Red.Sprintf("larc: %v", err))
	os.Exit(1)
}
