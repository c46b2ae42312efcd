package main

import (
	"fmt"
	"os"
	"runtime"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

var (
	toolHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}} command [command options]
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
COMMANDS:
   {{range .Commands}}{{join .Names ", "}}{{ "\t" }}{{.Usage}}
   {{end}}{{end}}{{if .VisibleFlags}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}{{end}}
VERSION:
   {{.Version}}
`
	log = logger.GetOrCreate("main")
)

// appVersion should be populated at build time using ldflags
// Usage examples:
// linux/mac:
//            go build -v -ldflags="-X main.appVersion=$(git describe --tags --long --dirty)"
var appVersion = "undefined"

func main() {
	app := cli.NewApp()
	cli.AppHelpTemplate = toolHelpTemplate
	app.Name = "Contract values tool"
	app.Version = fmt.Sprintf("%s/%s/%s-%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Usage = "This tool encodes, decodes and validates typed contract values and invokes the fixture contract functions"
	app.Flags = getFlags()
	app.Commands = getCommands()
	app.Authors = []cli.Author{
		{
			Name:  "The MultiversX Team",
			Email: "contact@multiversx.com",
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
