package main

import (
	"github.com/urfave/cli"
)

var (
	filePathPlaceholder = "[path]"
	// configurationFile defines a flag for the path to the main toml configuration file
	configurationFile = cli.StringFlag{
		Name: "config",
		Usage: "The `" + filePathPlaceholder + "` for the main configuration file. This TOML file contains the " +
			"logging, schema and metrics settings.",
		Value: "./config/config.toml",
	}
	// schemaFile defines a flag for the path to the declarations toml file
	schemaFile = cli.StringFlag{
		Name: "schema",
		Usage: "The `" + filePathPlaceholder + "` for the declarations file. This TOML file contains the structs, " +
			"enums, unions, error enums and functions of a contract. The built-in fixture contract is used when empty.",
		Value: "",
	}
	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,contract:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the contract package which will receive a DEBUG" +
			" log level.",
		Value: "",
	}

	// typeExpression defines the type of the value an encode, decode or validate command works with
	typeExpression = cli.StringFlag{
		Name:  "type",
		Usage: "The type `expression`, for example u32, Vec<SimpleStruct> or Map<Symbol, i128>",
	}
	// jsonValue defines the native JSON form of a value
	jsonValue = cli.StringFlag{
		Name:  "value",
		Usage: "The `json` form of the value. Big numbers may be given as decimal or 0x prefixed strings.",
	}
	// hexData defines hex encoded value bytes
	hexData = cli.StringFlag{
		Name:  "hex",
		Usage: "The hex encoded `bytes` of the value",
	}
	// dump selects a go-spew dump of the decoded value
	dump = cli.BoolFlag{
		Name:  "dump",
		Usage: "Boolean option for printing the full structure of the decoded value",
	}
	// callData defines an invocation written as function@hexArg@hexArg
	callData = cli.StringFlag{
		Name:  "call-data",
		Usage: "The invocation `data`, written as function@hexArg@hexArg...",
	}
	// functionName defines the function to invoke with json arguments
	functionName = cli.StringFlag{
		Name:  "function",
		Usage: "The function `name`. Used together with --args when --call-data is not given.",
	}
	// jsonArguments defines the json array of function arguments
	jsonArguments = cli.StringFlag{
		Name:  "args",
		Usage: "A json `array` holding one native value per function input",
		Value: "[]",
	}
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		configurationFile,
		schemaFile,
		logLevel,
	}
}
