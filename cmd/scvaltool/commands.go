package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/multiversx/mx-contract-fixtures-go/binding"
	"github.com/multiversx/mx-contract-fixtures-go/contract"
	"github.com/multiversx/mx-contract-fixtures-go/display"
	"github.com/multiversx/mx-contract-fixtures-go/schema"
	"github.com/multiversx/mx-contract-fixtures-go/scval"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const callDataSeparator = "@"

func getCommands() []cli.Command {
	return []cli.Command{
		{
			Name:   "types",
			Usage:  "Lists the declared structs, enums, unions and error enums",
			Action: typesAction,
		},
		{
			Name:   "functions",
			Usage:  "Lists the declared functions with their signatures",
			Action: functionsAction,
		},
		{
			Name:   "encode",
			Usage:  "Encodes a json value of the given type and prints the hex encoded bytes",
			Flags:  []cli.Flag{typeExpression, jsonValue},
			Action: encodeAction,
		},
		{
			Name:   "decode",
			Usage:  "Decodes hex encoded bytes of the given type and prints the json value",
			Flags:  []cli.Flag{typeExpression, hexData, dump},
			Action: decodeAction,
		},
		{
			Name:   "validate",
			Usage:  "Checks that hex encoded bytes are a canonical encoding of the given type",
			Flags:  []cli.Flag{typeExpression, hexData},
			Action: validateAction,
		},
		{
			Name:   "invoke",
			Usage:  "Invokes a function of the fixture contract and prints its result",
			Flags:  []cli.Flag{callData, functionName, jsonArguments},
			Action: invokeAction,
		},
	}
}

func typesAction(ctx *cli.Context) error {
	t, err := newTool(ctx)
	if err != nil {
		return err
	}

	table, err := display.TypesTable(t.registry)
	if err != nil {
		return err
	}

	fmt.Print(table)
	return nil
}

func functionsAction(ctx *cli.Context) error {
	t, err := newTool(ctx)
	if err != nil {
		return err
	}

	table, err := display.FunctionsTable(t.registry.Functions())
	if err != nil {
		return err
	}

	fmt.Print(table)
	return nil
}

func encodeAction(ctx *cli.Context) error {
	t, err := newTool(ctx)
	if err != nil {
		return err
	}

	typ, err := t.resolveType(ctx)
	if err != nil {
		return err
	}

	data, err := requiredString(ctx, jsonValue)
	if err != nil {
		return err
	}

	native, err := parseJSON(data, jsonValue.Name)
	if err != nil {
		return err
	}

	value, err := binding.FromNative(typ, native)
	if err != nil {
		return errors.Wrap(err, "converting value")
	}

	encoded, err := t.codec.Encode(value, typ)
	if err != nil {
		return errors.Wrap(err, "encoding value")
	}

	log.Debug("encoded", "type", typ.String(), "value", display.ValueString(value, typ), "data", encoded)
	fmt.Println(hex.EncodeToString(encoded))

	return nil
}

func decodeAction(ctx *cli.Context) error {
	t, err := newTool(ctx)
	if err != nil {
		return err
	}

	typ, value, err := t.decodeInput(ctx)
	if err != nil {
		return err
	}

	if ctx.Bool(dump.Name) {
		fmt.Print(spew.Sdump(value))
		return nil
	}

	return printNative(value, typ)
}

func validateAction(ctx *cli.Context) error {
	t, err := newTool(ctx)
	if err != nil {
		return err
	}

	typ, value, err := t.decodeInput(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("valid %s: %s\n", typ.String(), display.ValueString(value, typ))
	return nil
}

func invokeAction(ctx *cli.Context) error {
	t, err := newTool(ctx)
	if err != nil {
		return err
	}

	dispatcher, err := t.createDispatcher()
	if err != nil {
		return err
	}
	defer t.logMetrics()

	function, result, err := t.invoke(ctx, dispatcher)
	var contractErr *contract.ContractError
	if errors.As(err, &contractErr) {
		fmt.Println(contractErr.Error())
		return nil
	}
	if err != nil {
		return err
	}

	spec, err := t.registry.Function(function)
	if err != nil {
		return err
	}

	fmt.Println(hex.EncodeToString(result))

	value, err := t.codec.Decode(result, spec.Output)
	if err != nil {
		return errors.Wrap(err, "decoding result")
	}

	return printNative(value, spec.Output)
}

// invoke calls a function either from call data or from a function name and a json array of native arguments
func (t *tool) invoke(ctx *cli.Context, dispatcher contract.Dispatcher) (string, []byte, error) {
	data := ctx.String(callData.Name)
	if len(data) > 0 {
		function := strings.SplitN(data, callDataSeparator, 2)[0]
		resultHex, err := dispatcher.InvokeCallData(data)
		if err != nil {
			return function, nil, err
		}

		result, err := hex.DecodeString(resultHex)
		return function, result, err
	}

	function, err := requiredString(ctx, functionName)
	if err != nil {
		return "", nil, err
	}

	rawArgs, err := t.encodeArguments(ctx, function)
	if err != nil {
		return function, nil, err
	}

	result, err := dispatcher.Invoke(function, rawArgs)
	return function, result, err
}

func (t *tool) encodeArguments(ctx *cli.Context, function string) ([][]byte, error) {
	spec, err := t.registry.Function(function)
	if err != nil {
		return nil, err
	}

	native, err := parseJSON(ctx.String(jsonArguments.Name), jsonArguments.Name)
	if err != nil {
		return nil, err
	}

	items, ok := native.([]interface{})
	if !ok {
		return nil, errors.Errorf("--%s must be a json array", jsonArguments.Name)
	}
	if len(items) != len(spec.Inputs) {
		return nil, errors.Wrapf(contract.ErrWrongNumberOfArguments, "%s takes %d, got %d",
			function, len(spec.Inputs), len(items))
	}

	rawArgs := make([][]byte, 0, len(items))
	for i, item := range items {
		raw, errEncode := encodeNative(t.codec, spec.Inputs[i], item)
		if errEncode != nil {
			return nil, errEncode
		}

		rawArgs = append(rawArgs, raw)
	}

	return rawArgs, nil
}

func encodeNative(codec scval.ValuesCodec, input schema.Parameter, native interface{}) ([]byte, error) {
	value, err := binding.FromNative(input.Type, native)
	if err != nil {
		return nil, errors.Wrapf(err, "argument %s", input.Name)
	}

	return codec.Encode(value, input.Type)
}

func (t *tool) resolveType(ctx *cli.Context) (*scval.TypeDescriptor, error) {
	expression, err := requiredString(ctx, typeExpression)
	if err != nil {
		return nil, err
	}

	typ, err := t.registry.Resolve(expression)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving type %s", expression)
	}

	return typ, nil
}

func (t *tool) decodeInput(ctx *cli.Context) (*scval.TypeDescriptor, scval.Value, error) {
	typ, err := t.resolveType(ctx)
	if err != nil {
		return nil, nil, err
	}

	encoded, err := requiredString(ctx, hexData)
	if err != nil {
		return nil, nil, err
	}

	data, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading --%s", hexData.Name)
	}

	value, err := t.codec.Decode(data, typ)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "decoding %s", typ.String())
	}

	return typ, value, nil
}

func requiredString(ctx *cli.Context, flag cli.StringFlag) (string, error) {
	value := ctx.String(flag.Name)
	if len(value) == 0 {
		return "", errors.Wrapf(errMissingFlag, "--%s", flag.Name)
	}

	return value, nil
}

func parseJSON(data string, flagName string) (interface{}, error) {
	decoder := json.NewDecoder(strings.NewReader(data))
	decoder.UseNumber()

	var native interface{}
	err := decoder.Decode(&native)
	if err != nil {
		return nil, errors.Wrapf(err, "reading --%s", flagName)
	}

	return native, nil
}

func printNative(value scval.Value, typ *scval.TypeDescriptor) error {
	native, err := binding.ToNative(value, typ)
	if err != nil {
		return err
	}

	output, err := json.Marshal(native)
	if err != nil {
		return errors.Wrap(err, "marshaling value")
	}

	fmt.Println(string(output))
	return nil
}
