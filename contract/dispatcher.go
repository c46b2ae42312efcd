package contract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-contract-fixtures-go/schema"
	"github.com/multiversx/mx-contract-fixtures-go/scval"
)

var log = logger.GetOrCreate("contract")

const callDataSeparator = "@"

// ArgsDispatcher holds the arguments needed to create a dispatcher
type ArgsDispatcher struct {
	Registry SchemaRegistry
	Codec    scval.ValuesCodec
	Handlers map[string]Handler
	Metrics  MetricsHandler
}

type dispatcher struct {
	registry   SchemaRegistry
	codec      scval.ValuesCodec
	serializer ArgumentsSerializer
	handlers   map[string]Handler
	metrics    MetricsHandler
}

// NewDispatcher creates a dispatcher that decodes the raw arguments of a function, calls its handler and
// encodes the result. Every declared function must have a handler, and every handler a declared function.
func NewDispatcher(args ArgsDispatcher) (*dispatcher, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	serializer, err := scval.NewSerializer(args.Codec)
	if err != nil {
		return nil, err
	}

	handlers := make(map[string]Handler, len(args.Handlers))
	for name, handler := range args.Handlers {
		handlers[name] = handler
	}

	return &dispatcher{
		registry:   args.Registry,
		codec:      args.Codec,
		serializer: serializer,
		handlers:   handlers,
		metrics:    args.Metrics,
	}, nil
}

func checkArgs(args ArgsDispatcher) error {
	if check.IfNil(args.Registry) {
		return ErrNilRegistry
	}
	if check.IfNil(args.Codec) {
		return ErrNilCodec
	}
	if check.IfNil(args.Metrics) {
		return ErrNilMetricsHandler
	}

	for _, spec := range args.Registry.Functions() {
		if args.Handlers[spec.Name] == nil {
			return fmt.Errorf("%w for function %s", ErrMissingHandler, spec.Name)
		}
	}
	for name, handler := range args.Handlers {
		if handler == nil {
			return fmt.Errorf("%w for function %s", ErrMissingHandler, name)
		}

		_, err := args.Registry.Function(name)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUndeclaredHandler, name)
		}
	}

	return nil
}

// Invoke calls a function with its encoded arguments, one per declared input, and returns the encoded result
func (d *dispatcher) Invoke(function string, rawArgs [][]byte) ([]byte, error) {
	spec, handler, err := d.lookup(function)
	if err != nil {
		return nil, err
	}

	args, err := d.decodeArguments(spec, rawArgs)
	if err != nil {
		d.metrics.AddInvocation(function, OutcomeInvalidArguments)
		return nil, err
	}

	result, err := d.execute(spec, handler, args)
	if err != nil {
		return nil, err
	}

	encoded, err := d.codec.Encode(result, spec.Output)
	if err != nil {
		return nil, fmt.Errorf("%w of %s: %w", ErrInvalidResult, function, err)
	}

	log.Trace("invoked", "function", function, "result", encoded)

	return encoded, nil
}

func (d *dispatcher) lookup(function string) (*schema.FunctionSpec, Handler, error) {
	spec, err := d.registry.Function(function)
	if err != nil {
		d.metrics.AddInvocation(function, OutcomeUnknownFunction)
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownFunction, function)
	}

	handler := d.handlers[function]
	if handler == nil {
		d.metrics.AddInvocation(function, OutcomeUnknownFunction)
		return nil, nil, fmt.Errorf("%w for function %s", ErrMissingHandler, function)
	}

	return spec, handler, nil
}

// execute calls the handler and checks its result against the declared output
func (d *dispatcher) execute(spec *schema.FunctionSpec, handler Handler, args []scval.Value) (scval.Value, error) {
	result, err := handler(args)
	if err != nil {
		return nil, d.handleFailure(spec, err)
	}

	err = d.codec.Validate(result, spec.Output)
	if err != nil {
		d.metrics.AddInvocation(spec.Name, OutcomeInvalidResult)
		return nil, fmt.Errorf("%w of %s: %w", ErrInvalidResult, spec.Name, err)
	}

	d.metrics.AddInvocation(spec.Name, OutcomeOk)

	return result, nil
}

func (d *dispatcher) decodeArguments(spec *schema.FunctionSpec, rawArgs [][]byte) ([]scval.Value, error) {
	if len(rawArgs) != len(spec.Inputs) {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrWrongNumberOfArguments, spec.Name, len(spec.Inputs), len(rawArgs))
	}

	args := make([]scval.Value, 0, len(rawArgs))
	for i, raw := range rawArgs {
		input := spec.Inputs[i]

		value, err := d.codec.Decode(raw, input.Type)
		if err != nil {
			log.Debug("invalid argument", "function", spec.Name, "input", input.Name, "data", raw, "error", err)
			return nil, fmt.Errorf("argument %s of %s: %w", input.Name, spec.Name, err)
		}

		args = append(args, value)
	}

	return args, nil
}

// handleFailure resolves contract errors against the error enum declared by the function
func (d *dispatcher) handleFailure(spec *schema.FunctionSpec, err error) error {
	var contractErr *ContractError
	if !errors.As(err, &contractErr) {
		d.metrics.AddInvocation(spec.Name, OutcomeInvalidResult)
		return fmt.Errorf("%w of %s: %w", ErrInvalidResult, spec.Name, err)
	}

	if spec.Errors == nil {
		d.metrics.AddInvocation(spec.Name, OutcomeInvalidResult)
		return fmt.Errorf("%w: %s declares no errors, got code %d", ErrUndeclaredContractError, spec.Name, contractErr.Code)
	}

	index, ok := spec.Errors.CaseByValue(contractErr.Code)
	if !ok {
		d.metrics.AddInvocation(spec.Name, OutcomeInvalidResult)
		return fmt.Errorf("%w: %d is not a case of %s", ErrUndeclaredContractError, contractErr.Code, spec.Errors.Name)
	}

	d.metrics.AddInvocation(spec.Name, OutcomeContractError)

	return &ContractError{
		Enum: spec.Errors.Name,
		Name: spec.Errors.Cases[index].Name,
		Code: contractErr.Code,
	}
}

// InvokeCallData invokes a function from call data written as name@hexArg@hexArg..., returning the hex result
func (d *dispatcher) InvokeCallData(callData string) (string, error) {
	function, argsData, hasArgs := strings.Cut(callData, callDataSeparator)
	if len(function) == 0 {
		return "", ErrEmptyCallData
	}

	spec, handler, err := d.lookup(function)
	if err != nil {
		return "", err
	}

	args, err := d.deserializeArguments(spec, argsData, hasArgs)
	if err != nil {
		d.metrics.AddInvocation(function, OutcomeInvalidArguments)
		return "", err
	}

	result, err := d.execute(spec, handler, args)
	if err != nil {
		return "", err
	}

	return d.serializer.Serialize([]scval.Value{result}, []*scval.TypeDescriptor{spec.Output})
}

func (d *dispatcher) deserializeArguments(spec *schema.FunctionSpec, argsData string, hasArgs bool) ([]scval.Value, error) {
	if !hasArgs && len(spec.Inputs) > 0 {
		return nil, fmt.Errorf("%w: %s takes %d, got 0", ErrWrongNumberOfArguments, spec.Name, len(spec.Inputs))
	}

	args, err := d.serializer.Deserialize(argsData, spec.InputTypes())
	if errors.Is(err, scval.ErrArgumentsCountMismatch) {
		return nil, fmt.Errorf("%w of %s: %w", ErrWrongNumberOfArguments, spec.Name, err)
	}
	if err != nil {
		return nil, fmt.Errorf("arguments of %s: %w", spec.Name, err)
	}

	return args, nil
}

// Functions returns the listed functions
func (d *dispatcher) Functions() []*schema.FunctionSpec {
	return d.registry.Functions()
}

// IsInterfaceNil returns true if there is no value under the interface
func (d *dispatcher) IsInterfaceNil() bool {
	return d == nil
}
